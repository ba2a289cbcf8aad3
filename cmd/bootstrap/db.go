package bootstrap

import (
	"context"

	"checkout-engine/cmd/bootstrap/components"
	"checkout-engine/internal/infra/db"
	"checkout-engine/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// DBModule hands the pool constructor to the storage selector, which only
// dials postgres when STORAGE_DRIVER asks for it.
var DBModule = fx.Module("db",
	fx.Supply(components.PoolFactory(NewDB)),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
