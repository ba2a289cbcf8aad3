package components

import (
	"log/slog"

	"checkout-engine/internal/infra/memstore"
	"checkout-engine/internal/infra/readstore"
	sqlc "checkout-engine/internal/infra/sqlc/generated"
	"checkout-engine/internal/infra/uow"
	"checkout-engine/internal/pkg/config"
	"checkout-engine/internal/pkg/errs"
	"checkout-engine/internal/pkg/metrics"
	"checkout-engine/internal/usecase/queries"
	"checkout-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStorage,
	),
)

// Storage is the set of ports one storage driver satisfies.
type Storage struct {
	fx.Out

	UnitOfWork   shared.UnitOfWork
	Variants     queries.VariantReadStore
	Rules        queries.RuleSnapshotReadStore
	Inventory    queries.InventoryReadStore
	Reservations queries.ReservationReadStore
	Audit        queries.AuditReadStore
}

type PoolFactory func(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error)

func NewStorage(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics, logger *slog.Logger, connect PoolFactory) (Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Info("インメモリストレージを使用します")
		return NewMemoryStorage(memstore.New()), nil
	case config.StorageDriverPostgres, "":
		pool, err := connect(lc, cfg)
		if err != nil {
			return Storage{}, err
		}
		return NewPostgresStorage(pool, cfg, m), nil
	default:
		return Storage{}, errs.Mark(errs.Newf("unknown storage driver %q", cfg.Storage.Driver), errs.ErrConfiguration)
	}
}

func NewPostgresStorage(pool *pgxpool.Pool, cfg config.Config, m *metrics.Metrics) Storage {
	q := sqlc.New()
	return Storage{
		UnitOfWork:   uow.NewPostgresUoW(pool, q, cfg, m),
		Variants:     readstore.NewVariantReadStore(q, pool),
		Rules:        readstore.NewRuleSnapshotReadStore(q, pool),
		Inventory:    readstore.NewInventoryReadStore(q, pool),
		Reservations: readstore.NewReservationReadStore(q, pool),
		Audit:        readstore.NewAuditReadStore(q, pool),
	}
}

func NewMemoryStorage(store *memstore.Store) Storage {
	return Storage{
		UnitOfWork:   store,
		Variants:     store,
		Rules:        store,
		Inventory:    store,
		Reservations: store,
		Audit:        store,
	}
}
