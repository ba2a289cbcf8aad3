package bootstrap

import (
	"context"
	"log/slog"

	"checkout-engine/internal/infra/cache"
	"checkout-engine/internal/pkg/config"
	"checkout-engine/internal/pkg/errs"
	"checkout-engine/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewQuoteCache,
	),
)

// NewQuoteCache returns the redis-backed quote cache, or a no-op cache when
// REDIS_ADDR is unset.
func NewQuoteCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (queries.QuoteCache, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("見積もりキャッシュは無効です")
		return queries.NopQuoteCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to connect to redis")
	}
	logger.Info("Redisに接続しました", "addr", cfg.Redis.Addr)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisQuoteCache(client), nil
}
