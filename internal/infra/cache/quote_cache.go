package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"checkout-engine/internal/pkg/errs"
	"checkout-engine/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const quoteKeyPrefix = "checkout:"

// RedisQuoteCache stores resolved quotes and their stable interval as JSON.
// Keys carry the rule-store version, so a rule change never serves an old
// quote; stale keys just age out.
type RedisQuoteCache struct {
	client redis.UniversalClient
}

func NewRedisQuoteCache(client redis.UniversalClient) *RedisQuoteCache {
	return &RedisQuoteCache{client: client}
}

func (c *RedisQuoteCache) Get(ctx context.Context, key string) (*queries.CachedQuote, bool, error) {
	raw, err := c.client.Get(ctx, quoteKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to read cached quote")
	}
	var q queries.CachedQuote
	if err := json.Unmarshal(raw, &q); err != nil {
		// unreadable entries are treated as misses and overwritten on the next Set
		return nil, false, nil
	}
	return &q, true, nil
}

func (c *RedisQuoteCache) Set(ctx context.Context, key string, q *queries.CachedQuote, ttl time.Duration) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return errs.Wrap(err, "failed to encode quote")
	}
	if err := c.client.Set(ctx, quoteKeyPrefix+key, raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to cache quote")
	}
	return nil
}
