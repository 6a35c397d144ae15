// File: internal/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrCacheMiss is returned when a page is not in the cache.
var ErrCacheMiss = errors.New("catalog page not in cache")

// PageCache stores serialized catalog pages.
type PageCache interface {
	Get(ctx context.Context, key string) (*PaginatedMovies, error)
	Set(ctx context.Context, key string, page *PaginatedMovies) error
}

// redisPageCache is a read-through page cache on Redis. Cache failures are
// soft: the caller falls back to the repository.
type redisPageCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisPageCache creates a Redis-backed page cache.
func NewRedisPageCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) PageCache {
	return &redisPageCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisPageCache) Get(ctx context.Context, key string) (*PaginatedMovies, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		c.logger.Warn("Catalog cache read failed", zap.Error(err), zap.String("key", key))
		return nil, ErrCacheMiss
	}

	var page PaginatedMovies
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		c.logger.Warn("Catalog cache entry corrupt", zap.Error(err), zap.String("key", key))
		return nil, ErrCacheMiss
	}
	return &page, nil
}

func (c *redisPageCache) Set(ctx context.Context, key string, page *PaginatedMovies) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Catalog cache write failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

// NopPageCache never hits. Used when Redis is unavailable and in tests.
type NopPageCache struct{}

func (NopPageCache) Get(ctx context.Context, key string) (*PaginatedMovies, error) {
	return nil, ErrCacheMiss
}

func (NopPageCache) Set(ctx context.Context, key string, page *PaginatedMovies) error {
	return nil
}
