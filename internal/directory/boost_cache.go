package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const featuredKey = "directory:featured"

var rdb *redis.Client

// InitRedis initializes the Redis client backing the featured-lawyer cache.
// An empty addr leaves caching disabled.
func InitRedis(addr, password string, db int) error {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	rdb = client
	return nil
}

// Enabled reports whether the cache is available
func Enabled() bool {
	return rdb != nil
}

// GetFeatured returns the cached boost-ranked featured list, if present
func GetFeatured(ctx context.Context) ([]byte, bool) {
	if rdb == nil {
		return nil, false
	}
	payload, err := rdb.Get(ctx, featuredKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// SetFeatured caches the featured list for the given TTL
func SetFeatured(ctx context.Context, payload []byte, ttl time.Duration) {
	if rdb == nil {
		return
	}
	rdb.Set(ctx, featuredKey, payload, ttl)
}

// InvalidateFeatured drops the cached featured list. Called after a reward
// run changes any lawyer's boost.
func InvalidateFeatured(ctx context.Context) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, featuredKey)
}
