package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"bookshelf/backend/internal/logger"
)

const (
	defaultKeyPrefix = "bookshelf:tr:"
	scanBatch        = 100
)

// RedisCache shares translations between instances through Redis.
// Expiry is delegated to Redis, so Evict has nothing to do.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string

	hits   atomic.Int64
	misses atomic.Int64
}

// OpenRedis connects to url and verifies the connection with PING.
func OpenRedis(ctx context.Context, url string, ttl time.Duration, prefix string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisCache(client, ttl, prefix), nil
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client, ttl time.Duration, prefix string) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisCache{client: client, ttl: ttl, prefix: prefix}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("redis cache read failed", "module", "cache", "action", "fetch", "resource", "redis", "result", "failed", "error", err)
		}
		c.misses.Add(1)
		return "", false
	}
	c.hits.Add(1)
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (c *RedisCache) Evict(_ context.Context) int {
	return 0
}

func (c *RedisCache) Stats(ctx context.Context) Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	return Stats{
		Backend:    "redis",
		Entries:    c.count(ctx),
		Hits:       hits,
		Misses:     misses,
		HitRate:    hitRate(hits, misses),
		TTLSeconds: int64(c.ttl / time.Second),
	}
}

// count walks the key space under the prefix. Returns -1 when Redis fails.
func (c *RedisCache) count(ctx context.Context) int {
	var (
		cursor uint64
		total  int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", scanBatch).Result()
		if err != nil {
			logger.Warn("redis cache scan failed", "module", "cache", "action", "fetch", "resource", "redis", "result", "failed", "error", err)
			return -1
		}
		total += len(keys)
		if next == 0 {
			return total
		}
		cursor = next
	}
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
