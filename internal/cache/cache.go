// Package cache stores upstream translations with a per-entry expiry.
package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../service/mock/mock_cache.go -package=mock bookshelf/backend/internal/cache Cache

// DefaultTTL is how long a translation stays valid after it is written.
const DefaultTTL = 24 * time.Hour

// Cache is a key/value store whose entries expire independently.
// Implementations are safe for concurrent use; concurrent writes to the
// same key are last-write-wins.
type Cache interface {
	// Get returns the value for key. Expired entries are reported as absent.
	Get(ctx context.Context, key string) (string, bool)
	// Set stores value under key with the cache TTL.
	Set(ctx context.Context, key, value string) error
	// Delete removes key if present.
	Delete(ctx context.Context, key string) error
	// Evict drops expired entries and returns how many were removed.
	Evict(ctx context.Context) int
	// Stats reports size and hit/miss counters.
	Stats(ctx context.Context) Stats
}

// Stats is a point-in-time snapshot of cache usage.
type Stats struct {
	Backend    string  `json:"backend"`
	Entries    int     `json:"entries"`
	Hits       int64   `json:"hits"`
	Misses     int64   `json:"misses"`
	HitRate    float64 `json:"hitRate"`
	TTLSeconds int64   `json:"ttlSeconds"`
}

func hitRate(hits, misses int64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
