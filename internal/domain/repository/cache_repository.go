package repository

import (
	"context"
	"time"

	"github.com/citypulse-backend/internal/domain"
)

// CacheRepository defines the cache contract. Get returns (nil, nil) on
// a miss so callers can distinguish misses from failures.
type CacheRepository interface {
	// Get returns the raw value for a key, nil on cache miss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Exists checks key presence
	Exists(ctx context.Context, key string) (bool, error)

	// GetNewsSearch returns a cached news search result, nil on miss
	GetNewsSearch(ctx context.Context, key string) ([]domain.NewsItem, error)

	// SetNewsSearch caches a news search result with TTL
	SetNewsSearch(ctx context.Context, key string, items []domain.NewsItem, ttl time.Duration) error
}
