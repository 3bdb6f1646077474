// Package cache provides persistent caching for computed layouts and
// prototype measurements.
//
// The in-memory memo inside a sizing strategy only lives for one layout
// pass; this package covers the cross-run path. Keys are produced by a
// [Keyer] and always embed the environment fingerprint, so a resized
// viewport or changed size class misses naturally instead of serving stale
// sizes.
//
// Backends:
//   - [FileCache]: XDG cache directory, for CLI usage
//   - [RedisCache]: shared cache for multi-instance preview deployments
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the default lifetime of cached layouts and measurements.
// Layout results depend only on their key inputs, so the TTL exists to
// bound disk usage rather than to enforce freshness.
const DefaultTTL = 14 * 24 * time.Hour

// Cache stores opaque bytes under string keys with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores it without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
