// Package cache stores rendered artifacts keyed by the model and options
// that produced them.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP viewer
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// [Scoped] prefixes every key of another cache, so several models or
// deployments can share one backend.
//
// # Keys
//
// [Key] derives a stable key from a prefix and any JSON-encodable parts:
//
//	key := cache.Key("artifact", cache.Hash(model), "svg", opts)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}
