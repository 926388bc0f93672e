package cache

import (
	"context"
	"time"
)

// ScopedCache wraps a Cache with a key prefix for namespace isolation.
// This is useful when several models or deployments share one Redis:
//
//	shared, _ := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: addr})
//	c := cache.Scoped(shared, "framegraph:")
type ScopedCache struct {
	inner  Cache
	prefix string
}

// Scoped creates a cache that prepends prefix to all keys.
// A nil inner cache is replaced by a [NullCache].
func Scoped(inner Cache, prefix string) Cache {
	if inner == nil {
		inner = NewNullCache()
	}
	return &ScopedCache{inner: inner, prefix: prefix}
}

// Get retrieves a prefixed key.
func (c *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

// Set stores a prefixed key.
func (c *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

// Delete removes a prefixed key.
func (c *ScopedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

// Close closes the wrapped cache.
func (c *ScopedCache) Close() error {
	return c.inner.Close()
}

// Ensure ScopedCache implements Cache.
var _ Cache = (*ScopedCache)(nil)
