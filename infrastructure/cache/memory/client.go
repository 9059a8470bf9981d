// ABOUTME: In-memory cache implementation backed by go-cache
// ABOUTME: Serves as the in-process tier of the feed source cache

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const cleanupInterval = 5 * time.Minute

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.store.Get(key)
	if !ok {
		return nil, errors.New("key not found")
	}

	stored := value.([]byte)

	// Return a copy so callers cannot mutate the cached bytes
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL.
// A ttl of 0 stores the value indefinitely.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl == 0 {
		expiration = gocache.NoExpiration
	}

	c.store.Set(key, valueCopy, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.store.Delete(key)
	return nil
}
