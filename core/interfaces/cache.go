// ABOUTME: Cache interface backing both the in-process and durable tiers
// ABOUTME: Implementations include memory (go-cache), Redis and SQLite

package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for key-value cache operations.
// The feed Source Cache layers an in-process implementation over a
// durable one; both sides speak this interface.
type Cache interface {
	// Get retrieves a value by key. Returns an error when the key does
	// not exist; callers treat any error as a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under key with the given TTL.
	// A ttl of 0 stores the value indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
