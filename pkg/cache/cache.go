package cache

import (
	"context"
	"time"
)

// Cache is the contract for the Redis-backed cache layer.
// Keeping it as an interface lets handlers and middleware take a fake in tests.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// Returns (false, nil) on a cache miss, dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Increment atomically increments a counter key and returns the new value.
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets a TTL on an existing key.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
