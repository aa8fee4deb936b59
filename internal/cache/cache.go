// Package cache provides the read-through cache used by the repository
// decorators. Values are JSON-encoded documents keyed by collection and id.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with per-key expiration
type Cache interface {
	// Get returns the cached value, or nil when the key is absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value; zero expiration means no TTL
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error

	// Delete removes a key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Health checks the backing store
	Health(ctx context.Context) error

	// Close releases the connection
	Close() error
}

// Error wraps a failed cache operation with its key and operation name
type Error struct {
	Operation string
	Key       string
	Err       error
}

func (e *Error) Error() string {
	return "cache " + e.Operation + " failed for key '" + e.Key + "': " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
