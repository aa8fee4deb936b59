package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	data      []byte
	expiresAt time.Time // zero means no expiry
}

// memoryCache is a process-local Cache used in tests and when no Valkey URL
// is configured. Expired entries are dropped lazily on read.
type memoryCache struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

// NewMemoryCache creates an in-memory cache
func NewMemoryCache() Cache {
	return &memoryCache{items: make(map[string]memoryItem)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, nil
	}
	return item.data, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, expiration time.Duration) error {
	item := memoryItem{data: value}
	if expiration > 0 {
		item.expiresAt = time.Now().Add(expiration)
	}

	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) Health(context.Context) error {
	return nil
}

func (c *memoryCache) Close() error {
	return nil
}
