package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value   string
	expires time.Time
}

// MemoryStore is a process-local TTL store. It is the fallback when no Redis
// URL is configured and is not shared between instances.
type MemoryStore struct {
	mu         sync.Mutex
	data       map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
}

func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (c *MemoryStore) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.data[key]
	if !ok {
		return "", ErrMiss
	}

	if !item.expires.IsZero() && c.now().After(item.expires) {
		delete(c.data, key)
		return "", ErrMiss
	}

	return item.value, nil
}

func (c *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	item := entry{value: value}
	if ttl > 0 {
		item.expires = c.now().Add(ttl)
	}

	c.data[key] = item

	return nil
}

func (c *MemoryStore) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)

	return nil
}

func (c *MemoryStore) Close() error {
	return nil
}
