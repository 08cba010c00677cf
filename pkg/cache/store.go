package cache

import (
	"context"
	"errors"
	"time"
)

var ErrMiss = errors.New("cache: key not found")

// Store is the cache port used by the health check and the read endpoints.
// Implementations report connectivity problems instead of hiding them, so
// callers decide whether a failure is fatal.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Remember returns the cached value for key or stores the result of resolve.
// A failing cache never blocks resolve.
func Remember(ctx context.Context, store Store, key string, ttl time.Duration, resolve func() (string, error)) (string, error) {
	if store != nil {
		if value, err := store.Get(ctx, key); err == nil {
			return value, nil
		}
	}

	value, err := resolve()
	if err != nil {
		return "", err
	}

	if store != nil {
		_ = store.Set(ctx, key, value, ttl)
	}

	return value, nil
}
