package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore namespaces every key with a prefix ("portfolio:health_check").
type RedisStore struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
}

func NewRedisStore(url, prefix string, defaultTTL time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	return NewRedisStoreFromClient(redis.NewClient(opts), prefix, defaultTTL), nil
}

func NewRedisStoreFromClient(client *redis.Client, prefix string, defaultTTL time.Duration) *RedisStore {
	return &RedisStore{
		client:     client,
		prefix:     prefix,
		defaultTTL: defaultTTL,
	}
}

func (c *RedisStore) key(key string) string {
	if c.prefix == "" {
		return key
	}

	return c.prefix + ":" + key
}

func (c *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, c.key(key)).Result()

	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}

	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}

	return value, nil
}

func (c *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

func (c *RedisStore) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}

	return nil
}

func (c *RedisStore) Close() error {
	return c.client.Close()
}
