package cache

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed")
	}

	if err := exec.Command("docker", "ps").Run(); err != nil {
		t.Skip("docker not running")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("container run err: %v", err)
	}

	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	store, err := NewRedisStore(url, "portfolio", 300*time.Second)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "health_check", "ok", 30*time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}

	if v, err := store.Get(ctx, "health_check"); err != nil || v != "ok" {
		t.Fatalf("expected ok, got %q %v", v, err)
	}

	raw, err := store.client.Get(ctx, "portfolio:health_check").Result()
	if err != nil || raw != "ok" {
		t.Fatalf("expected prefixed key, got %q %v", raw, err)
	}

	if err := store.Delete(ctx, "health_check"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.Get(ctx, "health_check"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected miss, got %v", err)
	}
}

func TestRedisStoreReportsConnectivityErrors(t *testing.T) {
	store, err := NewRedisStore("redis://127.0.0.1:1/0", "portfolio", time.Second)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := store.Set(ctx, "health_check", "ok", time.Second); err == nil {
		t.Fatalf("expected connection error")
	}

	if _, err := store.Get(ctx, "health_check"); err == nil || errors.Is(err, ErrMiss) {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestNewRedisStoreRejectsBadURL(t *testing.T) {
	if _, err := NewRedisStore("::not a url", "p", time.Second); err == nil {
		t.Fatalf("expected parse error")
	}
}
