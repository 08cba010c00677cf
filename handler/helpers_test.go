package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/pkg/mailer"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newConnection(t *testing.T) *database.Connection {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), database.NewGormConfig())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	conn := database.NewConnectionFromGorm(db)

	if err := conn.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return conn
}

func mustCreate(t *testing.T, conn *database.Connection, value any) {
	t.Helper()

	if err := conn.Sql().Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return req
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}

	return out
}

type recordingNotifier struct {
	mu    sync.Mutex
	sent  []mailer.ContactNotification
	fails bool
}

func (n *recordingNotifier) Notify(_ context.Context, notification mailer.ContactNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.sent = append(n.sent, notification)

	if n.fails {
		return errors.New("smtp unreachable")
	}

	return nil
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("redis: connection refused")
}

func (failingStore) Set(context.Context, string, string, time.Duration) error {
	return errors.New("redis: connection refused")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("redis: connection refused")
}

func (failingStore) Close() error {
	return nil
}

type viewCounter struct {
	mu sync.Mutex
	n  int
}

func (v *viewCounter) ViewRecorded() {
	v.mu.Lock()
	v.n++
	v.mu.Unlock()
}

func dropTable(t *testing.T, conn *database.Connection, table string) {
	t.Helper()

	if err := conn.Sql().Exec("DROP TABLE " + table).Error; err != nil {
		t.Fatalf("drop %s: %v", table, err)
	}
}
