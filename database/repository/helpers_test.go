package repository_test

import (
	"testing"
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
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

func newWriteUp(title string, published bool, at time.Time) *database.WriteUp {
	return &database.WriteUp{
		Title:       title,
		Platform:    "hackthebox",
		Difficulty:  "easy",
		Summary:     "summary of " + title,
		Content:     "content of " + title,
		IsPublished: published,
		PublishedAt: at,
	}
}
