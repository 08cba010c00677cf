package clitest

import (
	"strings"
	"testing"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/metal/env"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestConnection opens a migrated in-memory sqlite database that lives as
// long as the test.
func NewTestConnection(t *testing.T) *database.Connection {
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
	t.Cleanup(func() { _ = sqlDB.Close() })

	conn := database.NewConnectionFromGorm(db)
	if err := conn.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return conn
}

func NewTestEnv() *env.Environment {
	return &env.Environment{
		App:    env.AppEnvironment{Type: "local", MasterKey: strings.ReplaceAll(uuid.NewString(), "-", "")},
		Admin:  env.AdminEnvironment{TokenTTLMinutes: env.DefaultAdminTokenTTLMinutes},
		Backup: env.BackupEnvironment{Dir: env.DefaultBackupDir},
	}
}
