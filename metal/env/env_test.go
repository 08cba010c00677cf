package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetSecretOrEnvPrefersSecretFile(t *testing.T) {
	dir := t.TempDir()
	old := SecretsDir
	SecretsDir = dir
	t.Cleanup(func() { SecretsDir = old })

	t.Setenv("ENV_DB_USER_NAME", "from-env")

	if got := GetSecretOrEnv("pg_username", "ENV_DB_USER_NAME"); got != "from-env" {
		t.Fatalf("expected env fallback, got %q", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "pg_username"), []byte(" from-secret \n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	if got := GetSecretOrEnv("pg_username", "ENV_DB_USER_NAME"); got != "from-secret" {
		t.Fatalf("expected secret value, got %q", got)
	}
}

func TestGetIntOr(t *testing.T) {
	t.Setenv("ENV_CACHE_TTL_SECONDS", "")
	if got := GetIntOr("ENV_CACHE_TTL_SECONDS", 300); got != 300 {
		t.Fatalf("expected fallback, got %d", got)
	}

	t.Setenv("ENV_CACHE_TTL_SECONDS", "abc")
	if got := GetIntOr("ENV_CACHE_TTL_SECONDS", 300); got != 300 {
		t.Fatalf("expected fallback on bad int, got %d", got)
	}

	t.Setenv("ENV_CACHE_TTL_SECONDS", "60")
	if got := GetIntOr("ENV_CACHE_TTL_SECONDS", 300); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestDBEnvironmentDSN(t *testing.T) {
	e := DBEnvironment{
		UserName:     "usr",
		UserPassword: "secret",
		DatabaseName: "portfolio",
		Port:         5432,
		Host:         "localhost",
		SSLMode:      "disable",
		TimeZone:     "UTC",
	}

	want := "host=localhost user=usr password=secret dbname=portfolio port=5432 sslmode=disable TimeZone=UTC"
	if got := e.GetDSN(); got != want {
		t.Fatalf("unexpected dsn %q", got)
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	app := AppEnvironment{Type: AppProduction}
	if !app.IsProduction() || app.IsLocal() || app.AllowsTruncate() {
		t.Fatalf("unexpected env type helpers")
	}

	if !(AppEnvironment{Type: AppStaging}).AllowsTruncate() {
		t.Fatalf("staging data may be reseeded")
	}

	if (CacheEnvironment{}).UsesRedis() {
		t.Fatalf("blank redis url must select the memory store")
	}

	if (CacheEnvironment{TTLSeconds: 300}).TTL() != 5*time.Minute {
		t.Fatalf("unexpected ttl")
	}

	if (MailEnvironment{}).IsConfigured() {
		t.Fatalf("blank api key must not be configured")
	}

	if (AdminEnvironment{TokenTTLMinutes: 60}).TokenTTL() != time.Hour {
		t.Fatalf("unexpected token ttl")
	}

	if (BackupEnvironment{}).IsEnabled() {
		t.Fatalf("blank cron must disable backups")
	}
}

func TestNewTracingEnvironmentDefaultsEndpoint(t *testing.T) {
	t.Setenv("ENV_TRACING_ENABLED", "true")
	t.Setenv("ENV_TRACING_OTLP_ENDPOINT", "")

	tracing := NewTracingEnvironment()
	if !tracing.Enabled || tracing.Endpoint != DefaultTracingEndpoint {
		t.Fatalf("unexpected tracing env %+v", tracing)
	}
}
