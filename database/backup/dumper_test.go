package backup

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Matias-sh/mi-portafolio/metal/env"
)

type fakeRunner struct {
	mu     sync.Mutex
	calls  []runnerCall
	runErr error
}

type runnerCall struct {
	name string
	args []string
	env  map[string]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string, envVars map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := runnerCall{name: name, args: append([]string(nil), args...), env: map[string]string{}}
	for k, v := range envVars {
		call.env[k] = v
	}

	f.calls = append(f.calls, call)

	return f.runErr
}

func testEnvironment(t *testing.T, cron string) *env.Environment {
	return &env.Environment{
		DB: env.DBEnvironment{
			UserName:     "portfolio",
			UserPassword: "secret",
			DatabaseName: "portfolio",
			Port:         5432,
			Host:         "db",
			SSLMode:      "disable",
		},
		Backup: env.BackupEnvironment{Cron: cron, Dir: t.TempDir()},
	}
}

func TestNewDumperRequiresEnvironment(t *testing.T) {
	if _, err := NewDumper(nil); err == nil {
		t.Fatalf("expected error when environment is nil")
	}
}

func TestDumperRunInvokesPgDump(t *testing.T) {
	e := testEnvironment(t, "")
	runner := &fakeRunner{}
	fixed := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	dumper, err := NewDumper(e, WithCommandRunner(runner), WithNow(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("new dumper: %v", err)
	}

	path, err := dumper.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if filepath.Dir(path) != e.Backup.Dir || !strings.HasPrefix(filepath.Base(path), "backup-20250203T040506Z-") {
		t.Fatalf("unexpected backup path %s", path)
	}

	if len(runner.calls) != 1 || runner.calls[0].name != "pg_dump" {
		t.Fatalf("expected a single pg_dump call, got %+v", runner.calls)
	}

	call := runner.calls[0]

	if call.env["PGPASSWORD"] != "secret" || call.env["PGSSLMODE"] != "disable" {
		t.Fatalf("unexpected env %v", call.env)
	}

	if call.args[len(call.args)-1] != "portfolio" {
		t.Fatalf("database name must be the last argument: %v", call.args)
	}
}

func TestDumperRunPropagatesFailures(t *testing.T) {
	runner := &fakeRunner{runErr: errors.New("pg_dump missing")}

	dumper, _ := NewDumper(testEnvironment(t, ""), WithCommandRunner(runner))

	if _, err := dumper.Run(context.Background()); err == nil {
		t.Fatalf("expected run error")
	}
}

func TestNewSchedulerRequiresCron(t *testing.T) {
	dumper, _ := NewDumper(testEnvironment(t, ""), WithCommandRunner(&fakeRunner{}))

	if _, err := NewScheduler(dumper); err == nil {
		t.Fatalf("expected error for disabled backups")
	}

	if _, err := NewScheduler(nil); err == nil {
		t.Fatalf("expected error for nil dumper")
	}
}

func TestSchedulerRunsDumper(t *testing.T) {
	runner := &fakeRunner{}
	dumper, _ := NewDumper(testEnvironment(t, "0 3 * * *"), WithCommandRunner(runner))

	s, err := NewScheduler(dumper)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected one dump, got %d", len(runner.calls))
	}
}

func TestFlattenEnv(t *testing.T) {
	if flattenEnv(nil) != nil {
		t.Fatalf("expected nil for empty env")
	}

	got := flattenEnv(map[string]string{"B": "2", "A": "1"})
	if len(got) != 2 || got[0] != "A=1" || got[1] != "B=2" {
		t.Fatalf("unexpected flattened env %v", got)
	}
}
