package backup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/Matias-sh/mi-portafolio/metal/env"
	"github.com/Matias-sh/mi-portafolio/pkg/scheduler"
	"github.com/google/uuid"
)

// CommandRunner abstracts exec.CommandContext so dumps can be tested without
// a pg_dump binary.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, env map[string]string) error
}

type ExecRunner struct{}

// Run includes the process output in the returned error when the command
// fails.
func (ExecRunner) Run(ctx context.Context, name string, args []string, envVars map[string]string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), flattenEnv(envVars)...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, string(output))
	}

	return nil
}

// Dumper writes one pg_dump file per run into the backup directory.
type Dumper struct {
	env    *env.Environment
	runner CommandRunner
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Dumper)

func WithCommandRunner(runner CommandRunner) Option {
	return func(d *Dumper) {
		if runner != nil {
			d.runner = runner
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dumper) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithNow fixes the timestamp used in file names.
func WithNow(now func() time.Time) Option {
	return func(d *Dumper) {
		if now != nil {
			d.now = now
		}
	}
}

func NewDumper(environment *env.Environment, opts ...Option) (*Dumper, error) {
	if environment == nil {
		return nil, errors.New("environment cannot be nil")
	}

	d := &Dumper{
		env:    environment,
		runner: ExecRunner{},
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Run dumps the database and returns the path of the new file.
func (d *Dumper) Run(ctx context.Context) (string, error) {
	backupDir := d.env.Backup.Dir
	if backupDir == "" {
		backupDir = env.DefaultBackupDir
	}

	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	timestamp := d.now().UTC().Format("20060102T150405Z")
	fileName := fmt.Sprintf("backup-%s-%s.sql", timestamp, uuid.NewString()[:8])
	filePath := filepath.Join(backupDir, fileName)

	args := []string{
		"--host", d.env.DB.Host,
		"--port", strconv.Itoa(d.env.DB.Port),
		"--username", d.env.DB.UserName,
		"--file", filePath,
		"--no-owner",
		"--no-privileges",
		d.env.DB.DatabaseName,
	}

	envVars := map[string]string{
		"PGPASSWORD": d.env.DB.UserPassword,
		"PGSSLMODE":  d.env.DB.SSLMode,
	}

	if err := d.runner.Run(ctx, "pg_dump", args, envVars); err != nil {
		return "", err
	}

	d.logger.Info("database backup created", "path", filePath)

	return filePath, nil
}

// NewScheduler runs the dumper on the configured backup cron expression.
func NewScheduler(dumper *Dumper, opts ...scheduler.Option) (*scheduler.Scheduler, error) {
	if dumper == nil {
		return nil, errors.New("dumper cannot be nil")
	}

	if !dumper.env.Backup.IsEnabled() {
		return nil, errors.New("backup cron is not configured")
	}

	job := func(ctx context.Context) error {
		_, err := dumper.Run(ctx)

		return err
	}

	opts = append([]scheduler.Option{
		scheduler.WithName("database-backup"),
		scheduler.WithLogger(dumper.logger),
		scheduler.WithJobTimeout(5 * time.Minute),
	}, opts...)

	return scheduler.New(dumper.env.Backup.Cron, job, opts...)
}

func flattenEnv(envVars map[string]string) []string {
	if len(envVars) == 0 {
		return nil
	}

	values := make([]string, 0, len(envVars))
	for key, value := range envVars {
		values = append(values, fmt.Sprintf("%s=%s", key, value))
	}

	sort.Strings(values)

	return values
}
