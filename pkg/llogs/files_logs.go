package llogs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Matias-sh/mi-portafolio/metal/env"
)

type Driver interface {
	Close() bool
	Logger() *slog.Logger
}

type FilesLogs struct {
	path   string
	file   *os.File
	logger *slog.Logger
	env    *env.Environment
}

// MakeFilesLogs opens (or creates) today's log file and installs it as the
// default slog logger.
func MakeFilesLogs(env *env.Environment) (Driver, error) {
	manager := FilesLogs{env: env}
	manager.path = manager.DefaultPath()

	if err := os.MkdirAll(filepath.Dir(manager.path), 0o755); err != nil {
		return FilesLogs{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	resource, err := os.OpenFile(manager.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return FilesLogs{}, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(resource, &slog.HandlerOptions{
		Level: ParseLevel(env.Logs.Level),
	}))

	slog.SetDefault(logger)

	manager.file = resource
	manager.logger = logger

	return manager, nil
}

func (manager FilesLogs) DefaultPath() string {
	logs := manager.env.Logs

	return fmt.Sprintf(logs.Dir, time.Now().UTC().Format(logs.DateFormat))
}

func (manager FilesLogs) Logger() *slog.Logger {
	return manager.logger
}

func (manager FilesLogs) Close() bool {
	if manager.file == nil {
		return true
	}

	if err := manager.file.Close(); err != nil {
		slog.Error("error closing logs file", "path", manager.path, "err", err)

		return false
	}

	return true
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}
