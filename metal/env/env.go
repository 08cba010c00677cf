package env

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Environment struct {
	App     AppEnvironment     `validate:"required"`
	DB      DBEnvironment      `validate:"required"`
	Logs    LogsEnvironment    `validate:"required"`
	Network NetEnvironment     `validate:"required"`
	Sentry  SentryEnvironment  `validate:"required"`
	Cache   CacheEnvironment   `validate:"required"`
	Mail    MailEnvironment    `validate:"required"`
	Admin   AdminEnvironment   `validate:"required"`
	Backup  BackupEnvironment  `validate:"required"`
	Tracing TracingEnvironment `validate:"required"`
}

// SecretsDir defines where secret files are read from. It can be overridden in
// tests.
var SecretsDir = "/run/secrets"

func GetEnvVar(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// GetEnvVarOr returns fallback when the variable is unset or blank.
func GetEnvVarOr(key, fallback string) string {
	if value := GetEnvVar(key); value != "" {
		return value
	}

	return fallback
}

// GetIntOr parses the variable as an int, returning fallback when it is blank
// or not a number.
func GetIntOr(key string, fallback int) int {
	value := GetEnvVar(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return parsed
}

func GetSecretOrEnv(secretName string, envVarName string) string {
	secretPath := filepath.Join(SecretsDir, secretName)

	content, err := os.ReadFile(secretPath)
	if err == nil {
		return strings.TrimSpace(string(content))
	}

	return GetEnvVar(envVarName)
}
