package kernel

import (
	"fmt"
	"log"
	"log/slog"
	"strconv"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/metal/env"
	"github.com/Matias-sh/mi-portafolio/pkg/auth"
	"github.com/Matias-sh/mi-portafolio/pkg/cache"
	"github.com/Matias-sh/mi-portafolio/pkg/llogs"
	"github.com/Matias-sh/mi-portafolio/pkg/mailer"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
)

// MakeSentry returns nil when no DSN is configured.
func MakeSentry(env *env.Environment) *portal.Sentry {
	if !env.Sentry.IsEnabled() {
		return nil
	}

	cOptions := sentry.ClientOptions{
		Dsn:         env.Sentry.DSN,
		Environment: env.App.Type,
		Debug:       !env.App.IsProduction(),
	}

	if err := sentry.Init(cOptions); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	options := sentryhttp.Options{Repanic: true}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
	}
}

func MakeDbConnection(env *env.Environment) *database.Connection {
	dbConn, err := database.MakeConnection(env)

	if err != nil {
		panic("Sql: error connecting to PostgresSQL: " + err.Error())
	}

	return dbConn
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

// MakeCache picks Redis when a URL is configured and the in-process store
// otherwise.
func MakeCache(env *env.Environment) (cache.Store, error) {
	if !env.Cache.UsesRedis() {
		return cache.NewMemoryStore(env.Cache.TTL()), nil
	}

	store, err := cache.NewRedisStore(env.Cache.RedisURL, env.Cache.Prefix, env.Cache.TTL())
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}

	return store, nil
}

// MakeNotifier falls back to logging the message when no mail API is set.
func MakeNotifier(env *env.Environment) mailer.Notifier {
	if !env.Mail.IsConfigured() {
		slog.Info("mail api is not configured, contact messages will only be logged")

		return mailer.LogNotifier{Logger: slog.Default()}
	}

	notifier, err := mailer.NewResendNotifier(env.Mail, portal.NewDefaultClient(nil))
	if err != nil {
		slog.Error("could not create the mail notifier, falling back to logs", "err", err)

		return mailer.LogNotifier{Logger: slog.Default()}
	}

	return notifier
}

func MakeJWT(env *env.Environment) (auth.JWTHandler, error) {
	return auth.MakeJWTHandler([]byte(env.App.MasterKey), env.Admin.TokenTTL())
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	port, err := strconv.Atoi(env.GetEnvVar("ENV_DB_PORT"))
	if err != nil {
		panic(errorSuffix + "invalid value for ENV_DB_PORT: " + err.Error())
	}

	app := env.AppEnvironment{
		Name:      env.GetEnvVar("ENV_APP_NAME"),
		URL:       env.GetEnvVar("ENV_APP_URL"),
		Type:      env.GetEnvVar("ENV_APP_ENV_TYPE"),
		MasterKey: env.GetEnvVar("ENV_APP_MASTER_KEY"),
	}

	db := env.DBEnvironment{
		UserName:     env.GetSecretOrEnv("pg_username", "ENV_DB_USER_NAME"),
		UserPassword: env.GetSecretOrEnv("pg_password", "ENV_DB_USER_PASSWORD"),
		DatabaseName: env.GetSecretOrEnv("pg_dbname", "ENV_DB_DATABASE_NAME"),
		Port:         port,
		Host:         env.GetEnvVar("ENV_DB_HOST"),
		DriverName:   database.DriverName,
		SSLMode:      env.GetEnvVar("ENV_DB_SSL_MODE"),
		TimeZone:     env.GetEnvVar("ENV_DB_TIMEZONE"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost: env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort: env.GetEnvVar("ENV_HTTP_PORT"),

		TrustedProxies: portal.SplitCommaList(env.GetEnvVar("ENV_HTTP_TRUSTED_PROXIES")),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
		CSP: env.GetEnvVar("ENV_SENTRY_CSP"),
	}

	cacheEnv := env.CacheEnvironment{
		RedisURL:   env.GetEnvVar("ENV_CACHE_REDIS_URL"),
		Prefix:     env.GetEnvVarOr("ENV_CACHE_PREFIX", env.DefaultCachePrefix),
		TTLSeconds: env.GetIntOr("ENV_CACHE_TTL_SECONDS", env.DefaultCacheTTLSeconds),
	}

	mailEnv := env.MailEnvironment{
		ApiURL: env.GetEnvVar("ENV_MAIL_API_URL"),
		ApiKey: env.GetSecretOrEnv("mail_api_key", "ENV_MAIL_API_KEY"),
		From:   env.GetEnvVar("ENV_MAIL_FROM"),
		To:     env.GetEnvVar("ENV_MAIL_TO"),
	}

	adminEnv := env.AdminEnvironment{
		TokenTTLMinutes: env.GetIntOr("ENV_ADMIN_TOKEN_TTL_MINUTES", env.DefaultAdminTokenTTLMinutes),
	}

	backupEnv := env.BackupEnvironment{
		Cron: env.GetEnvVar("ENV_DB_BACKUP_CRON"),
		Dir:  env.GetEnvVarOr("ENV_DB_BACKUP_DIR", env.DefaultBackupDir),
	}

	tracingEnv := env.NewTracingEnvironment()

	sections := []struct {
		name  string
		model any
	}{
		{"APP", app},
		{"Sql", db},
		{"logs", logsEnv},
		{"NETWORK", netEnv},
		{"SENTRY", sentryEnv},
		{"CACHE", cacheEnv},
		{"MAIL", mailEnv},
		{"ADMIN", adminEnv},
		{"BACKUP", backupEnv},
		{"TRACING", tracingEnv},
	}

	for _, section := range sections {
		if _, err := validate.Rejects(section.model); err != nil {
			panic(errorSuffix + "invalid [" + section.name + "] model: " + validate.GetErrorsAsJson())
		}
	}

	portfolio := &env.Environment{
		App:     app,
		DB:      db,
		Logs:    logsEnv,
		Network: netEnv,
		Sentry:  sentryEnv,
		Cache:   cacheEnv,
		Mail:    mailEnv,
		Admin:   adminEnv,
		Backup:  backupEnv,
		Tracing: tracingEnv,
	}

	if _, err := validate.Rejects(portfolio); err != nil {
		panic(errorSuffix + "invalid [portfolio] model: " + validate.GetErrorsAsJson())
	}

	return portfolio
}
