package main

import (
	"context"
	"log/slog"
	baseHttp "net/http"
	"time"

	_ "github.com/lib/pq"

	"github.com/Matias-sh/mi-portafolio/database/backup"
	"github.com/Matias-sh/mi-portafolio/metal/kernel"
	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("failed to load the environment: " + err.Error())
	}

	application, err := kernel.MakeApp(secrets, validate)
	if err != nil {
		panic("failed to make the application: " + err.Error())
	}

	app = application
}

func main() {
	defer app.CloseDB()
	defer app.CloseLogs()
	defer app.CloseCache()
	defer app.CloseTracer()

	app.Boot()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startBackups(ctx)

	addr := app.GetEnv().Network.GetHostURL()

	server := &baseHttp.Server{
		Addr:              addr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("Error starting server", "error", err)
		panic("Error starting server." + err.Error())
	}
}

func startBackups(ctx context.Context) {
	if !app.GetEnv().Backup.IsEnabled() {
		return
	}

	dumper, err := backup.NewDumper(app.GetEnv())
	if err != nil {
		slog.Error("backups disabled", "error", err)
		return
	}

	schedule, err := backup.NewScheduler(dumper)
	if err != nil {
		slog.Error("backups disabled", "error", err)
		return
	}

	if err := schedule.Start(ctx); err != nil {
		slog.Error("backups disabled", "error", err)
		return
	}

	slog.Info("database backups scheduled", "next", schedule.Next())
}
