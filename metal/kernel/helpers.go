package kernel

import (
	"log/slog"
	baseHttp "net/http"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/metal/env"
)

func (a *App) SetRouter(router Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	a.logs.Close()
}

func (a *App) CloseDB() {
	if a.db == nil {
		return
	}

	a.db.Close()
}

func (a *App) CloseCache() {
	if a.cache == nil {
		return
	}

	if err := a.cache.Close(); err != nil {
		slog.Error("error closing the cache", "err", err)
	}
}

func (a *App) CloseTracer() {
	if err := a.tracer.Shutdown(); err != nil {
		slog.Error("error shutting down the tracer", "err", err)
	}
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetDB() *database.Connection {
	return a.db
}

func (a *App) GetMux() *baseHttp.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}
