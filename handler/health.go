package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository"
	"github.com/Matias-sh/mi-portafolio/handler/payload"
	"github.com/Matias-sh/mi-portafolio/pkg/cache"
	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
)

const (
	healthCacheKey = "health_check"
	healthCacheTTL = 30 * time.Second
	healthTimeout  = 5 * time.Second
)

type HealthHandler struct {
	DB       *database.Connection
	Cache    cache.Store
	Profiles *repository.Profiles
	Skills   *repository.Skills
	Projects *repository.Projects
	now      func() time.Time
}

func NewHealthHandler(db *database.Connection, store cache.Store) HealthHandler {
	return HealthHandler{
		DB:       db,
		Cache:    store,
		Profiles: &repository.Profiles{DB: db},
		Skills:   &repository.Skills{DB: db},
		Projects: &repository.Projects{DB: db},
		now:      time.Now,
	}
}

func (h HealthHandler) timestamp() float64 {
	now := time.Now
	if h.now != nil {
		now = h.now
	}

	return float64(now().UnixNano()) / float64(time.Second)
}

// Handle runs the three independent sub-checks. Any failing check degrades
// the report to 503; a panic while aggregating reports unhealthy.
func (h HealthHandler) Handle(w http.ResponseWriter, r *http.Request) (apiErr *endpoint.ApiError) {
	resp := endpoint.NewNoCacheResponse(w, r)

	defer func() {
		if recovered := recover(); recovered != nil {
			slog.Error("health check aggregation failed", "panic", recovered)

			data := payload.UnhealthyResponse{
				Status:    payload.StatusUnhealthy,
				Error:     fmt.Sprint(recovered),
				Timestamp: h.timestamp(),
			}

			if err := resp.Respond(http.StatusServiceUnavailable, data); err != nil {
				slog.Error("failed to encode health response", "err", err)
			}

			apiErr = nil
		}
	}()

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	report := payload.HealthResponse{
		Status:    payload.StatusHealthy,
		Timestamp: h.timestamp(),
		Version:   payload.HealthVersion,
		Checks: payload.HealthChecks{
			Database: h.checkDatabase(ctx),
			Cache:    h.checkCache(ctx),
			Models:   h.checkModels(),
		},
	}

	checks := report.Checks
	if checks.Database.Status != payload.StatusHealthy ||
		checks.Cache.Status != payload.StatusHealthy ||
		checks.Models.Status != payload.StatusHealthy {
		report.Status = payload.StatusDegraded
	}

	status := http.StatusOK
	if report.Status != payload.StatusHealthy {
		status = http.StatusServiceUnavailable
	}

	if err := resp.Respond(status, report); err != nil {
		slog.Error("failed to encode health response", "err", err)
	}

	return nil
}

func (h HealthHandler) checkDatabase(ctx context.Context) payload.CheckResult {
	if err := h.DB.Sql().WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		slog.Warn("health: database check failed", "err", err)

		return payload.CheckResult{Status: payload.StatusUnhealthy, Error: err.Error()}
	}

	return payload.CheckResult{Status: payload.StatusHealthy}
}

func (h HealthHandler) checkCache(ctx context.Context) payload.CheckResult {
	if h.Cache == nil {
		return payload.CheckResult{Status: payload.StatusUnhealthy, Error: "cache is not configured"}
	}

	if err := h.Cache.Set(ctx, healthCacheKey, "ok", healthCacheTTL); err != nil {
		slog.Warn("health: cache set failed", "err", err)

		return payload.CheckResult{Status: payload.StatusUnhealthy, Error: err.Error()}
	}

	value, err := h.Cache.Get(ctx, healthCacheKey)
	if err != nil {
		slog.Warn("health: cache get failed", "err", err)

		return payload.CheckResult{Status: payload.StatusUnhealthy, Error: err.Error()}
	}

	if value != "ok" {
		return payload.CheckResult{Status: payload.StatusUnhealthy, Error: "Cache value mismatch"}
	}

	return payload.CheckResult{Status: payload.StatusHealthy}
}

func (h HealthHandler) checkModels() payload.ModelsCheck {
	profiles, err := h.Profiles.Count()
	if err != nil {
		return modelsFailure(err)
	}

	skills, err := h.Skills.Count()
	if err != nil {
		return modelsFailure(err)
	}

	projects, err := h.Projects.Count()
	if err != nil {
		return modelsFailure(err)
	}

	return payload.ModelsCheck{
		Profiles: &profiles,
		Skills:   &skills,
		Projects: &projects,
		Status:   payload.StatusHealthy,
	}
}

func modelsFailure(err error) payload.ModelsCheck {
	slog.Warn("health: models check failed", "err", err)

	return payload.ModelsCheck{Status: payload.StatusUnhealthy, Error: err.Error()}
}
