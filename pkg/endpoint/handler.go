package endpoint

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
)

// NewApiHandler adapts an ApiHandler to net/http. Returned errors are rendered
// with the uniform {"error","status","data"} envelope and reported to Sentry.
func NewApiHandler(fn ApiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiErr := fn(w, r)

		if apiErr == nil {
			return
		}

		if apiErr.Status >= http.StatusInternalServerError {
			slog.Error("api error", "message", apiErr.Message, "status", apiErr.Status, "path", r.URL.Path)
		} else {
			slog.Warn("api error", "message", apiErr.Message, "status", apiErr.Status, "path", r.URL.Path)
		}

		captureApiError(r, apiErr)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(apiErr.Status)

		resp := ErrorResponse{
			Error:  apiErr.Message,
			Status: apiErr.Status,
			Data:   apiErr.Data,
		}

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("could not encode error response", "error", err)
		}
	}
}

func captureApiError(r *http.Request, apiErr *ApiError) {
	if apiErr == nil {
		return
	}

	errToCapture := error(apiErr)
	if apiErr.Err != nil {
		errToCapture = apiErr.Err
	}

	notify := func(hub *sentry.Hub) {
		hub.WithScope(func(scope *sentry.Scope) {
			NewScopeApiError(scope, r, apiErr).Enrich()

			scope.SetLevel(getSentryLevel(apiErr.Status))

			hub.CaptureException(errToCapture)
		})
	}

	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		notify(hub)
		return
	}

	notify(sentry.CurrentHub())
}

// getSentryLevel keeps expected client errors out of the alerting path.
func getSentryLevel(status int) sentry.Level {
	switch status {
	case http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusConflict,
		http.StatusUnprocessableEntity,
		http.StatusTooManyRequests:
		return sentry.LevelInfo
	default:
		return sentry.LevelError
	}
}
