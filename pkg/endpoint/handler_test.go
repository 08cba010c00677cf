package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Matias-sh/mi-portafolio/pkg/portal"
	"github.com/getsentry/sentry-go"
)

func TestNewApiHandlerWritesErrorEnvelope(t *testing.T) {
	h := NewApiHandler(func(w http.ResponseWriter, r *http.Request) *ApiError {
		return UnprocessableEntity("invalid payload", map[string]any{"email": "required"})
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/api/contact/", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", rec.Code)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Error == "" || resp.Status != http.StatusUnprocessableEntity {
		t.Fatalf("invalid response: %+v", resp)
	}

	if resp.Data["email"] != "required" {
		t.Fatalf("expected field errors in data, got %+v", resp.Data)
	}
}

func TestNewApiHandlerPassThroughOnSuccess(t *testing.T) {
	h := NewApiHandler(func(w http.ResponseWriter, r *http.Request) *ApiError {
		w.WriteHeader(http.StatusNoContent)
		return nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d", rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestApiErrorUnwrap(t *testing.T) {
	root := errors.New("root")
	apiErr := LogInternalError("boom", fmt.Errorf("layer: %w", root))

	if !errors.Is(apiErr, root) {
		t.Fatalf("expected api error to unwrap to root cause")
	}

	var nilErr *ApiError
	if nilErr.Error() != "Internal Server Error" {
		t.Fatalf("unexpected nil message %q", nilErr.Error())
	}
}

func TestScopeApiErrorRequestID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(portal.RequestIDHeader, "header-id")

	scopeApiError := &ScopeApiError{request: req}

	if got := scopeApiError.RequestID(); got != "header-id" {
		t.Fatalf("expected header request id, got %s", got)
	}

	scopeApiError.request = req.WithContext(context.WithValue(req.Context(), portal.RequestIDKey, "context-id"))

	if got := scopeApiError.RequestID(); got != "context-id" {
		t.Fatalf("expected context request id, got %s", got)
	}
}

func TestScopeApiErrorChain(t *testing.T) {
	root := errors.New("root")
	wrapped := fmt.Errorf("layer: %w", root)

	chain := (&ScopeApiError{}).errorChain(wrapped)

	if len(chain) != 2 || chain[0] != wrapped.Error() || chain[1] != root.Error() {
		t.Fatalf("unexpected error chain: %#v", chain)
	}
}

func TestGetSentryLevel(t *testing.T) {
	cases := map[int]sentry.Level{
		http.StatusNotFound:            sentry.LevelInfo,
		http.StatusConflict:            sentry.LevelInfo,
		http.StatusTooManyRequests:     sentry.LevelInfo,
		http.StatusInternalServerError: sentry.LevelError,
		http.StatusServiceUnavailable:  sentry.LevelError,
	}

	for status, want := range cases {
		if got := getSentryLevel(status); got != want {
			t.Fatalf("status %d: expected %s got %s", status, want, got)
		}
	}
}
