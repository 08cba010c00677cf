package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
	"github.com/google/uuid"
)

// RequestID echoes a caller supplied X-Request-ID or mints a new one, and
// stores it in the request context.
type RequestID struct{}

func (RequestID) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		id := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		w.Header().Set(portal.RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), portal.RequestIDKey, id)

		return next(w, r.WithContext(ctx))
	}
}
