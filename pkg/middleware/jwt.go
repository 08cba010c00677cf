package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Matias-sh/mi-portafolio/pkg/auth"
	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

type jwtContextKey string

const JWTClaimsKey jwtContextKey = "jwt.claims"

// JWTMiddleware validates Authorization Bearer tokens and injects claims into the request context.
type JWTMiddleware struct {
	Handler auth.JWTHandler
}

func (m JWTMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return endpoint.LogUnauthorisedError(
				"missing or invalid authorization header",
				errors.New("authorization header is not a bearer token"),
			)
		}

		claims, err := m.Handler.Validate(strings.TrimSpace(header[len("bearer "):]))
		if err != nil {
			return endpoint.LogUnauthorisedError("invalid token", err)
		}

		ctx := context.WithValue(r.Context(), JWTClaimsKey, claims)
		ctx = context.WithValue(ctx, portal.AdminUsernameKey, claims.Username)

		return next(w, r.WithContext(ctx))
	}
}

func GetJWTClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(JWTClaimsKey).(*auth.Claims)

	return claims, ok
}
