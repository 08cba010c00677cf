package middleware

import (
	"net/http"
	"time"

	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"github.com/Matias-sh/mi-portafolio/pkg/limiter"
	"github.com/Matias-sh/mi-portafolio/pkg/portal"
)

const ContactWindow = 10 * time.Minute
const ContactMaxPerWindow = 10

// Throttle caps how many requests one client IP may send per window.
type Throttle struct {
	limiter  *limiter.MemoryLimiter
	ClientIP *portal.ClientIPResolver
}

func NewThrottle(window time.Duration, max int) *Throttle {
	return &Throttle{limiter: limiter.NewMemoryLimiter(window, max)}
}

func NewContactThrottle() *Throttle {
	return NewThrottle(ContactWindow, ContactMaxPerWindow)
}

func (t *Throttle) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		if t == nil || t.limiter == nil {
			return next(w, r)
		}

		if !t.limiter.Allow(r.Method + "|" + r.URL.Path + "|" + t.ClientIP.Resolve(r)) {
			w.Header().Set("Retry-After", "600")

			return endpoint.TooManyRequests("please try again later")
		}

		return next(w, r)
	}
}
