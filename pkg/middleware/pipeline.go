package middleware

import (
	"github.com/Matias-sh/mi-portafolio/metal/env"
	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
)

// Pipeline holds the middlewares shared by every route.
type Pipeline struct {
	Env       *env.Environment
	RequestID RequestID
	Metrics   *Metrics
	Tracing   Tracing
	JWT       JWTMiddleware
	Throttle  *Throttle
}

// Chain wraps h so that handlers run in the order given.
func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}

// Public returns the middlewares applied to every public route, labelled
// with route for metrics and traces.
func (m Pipeline) Public(route string) []endpoint.Middleware {
	stack := []endpoint.Middleware{m.RequestID.Handle}

	if m.Metrics != nil {
		stack = append(stack, m.Metrics.For(route))
	}

	return append(stack, m.Tracing.For(route))
}

// Admin is Public plus the bearer-token guard.
func (m Pipeline) Admin(route string) []endpoint.Middleware {
	return append(m.Public(route), m.JWT.Handle)
}
