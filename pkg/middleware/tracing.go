package middleware

import (
	"net/http"

	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Matias-sh/mi-portafolio"

// Tracing opens one server span per request using the global tracer provider.
type Tracing struct{}

func (Tracing) For(route string) endpoint.Middleware {
	return func(next endpoint.ApiHandler) endpoint.ApiHandler {
		return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			ctx, span := otel.Tracer(tracerName).Start(
				ctx,
				r.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.route", route),
				),
			)
			defer span.End()

			apiErr := next(w, r.WithContext(ctx))

			if apiErr != nil {
				span.SetAttributes(attribute.Int("http.status_code", apiErr.Status))

				if apiErr.Status >= http.StatusInternalServerError {
					span.SetStatus(codes.Error, apiErr.Message)
				}
			}

			return apiErr
		}
	}
}
