package portal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Matias-sh/mi-portafolio/metal/env"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const ServiceVersion = "1.0.0"

type TracerProvider struct {
	Provider *sdktrace.TracerProvider
}

// NewTracerProvider installs a global OTLP/HTTP tracer provider. When tracing
// is disabled it returns a provider whose Shutdown is a no-op and the global
// no-op tracer stays in place.
func NewTracerProvider(environment *env.Environment) (*TracerProvider, error) {
	if !environment.Tracing.Enabled {
		slog.Info("opentelemetry tracing is disabled")

		return &TracerProvider{}, nil
	}

	ctx := context.Background()

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpointHost(environment.Tracing.Endpoint)),
	}

	if !environment.App.IsProduction() {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", environment.App.Name),
			attribute.String("service.version", ServiceVersion),
			attribute.String("deployment.environment", environment.App.Type),
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	slog.Info("opentelemetry tracing initialised", "endpoint", environment.Tracing.Endpoint)

	return &TracerProvider{Provider: tp}, nil
}

func (tp *TracerProvider) Shutdown() error {
	if tp == nil || tp.Provider == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tp.Provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}

	return nil
}

// endpointHost turns "http://localhost:4318" into "localhost:4318".
func endpointHost(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")

	return strings.TrimPrefix(endpoint, "https://")
}
