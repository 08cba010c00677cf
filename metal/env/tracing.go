package env

import "log/slog"

const DefaultTracingEndpoint = "http://localhost:4318"

// TracingEnvironment holds configuration for OpenTelemetry tracing
type TracingEnvironment struct {
	Enabled  bool
	Endpoint string `validate:"omitempty,required_if=Enabled true,url"`
}

func NewTracingEnvironment() TracingEnvironment {
	enabled := NewTruthy(GetEnvVar("ENV_TRACING_ENABLED"))
	endpoint := GetEnvVar("ENV_TRACING_OTLP_ENDPOINT")

	if enabled && endpoint == "" {
		endpoint = DefaultTracingEndpoint
		slog.Warn("tracing enabled but ENV_TRACING_OTLP_ENDPOINT not set, using default", "endpoint", endpoint)
	}

	return TracingEnvironment{
		Enabled:  enabled,
		Endpoint: endpoint,
	}
}

func NewTruthy(value string) bool {
	switch value {
	case "1", "true", "TRUE", "True", "yes":
		return true
	}

	return false
}
