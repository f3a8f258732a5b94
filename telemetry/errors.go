package telemetry

import "errors"

// Configuration errors.
var (
	// ErrMissingServiceName indicates Config.ServiceName is empty.
	ErrMissingServiceName = errors.New("telemetry: service name is required")

	// ErrInvalidExporter indicates an unknown exporter name.
	ErrInvalidExporter = errors.New("telemetry: invalid exporter")

	// ErrInvalidSamplePct indicates Tracing.SamplePct is outside [0.0, 1.0].
	ErrInvalidSamplePct = errors.New("telemetry: sample percentage must be between 0.0 and 1.0")

	// ErrEndpointNotConfigured indicates the OTLP endpoint environment
	// variables are unset.
	ErrEndpointNotConfigured = errors.New("telemetry: OTLP endpoint not configured")
)
