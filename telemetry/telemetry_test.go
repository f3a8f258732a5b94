package telemetry

import (
	"context"
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "missing service name",
			cfg:     Config{},
			wantErr: ErrMissingServiceName,
		},
		{
			name: "valid minimal",
			cfg:  Config{ServiceName: "asset-pipeline"},
		},
		{
			name: "unknown tracing exporter",
			cfg: Config{
				ServiceName: "asset-pipeline",
				Tracing:     TracingConfig{Enabled: true, Exporter: "carrier-pigeon"},
			},
			wantErr: ErrInvalidExporter,
		},
		{
			name: "sample pct out of range",
			cfg: Config{
				ServiceName: "asset-pipeline",
				Tracing:     TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.5},
			},
			wantErr: ErrInvalidSamplePct,
		},
		{
			name: "unknown metrics exporter",
			cfg: Config{
				ServiceName: "asset-pipeline",
				Metrics:     MetricsConfig{Enabled: true, Exporter: "csv"},
			},
			wantErr: ErrInvalidExporter,
		},
		{
			name: "prometheus metrics",
			cfg: Config{
				ServiceName: "asset-pipeline",
				Metrics:     MetricsConfig{Enabled: true, Exporter: "prometheus"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetup_DisabledIsNoop(t *testing.T) {
	tel, err := Setup(context.Background(), Config{ServiceName: "asset-pipeline"})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if tel.Tracer() == nil {
		t.Error("Tracer() should not be nil when tracing is disabled")
	}
	if tel.Meter() == nil {
		t.Error("Meter() should not be nil when metrics are disabled")
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown of noop telemetry failed: %v", err)
	}
}

func TestSetup_NoneExporters(t *testing.T) {
	ctx := context.Background()
	tel, err := Setup(ctx, Config{
		ServiceName: "asset-pipeline",
		Version:     "1.2.3",
		Tracing:     TracingConfig{Enabled: true, Exporter: "none", SamplePct: 1.0},
		Metrics:     MetricsConfig{Enabled: true, Exporter: "none"},
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	// Record something through each to exercise the pipeline.
	_, span := tel.Tracer().Start(ctx, "test-span")
	span.End()

	counter, err := tel.Meter().Int64Counter("test.counter")
	if err != nil {
		t.Fatalf("Int64Counter failed: %v", err)
	}
	counter.Add(ctx, 1)

	if err := tel.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
	// Shutdown must be idempotent.
	if err := tel.Shutdown(ctx); err != nil {
		t.Errorf("second Shutdown failed: %v", err)
	}
}

func TestSetup_InvalidConfig(t *testing.T) {
	if _, err := Setup(context.Background(), Config{}); !errors.Is(err, ErrMissingServiceName) {
		t.Errorf("Setup with empty config error = %v, want ErrMissingServiceName", err)
	}
}

func TestSetup_OTLPWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	_, err := Setup(context.Background(), Config{
		ServiceName: "asset-pipeline",
		Tracing:     TracingConfig{Enabled: true, Exporter: "otlp"},
	})
	if !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("Setup error = %v, want ErrEndpointNotConfigured", err)
	}
}
