package resolver

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// instrumentationName identifies this library to telemetry backends.
const instrumentationName = "github.com/jonwraymond/assetops/resolver"

// Option configures a Resolver.
type Option func(*config)

type config struct {
	logger *zap.Logger
	meter  metric.Meter
	tracer trace.Tracer
	scene  Scene
	reload <-chan struct{}
}

func newConfig(opts []Option) config {
	cfg := config{
		logger: zap.NewNop(),
		meter:  otel.GetMeterProvider().Meter(instrumentationName),
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger for degradation warnings. Defaults to a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMeter sets the meter used for resolution metrics. Defaults to the
// global otel meter provider.
func WithMeter(m metric.Meter) Option {
	return func(c *config) {
		if m != nil {
			c.meter = m
		}
	}
}

// WithTracer sets the tracer used for resolution spans. Defaults to the
// global otel tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithScene sets the scene instantiation facility required by
// InstantiatePrefab.
func WithScene(s Scene) Option {
	return func(c *config) {
		c.scene = s
	}
}

// WithReloadSignal wires the resolver to a host reload signal: every value
// received on ch triggers Invalidate. The watching goroutine exits when ch
// is closed.
func WithReloadSignal(ch <-chan struct{}) Option {
	return func(c *config) {
		c.reload = ch
	}
}
