package resolver

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Resolution outcomes recorded on asset.resolve.total.
const (
	outcomeHit       = "hit"
	outcomePrimary   = "primary"
	outcomeSecondary = "secondary"
	outcomeMiss      = "miss"
	outcomeInvalid   = "invalid_key"
)

// resolverMetrics holds the otel instruments for the resolver.
type resolverMetrics struct {
	resolveTotal     metric.Int64Counter
	resolveDuration  metric.Float64Histogram
	handlesReleased  metric.Int64Counter
	instantiateTotal metric.Int64Counter
}

func newResolverMetrics(meter metric.Meter) (*resolverMetrics, error) {
	resolveTotal, err := meter.Int64Counter(
		"asset.resolve.total",
		metric.WithDescription("Total number of asset resolutions by outcome"),
		metric.WithUnit("{resolution}"),
	)
	if err != nil {
		return nil, err
	}

	resolveDuration, err := meter.Float64Histogram(
		"asset.resolve.duration_ms",
		metric.WithDescription("Asset resolution duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	handlesReleased, err := meter.Int64Counter(
		"asset.handles.released",
		metric.WithDescription("Total number of provider handles released"),
		metric.WithUnit("{handle}"),
	)
	if err != nil {
		return nil, err
	}

	instantiateTotal, err := meter.Int64Counter(
		"asset.instantiate.total",
		metric.WithDescription("Total number of prefab instantiations by outcome"),
		metric.WithUnit("{instantiation}"),
	)
	if err != nil {
		return nil, err
	}

	return &resolverMetrics{
		resolveTotal:     resolveTotal,
		resolveDuration:  resolveDuration,
		handlesReleased:  handlesReleased,
		instantiateTotal: instantiateTotal,
	}, nil
}

func (m *resolverMetrics) recordResolve(ctx context.Context, outcome string, d time.Duration) {
	opt := metric.WithAttributes(attribute.String("outcome", outcome))
	m.resolveTotal.Add(ctx, 1, opt)
	m.resolveDuration.Record(ctx, float64(d.Nanoseconds())/1e6, opt)
}

func (m *resolverMetrics) recordRelease(ctx context.Context) {
	m.handlesReleased.Add(ctx, 1)
}

func (m *resolverMetrics) recordInstantiate(ctx context.Context, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "absent"
	}
	m.instantiateTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
