package resolver

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/assetops/provider"
)

// ResolveOptions controls a single resolution.
type ResolveOptions struct {
	// Cache stores the resolved asset (and its provider handle, if any) for
	// subsequent calls with the same key.
	Cache bool

	// Fallback permits consulting the secondary provider when the primary
	// misses.
	Fallback bool
}

// DefaultResolveOptions caches results and allows secondary fallback.
func DefaultResolveOptions() ResolveOptions {
	return ResolveOptions{Cache: true, Fallback: true}
}

// Resolver resolves assets by key against a primary and a secondary
// provider, memoizing results and owning the retained provider handles.
//
// Contract:
// - Concurrency: safe for concurrent use; concurrent misses for the same
//   key and type issue a single primary load.
// - Errors: the public operations never return errors; failures degrade to
//   an absent result plus a warning log.
type Resolver struct {
	primary   provider.Primary
	secondary provider.Secondary
	scene     Scene

	log     *zap.Logger
	tracer  trace.Tracer
	metrics *resolverMetrics

	sf   singleflight.Group
	gens provider.Generations

	mu      sync.Mutex
	entries map[string]entry
}

// entry is one cached resolution. handle is nil for assets that came from
// the secondary provider. gen is the handle generation at acquisition.
type entry struct {
	asset  any
	handle provider.Handle
	gen    uint64
}

// New creates a Resolver. primary is required; secondary may be nil, in
// which case fallback never hits.
func New(primary provider.Primary, secondary provider.Secondary, opts ...Option) (*Resolver, error) {
	if primary == nil {
		return nil, ErrNilPrimary
	}

	cfg := newConfig(opts)
	m, err := newResolverMetrics(cfg.meter)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		primary:   primary,
		secondary: secondary,
		scene:     cfg.scene,
		log:       cfg.logger,
		tracer:    cfg.tracer,
		metrics:   m,
		entries:   make(map[string]entry),
	}

	if cfg.reload != nil {
		go func() {
			for range cfg.reload {
				r.Invalidate()
			}
		}()
	}

	return r, nil
}

// Resolve returns the asset stored under key as a T, consulting the cache,
// then the primary provider, then (if opts.Fallback) the secondary provider.
// It blocks until the primary load settles. The second return is false when
// every source missed; no error is ever surfaced.
func Resolve[T any](ctx context.Context, r *Resolver, key string, opts ResolveOptions) (T, bool) {
	var zero T
	v, ok := r.resolve(ctx, key, reflect.TypeFor[T](), opts)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

func (r *Resolver) resolve(ctx context.Context, key string, typ reflect.Type, opts ResolveOptions) (any, bool) {
	start := time.Now()
	ctx, span := r.tracer.Start(ctx, "resolver.Resolve", trace.WithAttributes(
		attribute.String("asset.key", key),
	))
	defer span.End()

	if err := validateKey(key); err != nil {
		r.log.Warn("asset resolution rejected", zap.String("key", key), zap.Error(err))
		r.metrics.recordResolve(ctx, outcomeInvalid, time.Since(start))
		return nil, false
	}

	if asset, ok := r.cached(key, typ); ok {
		span.SetAttributes(attribute.String("asset.source", outcomeHit))
		r.metrics.recordResolve(ctx, outcomeHit, time.Since(start))
		return asset, true
	}

	if asset, ok := r.loadPrimary(ctx, key, typ, opts.Cache); ok {
		span.SetAttributes(attribute.String("asset.source", outcomePrimary))
		r.metrics.recordResolve(ctx, outcomePrimary, time.Since(start))
		return asset, true
	}

	if opts.Fallback && r.secondary != nil {
		if asset, ok := r.secondary.Load(key, typ); ok {
			if opts.Cache {
				r.store(ctx, key, asset, nil, 0)
			}
			span.SetAttributes(attribute.String("asset.source", outcomeSecondary))
			r.metrics.recordResolve(ctx, outcomeSecondary, time.Since(start))
			return asset, true
		}
	}

	r.log.Warn("asset not found",
		zap.String("key", key),
		zap.Stringer("type", typ),
		zap.Bool("fallback", opts.Fallback))
	r.metrics.recordResolve(ctx, outcomeMiss, time.Since(start))
	return nil, false
}

// cached returns the entry under key if its asset is assignable to typ.
// A present entry of the wrong type is logged and reported as a miss so the
// caller re-resolves; the stale entry is displaced on the next store.
func (r *Resolver) cached(key string, typ reflect.Type) (any, bool) {
	r.mu.Lock()
	e, present := r.entries[key]
	r.mu.Unlock()

	if !present {
		return nil, false
	}
	if !reflect.TypeOf(e.asset).AssignableTo(typ) {
		r.log.Warn("cached asset type mismatch, re-resolving",
			zap.String("key", key),
			zap.Stringer("want", typ),
			zap.String("have", reflect.TypeOf(e.asset).String()))
		return nil, false
	}
	return e.asset, true
}

// loadPrimary performs one blocking primary load. On success the handle is
// either retained in the cache (cache=true) or released before returning.
// Every failure releases the handle and reports a miss.
func (r *Resolver) loadPrimary(ctx context.Context, key string, typ reflect.Type, cache bool) (any, bool) {
	if cache {
		// Collapse concurrent cached loads of the same key and type into
		// one provider request.
		v, err, _ := r.sf.Do(typ.String()+"\x00"+key, func() (any, error) {
			if asset, ok := r.cached(key, typ); ok {
				return asset, nil
			}
			if asset, ok := r.loadPrimaryOnce(ctx, key, typ, true); ok {
				return asset, nil
			}
			return nil, errMiss
		})
		if err != nil {
			return nil, false
		}
		return v, true
	}
	return r.loadPrimaryOnce(ctx, key, typ, false)
}

func (r *Resolver) loadPrimaryOnce(ctx context.Context, key string, typ reflect.Type, cache bool) (any, bool) {
	gen := r.gens.Current()

	h, err := r.primary.Load(ctx, key, typ)
	if err != nil {
		// The request failed to even start. Miss, not fatal.
		r.log.Warn("primary load did not start", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	if err := h.Wait(ctx); err != nil {
		r.log.Warn("primary load failed to settle", zap.String("key", key), zap.Error(err))
		r.release(ctx, h, gen)
		return nil, false
	}

	if h.Status() != provider.StatusSucceeded {
		r.release(ctx, h, gen)
		return nil, false
	}

	asset := h.Result()
	if asset == nil || (typ != nil && !reflect.TypeOf(asset).AssignableTo(typ)) {
		r.release(ctx, h, gen)
		return nil, false
	}

	if cache {
		r.store(ctx, key, asset, h, gen)
	} else {
		r.release(ctx, h, gen)
	}
	return asset, true
}

// store inserts an entry, releasing the handle of any entry it displaces.
func (r *Resolver) store(ctx context.Context, key string, asset any, h provider.Handle, gen uint64) {
	r.mu.Lock()
	old, displaced := r.entries[key]
	r.entries[key] = entry{asset: asset, handle: h, gen: gen}
	r.mu.Unlock()

	if displaced {
		r.release(ctx, old.handle, old.gen)
	}
}

// release frees a handle unless its generation predates the last reload, in
// which case the resources behind it are already gone and it must not be
// touched.
func (r *Resolver) release(ctx context.Context, h provider.Handle, gen uint64) {
	if h == nil || !r.gens.Valid(gen) {
		return
	}
	h.Release()
	r.metrics.recordRelease(ctx)
}

// Len returns the number of cached entries.
func (r *Resolver) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}
