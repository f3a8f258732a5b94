package resolver

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/jonwraymond/assetops/provider"
)

// Object is a node in the host scene graph. Naming is a post-instantiation
// mutation.
type Object interface {
	Name() string
	SetName(name string)
}

// Scene creates scene objects from prefab assets.
//
// Contract:
// - Instantiate creates a new object from prefab as a child of parent;
//   parent may be nil for a root object.
// - A prefab the scene cannot instantiate is reported as an error, never a
//   panic.
type Scene interface {
	Instantiate(prefab any, parent Object) (Object, error)
}

// InstantiateOptions controls a single prefab instantiation.
type InstantiateOptions struct {
	// Name is assigned to the new object when non-empty.
	Name string

	// Parent is the scene-graph parent for the new object; nil means root.
	Parent Object

	// Fallback permits consulting the secondary provider when the primary
	// misses.
	Fallback bool
}

// InstantiatePrefab loads the prefab under key and instantiates it into the
// scene. It always performs a fresh primary load, never consulting or
// populating the cache; the asset handle is released once the instance
// exists. Ownership of the instance passes entirely to the caller: the
// resolver never tracks or releases instantiated objects.
//
// Returns (nil, false) with a logged warning when both providers miss or
// the scene rejects the prefab.
func (r *Resolver) InstantiatePrefab(ctx context.Context, key string, opts InstantiateOptions) (Object, bool) {
	ctx, span := r.tracer.Start(ctx, "resolver.InstantiatePrefab", trace.WithAttributes(
		attribute.String("asset.key", key),
	))
	defer span.End()

	ok := false
	defer func() {
		r.metrics.recordInstantiate(ctx, ok)
	}()

	if err := validateKey(key); err != nil {
		r.log.Warn("prefab instantiation rejected", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if r.scene == nil {
		r.log.Warn("prefab instantiation rejected", zap.String("key", key), zap.Error(ErrNoScene))
		return nil, false
	}

	if obj, done := r.instantiatePrimary(ctx, key, opts); done {
		ok = obj != nil
		return obj, ok
	}

	if opts.Fallback && r.secondary != nil {
		if prefab, found := r.secondary.Load(key, nil); found {
			obj := r.instantiate(ctx, key, prefab, opts)
			ok = obj != nil
			return obj, ok
		}
	}

	r.log.Warn("prefab not found",
		zap.String("key", key),
		zap.Bool("fallback", opts.Fallback))
	return nil, false
}

// instantiatePrimary performs the fresh primary load. done is false only
// when the provider missed and the secondary may still be consulted; the
// handle is released before returning in every path.
func (r *Resolver) instantiatePrimary(ctx context.Context, key string, opts InstantiateOptions) (obj Object, done bool) {
	gen := r.gens.Current()

	h, err := r.primary.Load(ctx, key, nil)
	if err != nil {
		r.log.Warn("primary prefab load did not start", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	defer r.release(ctx, h, gen)

	if err := h.Wait(ctx); err != nil {
		r.log.Warn("primary prefab load failed to settle", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	prefab := h.Result()
	if h.Status() != provider.StatusSucceeded || prefab == nil {
		return nil, false
	}

	// The handle outlives the instantiation, not the instance.
	return r.instantiate(ctx, key, prefab, opts), true
}

func (r *Resolver) instantiate(_ context.Context, key string, prefab any, opts InstantiateOptions) Object {
	obj, err := r.scene.Instantiate(prefab, opts.Parent)
	if err != nil {
		r.log.Warn("prefab instantiation failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if opts.Name != "" {
		obj.SetName(opts.Name)
	}
	return obj
}
