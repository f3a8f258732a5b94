package provider

import (
	"context"
	"reflect"
)

// Status is the settlement state of a primary-provider load.
type Status int

const (
	// StatusPending means the load has not settled yet.
	StatusPending Status = iota
	// StatusSucceeded means the load settled with a usable result.
	StatusSucceeded
	// StatusFailed means the load settled without a result.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Handle is an opaque resource representing one primary-provider load.
//
// Contract:
// - Wait blocks until the load settles. A non-nil error indicates provider
//   misconfiguration and callers must treat the load as failed.
// - Status and Result are only meaningful after Wait returns.
// - Release must be safe to call more than once and must never fail; it
//   frees whatever the provider retained for this load.
type Handle interface {
	// Wait blocks until the load settles or ctx is done.
	Wait(ctx context.Context) error

	// Status reports the settlement state.
	Status() Status

	// Result returns the loaded asset, or nil if the load did not succeed.
	Result() any

	// Release frees the provider resources behind this handle.
	Release()
}

// Primary is an asynchronous, handle-based asset provider.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Load returns an error only when the request fails to start
//   (typically ErrNotInitialized); load failures are reported through the
//   handle's status instead.
type Primary interface {
	// Load begins loading the asset identified by key. typ is a hint for
	// providers that produce different representations per requested type;
	// implementations may ignore it.
	Load(ctx context.Context, key string, typ reflect.Type) (Handle, error)
}

// Secondary is a synchronous, path-keyed asset provider. There is nothing
// to release; a miss is (nil, false).
type Secondary interface {
	Load(path string, typ reflect.Type) (any, bool)
}
