package resolver

import "errors"

// Construction errors.
var (
	// ErrNilPrimary indicates New was called without a primary provider.
	ErrNilPrimary = errors.New("resolver: primary provider is nil")
)

// Degradation causes. These never reach callers of the public operations;
// they appear in warning logs when a resolution degrades to absent.
var (
	// ErrEmptyKey indicates a key that is empty or whitespace-only.
	ErrEmptyKey = errors.New("resolver: key is empty")

	// ErrNoScene indicates InstantiatePrefab was called on a resolver
	// constructed without WithScene.
	ErrNoScene = errors.New("resolver: no scene configured")
)

// errMiss marks a failed load inside the singleflight group. It never
// escapes the resolver.
var errMiss = errors.New("resolver: asset not found")
