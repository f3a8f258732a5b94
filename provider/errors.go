package provider

import "errors"

// Load errors.
var (
	// ErrNotInitialized indicates the provider cannot start loads at all.
	// Resolvers treat it as a miss, not a fatal condition.
	ErrNotInitialized = errors.New("provider: not initialized")
)
