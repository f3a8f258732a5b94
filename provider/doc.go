// Package provider defines the asset provider contracts the resolver is
// built against, plus in-process reference implementations.
//
// Two kinds of provider exist. A Primary provider is asynchronous and
// handle-based: a load returns a Handle that settles to succeeded or failed
// and must be released when no longer needed. A Secondary provider is a plain
// synchronous lookup with no resource to release, typically backed by
// embedded content (see FSSecondary).
//
// Failure is expressed through statuses and boolean results, never panics:
// a Primary that cannot even start a load returns ErrNotInitialized, and a
// Handle whose Wait returns an error is treated by callers as a failed load.
package provider
