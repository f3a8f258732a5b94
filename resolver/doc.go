// Package resolver resolves game assets by string key, trying an
// asynchronous handle-based primary provider first and optionally falling
// back to a synchronous secondary provider, with a memoizing cache that owns
// the retained provider handles.
//
// # Basic Usage
//
//	res, err := resolver.New(primary, secondary)
//	if err != nil {
//	    return err
//	}
//
//	opts := resolver.DefaultResolveOptions()
//	tex, ok := resolver.Resolve[*Texture](ctx, res, "Icons/Logo", opts)
//	if !ok {
//	    // both providers missed; a warning was already logged
//	}
//
// Resolve blocks the calling goroutine until the primary load settles. That
// blocking contract is deliberate; callers that cannot block use
// ResolveAsync, which returns a Pending handle to wait on.
//
// # Failure Policy
//
// The public operations never return errors. Every failure path (empty key,
// provider not initialized, failed load, double miss) degrades to an absent
// result plus a logged warning. A cached asset of the wrong type is not
// fatal either: the mismatch is logged and the key is resolved afresh.
//
// # Handle Lifecycle
//
// A cached entry retains the provider handle that produced it; the handle is
// released exactly once when the entry is displaced or the cache is cleared.
// Uncached loads release their handle before returning. After a host reload
// event all previously acquired handles are invalid: Invalidate (or a signal
// on the channel given to WithReloadSignal) bumps the handle generation and
// empties the cache without touching the stale handles.
package resolver
