package resolver

import "context"

// Pending is an in-flight asynchronous resolution started by ResolveAsync.
type Pending[T any] struct {
	done chan struct{}
	val  T
	ok   bool
}

// Wait blocks until the resolution settles or ctx is done. A context expiry
// reports absent; the underlying load keeps running and may still populate
// the cache.
func (p *Pending[T]) Wait(ctx context.Context) (T, bool) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, false
	case <-p.done:
		return p.val, p.ok
	}
}

// Done returns a channel that is closed once the resolution has settled.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// ResolveAsync starts a resolution on its own goroutine and returns
// immediately. Resolve's blocking behavior is a deliberate contract; this is
// the distinct entry point for callers that cannot block. Semantics are
// otherwise identical to Resolve.
func ResolveAsync[T any](ctx context.Context, r *Resolver, key string, opts ResolveOptions) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	go func() {
		p.val, p.ok = Resolve[T](ctx, r, key, opts)
		close(p.done)
	}()
	return p
}
