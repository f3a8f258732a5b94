package resolver

import "context"

// Clear releases every retained provider handle exactly once and empties the
// cache. Calling it again immediately is safe and releases nothing. It is a
// host-integration hook (scene teardown, level transitions, tests), not part
// of the normal resolution flow.
func (r *Resolver) Clear() {
	r.clear(context.Background())
}

// Invalidate bumps the handle generation and then empties the cache WITHOUT
// releasing the retained handles: after a host reload event those handles
// point at resources that are already gone. Call it, or wire a channel via
// WithReloadSignal, whenever the host signals a reload.
func (r *Resolver) Invalidate() {
	r.gens.Bump()
	r.clear(context.Background())
}

func (r *Resolver) clear(ctx context.Context) {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]entry)
	r.mu.Unlock()

	// release skips handles whose generation is no longer current.
	for _, e := range entries {
		r.release(ctx, e.handle, e.gen)
	}
}
