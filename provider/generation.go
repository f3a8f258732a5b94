package provider

import "sync/atomic"

// Generations is a monotonic counter used to invalidate handles across host
// reload events. A handle is tagged with the current generation when it is
// acquired; after a Bump, handles from earlier generations must not be
// released because the resources behind them are already gone.
//
// The zero value is ready to use and safe for concurrent use.
type Generations struct {
	n atomic.Uint64
}

// Current returns the active generation.
func (g *Generations) Current() uint64 {
	return g.n.Load()
}

// Bump advances to a new generation, invalidating all handles acquired under
// earlier ones, and returns the new generation.
func (g *Generations) Bump() uint64 {
	return g.n.Add(1)
}

// Valid reports whether a handle tagged with gen may still be released.
func (g *Generations) Valid(gen uint64) bool {
	return g.n.Load() == gen
}
