package provider

import (
	"context"
	"reflect"
	"sync"
	"time"
)

// MemoryPrimary is an in-process Primary implementation backed by a map.
// Loads settle on a goroutine after an optional simulated latency, so the
// full handle lifecycle is exercised. Useful as a stand-in for a real
// addressable content system in tests and tools.
type MemoryPrimary struct {
	mu     sync.RWMutex
	assets map[string]any
	delay  time.Duration
}

// NewMemoryPrimary creates an empty MemoryPrimary. delay is applied to every
// load before it settles; zero means loads settle immediately.
func NewMemoryPrimary(delay time.Duration) *MemoryPrimary {
	return &MemoryPrimary{
		assets: make(map[string]any),
		delay:  delay,
	}
}

// Add registers an asset under key, replacing any previous one.
func (p *MemoryPrimary) Add(key string, asset any) {
	p.mu.Lock()
	p.assets[key] = asset
	p.mu.Unlock()
}

// Remove drops the asset under key. Idempotent.
func (p *MemoryPrimary) Remove(key string) {
	p.mu.Lock()
	delete(p.assets, key)
	p.mu.Unlock()
}

// Load begins an asynchronous load of key. The type hint is ignored; type
// checking is the caller's concern.
func (p *MemoryPrimary) Load(_ context.Context, key string, _ reflect.Type) (Handle, error) {
	h := &memoryHandle{done: make(chan struct{})}

	go func() {
		if p.delay > 0 {
			time.Sleep(p.delay)
		}
		p.mu.RLock()
		asset, ok := p.assets[key]
		p.mu.RUnlock()

		h.mu.Lock()
		if ok && asset != nil {
			h.status = StatusSucceeded
			h.result = asset
		} else {
			h.status = StatusFailed
		}
		h.mu.Unlock()
		close(h.done)
	}()

	return h, nil
}

var _ Primary = (*MemoryPrimary)(nil)

// memoryHandle settles exactly once when done is closed.
type memoryHandle struct {
	done chan struct{}

	mu       sync.Mutex
	status   Status
	result   any
	released bool
}

func (h *memoryHandle) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return nil
	}
}

func (h *memoryHandle) Status() Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status
}

func (h *memoryHandle) Result() any {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return nil
	}
	return h.result
}

// Release drops the result. Safe to call more than once.
func (h *memoryHandle) Release() {
	h.mu.Lock()
	h.released = true
	h.result = nil
	h.mu.Unlock()
}
