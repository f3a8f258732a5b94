package resolver

import (
	"context"
	"testing"
	"time"
)

func TestClear_ReleasesOnceAndEmpties(t *testing.T) {
	p := newFakePrimary()
	p.assets["Icons/Logo"] = &widget{}
	p.assets["Icons/Back"] = &widget{}
	r := newTestResolver(t, p, newFakeSecondary())
	ctx := context.Background()

	Resolve[*widget](ctx, r, "Icons/Logo", DefaultResolveOptions())
	Resolve[*widget](ctx, r, "Icons/Back", DefaultResolveOptions())
	if r.Len() != 2 {
		t.Fatalf("cache has %d entries, want 2", r.Len())
	}

	r.Clear()

	if r.Len() != 0 {
		t.Errorf("cache has %d entries after Clear, want 0", r.Len())
	}
	for i := 0; i < 2; i++ {
		if got := p.handle(i).releaseCount(); got != 1 {
			t.Errorf("handle %d released %d times, want exactly 1", i, got)
		}
	}

	// A second Clear releases nothing and does not fail.
	r.Clear()
	for i := 0; i < 2; i++ {
		if got := p.handle(i).releaseCount(); got != 1 {
			t.Errorf("handle %d released %d times after double Clear, want 1", i, got)
		}
	}
}

func TestClear_SecondaryEntriesHaveNoHandle(t *testing.T) {
	s := newFakeSecondary()
	s.assets["Icons/Logo"] = &widget{}
	r := newTestResolver(t, newFakePrimary(), s)

	Resolve[*widget](context.Background(), r, "Icons/Logo", DefaultResolveOptions())
	if r.Len() != 1 {
		t.Fatalf("cache has %d entries, want 1", r.Len())
	}

	// Must not panic on the nil handle.
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("cache has %d entries after Clear, want 0", r.Len())
	}
}

func TestInvalidate_SkipsStaleHandles(t *testing.T) {
	p := newFakePrimary()
	p.assets["Icons/Logo"] = &widget{}
	r := newTestResolver(t, p, newFakeSecondary())

	Resolve[*widget](context.Background(), r, "Icons/Logo", DefaultResolveOptions())
	r.Invalidate()

	if r.Len() != 0 {
		t.Errorf("cache has %d entries after Invalidate, want 0", r.Len())
	}
	if got := p.handle(0).releaseCount(); got != 0 {
		t.Errorf("stale handle released %d times, want 0 (invalid after reload)", got)
	}
}

func TestInvalidate_FreshLoadsUseNewGeneration(t *testing.T) {
	p := newFakePrimary()
	p.assets["Icons/Logo"] = &widget{}
	r := newTestResolver(t, p, newFakeSecondary())
	ctx := context.Background()

	r.Invalidate()

	// Loads after the reload acquire handles under the new generation and
	// release normally.
	Resolve[*widget](ctx, r, "Icons/Logo", DefaultResolveOptions())
	r.Clear()
	if got := p.handle(0).releaseCount(); got != 1 {
		t.Errorf("post-reload handle released %d times, want 1", got)
	}
}

func TestWithReloadSignal_TriggersInvalidate(t *testing.T) {
	p := newFakePrimary()
	p.assets["Icons/Logo"] = &widget{}
	reload := make(chan struct{})
	r := newTestResolver(t, p, newFakeSecondary(), WithReloadSignal(reload))

	Resolve[*widget](context.Background(), r, "Icons/Logo", DefaultResolveOptions())
	if r.Len() != 1 {
		t.Fatalf("cache has %d entries, want 1", r.Len())
	}

	reload <- struct{}{}
	close(reload)

	deadline := time.Now().Add(2 * time.Second)
	for r.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("reload signal did not clear the cache in time")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if got := p.handle(0).releaseCount(); got != 0 {
		t.Errorf("handle released %d times after reload, want 0", got)
	}
}
