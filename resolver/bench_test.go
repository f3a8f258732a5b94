package resolver

import (
	"context"
	"testing"
)

// BenchmarkResolve_CacheHit measures the steady-state lookup path.
func BenchmarkResolve_CacheHit(b *testing.B) {
	p := newFakePrimary()
	p.assets["Icons/Logo"] = &widget{}
	r, err := New(p, newFakeSecondary())
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	opts := DefaultResolveOptions()
	Resolve[*widget](ctx, r, "Icons/Logo", opts)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := Resolve[*widget](ctx, r, "Icons/Logo", opts); !ok {
			b.Fatal("cache hit expected")
		}
	}
}

// BenchmarkResolve_Uncached measures a full primary load per call.
func BenchmarkResolve_Uncached(b *testing.B) {
	p := newFakePrimary()
	p.assets["Icons/Logo"] = &widget{}
	r, err := New(p, newFakeSecondary())
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	opts := ResolveOptions{Cache: false, Fallback: false}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := Resolve[*widget](ctx, r, "Icons/Logo", opts); !ok {
			b.Fatal("primary hit expected")
		}
	}
}

// BenchmarkResolve_SecondaryFallback measures the miss-then-fallback path.
func BenchmarkResolve_SecondaryFallback(b *testing.B) {
	s := newFakeSecondary()
	s.assets["Icons/Logo"] = &widget{}
	r, err := New(newFakePrimary(), s)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	opts := ResolveOptions{Cache: false, Fallback: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := Resolve[*widget](ctx, r, "Icons/Logo", opts); !ok {
			b.Fatal("secondary hit expected")
		}
	}
}
