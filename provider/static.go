package provider

import (
	"reflect"
	"sync"
)

// StaticSecondary is a map-backed Secondary implementation. A load hits only
// when the stored asset is assignable to the requested type.
type StaticSecondary struct {
	mu     sync.RWMutex
	assets map[string]any
}

// NewStaticSecondary creates an empty StaticSecondary.
func NewStaticSecondary() *StaticSecondary {
	return &StaticSecondary{assets: make(map[string]any)}
}

// Add registers an asset under path, replacing any previous one.
func (s *StaticSecondary) Add(path string, asset any) {
	s.mu.Lock()
	s.assets[path] = asset
	s.mu.Unlock()
}

// Load returns the asset stored under path if it is assignable to typ.
// A nil typ matches any asset.
func (s *StaticSecondary) Load(path string, typ reflect.Type) (any, bool) {
	s.mu.RLock()
	asset, ok := s.assets[path]
	s.mu.RUnlock()

	if !ok || asset == nil {
		return nil, false
	}
	if typ != nil && !reflect.TypeOf(asset).AssignableTo(typ) {
		return nil, false
	}
	return asset, true
}

var _ Secondary = (*StaticSecondary)(nil)
