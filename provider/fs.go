package provider

import (
	"io/fs"
	"reflect"
	"sync"
)

// DecodeFunc turns raw file contents into an asset of a specific type.
type DecodeFunc func(data []byte) (any, error)

// FSSecondary is a Secondary implementation over an fs.FS, the usual vehicle
// for content compiled into the binary via embed.FS. Assets are decoded on
// every load through a per-type decoder; requests for []byte need no decoder
// and return the raw file contents.
type FSSecondary struct {
	fsys fs.FS

	mu       sync.RWMutex
	decoders map[reflect.Type]DecodeFunc
}

var rawBytesType = reflect.TypeOf([]byte(nil))

// NewFSSecondary creates an FSSecondary reading from fsys.
func NewFSSecondary(fsys fs.FS) *FSSecondary {
	return &FSSecondary{
		fsys:     fsys,
		decoders: make(map[reflect.Type]DecodeFunc),
	}
}

// SetDecoder registers fn as the decoder for typ, replacing any previous one.
func (s *FSSecondary) SetDecoder(typ reflect.Type, fn DecodeFunc) {
	s.mu.Lock()
	s.decoders[typ] = fn
	s.mu.Unlock()
}

// RegisterDecoder registers a typed decoder on s for assets of type T.
func RegisterDecoder[T any](s *FSSecondary, fn func(data []byte) (T, error)) {
	s.SetDecoder(reflect.TypeFor[T](), func(data []byte) (any, error) {
		return fn(data)
	})
}

// Load reads path from the filesystem and decodes it as typ. Misses on
// unreadable paths, missing decoders, and decode failures.
func (s *FSSecondary) Load(path string, typ reflect.Type) (any, bool) {
	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		return nil, false
	}

	if typ == nil || typ == rawBytesType {
		return data, true
	}

	s.mu.RLock()
	decode, ok := s.decoders[typ]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	asset, err := decode(data)
	if err != nil || asset == nil {
		return nil, false
	}
	if !reflect.TypeOf(asset).AssignableTo(typ) {
		return nil, false
	}
	return asset, true
}

var _ Secondary = (*FSSecondary)(nil)
