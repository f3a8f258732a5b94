package editor

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/jonwraymond/assetops/resolver"
)

// ErrNilResolver indicates NewSpawner was called without a resolver.
var ErrNilResolver = errors.New("editor: resolver is nil")

// UndoRecorder registers a created object with the host's undo system so the
// spawn can be reverted.
type UndoRecorder interface {
	RecordCreated(obj resolver.Object, operation string)
}

// Selector makes an object the active editor selection.
type Selector interface {
	Select(obj resolver.Object)
}

// Spawner instantiates prefabs at design time. Every successful spawn is
// recorded for undo and selected, when those facilities are wired.
type Spawner struct {
	res  *resolver.Resolver
	undo UndoRecorder
	sel  Selector
	log  *zap.Logger
}

// Option configures a Spawner.
type Option func(*Spawner)

// WithUndo wires the host undo system.
func WithUndo(u UndoRecorder) Option {
	return func(s *Spawner) { s.undo = u }
}

// WithSelector wires the host selection facility.
func WithSelector(sel Selector) Option {
	return func(s *Spawner) { s.sel = sel }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Spawner) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSpawner creates a Spawner on top of res.
func NewSpawner(res *resolver.Resolver, opts ...Option) (*Spawner, error) {
	if res == nil {
		return nil, ErrNilResolver
	}
	s := &Spawner{res: res, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Spawn resolves key as a prefab and instantiates it, then records the
// creation for undo and selects the instance. Like the runtime operations it
// degrades to (nil, false) on any failure; the resolver has already logged
// the cause.
func (s *Spawner) Spawn(ctx context.Context, key string, opts resolver.InstantiateOptions) (resolver.Object, bool) {
	obj, ok := s.res.InstantiatePrefab(ctx, key, opts)
	if !ok {
		return nil, false
	}

	if s.undo != nil {
		s.undo.RecordCreated(obj, "Create "+obj.Name())
	}
	if s.sel != nil {
		s.sel.Select(obj)
	}

	s.log.Debug("spawned prefab",
		zap.String("key", key),
		zap.String("name", obj.Name()))
	return obj, true
}
