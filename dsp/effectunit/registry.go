package effectunit

import (
	"errors"
	"fmt"
)

// Factory builds one Runtime instance for a channel.
type Factory func(ctx Context) (Runtime, error)

// Registry maps effect kinds to their factories.
type Registry struct {
	factories map[Kind]Factory
}

var errDuplicateEffect = errors.New("duplicate effect kind")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Kind]Factory)}
}

// Register adds a factory for the given kind.
func (r *Registry) Register(kind Kind, factory Factory) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %s", errDuplicateEffect, kind)
	}

	r.factories[kind] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind Kind, factory Factory) {
	err := r.Register(kind, factory)
	if err != nil {
		panic("effectunit registry: " + err.Error())
	}
}

// Lookup returns the factory for the given kind, or nil.
func (r *Registry) Lookup(kind Kind) Factory {
	return r.factories[kind]
}
