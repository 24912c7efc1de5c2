/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/recordkv/errors"
)

// Factory returns a fresh, zero-valued instance to decode into.
type Factory[T any] func() T

// Registry maps wire-level kind names (like "addRecord") to factories.
type Registry[T any] struct {
	kind      string
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

// New creates an empty registry. kind names what is registered and shows up in errors.
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:      kind,
		factories: make(map[string]Factory[T]),
	}
}

// Register associates name with fn.
// If name is already registered, it panics to prevent accidental overrides.
func (r *Registry[T]) Register(name string, fn Factory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("%s registry: %q already registered", r.kind, name))
	}
	r.factories[name] = fn
}

// New returns a fresh instance for name.
// If no factory is registered, it returns a NotFoundError.
func (r *Registry[T]) New(name string) (T, error) {
	r.mu.RLock()
	fn, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, errors.NewNotFoundError(r.kind, name)
	}
	return fn(), nil
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns all registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
