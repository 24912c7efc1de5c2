/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordkv

import (
	"sort"
	"sync"

	"github.com/suparena/recordkv/capability"
	"github.com/suparena/recordkv/errors"
)

// Manager is a thread-safe directory of named sources and buckets.
type Manager struct {
	mu      sync.RWMutex
	sources map[string]capability.Source
	buckets map[string]capability.Bucket
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		sources: make(map[string]capability.Source),
		buckets: make(map[string]capability.Bucket),
	}
}

// RegisterSource stores src under its name.
func (m *Manager) RegisterSource(src capability.Source) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := src.Name()
	if _, exists := m.sources[name]; exists {
		return errors.NewAlreadyExistsError("source", name)
	}
	m.sources[name] = src
	return nil
}

// GetSource retrieves the source registered under name.
func (m *Manager) GetSource(name string) (capability.Source, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	src, exists := m.sources[name]
	if !exists {
		return nil, errors.NewNotFoundError("source", name)
	}
	return src, nil
}

// RemoveSource forgets the source registered under name.
func (m *Manager) RemoveSource(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sources[name]; !exists {
		return errors.NewNotFoundError("source", name)
	}
	delete(m.sources, name)
	return nil
}

// RegisterBucket stores b under its name.
func (m *Manager) RegisterBucket(b capability.Bucket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := b.Name()
	if _, exists := m.buckets[name]; exists {
		return errors.NewAlreadyExistsError("bucket", name)
	}
	m.buckets[name] = b
	return nil
}

// GetBucket retrieves the bucket registered under name.
func (m *Manager) GetBucket(name string) (capability.Bucket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, exists := m.buckets[name]
	if !exists {
		return nil, errors.NewNotFoundError("bucket", name)
	}
	return b, nil
}

// RemoveBucket forgets the bucket registered under name.
func (m *Manager) RemoveBucket(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.buckets[name]; !exists {
		return errors.NewNotFoundError("bucket", name)
	}
	delete(m.buckets, name)
	return nil
}

// Sources returns the registered source names in sorted order.
func (m *Manager) Sources() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.sources)
}

// Buckets returns the registered bucket names in sorted order.
func (m *Manager) Buckets() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.buckets)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
