/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides an in-process storage medium with error injection for testing
package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// Medium is an in-process implementation of medium.Medium backed by a concurrent map
type Medium struct {
	data      *xsync.MapOf[string, string]
	available atomic.Bool

	mu        sync.RWMutex
	getError  error
	setError  error
	rmError   error
	keysError error
}

// New creates an empty, available medium
func New() *Medium {
	m := &Medium{data: xsync.NewMapOf[string, string]()}
	m.available.Store(true)
	return m
}

// WithGetError makes GetItem return err
func (m *Medium) WithGetError(err error) *Medium {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
	return m
}

// WithSetError makes SetItem return err
func (m *Medium) WithSetError(err error) *Medium {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setError = err
	return m
}

// WithRemoveError makes RemoveItem return err
func (m *Medium) WithRemoveError(err error) *Medium {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rmError = err
	return m
}

// WithKeysError makes Keys return err
func (m *Medium) WithKeysError(err error) *Medium {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keysError = err
	return m
}

// SetAvailable toggles the result of Available
func (m *Medium) SetAvailable(ok bool) {
	m.available.Store(ok)
}

// Available reports whether the medium is usable
func (m *Medium) Available() bool {
	return m.available.Load()
}

// GetItem returns the value stored under key
func (m *Medium) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := m.injected(&m.getError); err != nil {
		return "", false, err
	}
	v, ok := m.data.Load(key)
	return v, ok, nil
}

// SetItem stores value under key, overwriting any previous value
func (m *Medium) SetItem(ctx context.Context, key, value string) error {
	if err := m.injected(&m.setError); err != nil {
		return err
	}
	m.data.Store(key, value)
	return nil
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (m *Medium) RemoveItem(ctx context.Context, key string) error {
	if err := m.injected(&m.rmError); err != nil {
		return err
	}
	m.data.Delete(key)
	return nil
}

// Keys returns every stored key in ascending order
func (m *Medium) Keys(ctx context.Context) ([]string, error) {
	if err := m.injected(&m.keysError); err != nil {
		return nil, err
	}
	keys := make([]string, 0, m.data.Size())
	m.data.Range(func(k, _ string) bool {
		keys = append(keys, k)
		return true
	})
	sort.Strings(keys)
	return keys, nil
}

// Helper methods for testing

// SetData replaces the stored data with a copy of data
func (m *Medium) SetData(data map[string]string) {
	m.data.Clear()
	for k, v := range data {
		m.data.Store(k, v)
	}
}

// GetData returns a copy of the stored data
func (m *Medium) GetData() map[string]string {
	result := make(map[string]string, m.data.Size())
	m.data.Range(func(k, v string) bool {
		result[k] = v
		return true
	})
	return result
}

// Count returns the number of stored keys
func (m *Medium) Count() int {
	return m.data.Size()
}

// Clear removes all data
func (m *Medium) Clear() {
	m.data.Clear()
}

func (m *Medium) injected(field *error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return *field
}
