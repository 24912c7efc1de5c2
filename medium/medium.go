/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package medium

import "context"

// Medium is a flat string-keyed store of string values.
// A missing key is reported by ok == false, never by an error.
type Medium interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// Prober is implemented by media that can report whether they are usable.
type Prober interface {
	Available() bool
}

// Available reports whether m can be used. A nil medium is unavailable;
// a medium that does not implement Prober is assumed available.
func Available(m Medium) bool {
	if m == nil {
		return false
	}
	if p, ok := m.(Prober); ok {
		return p.Available()
	}
	return true
}
