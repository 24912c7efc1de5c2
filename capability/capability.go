/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package capability declares the contracts a source or bucket adapter offers
// to the synchronization framework.
package capability

import (
	"context"

	"github.com/suparena/recordkv/storagemodels"
)

// Syncable accepts transforms that already happened elsewhere.
type Syncable interface {
	Sync(ctx context.Context, t *storagemodels.Transform) error
}

// Pushable accepts transforms and reports the transforms that resulted.
type Pushable interface {
	Push(ctx context.Context, t *storagemodels.Transform) ([]*storagemodels.Transform, error)
}

// Pullable answers queries with transforms that reproduce the queried state.
type Pullable interface {
	Pull(ctx context.Context, q *storagemodels.Query) ([]*storagemodels.Transform, error)
}

// Source is a named record store with all three capabilities.
type Source interface {
	Name() string
	Syncable
	Pushable
	Pullable
}

// Bucket is a named store of transient key/value state.
type Bucket interface {
	Name() string
	GetItem(ctx context.Context, key string) (any, error)
	SetItem(ctx context.Context, key string, value any) error
	RemoveItem(ctx context.Context, key string) error
}
