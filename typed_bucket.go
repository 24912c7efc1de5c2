/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordkv

import (
	"context"

	"github.com/suparena/recordkv/bucket"
)

// TypedBucket provides type-safe access to the items of a bucket that all
// hold values of type T.
type TypedBucket[T any] struct {
	store *bucket.Store
}

// NewTypedBucket wraps b for values of type T.
func NewTypedBucket[T any](b *bucket.Store) *TypedBucket[T] {
	return &TypedBucket[T]{store: b}
}

// Get decodes the item stored under key. It returns nil if there is none.
func (tb *TypedBucket[T]) Get(ctx context.Context, key string) (*T, error) {
	v := new(T)
	ok, err := tb.store.GetItemInto(ctx, key, v)
	if err != nil || !ok {
		return nil, err
	}
	return v, nil
}

// Set stores v under key.
func (tb *TypedBucket[T]) Set(ctx context.Context, key string, v T) error {
	return tb.store.SetItem(ctx, key, v)
}

// Remove deletes the item stored under key.
func (tb *TypedBucket[T]) Remove(ctx context.Context, key string) error {
	return tb.store.RemoveItem(ctx, key)
}

// Bucket returns the underlying bucket.
func (tb *TypedBucket[T]) Bucket() *bucket.Store {
	return tb.store
}
