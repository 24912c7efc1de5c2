/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package bolt implements a persistent storage medium on an embedded bbolt file.
package bolt

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// DefaultBucket is the bolt bucket keys are written to when none is given.
const DefaultBucket = "recordkv"

// lockTimeout bounds the wait for another process holding the file lock.
const lockTimeout = 5 * time.Second

// Medium implements medium.Medium using one bolt bucket.
type Medium struct {
	db     *bolt.DB
	bucket []byte
}

// Open creates or opens a bbolt database at path. An empty bucket name
// selects DefaultBucket.
func Open(path, bucket string) (*Medium, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: lockTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}
	return &Medium{db: db, bucket: []byte(bucket)}, nil
}

// Available reports whether the database is open.
func (m *Medium) Available() bool {
	return m.db != nil
}

func (m *Medium) GetItem(ctx context.Context, key string) (string, bool, error) {
	var (
		val string
		ok  bool
	)
	err := m.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(m.bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			val, ok = string(v), true
		}
		return nil
	})
	return val, ok, err
}

func (m *Medium) SetItem(ctx context.Context, key, value string) error {
	return m.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(m.bucket)
		if err != nil {
			return fmt.Errorf("creating bucket: %w", err)
		}
		return b.Put([]byte(key), []byte(value))
	})
}

func (m *Medium) RemoveItem(ctx context.Context, key string) error {
	return m.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(m.bucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

// Keys returns every key in byte order.
func (m *Medium) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := m.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(m.bucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

// Close closes the underlying database.
func (m *Medium) Close() error {
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}
