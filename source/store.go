/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/suparena/recordkv/capability"
	"github.com/suparena/recordkv/errors"
	"github.com/suparena/recordkv/keys"
	"github.com/suparena/recordkv/logging"
	"github.com/suparena/recordkv/medium"
	"github.com/suparena/recordkv/schema"
	"github.com/suparena/recordkv/storagemodels"
)

var log = logging.For("source")

var (
	_ capability.Syncable = (*Store)(nil)
	_ capability.Pushable = (*Store)(nil)
	_ capability.Pullable = (*Store)(nil)
	_ capability.Source   = (*Store)(nil)
)

// Store keeps records as JSON under "<namespace>/<type>/<id>" keys of a medium.
type Store struct {
	medium   medium.Medium
	schema   *schema.Schema
	settings storagemodels.Settings
}

// New creates a record store over m. A nil schema fails with
// errors.ErrMissingSchema; an unavailable medium fails with
// errors.ErrUnavailableMedium. Neither check touches storage.
func New(m medium.Medium, sch *schema.Schema, opts ...storagemodels.Option) (*Store, error) {
	if sch == nil {
		return nil, fmt.Errorf("creating source: %w", errors.ErrMissingSchema)
	}
	if !medium.Available(m) {
		return nil, fmt.Errorf("creating source: %w", errors.ErrUnavailableMedium)
	}
	return &Store{
		medium:   m,
		schema:   sch,
		settings: storagemodels.Apply(storagemodels.SourceDefaults(), opts...),
	}, nil
}

func (s *Store) Name() string           { return s.settings.Name }
func (s *Store) Namespace() string      { return s.settings.Namespace }
func (s *Store) Delimiter() string      { return s.settings.Delimiter }
func (s *Store) Schema() *schema.Schema { return s.schema }

// KeyForRecord returns the storage key of the identified record.
func (s *Store) KeyForRecord(id storagemodels.RecordIdentity) string {
	return keys.Make(s.settings.Namespace, s.settings.Delimiter, id.Type, id.ID)
}

// GetRecord returns the stored record, or nil if there is none.
func (s *Store) GetRecord(ctx context.Context, id storagemodels.RecordIdentity) (*storagemodels.Record, error) {
	return s.readRecord(ctx, s.KeyForRecord(id))
}

func (s *Store) readRecord(ctx context.Context, key string) (*storagemodels.Record, error) {
	raw, ok, err := s.medium.GetItem(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reading record %q: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	var r *storagemodels.Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, errors.NewDecodeError(key, err)
	}
	return r, nil
}

// PutRecord stores r wholesale, replacing any previous value.
func (s *Store) PutRecord(ctx context.Context, r *storagemodels.Record) error {
	if r == nil {
		return errors.NewValidationError("record", "must not be nil")
	}
	key := s.KeyForRecord(r.Identity())
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding record %q: %w", key, err)
	}
	if err := s.medium.SetItem(ctx, key, string(data)); err != nil {
		return fmt.Errorf("writing record %q: %w", key, err)
	}
	return nil
}

// RemoveRecord deletes the identified record. Removing an absent record succeeds.
func (s *Store) RemoveRecord(ctx context.Context, id storagemodels.RecordIdentity) error {
	key := s.KeyForRecord(id)
	if err := s.medium.RemoveItem(ctx, key); err != nil {
		return fmt.Errorf("removing record %q: %w", key, err)
	}
	return nil
}

// Reset deletes every key in the store's namespace and leaves other keys
// alone. It is not atomic: a key written after enumeration survives.
func (s *Store) Reset(ctx context.Context) error {
	all, err := s.medium.Keys(ctx)
	if err != nil {
		return fmt.Errorf("listing keys: %w", err)
	}

	removed := 0
	for _, key := range all {
		if !keys.InNamespace(key, s.settings.Namespace, s.settings.Delimiter) {
			continue
		}
		if err := s.medium.RemoveItem(ctx, key); err != nil {
			return fmt.Errorf("removing %q: %w", key, err)
		}
		removed++
	}
	log.Debug("source reset", "source", s.settings.Name, "removed", removed)
	return nil
}

// Records returns the stored records in key order. A non-empty typ keeps
// only records of that type.
func (s *Store) Records(ctx context.Context, typ string) ([]*storagemodels.Record, error) {
	all, err := s.medium.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}

	records := []*storagemodels.Record{}
	for _, key := range all {
		segs, ok := keys.Segments(key, s.settings.Namespace, s.settings.Delimiter)
		if !ok || len(segs) != 2 {
			continue
		}
		if typ != "" && segs[0] != typ {
			continue
		}
		r, err := s.readRecord(ctx, key)
		if err != nil {
			return nil, err
		}
		if r != nil {
			records = append(records, r)
		}
	}
	return records, nil
}

// Sync applies every operation of t in order. The first failing operation
// stops the call; operations before it stay applied.
func (s *Store) Sync(ctx context.Context, t *storagemodels.Transform) error {
	return s.applyTransform(ctx, t)
}

// Push applies t like Sync and returns t itself as the only committed transform.
func (s *Store) Push(ctx context.Context, t *storagemodels.Transform) ([]*storagemodels.Transform, error) {
	if err := s.applyTransform(ctx, t); err != nil {
		return nil, err
	}
	return []*storagemodels.Transform{t}, nil
}

// Pull evaluates the query expression and returns the transforms that
// would rebuild the result on an empty store.
func (s *Store) Pull(ctx context.Context, q *storagemodels.Query) ([]*storagemodels.Transform, error) {
	if q == nil {
		return nil, errors.NewValidationError("query", "must not be nil")
	}
	t, err := s.evaluate(ctx, q.Expression)
	if err != nil {
		return nil, err
	}
	return []*storagemodels.Transform{t}, nil
}
