/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bucket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/suparena/recordkv/capability"
	"github.com/suparena/recordkv/errors"
	"github.com/suparena/recordkv/keys"
	"github.com/suparena/recordkv/logging"
	"github.com/suparena/recordkv/medium"
	"github.com/suparena/recordkv/storagemodels"
)

var log = logging.For("bucket")

var _ capability.Bucket = (*Store)(nil)

// Store keeps transient JSON values under namespaced keys of a medium.
type Store struct {
	medium   medium.Medium
	settings storagemodels.Settings
}

// New creates a bucket over m. It fails with errors.ErrUnavailableMedium
// before touching storage if m is not available.
func New(m medium.Medium, opts ...storagemodels.Option) (*Store, error) {
	if !medium.Available(m) {
		return nil, fmt.Errorf("creating bucket: %w", errors.ErrUnavailableMedium)
	}
	return &Store{
		medium:   m,
		settings: storagemodels.Apply(storagemodels.BucketDefaults(), opts...),
	}, nil
}

func (s *Store) Name() string      { return s.settings.Name }
func (s *Store) Namespace() string { return s.settings.Namespace }
func (s *Store) Delimiter() string { return s.settings.Delimiter }

// FullKey returns the storage key for a logical item key.
func (s *Store) FullKey(key string) string {
	return keys.Make(s.settings.Namespace, s.settings.Delimiter, key)
}

// GetItem returns the decoded value stored under key, or nil if there is none.
func (s *Store) GetItem(ctx context.Context, key string) (any, error) {
	var v any
	if _, err := s.GetItemInto(ctx, key, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetItemInto decodes the value stored under key into v and reports whether
// a value was present. v is left untouched when it was not.
func (s *Store) GetItemInto(ctx context.Context, key string, v any) (bool, error) {
	full := s.FullKey(key)
	raw, ok, err := s.medium.GetItem(ctx, full)
	if err != nil {
		return false, fmt.Errorf("reading item %q: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, errors.NewDecodeError(full, err)
	}
	return true, nil
}

// SetItem stores value under key, replacing any previous value.
func (s *Store) SetItem(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding item %q: %w", key, err)
	}
	if err := s.medium.SetItem(ctx, s.FullKey(key), string(data)); err != nil {
		return fmt.Errorf("writing item %q: %w", key, err)
	}
	log.Debug("item set", "bucket", s.settings.Name, "key", key)
	return nil
}

// RemoveItem deletes key. Removing an absent key succeeds.
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	if err := s.medium.RemoveItem(ctx, s.FullKey(key)); err != nil {
		return fmt.Errorf("removing item %q: %w", key, err)
	}
	log.Debug("item removed", "bucket", s.settings.Name, "key", key)
	return nil
}
