/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package source

import (
	"context"
	"fmt"

	"github.com/suparena/recordkv/errors"
	"github.com/suparena/recordkv/storagemodels"
)

func (s *Store) applyTransform(ctx context.Context, t *storagemodels.Transform) error {
	if t == nil {
		return errors.NewValidationError("transform", "must not be nil")
	}
	for i, op := range t.Operations {
		if err := s.applyOperation(ctx, op); err != nil {
			return fmt.Errorf("transform %s: operation %d: %w", t.ID, i, err)
		}
	}
	log.Debug("transform applied", "source", s.settings.Name, "transform", t.ID, "operations", len(t.Operations))
	return nil
}

func (s *Store) applyOperation(ctx context.Context, op storagemodels.Operation) error {
	switch o := op.(type) {
	case *storagemodels.AddRecord:
		return s.PutRecord(ctx, o.Record)

	case *storagemodels.ReplaceRecord:
		return s.PutRecord(ctx, o.Record)

	case *storagemodels.RemoveRecord:
		return s.RemoveRecord(ctx, o.Record)

	case *storagemodels.ReplaceKey:
		return s.updateRecord(ctx, o.Record, true, func(r *storagemodels.Record) {
			if r.Keys == nil {
				r.Keys = map[string]string{}
			}
			r.Keys[o.Key] = o.Value
		})

	case *storagemodels.ReplaceAttribute:
		return s.updateRecord(ctx, o.Record, true, func(r *storagemodels.Record) {
			if r.Attributes == nil {
				r.Attributes = map[string]any{}
			}
			r.Attributes[o.Attribute] = o.Value
		})

	case *storagemodels.AddToRelatedRecords:
		return s.updateRecord(ctx, o.Record, true, func(r *storagemodels.Record) {
			rel := toManyRelationship(r, o.Relationship)
			if indexOf(rel.Many, o.RelatedRecord) < 0 {
				rel.Many = append(rel.Many, o.RelatedRecord)
			}
		})

	case *storagemodels.RemoveFromRelatedRecords:
		return s.updateRecord(ctx, o.Record, false, func(r *storagemodels.Record) {
			rel := r.Relationships[o.Relationship]
			if rel == nil {
				return
			}
			kept := rel.Many[:0]
			for _, id := range rel.Many {
				if id != o.RelatedRecord {
					kept = append(kept, id)
				}
			}
			rel.Many = kept
		})

	case *storagemodels.ReplaceRelatedRecords:
		return s.updateRecord(ctx, o.Record, true, func(r *storagemodels.Record) {
			ids := make([]storagemodels.RecordIdentity, len(o.RelatedRecords))
			copy(ids, o.RelatedRecords)
			setRelationship(r, o.Relationship, storagemodels.ToMany(ids...))
		})

	case *storagemodels.ReplaceRelatedRecord:
		return s.updateRecord(ctx, o.Record, true, func(r *storagemodels.Record) {
			var id *storagemodels.RecordIdentity
			if o.RelatedRecord != nil {
				related := *o.RelatedRecord
				id = &related
			}
			setRelationship(r, o.Relationship, storagemodels.ToOne(id))
		})

	default:
		name := ""
		if op != nil {
			name = op.Op()
		}
		log.Warn("unsupported operation", "source", s.settings.Name, "op", name)
		return errors.NewUnsupportedOperationError(name)
	}
}

// updateRecord reads the record, applies mutate and writes it back. An absent
// record starts from its bare identity when create is set and is left alone
// otherwise.
func (s *Store) updateRecord(ctx context.Context, id storagemodels.RecordIdentity, create bool, mutate func(*storagemodels.Record)) error {
	r, err := s.GetRecord(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		if !create {
			return nil
		}
		r = storagemodels.NewRecord(id)
	}
	mutate(r)
	return s.PutRecord(ctx, r)
}

func setRelationship(r *storagemodels.Record, name string, rel *storagemodels.Relationship) {
	if r.Relationships == nil {
		r.Relationships = map[string]*storagemodels.Relationship{}
	}
	r.Relationships[name] = rel
}

// toManyRelationship returns the named relationship, replacing it with an
// empty to-many one if it is missing or to-one.
func toManyRelationship(r *storagemodels.Record, name string) *storagemodels.Relationship {
	rel := r.Relationships[name]
	if rel == nil || !rel.ToMany {
		rel = storagemodels.ToMany()
		setRelationship(r, name, rel)
	}
	return rel
}

func indexOf(ids []storagemodels.RecordIdentity, id storagemodels.RecordIdentity) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}
