/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package source

import (
	"context"

	"github.com/suparena/recordkv/errors"
	"github.com/suparena/recordkv/storagemodels"
)

// evaluate translates expr into one transform. Records missing from storage
// contribute no operations.
func (s *Store) evaluate(ctx context.Context, expr storagemodels.Expression) (*storagemodels.Transform, error) {
	var (
		ops []storagemodels.Operation
		err error
	)
	switch e := expr.(type) {
	case *storagemodels.FindRecord:
		ops, err = s.findRecord(ctx, e)
	case *storagemodels.FindRecords:
		ops, err = s.findRecords(ctx, e)
	case *storagemodels.FindRelatedRecord:
		ops, err = s.findRelatedRecord(ctx, e)
	case *storagemodels.FindRelatedRecords:
		ops, err = s.findRelatedRecords(ctx, e)
	default:
		name := ""
		if expr != nil {
			name = expr.Op()
		}
		log.Warn("unsupported query", "source", s.settings.Name, "op", name)
		return nil, errors.NewUnsupportedQueryError(name)
	}
	if err != nil {
		return nil, err
	}
	return storagemodels.NewTransform(ops...), nil
}

func (s *Store) findRecord(ctx context.Context, e *storagemodels.FindRecord) ([]storagemodels.Operation, error) {
	r, err := s.GetRecord(ctx, e.Record)
	if err != nil || r == nil {
		return nil, err
	}
	return []storagemodels.Operation{&storagemodels.AddRecord{Record: r}}, nil
}

func (s *Store) findRecords(ctx context.Context, e *storagemodels.FindRecords) ([]storagemodels.Operation, error) {
	records, err := s.Records(ctx, e.Type)
	if err != nil {
		return nil, err
	}
	ops := make([]storagemodels.Operation, 0, len(records))
	for _, r := range records {
		ops = append(ops, &storagemodels.AddRecord{Record: r})
	}
	return ops, nil
}

func (s *Store) findRelatedRecords(ctx context.Context, e *storagemodels.FindRelatedRecords) ([]storagemodels.Operation, error) {
	r, err := s.GetRecord(ctx, e.Record)
	if err != nil || r == nil {
		return nil, err
	}
	rel := r.Relationships[e.Relationship]
	if rel == nil {
		return nil, nil
	}

	var adds, links []storagemodels.Operation
	for _, id := range rel.Many {
		related, err := s.GetRecord(ctx, id)
		if err != nil {
			return nil, err
		}
		if related == nil {
			continue
		}
		adds = append(adds, &storagemodels.AddRecord{Record: related})
		links = append(links, &storagemodels.AddToRelatedRecords{
			Record:        e.Record,
			Relationship:  e.Relationship,
			RelatedRecord: id,
		})
	}
	return append(adds, links...), nil
}

func (s *Store) findRelatedRecord(ctx context.Context, e *storagemodels.FindRelatedRecord) ([]storagemodels.Operation, error) {
	r, err := s.GetRecord(ctx, e.Record)
	if err != nil || r == nil {
		return nil, err
	}
	rel := r.Relationships[e.Relationship]
	if rel == nil || rel.One == nil {
		return nil, nil
	}

	id := *rel.One
	related, err := s.GetRecord(ctx, id)
	if err != nil || related == nil {
		return nil, err
	}
	return []storagemodels.Operation{
		&storagemodels.AddRecord{Record: related},
		&storagemodels.ReplaceRelatedRecord{
			Record:        e.Record,
			Relationship:  e.Relationship,
			RelatedRecord: &id,
		},
	}, nil
}
