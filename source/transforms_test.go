/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package source

import (
	"context"
	"log/slog"
	"reflect"
	"testing"

	"github.com/suparena/recordkv/errors"
	"github.com/suparena/recordkv/logging"
	"github.com/suparena/recordkv/storagemodels"
)

func TestSyncAddThenRemove(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)

	tr := storagemodels.NewTransform(
		&storagemodels.AddRecord{Record: planet(jupiter, "Jupiter")},
		&storagemodels.RemoveRecord{Record: jupiter},
	)
	if err := s.Sync(ctx, tr); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if m.Count() != 0 {
		t.Fatalf("Expected no stored values, got %v", m.GetData())
	}

	pushed, err := s.Push(ctx, tr)
	if err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if m.Count() != 0 {
		t.Fatalf("Expected no stored values after push, got %v", m.GetData())
	}
	if len(pushed) != 1 || pushed[0] != tr {
		t.Fatalf("Push should return exactly the input transform, got %v", pushed)
	}
}

func TestPushEchoesUnmodified(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	ops := []storagemodels.Operation{
		&storagemodels.AddRecord{Record: planet(jupiter, "Jupiter")},
		&storagemodels.ReplaceAttribute{Record: jupiter, Attribute: "name", Value: "Jove"},
	}
	tr := &storagemodels.Transform{ID: "t-42", Operations: ops}

	pushed, err := s.Push(ctx, tr)
	if err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if len(pushed) != 1 || pushed[0] != tr {
		t.Fatalf("Expected the input transform back, got %v", pushed)
	}
	if tr.ID != "t-42" || !reflect.DeepEqual(tr.Operations, ops) {
		t.Fatalf("Transform was modified: %+v", tr)
	}
}

func TestUnsupportedOperation(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	capture := logging.CaptureForTest()
	defer capture.Restore()

	unknown, err := storagemodels.DecodeOperation([]byte(`{"op":"teleportRecord","record":{"type":"planet","id":"pluto"}}`))
	if err != nil {
		t.Fatalf("DecodeOperation failed: %v", err)
	}
	tr := storagemodels.NewTransform(
		&storagemodels.AddRecord{Record: planet(jupiter, "Jupiter")},
		unknown,
		&storagemodels.AddRecord{Record: planet(earth, "Earth")},
	)

	err = s.Sync(ctx, tr)
	if !errors.IsUnsupportedOperation(err) {
		t.Fatalf("Expected unsupported operation error, got: %v", err)
	}
	if got, _ := s.GetRecord(ctx, jupiter); got == nil {
		t.Fatal("Operations before the unsupported one should stay applied")
	}
	if got, _ := s.GetRecord(ctx, earth); got != nil {
		t.Fatal("Operations after the unsupported one should not run")
	}
	if !capture.Has(slog.LevelWarn, "unsupported operation") {
		t.Fatal("Expected a warning for the unsupported operation")
	}

	if _, err := s.Push(ctx, storagemodels.NewTransform(unknown)); !errors.IsUnsupportedOperation(err) {
		t.Fatalf("Expected unsupported operation error from Push, got: %v", err)
	}
	if err := s.Sync(ctx, storagemodels.NewTransform(nil)); !errors.IsUnsupportedOperation(err) {
		t.Fatalf("Expected unsupported operation error for nil operation, got: %v", err)
	}
	if err := s.Sync(ctx, nil); !errors.IsValidationError(err) {
		t.Fatalf("Expected validation error for nil transform, got: %v", err)
	}
}

func TestReplaceRecord(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	orig := planet(jupiter, "Jupiter")
	orig.Keys = map[string]string{"remoteId": "p-5"}
	s.PutRecord(ctx, orig)

	replacement := storagemodels.NewRecord(jupiter)
	replacement.Attributes = map[string]any{"classification": "gas giant"}
	if err := s.Sync(ctx, storagemodels.NewTransform(&storagemodels.ReplaceRecord{Record: replacement})); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	got, _ := s.GetRecord(ctx, jupiter)
	if !reflect.DeepEqual(got, replacement) {
		t.Fatalf("Expected wholesale replacement, got %+v", got)
	}
}

func TestFieldOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("ReplaceAttributeCreatesRecord", func(t *testing.T) {
		s, _ := newTestStore(t)
		op := &storagemodels.ReplaceAttribute{Record: jupiter, Attribute: "name", Value: "Jupiter"}
		if err := s.Sync(ctx, storagemodels.NewTransform(op)); err != nil {
			t.Fatalf("Sync failed: %v", err)
		}
		got, _ := s.GetRecord(ctx, jupiter)
		if !reflect.DeepEqual(got, planet(jupiter, "Jupiter")) {
			t.Fatalf("Unexpected record: %+v", got)
		}
	})

	t.Run("ReplaceAttributeKeepsOtherFields", func(t *testing.T) {
		s, _ := newTestStore(t)
		r := planet(jupiter, "Jupiter")
		r.Attributes["classification"] = "gas giant"
		s.PutRecord(ctx, r)

		s.Sync(ctx, storagemodels.NewTransform(&storagemodels.ReplaceAttribute{Record: jupiter, Attribute: "name", Value: "Jove"}))
		got, _ := s.GetRecord(ctx, jupiter)
		if got.Attributes["name"] != "Jove" || got.Attributes["classification"] != "gas giant" {
			t.Fatalf("Unexpected attributes: %v", got.Attributes)
		}
	})

	t.Run("ReplaceKey", func(t *testing.T) {
		s, _ := newTestStore(t)
		s.PutRecord(ctx, planet(jupiter, "Jupiter"))
		op := &storagemodels.ReplaceKey{Record: jupiter, Key: "remoteId", Value: "p-5"}
		if err := s.Sync(ctx, storagemodels.NewTransform(op)); err != nil {
			t.Fatalf("Sync failed: %v", err)
		}
		got, _ := s.GetRecord(ctx, jupiter)
		if got.Keys["remoteId"] != "p-5" || got.Attributes["name"] != "Jupiter" {
			t.Fatalf("Unexpected record: %+v", got)
		}
	})

	t.Run("AddToRelatedRecords", func(t *testing.T) {
		s, _ := newTestStore(t)
		s.PutRecord(ctx, planet(jupiter, "Jupiter"))

		tr := storagemodels.NewTransform(
			&storagemodels.AddToRelatedRecords{Record: jupiter, Relationship: "moons", RelatedRecord: io},
			&storagemodels.AddToRelatedRecords{Record: jupiter, Relationship: "moons", RelatedRecord: europa},
			&storagemodels.AddToRelatedRecords{Record: jupiter, Relationship: "moons", RelatedRecord: io},
		)
		if err := s.Sync(ctx, tr); err != nil {
			t.Fatalf("Sync failed: %v", err)
		}
		got, _ := s.GetRecord(ctx, jupiter)
		if !reflect.DeepEqual(got.Relationships["moons"], storagemodels.ToMany(io, europa)) {
			t.Fatalf("Unexpected moons: %+v", got.Relationships["moons"])
		}
	})

	t.Run("RemoveFromRelatedRecords", func(t *testing.T) {
		s, _ := newTestStore(t)
		r := planet(jupiter, "Jupiter")
		r.Relationships = map[string]*storagemodels.Relationship{"moons": storagemodels.ToMany(io, europa)}
		s.PutRecord(ctx, r)

		op := &storagemodels.RemoveFromRelatedRecords{Record: jupiter, Relationship: "moons", RelatedRecord: io}
		if err := s.Sync(ctx, storagemodels.NewTransform(op)); err != nil {
			t.Fatalf("Sync failed: %v", err)
		}
		got, _ := s.GetRecord(ctx, jupiter)
		if !reflect.DeepEqual(got.Relationships["moons"], storagemodels.ToMany(europa)) {
			t.Fatalf("Unexpected moons: %+v", got.Relationships["moons"])
		}

		// Unknown relationship is left alone
		other := &storagemodels.RemoveFromRelatedRecords{Record: jupiter, Relationship: "rings", RelatedRecord: io}
		if err := s.Sync(ctx, storagemodels.NewTransform(other)); err != nil {
			t.Fatalf("Sync failed: %v", err)
		}
	})

	t.Run("RemoveFromRelatedRecordsOnAbsentRecord", func(t *testing.T) {
		s, m := newTestStore(t)
		op := &storagemodels.RemoveFromRelatedRecords{Record: jupiter, Relationship: "moons", RelatedRecord: io}
		if err := s.Sync(ctx, storagemodels.NewTransform(op)); err != nil {
			t.Fatalf("Sync failed: %v", err)
		}
		if m.Count() != 0 {
			t.Fatalf("Expected no record to be created, got %v", m.GetData())
		}
	})

	t.Run("ReplaceRelatedRecords", func(t *testing.T) {
		s, _ := newTestStore(t)
		r := planet(jupiter, "Jupiter")
		r.Relationships = map[string]*storagemodels.Relationship{"moons": storagemodels.ToMany(io)}
		s.PutRecord(ctx, r)

		op := &storagemodels.ReplaceRelatedRecords{Record: jupiter, Relationship: "moons", RelatedRecords: []storagemodels.RecordIdentity{europa}}
		s.Sync(ctx, storagemodels.NewTransform(op))
		got, _ := s.GetRecord(ctx, jupiter)
		if !reflect.DeepEqual(got.Relationships["moons"], storagemodels.ToMany(europa)) {
			t.Fatalf("Unexpected moons: %+v", got.Relationships["moons"])
		}

		empty := &storagemodels.ReplaceRelatedRecords{Record: jupiter, Relationship: "moons"}
		s.Sync(ctx, storagemodels.NewTransform(empty))
		got, _ = s.GetRecord(ctx, jupiter)
		if rel := got.Relationships["moons"]; !rel.ToMany || len(rel.Many) != 0 {
			t.Fatalf("Expected empty to-many relationship, got %+v", rel)
		}
	})

	t.Run("ReplaceRelatedRecord", func(t *testing.T) {
		s, _ := newTestStore(t)
		s.PutRecord(ctx, storagemodels.NewRecord(io))

		op := &storagemodels.ReplaceRelatedRecord{Record: io, Relationship: "planet", RelatedRecord: &jupiter}
		s.Sync(ctx, storagemodels.NewTransform(op))
		got, _ := s.GetRecord(ctx, io)
		rel := got.Relationships["planet"]
		if rel == nil || rel.ToMany || rel.One == nil || *rel.One != jupiter {
			t.Fatalf("Unexpected planet relationship: %+v", rel)
		}

		empty := &storagemodels.ReplaceRelatedRecord{Record: io, Relationship: "planet"}
		s.Sync(ctx, storagemodels.NewTransform(empty))
		got, _ = s.GetRecord(ctx, io)
		if rel := got.Relationships["planet"]; rel == nil || rel.One != nil {
			t.Fatalf("Expected null to-one relationship, got %+v", rel)
		}
	})
}
