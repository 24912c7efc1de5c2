/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package source

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/suparena/recordkv/errors"
	"github.com/suparena/recordkv/medium/memory"
	"github.com/suparena/recordkv/schema"
	"github.com/suparena/recordkv/storagemodels"
)

var (
	jupiter = storagemodels.RecordIdentity{Type: "planet", ID: "jupiter"}
	earth   = storagemodels.RecordIdentity{Type: "planet", ID: "earth"}
	io      = storagemodels.RecordIdentity{Type: "moon", ID: "io"}
	europa  = storagemodels.RecordIdentity{Type: "moon", ID: "europa"}
)

func newTestStore(t *testing.T, opts ...storagemodels.Option) (*Store, *memory.Medium) {
	t.Helper()
	m := memory.New()
	s, err := New(m, &schema.Schema{}, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s, m
}

func planet(id storagemodels.RecordIdentity, name string) *storagemodels.Record {
	r := storagemodels.NewRecord(id)
	r.Attributes = map[string]any{"name": name}
	return r
}

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		s, _ := newTestStore(t)
		if s.Name() != "localStorage" || s.Namespace() != "orbit" || s.Delimiter() != "/" {
			t.Fatalf("Unexpected defaults: %s %s %s", s.Name(), s.Namespace(), s.Delimiter())
		}
		if s.Schema() == nil {
			t.Fatal("Schema should be kept")
		}
	})

	t.Run("MissingSchema", func(t *testing.T) {
		m := memory.New()
		m.SetAvailable(false)
		if _, err := New(m, nil); !errors.IsMissingSchema(err) {
			t.Fatalf("Expected missing schema error, got: %v", err)
		}
	})

	t.Run("UnavailableMedium", func(t *testing.T) {
		m := memory.New()
		m.SetAvailable(false)
		if _, err := New(m, &schema.Schema{}); !errors.IsUnavailableMedium(err) {
			t.Fatalf("Expected unavailable medium error, got: %v", err)
		}
	})
}

func TestKeyForRecord(t *testing.T) {
	s, _ := newTestStore(t)
	if got := s.KeyForRecord(jupiter); got != "orbit/planet/jupiter" {
		t.Fatalf("Unexpected key: %s", got)
	}

	custom, _ := newTestStore(t, storagemodels.WithNamespace("app"), storagemodels.WithDelimiter(":"))
	if got := custom.KeyForRecord(jupiter); got != "app:planet:jupiter" {
		t.Fatalf("Unexpected key: %s", got)
	}
}

func TestRecordLifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	r := planet(jupiter, "Jupiter")
	r.Keys = map[string]string{"remoteId": "p-5"}
	r.Attributes["mass"] = float64(317.8)
	r.Relationships = map[string]*storagemodels.Relationship{
		"moons": storagemodels.ToMany(io, europa),
		"star":  storagemodels.ToOne(&storagemodels.RecordIdentity{Type: "star", ID: "sun"}),
	}

	if got, err := s.GetRecord(ctx, jupiter); err != nil || got != nil {
		t.Fatalf("Expected nil before put, got %+v (err %v)", got, err)
	}

	if err := s.PutRecord(ctx, r); err != nil {
		t.Fatalf("PutRecord failed: %v", err)
	}
	got, err := s.GetRecord(ctx, jupiter)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if !reflect.DeepEqual(got, r) {
		t.Fatalf("GetRecord returned %+v, want %+v", got, r)
	}

	// Put replaces wholesale
	if err := s.PutRecord(ctx, storagemodels.NewRecord(jupiter)); err != nil {
		t.Fatal(err)
	}
	got, _ = s.GetRecord(ctx, jupiter)
	if got.Attributes != nil || got.Relationships != nil {
		t.Fatalf("Expected wholesale replace, got %+v", got)
	}

	if err := s.RemoveRecord(ctx, jupiter); err != nil {
		t.Fatalf("RemoveRecord failed: %v", err)
	}
	if got, _ := s.GetRecord(ctx, jupiter); got != nil {
		t.Fatalf("Expected nil after remove, got %+v", got)
	}
	if err := s.RemoveRecord(ctx, jupiter); err != nil {
		t.Fatalf("RemoveRecord of absent record failed: %v", err)
	}

	if err := s.PutRecord(ctx, nil); !errors.IsValidationError(err) {
		t.Fatalf("Expected validation error for nil record, got: %v", err)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)

	s.PutRecord(ctx, planet(jupiter, "Jupiter"))
	s.PutRecord(ctx, storagemodels.NewRecord(io))
	m.SetItem(ctx, "orbit-bucket/planet", `"kept"`)
	m.SetItem(ctx, "other/planet/mars", `{}`)

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	expected := map[string]string{
		"orbit-bucket/planet": `"kept"`,
		"other/planet/mars":   `{}`,
	}
	if !reflect.DeepEqual(m.GetData(), expected) {
		t.Fatalf("Unexpected data after reset: %v", m.GetData())
	}
}

func TestRecords(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)

	s.PutRecord(ctx, planet(jupiter, "Jupiter"))
	s.PutRecord(ctx, planet(earth, "Earth"))
	s.PutRecord(ctx, storagemodels.NewRecord(io))
	m.SetItem(ctx, "orbit/stray", `{}`)
	m.SetItem(ctx, "orbit-bucket/planet/x", `{}`)

	all, err := s.Records(ctx, "")
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(all))
	}

	planets, err := s.Records(ctx, "planet")
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(planets) != 2 || planets[0].ID != "earth" || planets[1].ID != "jupiter" {
		t.Fatalf("Expected earth, jupiter in key order, got %+v", planets)
	}

	none, err := s.Records(ctx, "comet")
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("Expected empty result, got %v (err %v)", none, err)
	}
}

func TestDecodeError(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)
	m.SetItem(ctx, "orbit/planet/jupiter", "{broken")

	_, err := s.GetRecord(ctx, jupiter)
	if !errors.IsDecodeError(err) {
		t.Fatalf("Expected decode error, got: %v", err)
	}

	var decodeErr *errors.DecodeError
	if !stderrors.As(err, &decodeErr) || decodeErr.Key != "orbit/planet/jupiter" {
		t.Fatalf("Expected decode error carrying the key, got: %v", err)
	}
}

func TestMediumErrors(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStore(t)
	m.WithKeysError(errors.ErrUnavailableMedium)

	if err := s.Reset(ctx); !errors.IsUnavailableMedium(err) {
		t.Fatalf("Expected medium error from Reset, got: %v", err)
	}
	if _, err := s.Records(ctx, ""); !errors.IsUnavailableMedium(err) {
		t.Fatalf("Expected medium error from Records, got: %v", err)
	}

	m.WithSetError(errors.ErrUnavailableMedium)
	err := s.Sync(ctx, storagemodels.NewTransform(&storagemodels.AddRecord{Record: planet(jupiter, "Jupiter")}))
	if !errors.IsUnavailableMedium(err) {
		t.Fatalf("Expected medium error from Sync, got: %v", err)
	}
}

func TestWireRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	doc := `{
		"id": "t1",
		"operations": [
			{"op": "addRecord", "record": {"type": "planet", "id": "jupiter", "attributes": {"name": "Jupiter"}}},
			{"op": "addRecord", "record": {"type": "moon", "id": "io", "attributes": {"name": "Io"}}},
			{"op": "addToRelatedRecords", "record": {"type": "planet", "id": "jupiter"}, "relationship": "moons", "relatedRecord": {"type": "moon", "id": "io"}}
		]
	}`
	var tr storagemodels.Transform
	if err := json.Unmarshal([]byte(doc), &tr); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if err := s.Sync(ctx, &tr); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	var q storagemodels.Query
	if err := json.Unmarshal([]byte(`{"id":"q1","expression":{"op":"findRelatedRecords","record":{"type":"planet","id":"jupiter"},"relationship":"moons"}}`), &q); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	result, err := s.Pull(ctx, &q)
	if err != nil {
		t.Fatalf("Pull failed: %v", err)
	}
	if len(result) != 1 || len(result[0].Operations) != 2 {
		t.Fatalf("Unexpected pull result: %+v", result)
	}
	add, ok := result[0].Operations[0].(*storagemodels.AddRecord)
	if !ok || add.Record.Attributes["name"] != "Io" {
		t.Fatalf("Expected addRecord for io, got %+v", result[0].Operations[0])
	}
}
