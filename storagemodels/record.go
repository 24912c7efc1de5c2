/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"bytes"
	"encoding/json"
)

// RecordIdentity is the (type, id) pair that identifies a record.
type RecordIdentity struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Record is the unit stored by a source.
// The storage key depends only on Type and ID, never on attribute content.
type Record struct {
	Type          string                   `json:"type"`
	ID            string                   `json:"id"`
	Keys          map[string]string        `json:"keys,omitempty"`
	Attributes    map[string]any           `json:"attributes,omitempty"`
	Relationships map[string]*Relationship `json:"relationships,omitempty"`
}

// Identity returns the record's (type, id) pair.
func (r *Record) Identity() RecordIdentity {
	return RecordIdentity{Type: r.Type, ID: r.ID}
}

// NewRecord returns a record carrying only the given identity.
func NewRecord(id RecordIdentity) *Record {
	return &Record{Type: id.Type, ID: id.ID}
}

// Relationship holds the linkage data of one relationship.
// A to-many relationship serializes as {"data": [...]}, a to-one as
// {"data": {...}} or {"data": null}.
type Relationship struct {
	Many   []RecordIdentity
	One    *RecordIdentity
	ToMany bool
}

// ToMany returns a to-many relationship over ids.
func ToMany(ids ...RecordIdentity) *Relationship {
	if ids == nil {
		ids = []RecordIdentity{}
	}
	return &Relationship{Many: ids, ToMany: true}
}

// ToOne returns a to-one relationship; id may be nil.
func ToOne(id *RecordIdentity) *Relationship {
	return &Relationship{One: id}
}

type relationshipJSON struct {
	Data json.RawMessage `json:"data"`
}

func (r Relationship) MarshalJSON() ([]byte, error) {
	var data any
	if r.ToMany {
		many := r.Many
		if many == nil {
			many = []RecordIdentity{}
		}
		data = many
	} else {
		data = r.One
	}
	return json.Marshal(struct {
		Data any `json:"data"`
	}{data})
}

func (r *Relationship) UnmarshalJSON(b []byte) error {
	var raw relationshipJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = Relationship{}

	data := bytes.TrimSpace(raw.Data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '[':
		r.ToMany = true
		return json.Unmarshal(data, &r.Many)
	default:
		r.One = &RecordIdentity{}
		return json.Unmarshal(data, r.One)
	}
}
