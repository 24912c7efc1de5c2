/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/suparena/recordkv/registry"
)

// Expression kinds as they appear in the "op" field on the wire.
const (
	OpFindRecord         = "findRecord"
	OpFindRecords        = "findRecords"
	OpFindRelatedRecord  = "findRelatedRecord"
	OpFindRelatedRecords = "findRelatedRecords"
)

// Expression is a read intent. Like Operation, the set of implementations is closed.
type Expression interface {
	Op() string
	isExpression()
}

// FindRecord reads a single record by identity.
type FindRecord struct {
	Record RecordIdentity `json:"record"`
}

// FindRecords reads every record, or every record of Type if set.
type FindRecords struct {
	Type string `json:"type,omitempty"`
}

// FindRelatedRecord reads the record a to-one relationship points at.
type FindRelatedRecord struct {
	Record       RecordIdentity `json:"record"`
	Relationship string         `json:"relationship"`
}

// FindRelatedRecords reads the records a to-many relationship points at.
type FindRelatedRecords struct {
	Record       RecordIdentity `json:"record"`
	Relationship string         `json:"relationship"`
}

// UnknownExpression carries an expression whose kind has no registered type.
type UnknownExpression struct {
	Name string
	Raw  json.RawMessage
}

func (*FindRecord) Op() string          { return OpFindRecord }
func (*FindRecords) Op() string         { return OpFindRecords }
func (*FindRelatedRecord) Op() string   { return OpFindRelatedRecord }
func (*FindRelatedRecords) Op() string  { return OpFindRelatedRecords }
func (e *UnknownExpression) Op() string { return e.Name }

func (*FindRecord) isExpression()         {}
func (*FindRecords) isExpression()        {}
func (*FindRelatedRecord) isExpression()  {}
func (*FindRelatedRecords) isExpression() {}
func (*UnknownExpression) isExpression()  {}

func (e FindRecord) MarshalJSON() ([]byte, error) {
	type plain FindRecord
	return withOp(OpFindRecord, plain(e))
}

func (e FindRecords) MarshalJSON() ([]byte, error) {
	type plain FindRecords
	return withOp(OpFindRecords, plain(e))
}

func (e FindRelatedRecord) MarshalJSON() ([]byte, error) {
	type plain FindRelatedRecord
	return withOp(OpFindRelatedRecord, plain(e))
}

func (e FindRelatedRecords) MarshalJSON() ([]byte, error) {
	type plain FindRelatedRecords
	return withOp(OpFindRelatedRecords, plain(e))
}

func (e UnknownExpression) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	return withOp(e.Name, struct{}{})
}

var expressionTypes = registry.New[Expression]("expression")

func init() {
	expressionTypes.Register(OpFindRecord, func() Expression { return &FindRecord{} })
	expressionTypes.Register(OpFindRecords, func() Expression { return &FindRecords{} })
	expressionTypes.Register(OpFindRelatedRecord, func() Expression { return &FindRelatedRecord{} })
	expressionTypes.Register(OpFindRelatedRecords, func() Expression { return &FindRelatedRecords{} })
}

// ExpressionKinds returns the expression kinds that decode to a concrete type.
func ExpressionKinds() []string {
	return expressionTypes.Names()
}

// DecodeExpression decodes a single wire-level query expression.
// An unregistered "op" yields an *UnknownExpression rather than an error.
func DecodeExpression(data []byte) (Expression, error) {
	op, err := peekOp(data)
	if err != nil {
		return nil, fmt.Errorf("decoding expression: %w", err)
	}
	if !expressionTypes.Has(op) {
		return &UnknownExpression{Name: op, Raw: append(json.RawMessage(nil), data...)}, nil
	}
	expr, err := expressionTypes.New(op)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, expr); err != nil {
		return nil, fmt.Errorf("decoding %s expression: %w", op, err)
	}
	return expr, nil
}

// Query is a described read.
type Query struct {
	ID         string     `json:"id"`
	Expression Expression `json:"expression"`
}

// NewQuery wraps expr in a query with a fresh id.
func NewQuery(expr Expression) *Query {
	return &Query{ID: uuid.NewString(), Expression: expr}
}

func (q *Query) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID         string          `json:"id"`
		Expression json.RawMessage `json:"expression"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	expr, err := DecodeExpression(raw.Expression)
	if err != nil {
		return err
	}
	q.ID = raw.ID
	q.Expression = expr
	return nil
}
