/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"encoding/json"
	"fmt"

	"github.com/suparena/recordkv/registry"
)

// Operation kinds as they appear in the "op" field on the wire.
const (
	OpAddRecord                = "addRecord"
	OpReplaceRecord            = "replaceRecord"
	OpRemoveRecord             = "removeRecord"
	OpReplaceKey               = "replaceKey"
	OpReplaceAttribute         = "replaceAttribute"
	OpAddToRelatedRecords      = "addToRelatedRecords"
	OpRemoveFromRelatedRecords = "removeFromRelatedRecords"
	OpReplaceRelatedRecord     = "replaceRelatedRecord"
	OpReplaceRelatedRecords    = "replaceRelatedRecords"
)

// Operation is a single atomic change to record state.
// The set of implementations is closed: only pointers to the types in this
// file satisfy it.
type Operation interface {
	Op() string
	isOperation()
}

// AddRecord stores Record as given.
type AddRecord struct {
	Record *Record `json:"record"`
}

// ReplaceRecord stores Record wholesale, replacing any prior value.
type ReplaceRecord struct {
	Record *Record `json:"record"`
}

// RemoveRecord deletes the identified record.
type RemoveRecord struct {
	Record RecordIdentity `json:"record"`
}

// ReplaceKey sets one alternate key of a record.
type ReplaceKey struct {
	Record RecordIdentity `json:"record"`
	Key    string         `json:"key"`
	Value  string         `json:"value"`
}

// ReplaceAttribute sets one attribute of a record.
type ReplaceAttribute struct {
	Record    RecordIdentity `json:"record"`
	Attribute string         `json:"attribute"`
	Value     any            `json:"value"`
}

// AddToRelatedRecords appends RelatedRecord to a to-many relationship.
type AddToRelatedRecords struct {
	Record        RecordIdentity `json:"record"`
	Relationship  string         `json:"relationship"`
	RelatedRecord RecordIdentity `json:"relatedRecord"`
}

// RemoveFromRelatedRecords drops RelatedRecord from a to-many relationship.
type RemoveFromRelatedRecords struct {
	Record        RecordIdentity `json:"record"`
	Relationship  string         `json:"relationship"`
	RelatedRecord RecordIdentity `json:"relatedRecord"`
}

// ReplaceRelatedRecord sets a to-one relationship; nil clears it.
type ReplaceRelatedRecord struct {
	Record        RecordIdentity  `json:"record"`
	Relationship  string          `json:"relationship"`
	RelatedRecord *RecordIdentity `json:"relatedRecord"`
}

// ReplaceRelatedRecords sets a to-many relationship.
type ReplaceRelatedRecords struct {
	Record         RecordIdentity   `json:"record"`
	Relationship   string           `json:"relationship"`
	RelatedRecords []RecordIdentity `json:"relatedRecords"`
}

// UnknownOperation carries an operation whose kind has no registered type.
// It decodes without error so the failure surfaces when the transform is applied.
type UnknownOperation struct {
	Name string
	Raw  json.RawMessage
}

func (*AddRecord) Op() string                { return OpAddRecord }
func (*ReplaceRecord) Op() string            { return OpReplaceRecord }
func (*RemoveRecord) Op() string             { return OpRemoveRecord }
func (*ReplaceKey) Op() string               { return OpReplaceKey }
func (*ReplaceAttribute) Op() string         { return OpReplaceAttribute }
func (*AddToRelatedRecords) Op() string      { return OpAddToRelatedRecords }
func (*RemoveFromRelatedRecords) Op() string { return OpRemoveFromRelatedRecords }
func (*ReplaceRelatedRecord) Op() string     { return OpReplaceRelatedRecord }
func (*ReplaceRelatedRecords) Op() string    { return OpReplaceRelatedRecords }
func (o *UnknownOperation) Op() string       { return o.Name }

func (*AddRecord) isOperation()                {}
func (*ReplaceRecord) isOperation()            {}
func (*RemoveRecord) isOperation()             {}
func (*ReplaceKey) isOperation()               {}
func (*ReplaceAttribute) isOperation()         {}
func (*AddToRelatedRecords) isOperation()      {}
func (*RemoveFromRelatedRecords) isOperation() {}
func (*ReplaceRelatedRecord) isOperation()     {}
func (*ReplaceRelatedRecords) isOperation()    {}
func (*UnknownOperation) isOperation()         {}

func (o AddRecord) MarshalJSON() ([]byte, error) {
	type plain AddRecord
	return withOp(OpAddRecord, plain(o))
}

func (o ReplaceRecord) MarshalJSON() ([]byte, error) {
	type plain ReplaceRecord
	return withOp(OpReplaceRecord, plain(o))
}

func (o RemoveRecord) MarshalJSON() ([]byte, error) {
	type plain RemoveRecord
	return withOp(OpRemoveRecord, plain(o))
}

func (o ReplaceKey) MarshalJSON() ([]byte, error) {
	type plain ReplaceKey
	return withOp(OpReplaceKey, plain(o))
}

func (o ReplaceAttribute) MarshalJSON() ([]byte, error) {
	type plain ReplaceAttribute
	return withOp(OpReplaceAttribute, plain(o))
}

func (o AddToRelatedRecords) MarshalJSON() ([]byte, error) {
	type plain AddToRelatedRecords
	return withOp(OpAddToRelatedRecords, plain(o))
}

func (o RemoveFromRelatedRecords) MarshalJSON() ([]byte, error) {
	type plain RemoveFromRelatedRecords
	return withOp(OpRemoveFromRelatedRecords, plain(o))
}

func (o ReplaceRelatedRecord) MarshalJSON() ([]byte, error) {
	type plain ReplaceRelatedRecord
	return withOp(OpReplaceRelatedRecord, plain(o))
}

func (o ReplaceRelatedRecords) MarshalJSON() ([]byte, error) {
	type plain ReplaceRelatedRecords
	return withOp(OpReplaceRelatedRecords, plain(o))
}

// MarshalJSON writes back the raw input it was decoded from.
func (o UnknownOperation) MarshalJSON() ([]byte, error) {
	if len(o.Raw) > 0 {
		return o.Raw, nil
	}
	return withOp(o.Name, struct{}{})
}

var operationTypes = registry.New[Operation]("operation")

func init() {
	operationTypes.Register(OpAddRecord, func() Operation { return &AddRecord{} })
	operationTypes.Register(OpReplaceRecord, func() Operation { return &ReplaceRecord{} })
	operationTypes.Register(OpRemoveRecord, func() Operation { return &RemoveRecord{} })
	operationTypes.Register(OpReplaceKey, func() Operation { return &ReplaceKey{} })
	operationTypes.Register(OpReplaceAttribute, func() Operation { return &ReplaceAttribute{} })
	operationTypes.Register(OpAddToRelatedRecords, func() Operation { return &AddToRelatedRecords{} })
	operationTypes.Register(OpRemoveFromRelatedRecords, func() Operation { return &RemoveFromRelatedRecords{} })
	operationTypes.Register(OpReplaceRelatedRecord, func() Operation { return &ReplaceRelatedRecord{} })
	operationTypes.Register(OpReplaceRelatedRecords, func() Operation { return &ReplaceRelatedRecords{} })
}

// OperationKinds returns the operation kinds that decode to a concrete type.
func OperationKinds() []string {
	return operationTypes.Names()
}

// DecodeOperation decodes a single wire-level operation.
// An unregistered "op" yields an *UnknownOperation rather than an error.
func DecodeOperation(data []byte) (Operation, error) {
	op, err := peekOp(data)
	if err != nil {
		return nil, fmt.Errorf("decoding operation: %w", err)
	}
	if !operationTypes.Has(op) {
		return &UnknownOperation{Name: op, Raw: append(json.RawMessage(nil), data...)}, nil
	}
	operation, err := operationTypes.New(op)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, operation); err != nil {
		return nil, fmt.Errorf("decoding %s operation: %w", op, err)
	}
	return operation, nil
}
