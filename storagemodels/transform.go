/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Transform is an ordered sequence of operations representing one intended change.
type Transform struct {
	ID         string      `json:"id"`
	Operations []Operation `json:"operations"`
}

// NewTransform wraps ops in a transform with a fresh id.
func NewTransform(ops ...Operation) *Transform {
	if ops == nil {
		ops = []Operation{}
	}
	return &Transform{ID: uuid.NewString(), Operations: ops}
}

func (t *Transform) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID         string            `json:"id"`
		Operations []json.RawMessage `json:"operations"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	ops := make([]Operation, 0, len(raw.Operations))
	for i, data := range raw.Operations {
		op, err := DecodeOperation(data)
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	t.ID = raw.ID
	t.Operations = ops
	return nil
}
