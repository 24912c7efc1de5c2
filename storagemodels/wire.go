/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"bytes"
	"encoding/json"

	"github.com/suparena/recordkv/errors"
)

// withOp marshals v (which must be a JSON object) with a leading "op" member.
func withOp(op string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	tag, err := json.Marshal(op)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"op":`)
	buf.Write(tag)
	if rest := bytes.TrimSpace(body[1:]); len(rest) > 1 {
		buf.WriteByte(',')
		buf.Write(rest)
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// peekOp reads the "op" member of a JSON object.
func peekOp(data []byte) (string, error) {
	var tagged struct {
		Op string `json:"op"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return "", err
	}
	if tagged.Op == "" {
		return "", errors.NewValidationError("op", "missing operation kind")
	}
	return tagged.Op, nil
}
