/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("source", "main")

	expected := `source with key "main" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("bucket", "session")

	expected := `bucket with key "session" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "namespace",
			message:  "must not be empty",
			expected: `validation failed for field "namespace": must not be empty`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestDecodeError(t *testing.T) {
	var target any
	cause := json.Unmarshal([]byte("{not json"), &target)
	err := NewDecodeError("orbit/planet/jupiter", cause)

	if !IsDecodeError(err) {
		t.Error("IsDecodeError should return true for DecodeError")
	}

	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Error("DecodeError should unwrap to the underlying json error")
	}
}

func TestUnsupportedErrors(t *testing.T) {
	opErr := NewUnsupportedOperationError("teleportRecord")
	if opErr.Error() != `unsupported operation "teleportRecord"` {
		t.Errorf("Unexpected message: %q", opErr.Error())
	}
	if !IsUnsupportedOperation(opErr) {
		t.Error("IsUnsupportedOperation should return true")
	}
	if IsUnsupportedQuery(opErr) {
		t.Error("operation error should not match ErrUnsupportedQuery")
	}

	queryErr := NewUnsupportedQueryError("findPlanets")
	if queryErr.Error() != `unsupported query "findPlanets"` {
		t.Errorf("Unexpected message: %q", queryErr.Error())
	}
	if !IsUnsupportedQuery(queryErr) {
		t.Error("IsUnsupportedQuery should return true")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewUnsupportedOperationError("teleportRecord")
	wrapped := fmt.Errorf("applying transform: %w", original)

	if !errors.Is(wrapped, ErrUnsupportedOperation) {
		t.Error("Wrapped UnsupportedOperationError should still match ErrUnsupportedOperation")
	}

	construction := fmt.Errorf("new source: %w", ErrUnavailableMedium)
	if !IsUnavailableMedium(construction) {
		t.Error("IsUnavailableMedium should work with wrapped errors")
	}
	if !IsMissingSchema(fmt.Errorf("new source: %w", ErrMissingSchema)) {
		t.Error("IsMissingSchema should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrUnavailableMedium,
		ErrMissingSchema,
		ErrDecode,
		ErrUnsupportedOperation,
		ErrUnsupportedQuery,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
