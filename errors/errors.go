/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a named source, bucket or registry entry is not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when registering a name that is already taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailableMedium is returned when an adapter is constructed over a storage medium that is absent or disabled
	ErrUnavailableMedium = errors.New("storage medium unavailable")

	// ErrMissingSchema is returned when a record store is constructed without a schema
	ErrMissingSchema = errors.New("schema must be specified")

	// ErrDecode is returned when a stored raw value is not valid JSON
	ErrDecode = errors.New("stored value could not be decoded")

	// ErrUnsupportedOperation is returned when a transform contains an operation without a handler
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrUnsupportedQuery is returned when a query expression has no handler
	ErrUnsupportedQuery = errors.New("unsupported query")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// DecodeError reports a stored value at Key that is not valid JSON
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding value at key %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnsupportedOperationError names a transform operation kind with no handler
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation %q", e.Op)
}

func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// UnsupportedQueryError names a query expression kind with no handler
type UnsupportedQueryError struct {
	Op string
}

func (e *UnsupportedQueryError) Error() string {
	return fmt.Sprintf("unsupported query %q", e.Op)
}

func (e *UnsupportedQueryError) Is(target error) bool {
	return target == ErrUnsupportedQuery
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(key string, err error) error {
	return &DecodeError{Key: key, Err: err}
}

// NewUnsupportedOperationError creates a new UnsupportedOperationError
func NewUnsupportedOperationError(op string) error {
	return &UnsupportedOperationError{Op: op}
}

// NewUnsupportedQueryError creates a new UnsupportedQueryError
func NewUnsupportedQueryError(op string) error {
	return &UnsupportedQueryError{Op: op}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnavailableMedium checks if an error reports an unavailable storage medium
func IsUnavailableMedium(err error) bool {
	return errors.Is(err, ErrUnavailableMedium)
}

// IsMissingSchema checks if an error reports a missing schema
func IsMissingSchema(err error) bool {
	return errors.Is(err, ErrMissingSchema)
}

// IsDecodeError checks if an error is a decode error
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsUnsupportedOperation checks if an error is an unsupported operation error
func IsUnsupportedOperation(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation)
}

// IsUnsupportedQuery checks if an error is an unsupported query error
func IsUnsupportedQuery(err error) bool {
	return errors.Is(err, ErrUnsupportedQuery)
}
