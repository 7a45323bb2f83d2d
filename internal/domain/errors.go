package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrObjectStore marks any failure reported by the external object store.
	ErrObjectStore = errors.New("object store error")
	// ErrDriveNotConnected is returned when the user has no stored Drive credentials.
	ErrDriveNotConnected = errors.New("drive not connected")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ObjectStoreError wraps a failure of one external object store call.
// It matches ErrObjectStore and whatever the underlying error matches,
// so a missing object also satisfies errors.Is(err, ErrNotFound).
type ObjectStoreError struct {
	Op  string
	Err error
}

func (e *ObjectStoreError) Error() string {
	return fmt.Sprintf("object store %s: %v", e.Op, e.Err)
}

func (e *ObjectStoreError) Unwrap() []error { return []error{ErrObjectStore, e.Err} }

// NewObjectStoreError wraps err as a failure of operation op.
func NewObjectStoreError(op string, err error) *ObjectStoreError {
	return &ObjectStoreError{Op: op, Err: err}
}

// BatchFailure describes one item of a batch operation that did not succeed.
type BatchFailure struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Message string `json:"error"`
}
