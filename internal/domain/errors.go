package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories and services. Match them with errors.Is.
var (
	// ErrInvalidInput is returned for malformed weekday, time, offset or id input. It is
	// raised before any store access.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when an operation references a slot, community or relation
	// that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is a uniqueness violation that the upsert logic did not absorb. It points to
	// a storage-layer bug rather than a user error.
	ErrConflict = errors.New("conflict")
	// ErrStore wraps transport or connection failures of the underlying store.
	ErrStore = errors.New("store unavailable")
)

// ValidationError describes a single rejected input field. It unwraps to ErrInvalidInput.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// StoreError wraps a persistence failure. It matches both ErrStore and the driver error.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err as a failure of op.
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() []error { return []error{ErrStore, e.Err} }
