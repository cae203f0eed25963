package domain

import (
	"errors"
	"fmt"
)

// ErrInvoiceNotFound indicates a lookup for an invoice id that does not
// exist. Absence is a normal outcome, not a storage failure.
var ErrInvoiceNotFound = errors.New("invoice not found")

// ValidationError reports the first field that failed input validation.
type ValidationError struct {
	// Field is the name of the offending field, e.g. "email" or
	// "items[2].quantity".
	Field string

	// Message describes why the field was rejected.
	Message string
}

// Error returns a string representation of the error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// StorageError represents a failure in the persistence layer. Any
// StorageError raised during create means the transaction was rolled back
// and no partial invoice is visible.
type StorageError struct {
	// Op is the storage operation that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// RenderError represents a failure while producing the PDF document. A
// missing logo is not a RenderError; an unwritable output directory or a
// layout engine failure is.
type RenderError struct {
	// Op is the rendering step that failed
	Op string

	// Err is the underlying error
	Err error
}

// Error returns a string representation of the error.
func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error {
	return e.Err
}
