package domain

import "errors"

var (
	// ErrNotFound is returned when an item, record or session does not exist
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when a record belongs to another user
	ErrForbidden = errors.New("record belongs to another user")
	// ErrConflict is returned when a write lost against a concurrent one
	ErrConflict = errors.New("concurrent modification")
)

// ValidationError reports malformed input on a single field
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a validation error for field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// StoreError wraps a failure of the underlying database
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err as a store failure of operation op
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return "store unavailable: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
