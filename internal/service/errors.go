package service

import (
	"errors"
	"fmt"
)

// Expected business failures are tagged values, never panics and never
// raw storage errors. Ownership failures are deliberately reported as
// ErrNotFound so callers cannot probe for other users' entities.
var (
	ErrNotFound           = errors.New("not found")
	ErrCategoryInUse      = errors.New("category is referenced by transactions")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError is a field-level input rejection detected before any
// storage access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a field-level rejection.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a field-level rejection.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
