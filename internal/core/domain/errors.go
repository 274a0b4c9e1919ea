package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrAdminExists          = errors.New("admin already exists")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrImageNotFound        = errors.New("image not found")
	ErrForbidden            = errors.New("access forbidden")
	ErrTooManyLoginAttempts = errors.New("too many login attempts")
)

// ValidationError reports malformed or missing input, naming the offending
// field. Validation runs before any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for field with a message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
