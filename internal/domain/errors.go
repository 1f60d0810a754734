package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateUsername signals a signup conflict on the unique username index.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrAccountNotFound signals a username with no stored account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	// The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers bad signatures, malformed tokens and expiry.
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
