package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spec-kit/auth-service/internal/domain"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError. Sentinel errors from
// the auth core map to their HTTP statuses; anything unrecognized becomes an
// internal error. Authentication failures keep a single undifferentiated
// message regardless of cause.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		de, _ := NewValidationError(validationErr.Error(), nil).(*DomainError)
		return de
	}
	if errors.Is(err, domain.ErrDuplicateUsername) {
		de, _ := NewConflict("username already taken", nil).(*DomainError)
		return de
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		de, _ := NewUnauthorized("invalid credentials").(*DomainError)
		return de
	}
	if errors.Is(err, domain.ErrAccountNotFound) {
		de, _ := NewNotFound("account", nil).(*DomainError)
		return de
	}

	de, _ := NewInternalError(err).(*DomainError)
	return de
}

func MapError(err error) error {
	return ToDomainError(err)
}
