package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
// It is also returned for resources that exist under another organization,
// so callers cannot probe for data outside their tenant.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, malformed or expired credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidCredentials is returned by login for both an unknown email and a
// wrong password, so the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AppError carries an HTTP-ish status code, a caller-safe message and the
// underlying cause. The cause is logged but never serialized to the caller.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewConflictError creates an AppError that matches errors.Is(err, ErrDuplicate).
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError creates an AppError that matches errors.Is(err, ErrValidation).
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewUnauthorizedError creates an AppError that matches errors.Is(err, ErrUnauthorized).
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: 401, Message: message, Err: ErrUnauthorized}
}
