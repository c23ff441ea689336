package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConstraintViolation indicates that an operation would break a data
// integrity rule, e.g. deleting an account that still has transactions.
var ErrConstraintViolation = errors.New("constraint violation")

// ErrStoreUnavailable indicates that the underlying storage could not be
// reached or initialized.
var ErrStoreUnavailable = errors.New("store unavailable")

// AppError wraps a lower-level failure with a status code and a
// human-readable message. Repositories use it so that raw driver errors
// never cross the store boundary.
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

// NewAppError creates a new AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
