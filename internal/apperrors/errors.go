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

// ErrStoreUnavailable indicates the ledger store could not be reached or dropped the
// connection mid-operation. Callers should retry the whole operation.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrInvalidTransition indicates a job status change that its current status does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrConsistency marks a non-fatal ledger inconsistency, such as a period settled twice.
var ErrConsistency = errors.New("consistency warning")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
