package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that the resource is not in a state that allows the operation.
var ErrInvalidState = errors.New("invalid state")

// ErrForbidden indicates that the caller does not own or may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP status, a public message and the internal cause.
// Is() matches the sentinel that corresponds to its status so callers can keep using errors.Is.
type AppError struct {
	Status  int
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *AppError) Unwrap() error { return e.Cause }

func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrValidation:
		return e.Status == http.StatusBadRequest
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrInvalidState:
		return e.Status == http.StatusConflict
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	}
	return false
}

// NewAppError creates an AppError with an explicit status.
func NewAppError(status int, message string, cause error) error {
	return &AppError{Status: status, Message: message, Cause: cause}
}

// NewNotFoundError creates an error matching ErrNotFound.
func NewNotFoundError(message string) error {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// NewValidationError creates an error matching ErrValidation.
func NewValidationError(message string) error {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// NewForbiddenError creates an error matching ErrForbidden.
func NewForbiddenError(message string) error {
	return &AppError{Status: http.StatusForbidden, Message: message}
}

// NewInvalidStateError creates an error matching ErrInvalidState.
func NewInvalidStateError(message string) error {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// Kind returns the stable error kind exposed to API clients and the matching HTTP status.
func Kind(err error) (string, int) {
	switch {
	case errors.Is(err, ErrValidation):
		return "VALIDATION", http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED", http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN", http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND", http.StatusNotFound
	case errors.Is(err, ErrInvalidState):
		return "INVALID_STATE", http.StatusConflict
	case errors.Is(err, ErrDuplicate):
		return "DUPLICATE", http.StatusConflict
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return "INTERNAL", appErr.Status
	}
	return "INTERNAL", http.StatusInternalServerError
}
