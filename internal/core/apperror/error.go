// Package apperror provides structured error handling for the back-office.
// All expected business failures use AppError so callers can attribute a
// specific cause; only genuine store faults stay opaque.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// Infrastructure (5xx)
	CodeInternal = "INTERNAL_ERROR"
	CodeStore    = "STORE_FAILURE"

	// Validation (400)
	CodeValidation = "VALIDATION_ERROR"

	// Business rule violations (422)
	CodeEmptySection = "EMPTY_SECTION"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"

	// Conflict (409)
	CodeConflict         = "CONFLICT"
	CodeAlreadyExists    = "ALREADY_EXISTS"
	CodeReferenceMissing = "REFERENCE_MISSING"
)

// AppError is the standard error type for the service.
// It implements the error interface and provides structured details for
// API responses and console messages.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field errors, causes, etc.)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions for common errors ---

// NewValidation creates a validation error (400)
func NewValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, key any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "key": key},
	}
}

// NewAlreadyExists creates a duplicate primary key error (409)
func NewAlreadyExists(entity string, key any) *AppError {
	return &AppError{
		Code:       CodeAlreadyExists,
		Message:    fmt.Sprintf("%s already exists", entity),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "key": key},
	}
}

// NewReferenceMissing creates an error for an absent referenced entity (409).
// entity is the entity being written, reference the absent one.
func NewReferenceMissing(entity, reference string, key any) *AppError {
	return &AppError{
		Code:       CodeReferenceMissing,
		Message:    fmt.Sprintf("%s references a %s that does not exist", entity, reference),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "reference": reference, "key": key},
	}
}

// NewEmptySection creates a soft failure for a bulk operation that matched
// no rows (422)
func NewEmptySection(sectionCode, what string) *AppError {
	return &AppError{
		Code:       CodeEmptySection,
		Message:    fmt.Sprintf("section has no %s", what),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"section": sectionCode},
	}
}

// NewConflict creates a conflict error (409)
func NewConflict(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewStore creates an opaque store failure (500). The cause is kept for
// logs, never classified for the caller.
func NewStore(err error) *AppError {
	return &AppError{
		Code:       CodeStore,
		Message:    "store operation failed",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsAlreadyExists checks if error is CodeAlreadyExists
func IsAlreadyExists(err error) bool {
	return hasCode(err, CodeAlreadyExists)
}

// IsValidation checks if error is CodeValidation
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsReferenceMissing checks if error is CodeReferenceMissing
func IsReferenceMissing(err error) bool {
	return hasCode(err, CodeReferenceMissing)
}

func hasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}
