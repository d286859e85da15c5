// Package apperr defines the typed errors rendered by the HTTP API.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"swapnet-ops/internal/access"
	"swapnet-ops/internal/scenario"
	"swapnet-ops/internal/store"
)

// Error codes.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "RESOURCE_NOT_FOUND"
	CodeBadRequest      = "BAD_REQUEST"
	CodeForbidden       = "FORBIDDEN"
	CodeInternalError   = "INTERNAL_ERROR"
)

// AppError is an error with an HTTP status and a stable code.
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	HTTPStatus int               `json:"-"`
	Err        error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithDetail adds a single detail to the error.
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// Wrap records the underlying cause.
func (e *AppError) Wrap(err error) *AppError {
	e.Err = err
	return e
}

// New creates an AppError.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Validation creates a 400 validation error.
func Validation(message string) *AppError {
	return New(CodeValidationError, message, http.StatusBadRequest)
}

// BadRequest creates a 400 error for malformed requests.
func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}

// NotFound creates a 404 error for resource with the given id.
func NotFound(resource, id string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound).WithDetail("id", id)
}

// Forbidden creates a 403 error.
func Forbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

// Internal creates a 500 error.
func Internal(err error) *AppError {
	return New(CodeInternalError, "an internal error occurred", http.StatusInternalServerError).Wrap(err)
}

// As extracts an AppError from err.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// From maps domain errors onto AppErrors. Unknown errors become internal errors.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := As(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, store.ErrInvalidStatus):
		return Validation(err.Error()).Wrap(err)
	case errors.Is(err, scenario.ErrUnknownKind):
		return Validation(err.Error()).Wrap(err)
	case errors.Is(err, access.ErrUnknownRole):
		return New(CodeNotFound, err.Error(), http.StatusNotFound).Wrap(err)
	}
	return Internal(err)
}
