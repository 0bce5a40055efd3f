// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validacao", Fields: fields}
}

// Error is a domain error carrying the HTTP status it maps to.
// Services return these; handlers translate them with Status().
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) *Error { return &Error{Code: http.StatusBadRequest, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Code: http.StatusConflict, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Code: http.StatusNotFound, Message: msg} }
func Forbidden(msg string) *Error  { return &Error{Code: http.StatusForbidden, Message: msg} }
func Internal(msg string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: msg}
}
func Unauthorized(msg string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: msg}
}

// Status extracts the HTTP status for err. Unclassified errors are 500.
func Status(err error) int {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return http.StatusInternalServerError
}
