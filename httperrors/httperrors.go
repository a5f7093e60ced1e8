// Package httperrors provides the typed HTTP error used to signal routing
// and handler failures, plus helpers for detecting and emitting it
package httperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents an HTTP failure with a status code
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// WriteJSON writes the error as JSON to the response
func (e *Error) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	_ = json.NewEncoder(w).Encode(e)
}

// New creates a new HTTP error
func New(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new HTTP error wrapping an underlying error
func Wrap(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound creates a 404 error
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// BadRequest creates a 400 error
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// MethodNotAllowed creates a 405 error
func MethodNotAllowed(message string) *Error {
	return New(http.StatusMethodNotAllowed, message)
}

// Internal creates a 500 error
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// FromError extracts an *Error from err's chain
func FromError(err error) (*Error, bool) {
	var he *Error
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// IsHTTPError checks if an error is an HTTP Error
func IsHTTPError(err error) bool {
	var he *Error
	return errors.As(err, &he)
}
