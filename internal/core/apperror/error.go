// Package apperror provides the single structured error kind used across the
// data-access layer. Transport failures, backend rejections and client-side
// validation all surface as *AppError so callers can branch on it uniformly.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	// CodeHTTP is a non-2xx response returned by the backend.
	CodeHTTP = "HTTP_ERROR"

	// CodeNetwork means the backend was never reached (Status is 0).
	CodeNetwork = "NETWORK_ERROR"

	// CodeDecode is a 2xx response whose body could not be converted.
	CodeDecode = "DECODE_ERROR"

	// CodeValidation is a client-side rejection before any network call.
	CodeValidation = "VALIDATION_ERROR"

	// CodeInternal is an unexpected failure inside the dashboard itself.
	CodeInternal = "INTERNAL_ERROR"
)

// NetworkMessage is the message of every error that never reached the server.
const NetworkMessage = "Network error or server unavailable"

// AppError is the standard error type of the platform.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Status is the HTTP status returned by the backend, 0 when no response was received
	Status int `json:"status"`

	// Message is a human-readable error description
	Message string `json:"error"`

	// Details is the optional payload sent by the backend or built locally
	Details any `json:"details,omitempty"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%d): %s (caused by: %v)", e.Code, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details.
// Details that are not a map (for example a backend payload) are kept under "payload".
func (e *AppError) WithDetail(key string, value any) *AppError {
	switch d := e.Details.(type) {
	case map[string]any:
		d[key] = value
	case nil:
		e.Details = map[string]any{key: value}
	default:
		e.Details = map[string]any{"payload": d, key: value}
	}
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewHTTP creates an error for a non-2xx backend response.
// An empty message falls back to "HTTP <status>".
func NewHTTP(status int, message string, details any) *AppError {
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}
	return &AppError{
		Code:    CodeHTTP,
		Status:  status,
		Message: message,
		Details: details,
	}
}

// NewNetwork creates an error for a request that got no response at all.
func NewNetwork(cause error) *AppError {
	return &AppError{
		Code:    CodeNetwork,
		Status:  0,
		Message: NetworkMessage,
		Err:     cause,
	}
}

// NewDecode creates an error for a successful response that could not be converted.
func NewDecode(status int, cause error) *AppError {
	return &AppError{
		Code:    CodeDecode,
		Status:  status,
		Message: "invalid response body",
		Err:     cause,
	}
}

// NewValidation creates a client-side validation error.
func NewValidation(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Status:  0,
		Message: message,
	}
}

// NewInternal creates an error for a failure that is not the backend's fault.
func NewInternal(cause error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Status:  0,
		Message: "Internal server error",
		Err:     cause,
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

// IsNetwork reports whether err never reached the server.
func IsNetwork(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNetwork
	}
	return false
}

// IsValidation reports whether err is a client-side validation error.
func IsValidation(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeValidation
	}
	return false
}

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// StatusOf returns the backend status carried by err, or 0.
func StatusOf(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Status
	}
	return 0
}

// GetHTTPStatus returns the status a dashboard response should use for err.
func GetHTTPStatus(err error) int {
	appErr, ok := AsAppError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNetwork, CodeDecode:
		return http.StatusBadGateway
	case CodeInternal:
		return http.StatusInternalServerError
	}
	if appErr.Status >= 400 {
		return appErr.Status
	}
	return http.StatusBadGateway
}
