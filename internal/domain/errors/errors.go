// Package errors defines the application error taxonomy. User-facing
// messages are in Indonesian, matching the product's audience.
package errors

import (
	"fmt"
	"net/http"

	"fleetgate/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error title
	Details() string   // Detailed error description (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error title
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is lets errors.Is match any derived copy (WithDetails) against its base.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Validation errors, blocked before any network call
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validasi Gagal",
		"",
	)

	// Authentication errors
	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_FAILED",
		"Login Gagal",
		"Username atau password salah.",
	)

	ErrRegisterFailed = NewBaseError(
		http.StatusBadRequest,
		"REGISTER_FAILED",
		"Registrasi Gagal",
		"Terjadi kesalahan saat registrasi.",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Sesi Berakhir",
		"Sesi Anda telah berakhir. Silakan login kembali.",
	)

	// Upstream API errors
	ErrUpstream = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_ERROR",
		"Permintaan Gagal",
		"",
	)

	ErrUpstreamFormat = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_FORMAT",
		"Permintaan Gagal",
		"Format response tidak sesuai",
	)

	// Persistence errors
	ErrStorage = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_ERROR",
		"Terjadi Kesalahan",
		"Gagal mengakses penyimpanan.",
	)
)

// NewValidationError builds a validation error with a concrete description.
func NewValidationError(details string) *BaseError {
	return ErrValidation.WithDetails(details)
}

// NewDuplicateDeviceError reports a create blocked by the client-side
// duplicate check, naming the offending identifier.
func NewDuplicateDeviceError(id string) *BaseError {
	return NewBaseError(
		http.StatusConflict,
		"DEVICE_DUPLICATE",
		"Validasi Gagal",
		fmt.Sprintf("GPS ID %q sudah terdaftar.", id),
	)
}

// NewUpstreamError wraps an upstream failure message for display.
func NewUpstreamError(details string) *BaseError {
	return ErrUpstream.WithDetails(details)
}
