package errors

import (
	"fmt"
	"net/http"

	"sosradar/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
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

// Message returns the user-friendly error message
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

// Predefined error types
var (
	// Input validation errors; always local, never retried silently
	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"latitude must be within [-90, 90] and longitude within [-180, 180]",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"radius must be a positive number of meters",
		"",
	)

	ErrInvalidUserID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USER_ID",
		"user id must be a non-empty string",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// Lookup errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"no location is stored for this user",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"no alert session exists with this id",
		"",
	)

	// Dispatch errors
	ErrNoActiveSession = NewBaseError(
		http.StatusNotFound,
		"NO_ACTIVE_SESSION",
		"no active alert session exists for this user",
		"",
	)

	ErrAlertAlreadyActive = NewBaseError(
		http.StatusConflict,
		"ALERT_ALREADY_ACTIVE",
		"an alert session is already active for this user",
		"",
	)

	// Provider errors; Unavailable may be retried by the caller,
	// Rejected carries the provider status and is never auto-retried
	ErrProviderUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PROVIDER_UNAVAILABLE",
		"notification provider could not be reached",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// ProviderRejectedError represents a reachable provider rejecting a request,
// implementing the AppError interface and retaining the provider status code
type ProviderRejectedError struct {
	status  int
	details string
}

// NewProviderRejectedError creates a provider rejection error
func NewProviderRejectedError(status int, details string) *ProviderRejectedError {
	return &ProviderRejectedError{
		status:  status,
		details: details,
	}
}

// Error implements the error interface
func (e *ProviderRejectedError) Error() string {
	return fmt.Sprintf("notification provider rejected the request with status %d", e.status)
}

// Status returns the provider's response status for diagnostics
func (e *ProviderRejectedError) Status() int {
	return e.status
}

// HTTPCode returns the HTTP status code
func (e *ProviderRejectedError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ProviderRejectedError) ErrorCode() string {
	return "PROVIDER_REJECTED"
}

// Message returns the user-friendly error message
func (e *ProviderRejectedError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *ProviderRejectedError) Details() string {
	return e.details
}
