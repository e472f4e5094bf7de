// Package errors defines the application error taxonomy: every failure a
// caller can observe maps to one of the values below, carrying an HTTP status
// code, a stable business code and a user-facing message.
package errors

import (
	"net/http"

	"lumea/internal/errors"
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
	// Validation: required fields missing or malformed. Nothing is persisted
	// and the registration step is not advanced.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the minimum requirements",
		"",
	)

	// Signup email collision.
	ErrDuplicateIdentity = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_IDENTITY",
		"An account with this email already exists",
		"",
	)

	// Authentication.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	// Referenced identity/profile/child row absent. Ownership failures on
	// profile-addressing steps also surface as this, deliberately, so callers
	// cannot probe which profile ids exist.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	// Any unexpected persistence failure after rollback.
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// PendingApprovalError is returned when a provider account authenticates with
// correct credentials while its application is still pending or was rejected.
// It deliberately exposes the workflow state to the legitimate account owner
// so the client can render a resumable or explanatory screen.
type PendingApprovalError struct {
	Status  string // Current approval status: "pending" or "rejected".
	Reason  string // Optional administrator message set on rejection.
	details string
}

// NewPendingApprovalError creates an approval-gate error carrying the current
// workflow state.
func NewPendingApprovalError(status, reason string) *PendingApprovalError {
	return &PendingApprovalError{Status: status, Reason: reason}
}

// Error implements the error interface
func (e *PendingApprovalError) Error() string {
	return "account approval is " + e.Status
}

// HTTPCode returns the HTTP status code
func (e *PendingApprovalError) HTTPCode() int {
	return http.StatusForbidden
}

// ErrorCode returns the business error code
func (e *PendingApprovalError) ErrorCode() string {
	return "PENDING_APPROVAL"
}

// Message returns the user-friendly error message
func (e *PendingApprovalError) Message() string {
	if e.Reason != "" {
		return e.Reason
	}

	return "Your application has not been approved yet"
}

// Details returns detailed error information
func (e *PendingApprovalError) Details() string {
	return e.details
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
