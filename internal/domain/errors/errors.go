// Package errors defines the application's tagged error types. Every
// failure the account subsystem can produce maps to exactly one AppError,
// and the HTTP boundary translates that tag to a status code instead of
// collapsing everything into one bad-request shape.
package errors

import (
	"net/http"

	"arcade/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. The message texts for the account flows are
// load-bearing: existing game clients match on them.
var (
	// Registration
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Either email or phone must be provided.",
		"",
	)

	ErrDuplicateEmail = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_EMAIL",
		"Email already registered",
		"",
	)

	ErrDuplicatePhone = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_PHONE",
		"Phone number already registered",
		"",
	)

	// Login
	ErrEmailNotFound = NewBaseError(
		http.StatusNotFound,
		"EMAIL_NOT_FOUND",
		"Email not found",
		"",
	)

	ErrPhoneNotFound = NewBaseError(
		http.StatusNotFound,
		"PHONE_NOT_FOUND",
		"Phone number not found",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusUnauthorized,
		"PASSWORD_MISMATCH",
		"Password not match",
		"",
	)

	// Credentials
	ErrMalformedCredential = NewBaseError(
		http.StatusInternalServerError,
		"MALFORMED_CREDENTIAL",
		"Stored credential is corrupt",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Sessions
	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	// Mail
	ErrMailDelivery = NewBaseError(
		http.StatusInternalServerError,
		"MAIL_DELIVERY_FAILED",
		"Failed to send mail",
		"",
	)
)

// IdentifierNotFound picks the not-found error matching how the login
// identifier was classified, so the response keeps the field-specific
// message the clients expect.
func IdentifierNotFound(isEmail bool) *BaseError {
	if isEmail {
		return ErrEmailNotFound
	}

	return ErrPhoneNotFound
}
