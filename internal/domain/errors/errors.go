package errors

import (
	"net/http"

	"allergo/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Additional context, exposed only for 4xx other than 401/403
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() any {
	return e.details
}

// Is matches any BaseError carrying the same code, so copies made by WithDetails
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails returns a copy of the error carrying details.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed")

	// Account errors
	ErrDuplicateEmail     = NewBaseError(http.StatusConflict, "DUPLICATE_EMAIL", "user already exists")
	ErrUserNotFound       = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	ErrAccountNotActive   = NewBaseError(http.StatusUnauthorized, "ACCOUNT_NOT_ACTIVE", "account is not active")
	ErrAlreadyActive      = NewBaseError(http.StatusBadRequest, "ALREADY_ACTIVE", "account is already active")
	ErrNotActive          = NewBaseError(http.StatusBadRequest, "NOT_ACTIVE", "account is not active")
	ErrPasswordHashFailed = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "password processing failed")

	// Credential and token errors. Messages are deliberately uninformative.
	ErrInvalidCredentials = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	ErrMissingToken       = NewBaseError(http.StatusUnauthorized, "MISSING_TOKEN", "authorization token is required")
	ErrInvalidToken       = NewBaseError(http.StatusUnauthorized, "INVALID_TOKEN", "invalid token")
	ErrTokenExpired       = NewBaseError(http.StatusUnauthorized, "TOKEN_EXPIRED", "token has expired")
	ErrTokenAlreadyUsed   = NewBaseError(http.StatusUnauthorized, "TOKEN_ALREADY_USED", "token has already been used")
	ErrStaleToken         = NewBaseError(http.StatusUnauthorized, "STALE_TOKEN", "a fresh login is required")
	ErrSessionInvalid     = NewBaseError(http.StatusUnauthorized, "SESSION_INVALID", "session is no longer valid")
	ErrSessionConflict    = NewBaseError(http.StatusConflict, "SESSION_CONFLICT", "another login for this device is in progress")

	// One-time code errors
	ErrInvalidOTP     = NewBaseError(http.StatusUnauthorized, "INVALID_OTP", "invalid otp")
	ErrOTPExpired     = NewBaseError(http.StatusUnauthorized, "OTP_EXPIRED", "otp has expired")
	ErrOTPAlreadyUsed = NewBaseError(http.StatusUnauthorized, "OTP_ALREADY_USED", "otp has already been used")

	// Catalog errors
	ErrFoodNotFound            = NewBaseError(http.StatusNotFound, "FOOD_NOT_FOUND", "food not found")
	ErrIngredientAlreadyExists = NewBaseError(http.StatusConflict, "INGREDIENT_ALREADY_EXISTS", "ingredient already exists")
	ErrUnsupportedMedia        = NewBaseError(http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA", "unsupported file type")
	ErrPayloadTooLarge         = NewBaseError(http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "file is too large")

	// General errors
	ErrTooManyRequests = NewBaseError(http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "too many attempts, try again later")
	ErrForbidden       = NewBaseError(http.StatusForbidden, "FORBIDDEN", "access denied")
	ErrNotFound        = NewBaseError(http.StatusNotFound, "NOT_FOUND", "resource not found")
	ErrInternalError   = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
)

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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed: "+e.details).Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

func (e *DatabaseExecuteError) Details() any {
	return e.details
}
