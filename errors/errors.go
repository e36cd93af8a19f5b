package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a failure class
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken       ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeAccountDeactivated ErrorCode = "ACCOUNT_DEACTIVATED"
	ErrCodeDuplicateEmail     ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"

	// Entity errors
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"

	// Validation errors
	ErrCodeValidation         ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField      ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat      ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidBookingType ErrorCode = "INVALID_BOOKING_TYPE"

	// Infrastructure errors
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

// AppError carries an error class, an HTTP status and a client-safe message.
type AppError struct {
	Code    ErrorCode
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError with an explicit status.
func NewAppError(code ErrorCode, status int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// GetAppError extracts an AppError from err, nil if it is not one.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func BadRequest(code ErrorCode, message string) *AppError {
	return NewAppError(code, http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return NewAppError(ErrCodeNotFound, http.StatusNotFound, message, nil)
}

func Forbidden(message string) *AppError {
	return NewAppError(ErrCodeForbidden, http.StatusForbidden, message, nil)
}

// InvalidCredentials is shared between the unknown-email and wrong-password
// paths so the response never reveals which check failed.
func InvalidCredentials() *AppError {
	return NewAppError(ErrCodeInvalidCredentials, http.StatusUnauthorized, "Invalid credentials", nil)
}
