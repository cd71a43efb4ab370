package errors

import (
	"errors"
	"fmt"
)

// Error types for different domains
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeInternal     ErrorType = "internal"
	ErrorTypeExternal     ErrorType = "external"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType              `json:"type"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	StatusCode int                    `json:"status_code"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// Error constructors
func NewValidationError(code, message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: 400,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: 401,
	}
}

func NewInternalError(code, message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       code,
		Message:    message,
		StatusCode: 500,
	}
}

func NewExternalError(store, message string) *AppError {
	return &AppError{
		Type:       ErrorTypeExternal,
		Code:       "STORE_OPERATION_FAILED",
		Message:    fmt.Sprintf("%s store error: %s", store, message),
		StatusCode: 502,
		Details:    map[string]interface{}{"store": store},
	}
}

// Input-validation errors. All of these are detected before any store is
// touched, so no partial mutation can occur on these paths.
func NewUnsupportedNumberFormatError(raw string) *AppError {
	return NewValidationError("UNSUPPORTED_NUMBER_FORMAT",
		fmt.Sprintf("unsupported number format: %s", raw))
}

func NewBadRangeFormatError() *AppError {
	return NewValidationError("BAD_RANGE_FORMAT", "bad range format")
}

func NewRangeEndBeforeStartError() *AppError {
	return NewValidationError("RANGE_END_BEFORE_START", "range end < start")
}

func NewRangeTooLargeError(maxSpan int) *AppError {
	return NewValidationError("RANGE_TOO_LARGE",
		fmt.Sprintf("range too large (>%d)", maxSpan))
}

// NewStoreConnectionMissingError reports absent connection parameters for a
// store, detected eagerly at connection-acquisition time.
func NewStoreConnectionMissingError(store string) *AppError {
	return NewInternalError("STORE_CONNECTION_MISSING",
		fmt.Sprintf("%s connection parameters missing", store))
}

// NewStoreOperationFailedError wraps a failed store round-trip.
func NewStoreOperationFailedError(store string, cause error) *AppError {
	return NewExternalError(store, "operation failed").WithCause(cause)
}

// IsType checks if an error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode extracts HTTP status code from error
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 500
}

// GetCode extracts the error code, or INTERNAL_ERROR for unstructured errors.
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "INTERNAL_ERROR"
}
