package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrAborted      ErrorCode = "ABORTED"

	// Scanning errors
	ErrUnterminatedString  ErrorCode = "UNTERMINATED_STRING"
	ErrUnterminatedComment ErrorCode = "UNTERMINATED_COMMENT"
	ErrRead                ErrorCode = "READ"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileExists   ErrorCode = "FILE_EXISTS"
)

// HiliteError represents a structured error with code and details
type HiliteError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HiliteError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HiliteError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HiliteError) Is(target error) bool {
	var targetErr *HiliteError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HiliteError with the given code and message
func New(code ErrorCode, message string) *HiliteError {
	return &HiliteError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HiliteError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HiliteError {
	return &HiliteError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HiliteError
func Wrap(err error, code ErrorCode, message string) *HiliteError {
	if err == nil {
		return nil
	}
	return &HiliteError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HiliteError {
	if err == nil {
		return nil
	}
	return &HiliteError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HiliteError) WithDetail(key string, value interface{}) *HiliteError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var hErr *HiliteError
	if errors.As(err, &hErr) {
		return hErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HiliteError
func GetErrorCode(err error) ErrorCode {
	var hErr *HiliteError
	if errors.As(err, &hErr) {
		return hErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HiliteError
func GetErrorDetails(err error) map[string]interface{} {
	var hErr *HiliteError
	if errors.As(err, &hErr) {
		return hErr.Details
	}
	return nil
}

// IsScanError reports whether err is one of the fatal scanning errors
func IsScanError(err error) bool {
	switch GetErrorCode(err) {
	case ErrUnterminatedString, ErrUnterminatedComment:
		return true
	}
	return false
}
