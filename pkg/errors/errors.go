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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad          ErrorCode = "CONFIG_LOAD"
	ErrConfigParse         ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid       ErrorCode = "CONFIG_INVALID"
	ErrTooManyCombinations ErrorCode = "TOO_MANY_COMBINATIONS"

	// Template errors
	ErrTemplateSyntax     ErrorCode = "TEMPLATE_SYNTAX"
	ErrTemplateUnresolved ErrorCode = "TEMPLATE_UNRESOLVED"

	// FileSystem errors
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"

	// Run errors
	ErrAllDestinationsFailed ErrorCode = "ALL_DESTINATIONS_FAILED"
)

// ComboError represents a structured error with code and details
type ComboError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ComboError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ComboError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ComboError) Is(target error) bool {
	var targetErr *ComboError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ComboError with the given code and message
func New(code ErrorCode, message string) *ComboError {
	return &ComboError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ComboError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ComboError {
	return &ComboError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ComboError
func Wrap(err error, code ErrorCode, message string) *ComboError {
	if err == nil {
		return nil
	}
	return &ComboError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ComboError {
	if err == nil {
		return nil
	}
	return &ComboError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ComboError) WithDetail(key string, value interface{}) *ComboError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var comboErr *ComboError
	if errors.As(err, &comboErr) {
		return comboErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ComboError
func GetErrorCode(err error) ErrorCode {
	var comboErr *ComboError
	if errors.As(err, &comboErr) {
		return comboErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ComboError
func GetErrorDetails(err error) map[string]interface{} {
	var comboErr *ComboError
	if errors.As(err, &comboErr) {
		return comboErr.Details
	}
	return nil
}

// IsConfigError reports whether err belongs to the configuration family,
// which aborts a run before any file is touched.
func IsConfigError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigLoad, ErrConfigParse, ErrConfigInvalid, ErrTooManyCombinations,
		ErrTemplateSyntax, ErrTemplateUnresolved:
		return true
	}
	return false
}

// IsFilesystemError reports whether err is scoped to a single destination.
func IsFilesystemError(err error) bool {
	switch GetErrorCode(err) {
	case ErrDirCreate, ErrFileCreate, ErrFileWrite:
		return true
	}
	return false
}
