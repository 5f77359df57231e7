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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Pre-flight errors: fatal, nothing has been mutated yet
	ErrInsufficientPrivilege ErrorCode = "INSUFFICIENT_PRIVILEGE"
	ErrInvalidSelection      ErrorCode = "INVALID_SELECTION"
	ErrConfigLoad            ErrorCode = "CONFIG_LOAD"

	// Per-action errors: recorded in the report, session continues
	ErrSnapshotFailure ErrorCode = "SNAPSHOT_FAILURE"
	ErrWriteFailure    ErrorCode = "WRITE_FAILURE"
	ErrAppendFailure   ErrorCode = "APPEND_FAILURE"
	ErrExternalCommand ErrorCode = "EXTERNAL_COMMAND"

	// Rollback errors
	ErrScanFailure    ErrorCode = "SCAN_FAILURE"
	ErrRestoreFailure ErrorCode = "RESTORE_FAILURE"

	// FileSystem errors
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrInvalidPath ErrorCode = "INVALID_PATH"
)

// TuneError represents a structured error with code and details
type TuneError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TuneError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TuneError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TuneError) Is(target error) bool {
	var targetErr *TuneError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TuneError with the given code and message
func New(code ErrorCode, message string) *TuneError {
	return &TuneError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TuneError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TuneError {
	return &TuneError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TuneError
func Wrap(err error, code ErrorCode, message string) *TuneError {
	if err == nil {
		return nil
	}
	return &TuneError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TuneError {
	if err == nil {
		return nil
	}
	return &TuneError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TuneError) WithDetail(key string, value interface{}) *TuneError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not TuneErrors
func GetCode(err error) ErrorCode {
	var tuneErr *TuneError
	if errors.As(err, &tuneErr) {
		return tuneErr.Code
	}
	return ErrUnknown
}

// IsCode checks whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
