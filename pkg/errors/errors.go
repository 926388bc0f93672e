// Package errors provides structured error types for framegraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the core model, persistence and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Model errors mirror the validation failures of the frame graph:
//   - DUPLICATE_FRAME, FRAME_NOT_FOUND
//   - DUPLICATE_SLOT, SLOT_NOT_FOUND
//   - SELF_REFERENCE, TYPE_MISMATCH
//   - INVALID_*: input and file format failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeFrameNotFound, "frame %q not found", name)
//	if errors.Is(err, errors.ErrCodeFrameNotFound) {
//	    // Handle missing frame
//	}
//
// Sentinels created with [Sentinel] match any error carrying the same code
// through the standard library's errors.Is:
//
//	var ErrFrameNotFound = errors.Sentinel(errors.ErrCodeFrameNotFound)
//	stderrors.Is(err, ErrFrameNotFound) // true for every FRAME_NOT_FOUND error
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidName   Code = "INVALID_NAME"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Frame graph errors
	ErrCodeDuplicateFrame Code = "DUPLICATE_FRAME"
	ErrCodeFrameNotFound  Code = "FRAME_NOT_FOUND"
	ErrCodeDuplicateSlot  Code = "DUPLICATE_SLOT"
	ErrCodeSlotNotFound   Code = "SLOT_NOT_FOUND"
	ErrCodeSelfReference  Code = "SELF_REFERENCE"
	ErrCodeTypeMismatch   Code = "TYPE_MISMATCH"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a sentinel with the same code.
// A sentinel is an *Error without a message, as returned by [Sentinel].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Message != "" {
		return false
	}
	return t.Code == e.Code
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Sentinel returns a message-less *Error usable as an errors.Is target.
func Sentinel(code Code) *Error {
	return &Error{Code: code}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
