// Package errors provides structured error types for the floorplan generator.
//
// Every failure carries a machine-readable [Code] and, where one exists, the
// name of the room, opening or output format it concerns. Three codes map the
// pipeline's failure modes:
//
//   - CONFIGURATION_ERROR: invalid or missing room specs, degenerate sums,
//     zero-or-negative dimensions. Fatal.
//   - GEOMETRY_ERROR: wall thickness too large for a room, a room outside the
//     plot, an inset room overlapping its neighbours. Fatal.
//   - EXPORT_ERROR: an output backend is unavailable or failed to write.
//     Isolated to the format that produced it.
//
// # Usage
//
//	err := errors.Configuration("Bedroom1", "planned width must be positive, got %g", w)
//	if errors.Is(err, errors.ErrCodeConfiguration) {
//	    // abort the run
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeExport, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Pipeline errors
	ErrCodeConfiguration Code = "CONFIGURATION_ERROR"
	ErrCodeGeometry      Code = "GEOMETRY_ERROR"
	ErrCodeExport        Code = "EXPORT_ERROR"

	// Input errors raised by the CLI and plan loader
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Subject string // Offending room, opening or format name (optional)
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Subject != "" {
		msg = fmt.Sprintf("%s: %s", e.Subject, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
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

// WithSubject returns a copy of e naming the room, opening or format it concerns.
func (e *Error) WithSubject(subject string) *Error {
	c := *e
	c.Subject = subject
	return &c
}

// Configuration creates a CONFIGURATION_ERROR about subject.
// Subject may be empty when the problem is not tied to a single room.
func Configuration(subject, format string, args ...any) *Error {
	return New(ErrCodeConfiguration, format, args...).WithSubject(subject)
}

// Geometry creates a GEOMETRY_ERROR about subject.
func Geometry(subject, format string, args ...any) *Error {
	return New(ErrCodeGeometry, format, args...).WithSubject(subject)
}

// Export wraps cause as an EXPORT_ERROR for the given output format.
func Export(format string, cause error) *Error {
	return Wrap(ErrCodeExport, cause, "export failed").WithSubject(format)
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

// GetSubject extracts the subject from an error, if available.
func GetSubject(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Subject
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Subject != "" {
			return e.Subject + ": " + e.Message
		}
		return e.Message
	}
	return err.Error()
}

// IsFatal reports whether err must abort the whole pipeline.
// Export errors are isolated per format; everything else is fatal.
func IsFatal(err error) bool {
	return err != nil && !Is(err, ErrCodeExport)
}
