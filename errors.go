package overlay

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
//
// Every error this package returns is a configuration or capability error
// surfaced synchronously at the call that introduced it. None are retriable.
type Code string

const (
	// CodePositionRequired: the preferred position list is empty.
	CodePositionRequired Code = "POSITION_REQUIRED"
	// CodeAlreadyAttached: Attach was called with a second, different overlay.
	CodeAlreadyAttached Code = "ALREADY_ATTACHED"
	// CodeInvalidPosition: a connection pair holds an out-of-range value.
	CodeInvalidPosition Code = "INVALID_POSITION"
	// CodeUnsupported: the engine cannot express the requested feature or query.
	CodeUnsupported Code = "UNSUPPORTED"
	// CodeMissingOrigin: no origin was configured or a named origin is unknown.
	CodeMissingOrigin Code = "MISSING_ORIGIN"
	// CodeDisposed: the strategy was disposed and cannot be attached again.
	CodeDisposed Code = "DISPOSED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("overlay: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("overlay: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code, so the sentinel values
// below work with errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Message == "" && t.Code == e.Code
	}
	return false
}

// Sentinels for errors.Is. They carry only a code.
var (
	ErrPositionRequired = &Error{Code: CodePositionRequired}
	ErrAlreadyAttached  = &Error{Code: CodeAlreadyAttached}
	ErrInvalidPosition  = &Error{Code: CodeInvalidPosition}
	ErrUnsupported      = &Error{Code: CodeUnsupported}
	ErrMissingOrigin    = &Error{Code: CodeMissingOrigin}
	ErrDisposed         = &Error{Code: CodeDisposed}
)

func newError(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// wrap attaches cause to e.
func (e *Error) wrap(cause error) *Error {
	e.Cause = cause
	return e
}

// IsCode reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func IsCode(err error, code Code) bool {
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
