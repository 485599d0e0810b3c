package parm

import (
	"errors"
	"fmt"
)

// Code is a stable error identifier surfaced to API callers.
type Code string

// Error codes for parm7 parsing and query failures.
const (
	// CodeFormat indicates the file violates the parm7 structural contract:
	// a required section is missing, a token count disagrees with POINTERS,
	// or a pointer value is negative. Fatal to the current load or build.
	CodeFormat Code = "format_error"

	// CodeNotFound indicates an unknown atom serial, an out-of-range table
	// row, or a selection with zero matches. Recoverable per call.
	CodeNotFound Code = "not_found"

	// CodeNotLoaded indicates no topology has been loaded yet.
	CodeNotLoaded Code = "not_loaded"

	// CodeInvalidInput indicates a malformed caller argument.
	CodeInvalidInput Code = "invalid_input"

	// CodeIO indicates the topology file could not be read.
	CodeIO Code = "io_error"
)

// Error is the tagged error type shared by all topview packages.
// Code is stable across releases; Message is human-readable; Details
// carries an optional debugging payload.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a tagged error. Callers needing a details payload set
// the field directly.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf builds a tagged error from a format string.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// FormatErrorf builds a CodeFormat error.
func FormatErrorf(format string, args ...any) *Error {
	return Errorf(CodeFormat, format, args...)
}

// NotFoundf builds a CodeNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return Errorf(CodeNotFound, format, args...)
}

// CodeOf extracts the stable code from an error chain.
// Untagged errors report CodeIO as a conservative default.
func CodeOf(err error) Code {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Code
	}
	return CodeIO
}

// IsCode reports whether err carries the given tagged code.
func IsCode(err error, code Code) bool {
	var tagged *Error
	return errors.As(err, &tagged) && tagged.Code == code
}
