// Package apperr defines the error type used across the application
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with an optional underlying cause.
type Error struct {
	Cause   error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fmt fills in the message placeholders and returns a copy of the error.
// The copy wraps the original so errors.Is continues to match.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e,
	}
}

// Wrap returns a copy of the error with err joined into its cause, so
// errors.Is matches both the sentinel and the underlying error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: fmt.Sprintf("%s: %v", e.Message, err),
		Cause:   errors.Join(e, err),
	}
}
