package session

import "github.com/The-Faulkners/putttracker/internal/apperr"

var (
	// ErrSessionNotFound is returned when no stored session matches the
	// requested id.
	ErrSessionNotFound = &apperr.Error{
		Message: "session not found",
	}

	// ErrSetNotFound is returned when a session holds no set matching the
	// requested id.
	ErrSetNotFound = &apperr.Error{
		Message: "set not found",
	}
)
