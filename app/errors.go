package app

import "github.com/The-Faulkners/putttracker/internal/apperr"

var (
	errInvalidTally = &apperr.Error{
		Message: "made putts (%d) cannot exceed discs thrown (%d)",
	}

	errMissingPosition = &apperr.Error{
		Message: "a session number from 'putt list' is required",
	}

	errInvalidPosition = &apperr.Error{
		Message: "no session at position %d. Run 'putt list' to see the available sessions",
	}

	errMissingSetNumber = &apperr.Error{
		Message: "a session number and a set number are required",
	}

	errInvalidSetNumber = &apperr.Error{
		Message: "no set numbered %d in the selected session",
	}

	errMissingBackupFile = &apperr.Error{
		Message: "the path to a backup file is required",
	}
)
