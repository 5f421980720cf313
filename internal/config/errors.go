package config

import "github.com/The-Faulkners/putttracker/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDiscsPerSet = &apperr.Error{
		Message: "discs per set must be between %d and %d",
	}

	errInvalidDistance = &apperr.Error{
		Message: "putting distance must be between %d and %d feet",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period",
	}

	errInvalidStartDate = &apperr.Error{
		Message: "please provide a valid start date",
	}

	errInvalidEndDate = &apperr.Error{
		Message: "please provide a valid end date",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}
)
