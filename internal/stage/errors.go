package stage

import "errors"

var (
	// ErrUnavailable indicates the stage data could not be fetched or
	// parsed (missing file, network failure, non-success status, bad JSON).
	// Recoverable by the caller; the quiz session is left untouched.
	ErrUnavailable = errors.New("stage data unavailable")

	// ErrInvalidStage indicates the stage data violates a structural
	// precondition (no questions, missing catch-all tier, unknown category
	// reference). Not recoverable at runtime; the data must be fixed.
	ErrInvalidStage = errors.New("invalid stage data")
)
