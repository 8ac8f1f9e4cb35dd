package scenario

import "errors"

// Domain errors for problem parsing and parameter mutation.
var (
	// ErrEmptyProblem indicates blank or whitespace-only problem text.
	// Callers check this before parsing; Parse itself never fails.
	ErrEmptyProblem = errors.New("scenario: empty problem text")

	// ErrUnknownParameter indicates a parameter name outside the tuple.
	ErrUnknownParameter = errors.New("scenario: unknown parameter")
)
