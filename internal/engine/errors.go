package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrNoDocument indicates no document has been paginated yet.
	ErrNoDocument = errors.New("no document loaded")

	// ErrPageNotFound indicates a page number outside the sequence.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidConfig indicates unusable pagination budgets.
	ErrInvalidConfig = errors.New("invalid configuration")
)
