package analyze

import "errors"

var (
	// ErrInternal indicates a broken term-table invariant. It is a
	// bug in the analysis, never bad input.
	ErrInternal = errors.New("internal invariant violated")
	// ErrEmptyCapture indicates a capture with no records.
	ErrEmptyCapture = errors.New("capture has no records")
)
