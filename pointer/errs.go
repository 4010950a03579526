package pointer

import "errors"

var (
	// ErrSyntax reports malformed pointer text: a non-empty string not
	// starting with '/', or a '~' not followed by '0' or '1'.
	ErrSyntax = errors.New("invalid pointer syntax")

	// ErrNotFound reports a resolution miss: an absent object field, or an
	// array token that is malformed or out of range.
	ErrNotFound = errors.New("not found")

	// ErrTypeMismatch reports descending into a scalar or null node with
	// tokens remaining.
	ErrTypeMismatch = errors.New("type mismatch")
)
