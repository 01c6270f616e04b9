package functions

import "errors"

var (
	// ErrLengthMismatch is returned when the input sequences are not of the same length.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInvalidArgument is returned for a non-positive uncertainty.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSingularFit is returned when the data do not determine a line,
	// e.g. all x are equal or y has no variance.
	ErrSingularFit = errors.New("singular fit")
)
