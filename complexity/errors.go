package complexity

import "errors"

var (
	// ErrMissingInput is returned when the CSV path does not exist or cannot be read.
	ErrMissingInput = errors.New("missing input")
	// ErrMalformedData is returned for a missing or non-numeric column, or an empty table.
	ErrMalformedData = errors.New("malformed data")
	// ErrDegenerateScale is returned when the reference curve anchor has n == 0.
	ErrDegenerateScale = errors.New("degenerate scale")
)
