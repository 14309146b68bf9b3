package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned when an aggregation names an unsupported
// grouping dimension.
var ErrInvalidDimension = errors.New("invalid dimension")

// MissingFieldError reports a required column absent from the input schema.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}

// MalformedInputError reports an input table that failed to parse. Raised by
// the dataset loader only; for the filter and aggregation engines a
// valid-but-empty result is a normal value.
type MalformedInputError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed input %s: line %d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed input %s: %s", e.Path, e.Reason)
}
