package cases

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCount is returned when the case count field is not an integer
	ErrInvalidCount = errors.New("invalid case count")

	// ErrMalformedRecord is returned when a line has fewer than four fields
	ErrMalformedRecord = errors.New("malformed record")
)

// RecordError describes a rejected input line
type RecordError struct {
	Line  int    // 1-based line number in the source, 0 when unknown
	Value string // offending raw value
	Err   error  // ErrInvalidCount or ErrMalformedRecord
}

func (e *RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v %q", e.Line, e.Err, e.Value)
	}
	return fmt.Sprintf("%v %q", e.Err, e.Value)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
