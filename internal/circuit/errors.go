package circuit

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel wrapped by every RangeError, so callers can
// match with errors.Is without caring which parameter was rejected.
var ErrOutOfRange = errors.New("circuit: value out of range")

// RangeError reports a mutation rejected because the value fell outside the
// parameter's closed interval. The state is left untouched.
type RangeError struct {
	Param string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("circuit: %s %g outside [%g, %g]", e.Param, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
