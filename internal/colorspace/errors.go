package colorspace

import (
	"errors"
	"fmt"
)

// ErrUnknownModel is returned by ParseModel for names that do not identify a
// color model.
var ErrUnknownModel = errors.New("unknown color model")

// ParseError reports a color literal that could not be understood.
//
// Token is the part of the input that caused the failure. For literals that
// match no syntax at all, Token is the whole (trimmed) input. When the
// failure was a numeric component outside its domain, Err holds the
// underlying *RangeError.
type ParseError struct {
	Input  string
	Token  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Token != "" && e.Token != e.Input {
		return fmt.Sprintf("parse color %q: %s: %q", e.Input, e.Reason, e.Token)
	}
	return fmt.Sprintf("parse color %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RangeError reports a numeric component outside the valid domain of its
// color model.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %g out of range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// rangeSlack absorbs floating-point error from conversions, so that a value
// computed as 100.00000000000001 is still accepted as 100.
const rangeSlack = 1e-9

// checkRange returns a *RangeError when v is NaN or outside [lo, hi].
func checkRange(field string, v, lo, hi float64) error {
	if v != v || v < lo-rangeSlack || v > hi+rangeSlack {
		return &RangeError{Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}
