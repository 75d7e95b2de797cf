package duration

import (
	"errors"
	"fmt"

	"github.com/mash-protocol/durunit/pkg/timeunit"
)

// Duration string errors.
var (
	ErrEmptyInput    = errors.New("empty duration string")
	ErrInvalidNumber = errors.New("invalid duration magnitude")
	ErrUnknownUnit   = timeunit.ErrUnknownUnit
	ErrOverflow      = errors.New("duration out of range")
)

// Conversion errors.
var (
	// ErrInexact is returned when a value has no whole-number
	// representation in the requested unit.
	ErrInexact = errors.New("duration not exact in unit")

	// ErrSubsecond is returned for a seconds/nanoseconds pair whose
	// nanosecond part is out of range or has the wrong sign.
	ErrSubsecond = errors.New("invalid sub-second component")
)

// ParseError describes a duration string that could not be parsed.
type ParseError struct {
	// Input is the string that was rejected.
	Input string

	// Err is one of the duration string errors, possibly wrapped.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse duration %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
