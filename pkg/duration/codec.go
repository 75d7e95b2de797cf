package duration

import (
	"math"
	"strconv"
	"time"

	"github.com/mash-protocol/durunit/pkg/timeunit"
)

// Format returns the unit-minimal string for d.
func Format(d time.Duration) string {
	return Decompose(d).String()
}

// Decompose splits d into the largest unit that divides it exactly and the
// magnitude in that unit. Zero decomposes to 0 seconds.
func Decompose(d time.Duration) UnitValue {
	if d == 0 {
		return UnitValue{unit: timeunit.Second}
	}
	for u := range timeunit.LargestFirst() {
		if d%u.Scale() == 0 {
			return UnitValue{value: int64(d / u.Scale()), unit: u}
		}
	}
	// Not reached: the smallest unit has scale 1.
	return UnitValue{value: int64(d), unit: timeunit.Smallest()}
}

// Parse converts a duration string to a time.Duration.
// Errors are of type *ParseError.
func Parse(s string) (time.Duration, error) {
	n, u, err := split(s)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	d, err := scale(n, u)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return d, nil
}

// Encode is the serializer hook for duration fields. It never fails.
func Encode(d time.Duration) string {
	return Format(d)
}

// Decode is the deserializer hook for duration fields.
func Decode(s string) (time.Duration, error) {
	return Parse(s)
}

// split breaks s into its signed magnitude and unit.
func split(s string) (int64, timeunit.TimeUnit, error) {
	if s == "" {
		return 0, 0, ErrEmptyInput
	}

	i := 0
	if s[0] == '-' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, 0, ErrInvalidNumber
	}
	if i < len(s) && s[i] == '.' {
		// "1.5s": a fractional magnitude, not a unit called ".5s".
		return 0, 0, ErrInvalidNumber
	}

	unit, err := timeunit.Lookup(s[i:])
	if err != nil {
		return 0, 0, err
	}

	n, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		// Only range errors remain once the digits are validated.
		return 0, 0, ErrOverflow
	}
	return n, unit, nil
}

// scale returns n units as a duration, or ErrOverflow.
func scale(n int64, u timeunit.TimeUnit) (time.Duration, error) {
	s := int64(u.Scale())
	if n > math.MaxInt64/s || n < math.MinInt64/s {
		return 0, ErrOverflow
	}
	return time.Duration(n * s), nil
}
