package timeunit

import (
	"errors"
	"fmt"
	"iter"
)

// ErrUnknownUnit is returned when a suffix or name matches no unit.
var ErrUnknownUnit = errors.New("unknown time unit")

// TimeUnit identifies one of the supported time units.
// The zero value is not a valid unit.
type TimeUnit uint8

// Valid reports whether u is one of the defined units.
func (u TimeUnit) Valid() bool {
	return u >= 1 && int(u) <= len(all)
}

// Lookup returns the unit whose canonical suffix is exactly s.
func Lookup(s string) (TimeUnit, error) {
	if u, ok := fromSuffix(s); ok {
		return u, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// ParseName returns the unit for a canonical suffix or one of its long
// aliases ("second", "secs", "minutes", ...). Matching is case-sensitive.
func ParseName(s string) (TimeUnit, error) {
	if u, ok := fromSuffix(s); ok {
		return u, nil
	}
	if u, ok := fromAlias(s); ok {
		return u, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// All yields every unit from the smallest scale to the largest.
func All() iter.Seq[TimeUnit] {
	return func(yield func(TimeUnit) bool) {
		for _, u := range all {
			if !yield(u) {
				return
			}
		}
	}
}

// LargestFirst yields every unit from the largest scale to the smallest.
// Each call returns a fresh sequence.
func LargestFirst() iter.Seq[TimeUnit] {
	return func(yield func(TimeUnit) bool) {
		for i := len(all) - 1; i >= 0; i-- {
			if !yield(all[i]) {
				return
			}
		}
	}
}

// Smallest returns the unit with scale 1.
func Smallest() TimeUnit {
	return all[0]
}

// Largest returns the unit with the largest scale.
func Largest() TimeUnit {
	return all[len(all)-1]
}

// MarshalText encodes the unit as its canonical suffix.
func (u TimeUnit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUnit, uint8(u))
	}
	return []byte(u.Suffix()), nil
}

// UnmarshalText decodes a canonical suffix or long alias.
func (u *TimeUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
