package duration

import (
	"math"
	"time"

	"github.com/mash-protocol/durunit/pkg/timeunit"
)

// Parts is a duration split into whole seconds and a nanosecond remainder,
// the layout of protobuf's Duration and similar wire types. Both fields
// carry the sign of the duration and |Nanos| is below one second.
type Parts struct {
	Seconds int64
	Nanos   int32
}

// ToParts splits d into seconds and nanoseconds.
func ToParts(d time.Duration) Parts {
	return Parts{
		Seconds: int64(d / time.Second),
		Nanos:   int32(d % time.Second),
	}
}

// FromParts joins seconds and nanoseconds. It returns ErrSubsecond when the
// nanosecond part is a second or more or disagrees in sign with the seconds,
// and ErrOverflow when the total does not fit in a time.Duration.
func FromParts(p Parts) (time.Duration, error) {
	if p.Nanos <= -int32(time.Second) || p.Nanos >= int32(time.Second) {
		return 0, ErrSubsecond
	}
	if (p.Seconds > 0 && p.Nanos < 0) || (p.Seconds < 0 && p.Nanos > 0) {
		return 0, ErrSubsecond
	}

	secs, err := scale(p.Seconds, timeunit.Second)
	if err != nil {
		return 0, err
	}
	nanos := time.Duration(p.Nanos)
	if nanos > 0 && secs > math.MaxInt64-nanos {
		return 0, ErrOverflow
	}
	if nanos < 0 && secs < math.MinInt64-nanos {
		return 0, ErrOverflow
	}
	return secs + nanos, nil
}

// FormatParts formats a seconds and nanoseconds pair as a duration string.
func FormatParts(p Parts) (string, error) {
	d, err := FromParts(p)
	if err != nil {
		return "", err
	}
	return Format(d), nil
}

// ParseParts parses a duration string into seconds and nanoseconds.
func ParseParts(s string) (Parts, error) {
	d, err := Parse(s)
	if err != nil {
		return Parts{}, err
	}
	return ToParts(d), nil
}
