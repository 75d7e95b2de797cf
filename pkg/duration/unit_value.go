package duration

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/durunit/pkg/timeunit"
)

// UnitValue is a duration tagged with the unit it is expressed in, such as
// 90 seconds. Unlike Duration it keeps its unit through a round trip: "60s"
// stays "60s" instead of being rewritten as "1m".
//
// The zero UnitValue is 0s.
type UnitValue struct {
	value int64
	unit  timeunit.TimeUnit
}

// NewUnitValue returns value units.
func NewUnitValue(value int64, unit timeunit.TimeUnit) UnitValue {
	return UnitValue{value: value, unit: unit}
}

// FromNanos returns n nanoseconds.
func FromNanos(n int64) UnitValue { return UnitValue{n, timeunit.Nanosecond} }

// FromMicros returns n microseconds.
func FromMicros(n int64) UnitValue { return UnitValue{n, timeunit.Microsecond} }

// FromMillis returns n milliseconds.
func FromMillis(n int64) UnitValue { return UnitValue{n, timeunit.Millisecond} }

// FromSecs returns n seconds.
func FromSecs(n int64) UnitValue { return UnitValue{n, timeunit.Second} }

// FromMinutes returns n minutes.
func FromMinutes(n int64) UnitValue { return UnitValue{n, timeunit.Minute} }

// FromHours returns n hours.
func FromHours(n int64) UnitValue { return UnitValue{n, timeunit.Hour} }

// FromDays returns n fixed 24-hour days.
func FromDays(n int64) UnitValue { return UnitValue{n, timeunit.Day} }

// FromWeeks returns n fixed 7-day weeks.
func FromWeeks(n int64) UnitValue { return UnitValue{n, timeunit.Week} }

// ParseUnitValue parses a duration string and keeps the written unit.
// The value must fit in a time.Duration.
func ParseUnitValue(s string) (UnitValue, error) {
	n, u, err := split(s)
	if err != nil {
		return UnitValue{}, &ParseError{Input: s, Err: err}
	}
	if _, err := scale(n, u); err != nil {
		return UnitValue{}, &ParseError{Input: s, Err: err}
	}
	return UnitValue{value: n, unit: u}, nil
}

// Value returns the magnitude in Unit.
func (v UnitValue) Value() int64 {
	return v.value
}

// Unit returns the unit the value is expressed in.
func (v UnitValue) Unit() timeunit.TimeUnit {
	if v.unit == 0 {
		return timeunit.Second
	}
	return v.unit
}

// String returns the duration string, e.g. "500ms".
func (v UnitValue) String() string {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendInt(buf, v.value, 10)
	return string(append(buf, v.Unit().Suffix()...))
}

// Duration returns the value as a time.Duration.
func (v UnitValue) Duration() (time.Duration, error) {
	u := v.Unit()
	if !u.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownUnit, uint8(u))
	}
	return scale(v.value, u)
}

// Seconds returns the value in whole seconds, truncated toward zero.
func (v UnitValue) Seconds() (int64, error) {
	if u := v.Unit(); u.Valid() && u.Scale() < time.Second {
		return v.value / int64(time.Second/u.Scale()), nil
	}
	s, err := v.Convert(timeunit.Second)
	if err != nil {
		return 0, err
	}
	return s.value, nil
}

// Normalize returns the same duration in its unit-minimal form, the form
// Format would write.
func (v UnitValue) Normalize() (UnitValue, error) {
	d, err := v.Duration()
	if err != nil {
		return UnitValue{}, err
	}
	return Decompose(d), nil
}

// Convert expresses the value in unit to. It returns ErrInexact when the
// result would not be a whole number and ErrOverflow when it does not fit.
func (v UnitValue) Convert(to timeunit.TimeUnit) (UnitValue, error) {
	from := v.Unit()
	if !from.Valid() {
		return UnitValue{}, fmt.Errorf("%w: %d", ErrUnknownUnit, uint8(from))
	}
	if !to.Valid() {
		return UnitValue{}, fmt.Errorf("%w: %d", ErrUnknownUnit, uint8(to))
	}

	// Every scale divides every larger scale.
	if from.Scale() >= to.Scale() {
		factor := int64(from.Scale() / to.Scale())
		if v.value > math.MaxInt64/factor || v.value < math.MinInt64/factor {
			return UnitValue{}, ErrOverflow
		}
		return UnitValue{value: v.value * factor, unit: to}, nil
	}
	factor := int64(to.Scale() / from.Scale())
	if v.value%factor != 0 {
		return UnitValue{}, ErrInexact
	}
	return UnitValue{value: v.value / factor, unit: to}, nil
}

// MarshalText implements encoding.TextMarshaler. Values that do not fit
// in a time.Duration are rejected, since ParseUnitValue would refuse them.
func (v UnitValue) MarshalText() ([]byte, error) {
	if _, err := v.Duration(); err != nil {
		return nil, fmt.Errorf("encode duration %s: %w", v, err)
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *UnitValue) UnmarshalText(text []byte) error {
	parsed, err := ParseUnitValue(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v UnitValue) MarshalYAML() (any, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *UnitValue) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAMLScalar(node, v.UnmarshalText)
}

// MarshalCBOR encodes the value as a CBOR text string.
func (v UnitValue) MarshalCBOR() ([]byte, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(string(text))
}

// UnmarshalCBOR decodes a CBOR text string.
func (v *UnitValue) UnmarshalCBOR(data []byte) error {
	return unmarshalCBORText(data, v.UnmarshalText)
}
