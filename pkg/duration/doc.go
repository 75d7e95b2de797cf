// Package duration converts time.Duration values to and from compact
// duration strings such as "123s", "45ms" or "2h".
//
// # Grammar
//
//	duration-string := sign? digits unit-suffix
//	sign            := "-"
//	digits          := one or more ASCII decimal digits
//	unit-suffix     := "ns" | "us" | "ms" | "s" | "m" | "h" | "d" | "w"
//
// No whitespace, fractions or composite strings ("1h2m") are accepted.
//
// # Formatting
//
// [Format] picks the largest unit that divides the duration exactly, so no
// information is lost: 123s formats as "123s", 1.5ms as "1500us", 2h as
// "2h". Zero always formats as "0s". Parse(Format(d)) == d for every d.
//
// # Parsing
//
// [Parse] accepts any valid magnitude and suffix pair, whether or not the
// unit is the one Format would have chosen ("60s" and "1m" are both valid).
// Failures are returned as *[ParseError] wrapping one of [ErrEmptyInput],
// [ErrInvalidNumber], [ErrUnknownUnit] or [ErrOverflow]:
//
//	if _, err := duration.Parse(s); errors.Is(err, duration.ErrUnknownUnit) {
//	    ...
//	}
//
// # Serializer Integration
//
// [Encode] and [Decode] are the hook pair for field-level serializers.
// [Duration] wraps time.Duration with text, JSON, YAML and CBOR encodings
// built on them, and [UnitValue] keeps the unit the value was written in.
// [Parts] adapts seconds plus nanoseconds representations.
//
// All functions are pure and safe for concurrent use.
package duration
