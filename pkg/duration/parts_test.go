package duration

import (
	"math"
	"testing"
	"time"
)

func TestToParts(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want Parts
	}{
		{0, Parts{}},
		{1500 * time.Millisecond, Parts{Seconds: 1, Nanos: 500_000_000}},
		{-1500 * time.Millisecond, Parts{Seconds: -1, Nanos: -500_000_000}},
		{123 * time.Second, Parts{Seconds: 123}},
		{1, Parts{Nanos: 1}},
		{math.MaxInt64, Parts{Seconds: 9223372036, Nanos: 854775807}},
		{math.MinInt64, Parts{Seconds: -9223372036, Nanos: -854775808}},
	}

	for _, tt := range tests {
		got := ToParts(tt.in)
		if got != tt.want {
			t.Errorf("ToParts(%d) = %+v, want %+v", int64(tt.in), got, tt.want)
		}
		back, err := FromParts(got)
		if err != nil {
			t.Errorf("FromParts(%+v) error = %v", got, err)
			continue
		}
		if back != tt.in {
			t.Errorf("FromParts(ToParts(%d)) = %d", int64(tt.in), int64(back))
		}
	}
}

func TestFromPartsRejects(t *testing.T) {
	tests := []struct {
		name string
		in   Parts
		want error
	}{
		{"NanosTooLarge", Parts{Seconds: 1, Nanos: 1_000_000_000}, ErrSubsecond},
		{"NanosTooSmall", Parts{Seconds: -1, Nanos: -1_000_000_000}, ErrSubsecond},
		{"MixedSignPositiveSeconds", Parts{Seconds: 1, Nanos: -1}, ErrSubsecond},
		{"MixedSignNegativeSeconds", Parts{Seconds: -1, Nanos: 1}, ErrSubsecond},
		{"SecondsOverflow", Parts{Seconds: 9223372037}, ErrOverflow},
		{"SecondsUnderflow", Parts{Seconds: -9223372037}, ErrOverflow},
		{"SumOverflow", Parts{Seconds: 9223372036, Nanos: 854775808}, ErrOverflow},
		{"SumUnderflow", Parts{Seconds: -9223372036, Nanos: -854775809}, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromParts(tt.in); err != tt.want {
				t.Errorf("FromParts(%+v) error = %v, want %v", tt.in, err, tt.want)
			}
			if _, err := FormatParts(tt.in); err != tt.want {
				t.Errorf("FormatParts(%+v) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestFromPartsZeroSecondsEitherSign(t *testing.T) {
	for _, nanos := range []int32{-999_999_999, -1, 1, 999_999_999} {
		d, err := FromParts(Parts{Nanos: nanos})
		if err != nil {
			t.Fatalf("FromParts(0, %d) error = %v", nanos, err)
		}
		if d != time.Duration(nanos) {
			t.Errorf("FromParts(0, %d) = %d", nanos, int64(d))
		}
	}
}

func TestPartsStrings(t *testing.T) {
	s, err := FormatParts(Parts{Seconds: 1, Nanos: 500_000_000})
	if err != nil {
		t.Fatalf("FormatParts error = %v", err)
	}
	if s != "1500ms" {
		t.Errorf("FormatParts = %q, want 1500ms", s)
	}

	p, err := ParseParts("90m")
	if err != nil {
		t.Fatalf("ParseParts error = %v", err)
	}
	if p != (Parts{Seconds: 5400}) {
		t.Errorf("ParseParts(90m) = %+v", p)
	}

	if _, err := ParseParts("90 minutes"); err == nil {
		t.Error("ParseParts accepted an invalid string")
	}
}
