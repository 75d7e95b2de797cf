package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mash-protocol/durunit/pkg/duration"
	"github.com/mash-protocol/durunit/pkg/timeunit"
)

// formatResult is the output of format and normalize.
type formatResult struct {
	Input     string `json:"input" yaml:"input" cbor:"1,keyasint"`
	Nanos     int64  `json:"nanos" yaml:"nanos" cbor:"2,keyasint"`
	Formatted string `json:"formatted" yaml:"formatted" cbor:"3,keyasint"`
}

func (r formatResult) Text() string { return r.Formatted }

// parseResult is the output of parse.
type parseResult struct {
	Input       string             `json:"input" yaml:"input" cbor:"1,keyasint"`
	Nanos       int64              `json:"nanos" yaml:"nanos" cbor:"2,keyasint"`
	Seconds     int64              `json:"seconds" yaml:"seconds" cbor:"3,keyasint"`
	SubsecNanos int32              `json:"subsec_nanos" yaml:"subsec_nanos" cbor:"4,keyasint"`
	Go          string             `json:"go" yaml:"go" cbor:"5,keyasint"`
	Written     duration.UnitValue `json:"written" yaml:"written" cbor:"6,keyasint"`
	Normalized  duration.Duration  `json:"normalized" yaml:"normalized" cbor:"7,keyasint"`
}

func (r parseResult) Text() string {
	return fmt.Sprintf("%d\t%s\t%s", r.Nanos, r.Go, r.Written)
}

// convertResult is the output of convert.
type convertResult struct {
	Input  string             `json:"input" yaml:"input" cbor:"1,keyasint"`
	To     string             `json:"to" yaml:"to" cbor:"2,keyasint"`
	Result duration.UnitValue `json:"result" yaml:"result" cbor:"3,keyasint"`
}

func (r convertResult) Text() string { return r.Result.String() }

// unitRow describes one unit for the units command.
type unitRow struct {
	Name    string   `json:"name" yaml:"name" cbor:"1,keyasint"`
	Suffix  string   `json:"suffix" yaml:"suffix" cbor:"2,keyasint"`
	Nanos   int64    `json:"nanos" yaml:"nanos" cbor:"3,keyasint"`
	Aliases []string `json:"aliases" yaml:"aliases" cbor:"4,keyasint"`
}

func (r unitRow) Text() string {
	return fmt.Sprintf("%-12s %-3s %16d  %v", r.Name, r.Suffix, r.Nanos, r.Aliases)
}

// readTicks accepts integer nanoseconds or a Go duration literal.
func readTicks(s string) (time.Duration, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n), nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	return 0, fmt.Errorf("invalid value %q: want integer nanoseconds or a Go duration such as 1h30m", s)
}

func formatValue(s string) (formatResult, error) {
	d, err := readTicks(s)
	if err != nil {
		return formatResult{}, err
	}
	return formatResult{Input: s, Nanos: int64(d), Formatted: duration.Format(d)}, nil
}

func normalizeValue(s string) (formatResult, error) {
	d, err := duration.Parse(s)
	if err != nil {
		return formatResult{}, err
	}
	return formatResult{Input: s, Nanos: int64(d), Formatted: duration.Format(d)}, nil
}

func parseValue(s string) (parseResult, error) {
	v, err := duration.ParseUnitValue(s)
	if err != nil {
		return parseResult{}, err
	}
	d, err := v.Duration()
	if err != nil {
		return parseResult{}, err
	}
	p := duration.ToParts(d)
	return parseResult{
		Input:       s,
		Nanos:       int64(d),
		Seconds:     p.Seconds,
		SubsecNanos: p.Nanos,
		Go:          d.String(),
		Written:     v,
		Normalized:  duration.Duration(d),
	}, nil
}

func convertValue(s, to string) (convertResult, error) {
	unit, err := timeunit.ParseName(to)
	if err != nil {
		return convertResult{}, err
	}
	v, err := duration.ParseUnitValue(s)
	if err != nil {
		return convertResult{}, err
	}
	c, err := v.Convert(unit)
	if err != nil {
		return convertResult{}, fmt.Errorf("convert %s to %s: %w", s, unit.Suffix(), err)
	}
	return convertResult{Input: s, To: unit.Suffix(), Result: c}, nil
}

func unitRows() []unitRow {
	var rows []unitRow
	for u := range timeunit.All() {
		rows = append(rows, unitRow{
			Name:    u.String(),
			Suffix:  u.Suffix(),
			Nanos:   int64(u.Scale()),
			Aliases: u.Aliases(),
		})
	}
	return rows
}

// mapArgs applies fn to each argument, stopping at the first error.
func mapArgs[T any](args []string, fn func(string) (T, error)) ([]T, error) {
	results := make([]T, 0, len(args))
	for _, arg := range args {
		r, err := fn(arg)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
