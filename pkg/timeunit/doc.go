// Package timeunit defines the closed set of time units used by duration
// strings.
//
// Every unit has a canonical suffix ("ns", "us", "ms", "s", "m", "h", "d",
// "w") and a scale in nanoseconds. The set is declared in units.yaml and the
// constants, names, suffixes and scales are generated from it:
//
//	go generate ./pkg/timeunit
//
// # Stability
//
// Suffixes and scales are a format contract. Strings written with this
// package are persisted by callers, so the table is never configurable at
// runtime and existing entries must not change.
//
// # Lookup
//
// [Lookup] matches canonical suffixes only and is case-sensitive; it is the
// lookup used by the duration string grammar. [ParseName] additionally
// accepts long forms such as "seconds" or "mins" for human input.
package timeunit

//go:generate go run ../../cmd/unitgen -input units.yaml -output timeunit_gen.go -package timeunit
