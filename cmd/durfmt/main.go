// Command durfmt formats, parses and converts unit-minimal duration strings.
//
// A duration string is an optional minus sign, decimal digits and a unit
// suffix: ns, us, ms, s, m, h, d or w. Formatting always picks the largest
// unit that represents the value exactly, so 90 seconds is "90s" and 120
// seconds is "2m".
//
// Usage:
//
//	durfmt [command] [flags]
//
// Commands:
//
//	format <value>...           Format nanoseconds or Go durations ("1h30m")
//	parse <string>...           Parse duration strings
//	normalize <string>...       Rewrite duration strings in unit-minimal form
//	convert <string> --to unit  Express a duration in another unit
//	units                       List the supported units
//	repl                        Start an interactive session
//	journal <file>              Show a REPL session journal
//	decode [file]               Print CBOR output or a journal in diagnostic notation
//
// Flags:
//
//	-o, --output string     Output format: text, json, yaml, cbor, diag (default "text")
//	    --log-level string  Log level: debug, info, warn, error (default "warn")
//	-c, --config string     Config file (default durfmt.yaml in . or the user config dir)
//
// Settings can also come from DURFMT_* environment variables and a .env
// file, e.g. DURFMT_REPL_MAX_SESSION=30m.
//
// Examples:
//
//	durfmt format 90000000000 1h30m
//	durfmt parse 1500us -o json
//	durfmt convert 2h --to minutes
//	durfmt format -- -60000000000
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
