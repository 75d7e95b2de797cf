// Package log records REPL session journals for durfmt.
//
// A journal is a stream of Events, one per command entered, result
// printed or error reported, tagged with the session that produced it.
// It is separate from operational logging (slog): the journal is a
// machine-readable record that can be replayed and filtered later.
//
// # Basic Usage
//
//	// Console only
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// Binary journal file
//	logger, _ := log.NewFileLogger("session.djl")
//
//	// Both
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Journal files are a sequence of CBOR-encoded events with integer keys.
// Duration values inside events are stored as duration strings ("90s"),
// so a journal can be inspected with any CBOR diagnostic tool. The
// "durfmt journal" command reads and filters them.
package log
