package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mash-protocol/durunit/internal/config"
	"github.com/mash-protocol/durunit/pkg/duration"
	"github.com/mash-protocol/durunit/pkg/log"
)

// lineReader is the REPL input. *readline.Instance implements it.
type lineReader interface {
	Readline() (string, error)
	Stdout() io.Writer
	Close() error
}

func newReadline(_ *cobra.Command, cfg *config.Config) (lineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.REPL.Prompt,
		HistoryFile:     cfg.REPL.HistoryFile,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}

func completer() *readline.PrefixCompleter {
	outputs := make([]readline.PrefixCompleterInterface, 0, len(config.OutputFormats))
	for _, f := range config.OutputFormats {
		outputs = append(outputs, readline.PcItem(f))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("format"),
		readline.PcItem("parse"),
		readline.PcItem("normalize"),
		readline.PcItem("convert"),
		readline.PcItem("units"),
		readline.PcItem("output", outputs...),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Repl reads commands interactively. Sessions end on "quit", EOF (Ctrl-D)
or when repl.max_session elapses. With repl.journal set, every command
and result is appended to a CBOR journal readable by "durfmt journal".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.newLineReader(cmd, a.cfg)
			if err != nil {
				return err
			}
			s, err := a.newSession(in)
			if err != nil {
				_ = in.Close()
				return err
			}
			return s.run(cmd.Context())
		},
	}
}

// session is one interactive REPL run.
type session struct {
	id         string
	in         lineReader
	out        io.Writer
	output     string
	maxSession time.Duration
	logger     *slog.Logger
	journal    log.Logger

	closeJournal func() error
	closeOnce    sync.Once
}

func (a *app) newSession(in lineReader) (*session, error) {
	id := uuid.NewString()
	logger := a.logger.With("session_id", id)

	s := &session{
		id:         id,
		in:         in,
		out:        in.Stdout(),
		output:     a.cfg.Output,
		maxSession: a.cfg.REPL.MaxSession.Std(),
		logger:     logger,
		journal:    log.NewSlogAdapter(a.logger),
	}
	// Raw CBOR is unreadable on a terminal.
	if s.output == config.OutputCBOR {
		s.output = config.OutputDiag
	}

	if path := a.cfg.REPL.Journal; path != "" {
		fl, err := log.NewFileLogger(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open journal: %w", err)
		}
		s.journal = log.NewMultiLogger(s.journal, fl)
		s.closeJournal = fl.Close
	}
	return s, nil
}

// closeInput closes the reader once; the session limit and normal exit
// may both try.
func (s *session) closeInput() {
	s.closeOnce.Do(func() {
		_ = s.in.Close()
	})
}

// run reads and evaluates lines until quit, EOF or ctx is done, then
// closes the input and the journal.
func (s *session) run(ctx context.Context) error {
	if s.maxSession > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.maxSession)
		defer cancel()
	}
	// Readline blocks; closing the input unblocks it.
	stop := context.AfterFunc(ctx, s.closeInput)
	defer stop()

	s.record(log.Event{Kind: log.KindSessionStart})
	s.logger.Info("session started", "max_session", duration.Format(s.maxSession))
	fmt.Fprintf(s.out, "durfmt session %s. Type 'help' for commands.\n", s.id)

	s.loop(ctx)

	s.record(log.Event{Kind: log.KindSessionEnd})
	s.logger.Info("session ended")
	s.closeInput()
	if s.closeJournal != nil {
		return s.closeJournal()
	}
	return nil
}

func (s *session) loop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			s.reportDone(ctx)
			return
		}

		line, err := s.in.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if ctx.Err() != nil {
				s.reportDone(ctx)
			} else {
				fmt.Fprintln(s.out, "Exiting...")
			}
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if !s.dispatch(input) {
			fmt.Fprintln(s.out, "Exiting...")
			return
		}
	}
}

func (s *session) reportDone(ctx context.Context) {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		fmt.Fprintf(s.out, "Session limit of %s reached.\n", duration.Format(s.maxSession))
		return
	}
	fmt.Fprintln(s.out, "Interrupted.")
}

// replAliases maps short command names to their canonical form.
var replAliases = map[string]string{
	"?":    "help",
	"f":    "format",
	"p":    "parse",
	"n":    "normalize",
	"norm": "normalize",
	"c":    "convert",
	"u":    "units",
	"o":    "output",
	"q":    "quit",
	"exit": "quit",
}

// dispatch evaluates one input line. It returns false on quit.
func (s *session) dispatch(input string) bool {
	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])
	if canonical, ok := replAliases[cmd]; ok {
		cmd = canonical
	}
	args := fields[1:]
	rest := strings.Join(args, " ")
	s.record(log.Event{Kind: log.KindCommand, Command: cmd, Input: rest})

	switch cmd {
	case "help":
		s.printHelp()

	case "format":
		evaluate(s, "format", rest, args, formatValue)

	case "parse":
		evaluate(s, "parse", rest, args, parseValue)

	case "normalize":
		evaluate(s, "normalize", rest, args, normalizeValue)

	case "convert":
		if len(args) < 2 {
			s.fail("convert", rest, errors.New("usage: convert <string>... <unit>"))
			return true
		}
		to := args[len(args)-1]
		evaluate(s, "convert", rest, args[:len(args)-1], func(v string) (convertResult, error) {
			return convertValue(v, to)
		})

	case "units":
		show(s, "units", rest, unitRows())

	case "output":
		s.cmdOutput(rest)

	case "quit":
		return false

	default:
		s.fail(cmd, rest, fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd))
	}
	return true
}

func (s *session) cmdOutput(format string) {
	if format == "" {
		fmt.Fprintf(s.out, "Output: %s\n", s.output)
		return
	}
	if !slices.Contains(config.OutputFormats, format) || format == config.OutputCBOR {
		s.fail("output", format, fmt.Errorf("invalid output format: %s", format))
		return
	}
	s.output = format
	fmt.Fprintf(s.out, "Output: %s\n", s.output)
}

func (s *session) printHelp() {
	fmt.Fprintln(s.out, `
durfmt Commands:
  format <value>...          - Format nanoseconds or Go durations (1h30m)
  parse <string>...          - Parse duration strings
  normalize <string>...      - Rewrite in unit-minimal form
  convert <string>... <unit> - Express in another unit (suffix or name)
  units                      - List units
  output [format]            - Show or set output: text, json, yaml, diag

  help                       - Show this help
  quit                       - End the session`)
}

// ticker is implemented by results that carry a single duration. ok is
// false when the result has no representable duration.
type ticker interface {
	ticks() (d time.Duration, ok bool)
}

func (r formatResult) ticks() (time.Duration, bool) {
	return time.Duration(r.Nanos), true
}

func (r parseResult) ticks() (time.Duration, bool) {
	return time.Duration(r.Nanos), true
}

func (r convertResult) ticks() (time.Duration, bool) {
	d, err := r.Result.Duration()
	return d, err == nil
}

// evaluate runs fn over args and prints the results.
func evaluate[T texter](s *session, command, input string, args []string, fn func(string) (T, error)) {
	if len(args) == 0 {
		s.fail(command, input, fmt.Errorf("usage: %s <value>...", command))
		return
	}
	results, err := mapArgs(args, fn)
	if err != nil {
		s.fail(command, input, err)
		return
	}
	show(s, command, input, results)
}

// show prints results and journals them.
func show[T texter](s *session, command, input string, results []T) {
	var buf bytes.Buffer
	if err := emit(&buf, s.output, results); err != nil {
		s.fail(command, input, err)
		return
	}
	_, _ = s.out.Write(buf.Bytes())

	event := log.Event{
		Kind:    log.KindResult,
		Command: command,
		Input:   input,
		Output:  strings.TrimSpace(buf.String()),
	}
	if len(results) == 1 {
		if t, ok := any(results[0]).(ticker); ok {
			if d, ok := t.ticks(); ok {
				v := duration.Duration(d)
				event.Value = &v
			}
		}
	}
	s.record(event)
}

func (s *session) fail(command, input string, err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)
	s.record(log.Event{
		Kind:    log.KindError,
		Command: command,
		Input:   input,
		Error:   log.NewErrorData(err),
	})
}

func (s *session) record(event log.Event) {
	event.Timestamp = time.Now()
	event.SessionID = s.id
	s.journal.Log(event)
}
