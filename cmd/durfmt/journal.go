package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mash-protocol/durunit/pkg/duration"
	"github.com/mash-protocol/durunit/pkg/log"
)

// journalRow is one journal event in display form.
type journalRow struct {
	Time    string `json:"time" yaml:"time" cbor:"1,keyasint"`
	Session string `json:"session" yaml:"session" cbor:"2,keyasint"`
	Kind    string `json:"kind" yaml:"kind" cbor:"3,keyasint"`
	Command string `json:"command,omitempty" yaml:"command,omitempty" cbor:"4,keyasint,omitempty"`
	Input   string `json:"input,omitempty" yaml:"input,omitempty" cbor:"5,keyasint,omitempty"`
	Output  string `json:"output,omitempty" yaml:"output,omitempty" cbor:"6,keyasint,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty" cbor:"7,keyasint,omitempty"`
}

func (r journalRow) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %-13s", r.Time, shortID(r.Session), r.Kind)
	if r.Command != "" {
		fmt.Fprintf(&b, " %s", r.Command)
	}
	if r.Input != "" {
		fmt.Fprintf(&b, " %s", r.Input)
	}
	if r.Output != "" {
		fmt.Fprintf(&b, " -> %s", r.Output)
	}
	if r.Error != "" {
		fmt.Fprintf(&b, " !! %s", r.Error)
	}
	return b.String()
}

func newJournalRow(e log.Event) journalRow {
	row := journalRow{
		Time:    e.Timestamp.Format(time.RFC3339Nano),
		Session: e.SessionID,
		Kind:    e.Kind.String(),
		Command: e.Command,
		Input:   e.Input,
		Output:  e.Output,
	}
	if e.Error != nil {
		row.Error = e.Error.Class.String() + ": " + e.Error.Message
	}
	return row
}

// journalStats summarizes a journal.
type journalStats struct {
	Events   int               `json:"events" yaml:"events" cbor:"1,keyasint"`
	Sessions int               `json:"sessions" yaml:"sessions" cbor:"2,keyasint"`
	ByKind   map[string]int    `json:"by_kind" yaml:"by_kind" cbor:"3,keyasint"`
	ByError  map[string]int    `json:"by_error" yaml:"by_error" cbor:"4,keyasint"`
	Span     duration.Duration `json:"span" yaml:"span" cbor:"5,keyasint"`
}

func (s journalStats) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Events:   %d\n", s.Events)
	fmt.Fprintf(&b, "Sessions: %d\n", s.Sessions)
	fmt.Fprintf(&b, "Span:     %s\n", s.Span)
	b.WriteString("By kind:")
	for _, k := range slices.Sorted(maps.Keys(s.ByKind)) {
		fmt.Fprintf(&b, "\n  %-13s %d", k, s.ByKind[k])
	}
	if len(s.ByError) > 0 {
		b.WriteString("\nBy error:")
		for _, k := range slices.Sorted(maps.Keys(s.ByError)) {
			fmt.Fprintf(&b, "\n  %-13s %d", k, s.ByError[k])
		}
	}
	return b.String()
}

func (a *app) journalCmd() *cobra.Command {
	var (
		session string
		kind    string
		command string
		stats   bool
	)
	cmd := &cobra.Command{
		Use:   "journal <file>",
		Short: "Show a REPL session journal",
		Long: `Journal prints the events recorded by "durfmt repl" when repl.journal
is set. Filters combine; --stats prints a summary instead of events.`,
		Example: `  durfmt journal session.djl --kind ERROR
  durfmt journal session.djl --stats -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := log.Filter{SessionID: session, Command: command}
			if kind != "" {
				k, ok := log.ParseKind(strings.ToUpper(kind))
				if !ok {
					return fmt.Errorf("unknown event kind %q", kind)
				}
				filter.Kind = &k
			}

			events, err := readJournal(args[0], filter)
			if err != nil {
				return err
			}
			a.logger.Debug("journal read", "path", args[0], "events", len(events))

			if stats {
				return emit(cmd.OutOrStdout(), a.cfg.Output, []journalStats{summarize(events)})
			}
			rows := make([]journalRow, 0, len(events))
			for _, e := range events {
				rows = append(rows, newJournalRow(e))
			}
			return emit(cmd.OutOrStdout(), a.cfg.Output, rows)
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "only events of this session ID")
	cmd.Flags().StringVar(&kind, "kind", "", "only events of this kind (e.g. ERROR, RESULT)")
	cmd.Flags().StringVar(&command, "command", "", "only events of this REPL command")
	cmd.Flags().BoolVar(&stats, "stats", false, "print a summary")
	return cmd
}

func readJournal(path string, filter log.Filter) ([]log.Event, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	var events []log.Event
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		events = append(events, event)
	}
}

func summarize(events []log.Event) journalStats {
	s := journalStats{
		ByKind:  make(map[string]int),
		ByError: make(map[string]int),
	}
	sessions := make(map[string]bool)
	var first, last time.Time
	for _, e := range events {
		s.Events++
		s.ByKind[e.Kind.String()]++
		if e.Error != nil {
			s.ByError[e.Error.Class.String()]++
		}
		sessions[e.SessionID] = true
		if first.IsZero() || e.Timestamp.Before(first) {
			first = e.Timestamp
		}
		if e.Timestamp.After(last) {
			last = e.Timestamp
		}
	}
	s.Sessions = len(sessions)
	if !first.IsZero() {
		s.Span = duration.Duration(last.Sub(first).Truncate(time.Millisecond))
	}
	return s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
