package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/durunit/pkg/duration"
	"github.com/mash-protocol/durunit/pkg/log"
)

func writeJournal(t *testing.T, path string, events []log.Event) {
	t.Helper()
	fl, err := log.NewFileLogger(path)
	require.NoError(t, err)
	for _, e := range events {
		fl.Log(e)
	}
	require.NoError(t, fl.Close())
}

func sampleJournal(t *testing.T, dir string) string {
	t.Helper()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	value := duration.Duration(time.Minute)
	path := filepath.Join(dir, "sample.djl")
	writeJournal(t, path, []log.Event{
		{Timestamp: base, SessionID: "aaaaaaaa-1", Kind: log.KindSessionStart},
		{Timestamp: base.Add(time.Second), SessionID: "aaaaaaaa-1", Kind: log.KindCommand, Command: "normalize", Input: "60s"},
		{Timestamp: base.Add(2 * time.Second), SessionID: "aaaaaaaa-1", Kind: log.KindResult, Command: "normalize", Input: "60s", Output: "1m", Value: &value},
		{Timestamp: base.Add(3 * time.Second), SessionID: "bbbbbbbb-2", Kind: log.KindCommand, Command: "parse", Input: "1.5s"},
		{Timestamp: base.Add(4 * time.Second), SessionID: "bbbbbbbb-2", Kind: log.KindError, Command: "parse", Input: "1.5s",
			Error: &log.ErrorData{Class: log.ErrorClassInvalidNumber, Message: "bad magnitude"}},
		{Timestamp: base.Add(90 * time.Second), SessionID: "bbbbbbbb-2", Kind: log.KindSessionEnd},
	})
	return path
}

func TestJournalCommandText(t *testing.T) {
	dir := isolate(t)
	path := sampleJournal(t, dir)

	out, _, err := executeApp(newTestApp(dir), "journal", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "2026-05-01T09:00:02Z [aaaaaaaa] RESULT        normalize 60s -> 1m", lines[2])
	assert.Equal(t, "2026-05-01T09:00:04Z [bbbbbbbb] ERROR         parse 1.5s !! INVALID_NUMBER: bad magnitude", lines[4])
}

func TestJournalCommandFilters(t *testing.T) {
	dir := isolate(t)
	path := sampleJournal(t, dir)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"Kind", []string{"--kind", "error"}, 1},
		{"Session", []string{"--session", "aaaaaaaa-1"}, 3},
		{"Command", []string{"--command", "parse"}, 2},
		{"Combined", []string{"--command", "normalize", "--kind", "RESULT"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeApp(newTestApp(dir), append([]string{"journal", path}, tt.args...)...)
			require.NoError(t, err)
			assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), tt.want)
		})
	}
}

func TestJournalCommandStats(t *testing.T) {
	dir := isolate(t)
	path := sampleJournal(t, dir)

	out, _, err := executeApp(newTestApp(dir), "journal", path, "--stats", "-o", "json")
	require.NoError(t, err)

	var stats []journalStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	require.Len(t, stats, 1)

	s := stats[0]
	assert.Equal(t, 6, s.Events)
	assert.Equal(t, 2, s.Sessions)
	assert.Equal(t, 2, s.ByKind["COMMAND"])
	assert.Equal(t, 1, s.ByError["INVALID_NUMBER"])
	assert.Equal(t, duration.Duration(90*time.Second), s.Span)
}

func TestJournalCommandStatsText(t *testing.T) {
	dir := isolate(t)
	path := sampleJournal(t, dir)

	out, _, err := executeApp(newTestApp(dir), "journal", path, "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Events:   6\n")
	assert.Contains(t, out, "Span:     90s\n")
	assert.Contains(t, out, "  INVALID_NUMBER 1")
}

func TestJournalCommandErrors(t *testing.T) {
	dir := isolate(t)
	path := sampleJournal(t, dir)

	_, _, err := executeApp(newTestApp(dir), "journal", path, "--kind", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown event kind "nope"`)

	_, _, err = executeApp(newTestApp(dir), "journal", filepath.Join(dir, "missing.djl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open journal")
}
