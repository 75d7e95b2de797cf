package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/mash-protocol/durunit/pkg/duration"
)

func logOne(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output %q: %v", buf.String(), err)
	}
	return entry
}

func TestSlogAdapterLogsResult(t *testing.T) {
	value := duration.Duration(1500 * time.Microsecond)
	entry := logOne(t, Event{
		Timestamp: time.Now(),
		SessionID: "sess-1",
		Kind:      KindResult,
		Command:   "normalize",
		Input:     "1500000ns",
		Output:    "1500us",
		Value:     &value,
	})

	want := map[string]string{
		"msg":        "journal",
		"level":      "DEBUG",
		"session_id": "sess-1",
		"kind":       "RESULT",
		"command":    "normalize",
		"input":      "1500000ns",
		"output":     "1500us",
		"value":      "1500us",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %q", k, entry[k], v)
		}
	}
	if _, ok := entry["error_class"]; ok {
		t.Error("error_class present on a result")
	}
}

func TestSlogAdapterLogsErrorAtWarn(t *testing.T) {
	entry := logOne(t, Event{
		SessionID: "sess-2",
		Kind:      KindError,
		Command:   "parse",
		Error:     &ErrorData{Class: ErrorClassUnknownUnit, Message: "unknown"},
	})

	if entry["level"] != "WARN" {
		t.Errorf("level: got %v, want WARN", entry["level"])
	}
	if entry["error_class"] != "UNKNOWN_UNIT" {
		t.Errorf("error_class: got %v", entry["error_class"])
	}
	if entry["error_msg"] != "unknown" {
		t.Errorf("error_msg: got %v", entry["error_msg"])
	}
	if _, ok := entry["input"]; ok {
		t.Error("empty input should be omitted")
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	NewSlogAdapter(slog.New(handler)).Log(Event{Kind: KindCommand})

	if buf.Len() != 0 {
		t.Errorf("debug event logged at info level: %s", buf.String())
	}
}
