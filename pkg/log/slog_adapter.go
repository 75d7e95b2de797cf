package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes journal events to an slog.Logger. Errors are logged
// at Warn, everything else at Debug.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("kind", event.Kind.String()),
	}
	if event.Command != "" {
		attrs = append(attrs, slog.String("command", event.Command))
	}
	if event.Input != "" {
		attrs = append(attrs, slog.String("input", event.Input))
	}
	if event.Output != "" {
		attrs = append(attrs, slog.String("output", event.Output))
	}
	if event.Value != nil {
		attrs = append(attrs, slog.String("value", event.Value.String()))
	}

	level := slog.LevelDebug
	if event.Error != nil {
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("error_class", event.Error.Class.String()),
			slog.String("error_msg", event.Error.Message),
		)
	}

	a.logger.LogAttrs(context.Background(), level, "journal", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
