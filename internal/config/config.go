// Package config loads durfmt settings from defaults, an optional
// durfmt.yaml, .env files, DURFMT_* environment variables and bound
// command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/mash-protocol/durunit/pkg/duration"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputCBOR = "cbor"
	OutputDiag = "diag"
)

// OutputFormats lists the accepted values of the output setting.
var OutputFormats = []string{OutputText, OutputJSON, OutputYAML, OutputCBOR, OutputDiag}

// Config holds the durfmt settings.
type Config struct {
	// Output is the result format, one of OutputFormats.
	Output string `mapstructure:"output"`

	// LogLevel is an slog level name: debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`

	REPL REPLConfig `mapstructure:"repl"`
}

// REPLConfig configures the interactive mode.
type REPLConfig struct {
	Prompt string `mapstructure:"prompt"`

	// HistoryFile is the readline history path. Empty disables history.
	HistoryFile string `mapstructure:"history_file"`

	// Journal is the path of the CBOR session journal. Empty disables it.
	Journal string `mapstructure:"journal"`

	// MaxSession ends the session after this long. Zero means no limit.
	MaxSession duration.Duration `mapstructure:"max_session"`
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.Output) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output, OutputFormats)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.REPL.MaxSession < 0 {
		return fmt.Errorf("repl.max_session must not be negative, got %s", c.REPL.MaxSession)
	}
	return nil
}

// SlogLevel returns the configured log level. It assumes Validate passed.
func (c *Config) SlogLevel() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// ParseLevel parses an slog level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
