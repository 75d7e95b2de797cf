package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/durunit/pkg/duration"
)

// isolate points the user config directory at an empty temp dir and
// clears durfmt variables for the duration of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("AppData", dir)
	for _, key := range []string{"DURFMT_OUTPUT", "DURFMT_LOG_LEVEL", "DURFMT_REPL_PROMPT", "DURFMT_REPL_MAX_SESSION"} {
		t.Setenv(key, "x")
		os.Unsetenv(key)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(NewViper(), "", filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	assert.Equal(t, "durfmt> ", cfg.REPL.Prompt)
	assert.Empty(t, cfg.REPL.HistoryFile)
	assert.Empty(t, cfg.REPL.Journal)
	assert.Zero(t, cfg.REPL.MaxSession)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "custom.yaml"), `
output: json
log_level: debug
repl:
  prompt: "d> "
  history_file: /tmp/durfmt_history
  journal: /tmp/session.djl
  max_session: 2h
`)

	cfg, err := Load(NewViper(), path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "d> ", cfg.REPL.Prompt)
	assert.Equal(t, "/tmp/durfmt_history", cfg.REPL.HistoryFile)
	assert.Equal(t, "/tmp/session.djl", cfg.REPL.Journal)
	assert.Equal(t, duration.Duration(2*time.Hour), cfg.REPL.MaxSession)
}

func TestLoadSearchesUserConfigDir(t *testing.T) {
	dir := isolate(t)
	userDir, err := os.UserConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(userDir, ConfigName), 0o755))
	writeFile(t, filepath.Join(userDir, ConfigName, "durfmt.yaml"), "output: yaml\n")

	cfg, err := Load(NewViper(), "", filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, cfg.Output)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "durfmt.yaml"), "output: json\nrepl:\n  max_session: 1h\n")
	t.Setenv("DURFMT_OUTPUT", "cbor")
	t.Setenv("DURFMT_REPL_MAX_SESSION", "90s")

	cfg, err := Load(NewViper(), path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, OutputCBOR, cfg.Output)
	assert.Equal(t, duration.Duration(90*time.Second), cfg.REPL.MaxSession)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	envFile := writeFile(t, filepath.Join(dir, ".env"), "DURFMT_REPL_PROMPT=\"env> \"\nDURFMT_LOG_LEVEL=error\n")
	t.Cleanup(func() {
		os.Unsetenv("DURFMT_REPL_PROMPT")
		os.Unsetenv("DURFMT_LOG_LEVEL")
	})

	cfg, err := Load(NewViper(), "", envFile)
	require.NoError(t, err)

	assert.Equal(t, "env> ", cfg.REPL.Prompt)
	assert.Equal(t, slog.LevelError, cfg.SlogLevel())
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := isolate(t)
	envFile := writeFile(t, filepath.Join(dir, ".env"), "DURFMT_OUTPUT=yaml\n")
	t.Setenv("DURFMT_OUTPUT", "diag")

	cfg, err := Load(NewViper(), "", envFile)
	require.NoError(t, err)
	assert.Equal(t, OutputDiag, cfg.Output)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"BadOutput", "output: xml\n", "invalid output format"},
		{"BadLevel", "log_level: loud\n", "invalid log level"},
		{"BadDuration", "repl:\n  max_session: 1.5h\n", "decode config"},
		{"UnknownUnit", "repl:\n  max_session: 3y\n", "unknown time unit"},
		{"Negative", "repl:\n  max_session: -1m\n", "must not be negative"},
		{"Malformed", "output: [\n", "error reading config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := writeFile(t, filepath.Join(dir, "durfmt.yaml"), tt.content)

			_, err := Load(NewViper(), path, filepath.Join(dir, "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(NewViper(), filepath.Join(dir, "nope.yaml"), filepath.Join(dir, "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("INFO")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = ParseLevel("")
	assert.Error(t, err)
}
