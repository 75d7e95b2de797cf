package durationhook

import (
	"testing"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/durunit/pkg/duration"
)

type settings struct {
	Timeout  time.Duration       `mapstructure:"timeout"`
	Interval duration.Duration   `mapstructure:"interval"`
	Window   duration.UnitValue  `mapstructure:"window"`
	Grace    *duration.UnitValue `mapstructure:"grace"`
	Name     string              `mapstructure:"name"`
	Retries  int                 `mapstructure:"retries"`
}

func decode(t *testing.T, input map[string]any) (settings, error) {
	t.Helper()
	var out settings
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: StringToDuration(),
		Result:     &out,
	})
	require.NoError(t, err)
	return out, dec.Decode(input)
}

func TestStringToDuration(t *testing.T) {
	out, err := decode(t, map[string]any{
		"timeout":  "30s",
		"interval": "1500us",
		"window":   "60s",
		"grace":    "2m",
		"name":     "5s",
		"retries":  3,
	})
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, out.Timeout)
	assert.Equal(t, duration.Duration(1500*time.Microsecond), out.Interval)
	assert.Equal(t, duration.FromSecs(60), out.Window)
	require.NotNil(t, out.Grace)
	assert.Equal(t, duration.FromMinutes(2), *out.Grace)
	assert.Equal(t, "5s", out.Name, "plain strings must pass through")
	assert.Equal(t, 3, out.Retries)
}

func TestStringToDurationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  error
	}{
		{"GoSyntax", map[string]any{"timeout": "1h30m"}, duration.ErrUnknownUnit},
		{"Empty", map[string]any{"interval": ""}, duration.ErrEmptyInput},
		{"Fraction", map[string]any{"window": "1.5s"}, duration.ErrInvalidNumber},
		{"Overflow", map[string]any{"grace": "99999999999999999999s"}, duration.ErrOverflow},
	}

	// mapstructure flattens field errors to strings, so match on the
	// sentinel's message.

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode(t, tt.input)
			assert.ErrorContains(t, err, tt.want.Error())
		})
	}
}
