package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	lwerrors "github.com/alexisbeaulieu97/lapwatch/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `title: "Intervals"
theme: dark
frame_interval: 33ms
log:
  level: debug
  file: /tmp/lapwatch.log
`

	millisYAML := `theme: light
frame_interval: 50
`

	invalidYAML := `theme: [dark, light]
`

	unknownKey := `theme: dark
colour: purple
`

	badTheme := `theme: sepia
`

	slowFrames := `theme: auto
frame_interval: 5s
`

	badLevel := `theme: auto
log:
  level: chatty
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "Intervals", cfg.Title)
				require.Equal(t, ThemeDark, cfg.Theme)
				require.Equal(t, 33*time.Millisecond, cfg.FrameInterval.Std())
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, "/tmp/lapwatch.log", cfg.Log.File)
				require.Equal(t, Default().MinWidth, cfg.MinWidth)
			},
		},
		{
			name:     "bare integers are milliseconds",
			contents: millisYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 50*time.Millisecond, cfg.FrameInterval.Std())
			},
		},
		{
			name:     "empty document yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), *cfg)
			},
		},
		{
			name:     "malformed yaml reports parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *lwerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *lwerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "unknown theme fails validation",
			contents: badTheme,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *lwerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme", validationErr.Field)
			},
		},
		{
			name:     "frame interval out of range",
			contents: slowFrames,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *lwerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "frame_interval", validationErr.Field)
				require.Contains(t, validationErr.Message, "between 1ms and 1s")
			},
		},
		{
			name:     "log level is checked",
			contents: badLevel,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *lwerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.level", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, "lapwatch.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *lwerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
	require.NoError(t, Validate(cfg))
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.FrameInterval = Duration(40 * time.Millisecond)

	out, err := Marshal(&cfg)
	require.NoError(t, err)
	require.Contains(t, string(out), "frame_interval: 40ms")

	parsed, err := Parse("inline", out)
	require.NoError(t, err)
	require.Equal(t, cfg, *parsed)
}
