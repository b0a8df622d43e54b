package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config represents the lapwatch configuration document.
type Config struct {
	Title         string    `yaml:"title,omitempty" validate:"max=64"`
	Theme         string    `yaml:"theme" validate:"required,theme"`
	FrameInterval Duration  `yaml:"frame_interval" validate:"frame_interval"`
	MinWidth      int       `yaml:"min_width,omitempty" validate:"min=20,max=400"`
	MinHeight     int       `yaml:"min_height,omitempty" validate:"min=8,max=200"`
	Log           LogConfig `yaml:"log,omitempty"`
}

// LogConfig controls where diagnostic logs go. An empty File disables logging.
type LogConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,log_level"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Title:         "Stopwatch",
		Theme:         ThemeAuto,
		FrameInterval: Duration(16 * time.Millisecond),
		MinWidth:      48,
		MinHeight:     16,
		Log:           LogConfig{Level: "info"},
	}
}

// ResolveDark reports whether the dark palette should be used. The probe is
// only consulted for the auto theme.
func (c Config) ResolveDark(hasDarkBackground func() bool) bool {
	switch c.Theme {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		if hasDarkBackground == nil {
			return true
		}
		return hasDarkBackground()
	}
}

// Duration is a time.Duration that reads and writes Go duration strings.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML accepts "16ms" style strings and bare integers as milliseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if parsed, err := time.ParseDuration(raw); err == nil {
		*d = Duration(parsed)
		return nil
	}

	var ms int64
	if err := value.Decode(&ms); err != nil {
		return fmt.Errorf("invalid duration %q", raw)
	}
	*d = Duration(time.Duration(ms) * time.Millisecond)
	return nil
}

// MarshalYAML writes the duration in its string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
