package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/color-picker/pkg/colormodel"
	"gitlab.com/tinyland/lab/color-picker/pkg/layout"
	"gitlab.com/tinyland/lab/color-picker/pkg/preset"
	"gitlab.com/tinyland/lab/color-picker/pkg/theme"
)

// Validate checks enum fields, numeric bounds, and initial channel
// overrides. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := ParseLogLevel(c.General.LogLevel); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.Layout.Orientation) {
	case "", "auto", "portrait", "landscape":
	default:
		errs = append(errs, fmt.Errorf("layout.orientation: unknown value %q (want auto, portrait, landscape)", c.Layout.Orientation))
	}
	if c.Layout.LandscapeMinRatio <= 0 {
		errs = append(errs, fmt.Errorf("layout.landscape_min_ratio: must be positive, got %v", c.Layout.LandscapeMinRatio))
	}
	if c.Layout.MinLandscapeCols < 0 {
		errs = append(errs, fmt.Errorf("layout.min_landscape_cols: must not be negative, got %d", c.Layout.MinLandscapeCols))
	}
	if c.Layout.Padding < 0 {
		errs = append(errs, fmt.Errorf("layout.padding: must not be negative, got %d", c.Layout.Padding))
	}

	switch strings.ToLower(c.Theme.Appearance) {
	case "", "auto", "light", "dark":
	default:
		errs = append(errs, fmt.Errorf("theme.appearance: unknown value %q (want auto, light, dark)", c.Theme.Appearance))
	}

	if c.Keys.Step <= 0 {
		errs = append(errs, fmt.Errorf("keys.step: must be positive, got %v", c.Keys.Step))
	}
	if c.Keys.BigStep <= 0 {
		errs = append(errs, fmt.Errorf("keys.big_step: must be positive, got %v", c.Keys.BigStep))
	}

	for _, o := range []struct {
		field string
		v     *float64
	}{
		{"picker.initial.red", c.Picker.Initial.Red},
		{"picker.initial.green", c.Picker.Initial.Green},
		{"picker.initial.blue", c.Picker.Initial.Blue},
	} {
		if o.v != nil && (*o.v < 0 || *o.v > colormodel.MaxChannel) {
			errs = append(errs, fmt.Errorf("%s: %v out of range [0, 255]", o.field, *o.v))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// InitialChannels resolves the configured preset and applies any
// per-channel overrides on top of it.
func (c *Config) InitialChannels() colormodel.Channels {
	ch := preset.Get(c.Picker.Preset).Channels()
	if v := c.Picker.Initial.Red; v != nil {
		ch.R = *v
	}
	if v := c.Picker.Initial.Green; v != nil {
		ch.G = *v
	}
	if v := c.Picker.Initial.Blue; v != nil {
		ch.B = *v
	}
	return ch.Clamped()
}

// Breakpoint builds the orientation rule from the layout section. An
// unparseable orientation is treated as auto; Validate reports it.
func (c *Config) Breakpoint() layout.Breakpoint {
	mode, _ := layout.ParseMode(c.Layout.Orientation)
	return layout.Breakpoint{
		Mode:     mode,
		MinRatio: c.Layout.LandscapeMinRatio,
		MinCols:  c.Layout.MinLandscapeCols,
	}
}

// Appearance returns the configured appearance, auto when unparseable.
func (c *Config) Appearance() theme.Appearance {
	a, _ := theme.ParseAppearance(c.Theme.Appearance)
	return a
}

// ParseLogLevel maps a level name to a slog.Level. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("general.log_level: unknown value %q (want debug, info, warn, error)", s)
}
