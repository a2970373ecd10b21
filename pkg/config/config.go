// Package config provides TOML and YAML configuration for color-picker.
//
// One Config parameterizes the whole screen: which preset the channels
// start from, how the portrait/landscape breakpoint is decided, which
// palette is used, and how far the arrow keys move a slider.
package config

// Config is the top-level configuration.
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Picker  PickerConfig  `toml:"picker" yaml:"picker"`
	Layout  LayoutConfig  `toml:"layout" yaml:"layout"`
	Theme   ThemeConfig   `toml:"theme" yaml:"theme"`
	Keys    KeysConfig    `toml:"keys" yaml:"keys"`
}

// GeneralConfig holds process-level settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level" yaml:"log_level"` // debug, info, warn, error
	LogFile  string `toml:"log_file" yaml:"log_file"`
}

// PickerConfig selects the initial channel values.
type PickerConfig struct {
	Preset      string          `toml:"preset" yaml:"preset"`
	PresetsFile string          `toml:"presets_file" yaml:"presets_file"`
	Initial     InitialChannels `toml:"initial" yaml:"initial"`
}

// InitialChannels overrides individual channels of the preset. Nil fields
// keep the preset's value.
type InitialChannels struct {
	Red   *float64 `toml:"red" yaml:"red"`
	Green *float64 `toml:"green" yaml:"green"`
	Blue  *float64 `toml:"blue" yaml:"blue"`
}

// LayoutConfig is the portrait/landscape breakpoint rule.
type LayoutConfig struct {
	Orientation       string  `toml:"orientation" yaml:"orientation"` // auto, portrait, landscape
	LandscapeMinRatio float64 `toml:"landscape_min_ratio" yaml:"landscape_min_ratio"`
	MinLandscapeCols  int     `toml:"min_landscape_cols" yaml:"min_landscape_cols"`
	Padding           int     `toml:"padding" yaml:"padding"`
}

// ThemeConfig selects the palette.
type ThemeConfig struct {
	Appearance string `toml:"appearance" yaml:"appearance"` // auto, light, dark
	Name       string `toml:"name" yaml:"name"`             // overrides appearance when set
	File       string `toml:"file" yaml:"file"`             // custom theme TOML
}

// KeysConfig controls slider movement per key press.
type KeysConfig struct {
	Step    float64 `toml:"step" yaml:"step"`
	BigStep float64 `toml:"big_step" yaml:"big_step"`
}
