package preset

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// prTomlFile is the on-disk shape of a presets file:
//
//	[[preset]]
//	name = "teal"
//	red = 0
//	green = 128
//	blue = 128
type prTomlFile struct {
	Presets []Preset `toml:"preset"`
}

// LoadFromTOML parses presets from TOML data. Every entry is validated; the
// first invalid one aborts the load.
func LoadFromTOML(data []byte) ([]Preset, error) {
	var raw prTomlFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("preset: parse TOML: %w", err)
	}
	if len(raw.Presets) == 0 {
		return nil, fmt.Errorf("preset: no [[preset]] entries defined")
	}
	for i, p := range raw.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("preset[%d]: %w", i, err)
		}
	}
	return raw.Presets, nil
}

// LoadFile reads a presets file and registers every preset in it. It
// returns the number of presets registered.
func LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("preset: read %s: %w", path, err)
	}
	presets, err := LoadFromTOML(data)
	if err != nil {
		return 0, err
	}
	for _, p := range presets {
		if err := Register(p); err != nil {
			return 0, err
		}
	}
	return len(presets), nil
}

// SaveToTOML serializes presets to TOML format.
func SaveToTOML(presets []Preset) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(prTomlFile{Presets: presets}); err != nil {
		return nil, fmt.Errorf("preset: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}
