// Package preset defines named starting points for the picker's channels.
// The "sunflower" preset matches the structured screen (sliders and swatch
// start at 255/214/0); "starter" matches the bare screen where everything
// starts at zero. Users may add their own presets from a TOML file.
package preset

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/color-picker/pkg/colormodel"
)

// DefaultName is the preset used when none is configured or the configured
// name is unknown.
const DefaultName = "sunflower"

// Preset is a named initial channel triple.
type Preset struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Red         float64 `toml:"red"`
	Green       float64 `toml:"green"`
	Blue        float64 `toml:"blue"`
}

// Channels returns the preset's values as a channel triple.
func (p Preset) Channels() colormodel.Channels {
	return colormodel.Channels{R: p.Red, G: p.Green, B: p.Blue}
}

// Validate checks that the preset is named and every channel is in [0, 255].
func (p Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset: missing required field 'name'")
	}
	for _, f := range []struct {
		field string
		v     float64
	}{
		{"red", p.Red},
		{"green", p.Green},
		{"blue", p.Blue},
	} {
		if math.IsNaN(f.v) || f.v < 0 || f.v > colormodel.MaxChannel {
			return fmt.Errorf("preset %q: %s = %v out of range [0, 255]", p.Name, f.field, f.v)
		}
	}
	return nil
}

var (
	mu       sync.RWMutex
	registry map[string]Preset
)

func init() {
	registry = map[string]Preset{}
	for _, p := range prBuiltins() {
		registry[p.Name] = p
	}
}

// Get returns a named preset (case-insensitive), falling back to the
// sunflower preset if not found.
func Get(name string) Preset {
	mu.RLock()
	defer mu.RUnlock()
	if p, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return registry[DefaultName]
}

// Lookup is like Get but reports whether the name was found.
func Lookup(name string) (Preset, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names returns all available preset names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Register validates p and adds it to the registry, replacing any preset
// with the same name.
func Register(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.Name = strings.ToLower(strings.TrimSpace(p.Name))
	mu.Lock()
	defer mu.Unlock()
	registry[p.Name] = p
	return nil
}
