// Package theme holds the picker's palettes. The screen only ever swaps
// between a light and a dark background, so every theme declares which
// appearance it belongs to and the registry can pick one for the
// terminal's background.
package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Appearance is the light/dark background class of a theme.
type Appearance int

const (
	AppearanceAuto Appearance = iota
	AppearanceLight
	AppearanceDark
)

// String returns "auto", "light", or "dark".
func (a Appearance) String() string {
	switch a {
	case AppearanceLight:
		return "light"
	case AppearanceDark:
		return "dark"
	}
	return "auto"
}

// ParseAppearance maps "auto", "light", "dark" (any case) to an Appearance.
// Empty means auto.
func ParseAppearance(s string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return AppearanceAuto, nil
	case "light":
		return AppearanceLight, nil
	case "dark":
		return AppearanceDark, nil
	}
	return AppearanceAuto, fmt.Errorf("theme: unknown appearance %q", s)
}

// Toggle returns the opposite appearance. Auto toggles to light.
func (a Appearance) Toggle() Appearance {
	if a == AppearanceLight {
		return AppearanceDark
	}
	if a == AppearanceDark {
		return AppearanceLight
	}
	return AppearanceLight
}

// Theme defines the complete color palette for the picker screen.
// Colors are "#RRGGBB" strings, or 256-color indexes after Adapt.
type Theme struct {
	Name       string
	Appearance Appearance

	// Base colors
	Background string
	Foreground string
	Dim        string // secondary text, value readouts
	Title      string

	// Swatch
	SwatchBorder string

	// Button
	Button       string // button fill
	ButtonText   string
	ButtonBorder string

	// Sliders
	SliderRed   string
	SliderGreen string
	SliderBlue  string
	SliderEmpty string
	Focus       string // focus marker on the active control

	// Help footer
	HelpKey  string
	HelpDesc string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to "dark" if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return registry["dark"]
}

// Lookup is like Get but reports whether the name was found.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register validates t and adds it to the registry under its lowercase name.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

// ForAppearance returns the plain light or dark theme.
func ForAppearance(a Appearance) Theme {
	if a == AppearanceLight {
		return Get("light")
	}
	return Get("dark")
}

// Resolve picks the theme for a screen. A non-empty name wins; otherwise
// the appearance decides, with auto following the terminal background.
func Resolve(name string, a Appearance, darkBackground bool) Theme {
	if name != "" {
		if t, ok := Lookup(name); ok {
			return t
		}
	}
	if a == AppearanceAuto {
		a = AppearanceLight
		if darkBackground {
			a = AppearanceDark
		}
	}
	return ForAppearance(a)
}

// Counterpart returns the theme of the opposite appearance in the same
// family ("solarized-dark" <-> "solarized-light"), or the plain light/dark
// theme when no sibling exists.
func Counterpart(t Theme) Theme {
	want := t.Appearance.Toggle()
	if t.Appearance == AppearanceAuto {
		want = AppearanceLight
	}
	base := strings.TrimSuffix(strings.TrimSuffix(t.Name, "-light"), "-dark")
	if base != t.Name {
		if sib, ok := Lookup(base + "-" + want.String()); ok {
			return sib
		}
	}
	return ForAppearance(want)
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
