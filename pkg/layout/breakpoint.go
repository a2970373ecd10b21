package layout

import (
	"fmt"
	"strings"
)

// Orientation is the screen class the picker lays itself out for.
type Orientation int

const (
	// Portrait stacks title, swatch, sliders, and button vertically.
	Portrait Orientation = iota
	// Landscape puts title and swatch on the left, controls on the right.
	Landscape
)

// String returns "portrait" or "landscape".
func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Mode selects how the orientation is chosen.
type Mode int

const (
	ModeAuto Mode = iota
	ModePortrait
	ModeLandscape
)

// ParseMode maps "auto", "portrait", "landscape" (any case) to a Mode.
// Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "portrait":
		return ModePortrait, nil
	case "landscape":
		return ModeLandscape, nil
	}
	return ModeAuto, fmt.Errorf("layout: unknown orientation %q", s)
}

// Breakpoint is the rule that maps a terminal size to an Orientation.
type Breakpoint struct {
	Mode     Mode
	MinRatio float64 // width/height in cells at or above which auto picks landscape
	MinCols  int     // auto never picks landscape below this width
}

// DefaultBreakpoint is the rule used when nothing is configured.
func DefaultBreakpoint() Breakpoint {
	return Breakpoint{Mode: ModeAuto, MinRatio: 3.0, MinCols: 70}
}

// Classify returns the orientation for a width x height terminal.
// A forced mode always wins. In auto mode the screen is landscape when it
// is at least MinCols wide and its cell aspect ratio reaches MinRatio; a
// non-positive height is portrait.
func (b Breakpoint) Classify(width, height int) Orientation {
	switch b.Mode {
	case ModePortrait:
		return Portrait
	case ModeLandscape:
		return Landscape
	}
	if height <= 0 || width < b.MinCols {
		return Portrait
	}
	ratio := b.MinRatio
	if ratio <= 0 {
		ratio = DefaultBreakpoint().MinRatio
	}
	if float64(width)/float64(height) >= ratio {
		return Landscape
	}
	return Portrait
}
