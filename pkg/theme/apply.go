package theme

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/color-picker/pkg/colormodel"
)

// Color converts a theme color string into a lipgloss color. Empty strings
// (monochrome terminals after Adapt) become lipgloss.NoColor.
func Color(s string) lipgloss.TerminalColor {
	if s == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(s)
}

// SliderColor returns the accent color for a channel's slider.
func (t Theme) SliderColor(ch colormodel.Channel) string {
	switch ch {
	case colormodel.Red:
		return t.SliderRed
	case colormodel.Green:
		return t.SliderGreen
	case colormodel.Blue:
		return t.SliderBlue
	}
	return t.Foreground
}
