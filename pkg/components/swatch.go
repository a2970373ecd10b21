package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// SwatchStyle configures the committed-color rectangle.
type SwatchStyle struct {
	BorderColor string
	Background  string // screen background behind the rounded corners
	ShowHex     bool   // print the hex code in the middle of the fill
}

// Swatch renders a filled rectangle with a rounded border.
type Swatch struct {
	style SwatchStyle
}

// NewSwatch creates a new Swatch with the given style.
func NewSwatch(style SwatchStyle) *Swatch {
	return &Swatch{style: style}
}

// Render draws the swatch filled with c at width x height cells, border
// included. Sizes below 3x3 are raised to 3x3.
func (s *Swatch) Render(c colorful.Color, width, height int) string {
	width = max(width, 3)
	height = max(height, 3)

	fill := lipgloss.NewStyle().
		Width(width-2).
		Height(height-2).
		Background(lipgloss.Color(c.Clamped().Hex())).
		Foreground(lipgloss.Color(ContrastText(c))).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(compColor(s.style.BorderColor)).
		BorderBackground(compColor(s.style.Background))

	label := ""
	if s.style.ShowHex && width-2 >= 7 {
		label = c.Clamped().Hex()
	}
	return fill.Render(label)
}

// ContrastText returns black or white, whichever reads better on c.
func ContrastText(c colorful.Color) string {
	l, _, _ := c.Clamped().Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
