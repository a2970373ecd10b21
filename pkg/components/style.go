package components

import "github.com/charmbracelet/lipgloss"

// compColor converts a palette string ("#RRGGBB" or a 256-color index)
// into a lipgloss color. Empty means no color.
func compColor(s string) lipgloss.TerminalColor {
	if s == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(s)
}

// compStyle returns a style with only the foreground set.
func compStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(compColor(fg))
}
