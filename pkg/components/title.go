package components

import "github.com/charmbracelet/lipgloss"

// Title renders a bold single-line heading centered in width cells on the
// given background.
func Title(text, fg, bg string, width int) string {
	if width <= 0 {
		return ""
	}
	t := compStyle(fg).Background(compColor(bg)).Bold(true).Render(TruncateWithTail(text, width, "…"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, t,
		lipgloss.WithWhitespaceBackground(compColor(bg)))
}
