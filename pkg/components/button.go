package components

import "github.com/charmbracelet/lipgloss"

// ButtonStyle configures a bordered push button.
type ButtonStyle struct {
	Fill        string
	Text        string
	BorderColor string
	FocusColor  string
	Background  string // screen background behind the rounded corners
	Focused     bool
	Pending     bool // edits not yet committed; marks the label
}

// ButtonPendingMarker follows the label while Pending is set.
const ButtonPendingMarker = " •"

// Button renders a rounded-border label such as "Set Color". The button is
// always three rows tall.
type Button struct {
	label string
	style ButtonStyle
}

// NewButton creates a new Button.
func NewButton(label string, style ButtonStyle) *Button {
	return &Button{label: label, style: style}
}

// Render draws the button at its natural width, truncated to maxWidth.
func (b *Button) Render(maxWidth int) string {
	border := b.style.BorderColor
	if b.style.Focused {
		border = b.style.FocusColor
	}

	label := b.label
	if b.style.Pending {
		label += ButtonPendingMarker
	}
	if inner := maxWidth - 4; inner > 0 && VisibleLen(label) > inner {
		label = TruncateWithTail(label, inner, "…")
	}

	return lipgloss.NewStyle().
		Foreground(compColor(b.style.Text)).
		Background(compColor(b.style.Fill)).
		Bold(b.style.Focused).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(compColor(border)).
		BorderBackground(compColor(b.style.Background)).
		Render(label)
}

// Width returns the rendered width at the given maximum.
func (b *Button) Width(maxWidth int) int {
	return lipgloss.Width(b.Render(maxWidth))
}
