package app

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/color-picker/pkg/colormodel"
	"gitlab.com/tinyland/lab/color-picker/pkg/components"
	"gitlab.com/tinyland/lab/color-picker/pkg/layout"
	"gitlab.com/tinyland/lab/color-picker/pkg/theme"
)

const (
	appTitle       = "Color Picker"
	appButtonLabel = "Set Color"
	appLabelWidth  = 6 // "Green "

	appDefaultWidth  = 80
	appDefaultHeight = 24
)

// zone IDs for mouse hit-testing.
const appButtonZone = "button"

func appSliderZone(ch colormodel.Channel) string {
	return "slider-" + ch.String()
}

// size returns the screen size, falling back to 80x24 before the first
// WindowSizeMsg.
func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		return appDefaultWidth, appDefaultHeight
	}
	return w, h
}

// helpView renders the key help footer.
func (m Model) helpView() string {
	return m.help.View(m.keys)
}

// Regions returns where each part of the screen is drawn at the current
// size. The bottom rows are reserved for the help footer.
func (m Model) Regions() layout.Regions {
	w, h := m.size()
	footer := lipgloss.Height(m.helpView())
	area := layout.Rect{Width: w, Height: max(h-footer, 0)}
	return layout.Arrange(m.breakpoint.Classify(w, h), area, m.padding)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	w, h := m.size()
	t := m.theme
	bg := theme.Color(t.Background)
	reg := m.Regions()

	c := newCanvas(w, h, lipgloss.NewStyle().Background(bg))

	c.place(reg.Title, components.Title(appTitle, t.Title, t.Background, reg.Title.Width))

	sw := components.NewSwatch(components.SwatchStyle{
		BorderColor: t.SwatchBorder,
		Background:  t.Background,
		ShowHex:     true,
	})
	c.place(reg.Swatch, sw.Render(m.picker.CurrentColor(), reg.Swatch.Width, reg.Swatch.Height))

	for i, ch := range colormodel.AllChannels {
		r := reg.Sliders[i]
		s := m.slider(ch)
		c.place(r, m.zones.Mark(appSliderZone(ch), s.Render(m.picker.Channel(ch), r.Width)))
	}

	btn := m.button().Render(reg.Button.Width)
	btn = lipgloss.PlaceHorizontal(reg.Button.Width, lipgloss.Center, m.zones.Mark(appButtonZone, btn),
		lipgloss.WithWhitespaceBackground(bg))
	c.place(reg.Button, btn)

	footer := m.helpView()
	fh := lipgloss.Height(footer)
	c.place(layout.Rect{X: 0, Y: h - fh, Width: w, Height: fh}, footer)

	return m.zones.Scan(c.String())
}

// slider builds the slider component for ch in the current theme and
// focus state.
func (m Model) slider(ch colormodel.Channel) *components.Slider {
	t := m.theme
	return components.NewSlider(components.SliderStyle{
		Label:      ch.Label(),
		LabelWidth: appLabelWidth,
		Max:        colormodel.MaxChannel,
		FillColor:  t.SliderColor(ch),
		EmptyColor: t.SliderEmpty,
		LabelColor: t.Foreground,
		ValueColor: t.Dim,
		FocusColor: t.Focus,
		Background: t.Background,
		Focused:    m.focus == focusFor(ch),
	})
}

func (m Model) button() *components.Button {
	t := m.theme
	return components.NewButton(appButtonLabel, components.ButtonStyle{
		Fill:        t.Button,
		Text:        t.ButtonText,
		BorderColor: t.ButtonBorder,
		FocusColor:  t.Focus,
		Background:  t.Background,
		Focused:     m.focus == FocusButton,
		Pending:     m.picker.Dirty(),
	})
}
