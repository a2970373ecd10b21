package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/color-picker/pkg/colormodel"
)

// handleMouse maps a left click on a slider to a channel value and a left
// click on the button to a commit. Zones come from the last View.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	for _, ch := range colormodel.AllChannels {
		z := m.zones.Get(appSliderZone(ch))
		if z == nil || !z.InBounds(msg) {
			continue
		}
		x, _ := z.Pos(msg)
		m.ClickSlider(ch, x)
		return
	}
	if z := m.zones.Get(appButtonZone); z != nil && z.InBounds(msg) {
		m.ClickButton()
	}
}

// ClickSlider focuses ch's slider and sets the channel to the value under
// column x, relative to the slider's left edge.
func (m *Model) ClickSlider(ch colormodel.Channel, x int) {
	if !ch.Valid() {
		return
	}
	m.focus = focusFor(ch)
	width := m.Regions().Sliders[ch].Width
	m.picker.SetChannel(ch, m.slider(ch).ValueAt(x, width))
}

// ClickButton focuses the button and commits.
func (m *Model) ClickButton() {
	m.focus = FocusButton
	m.picker.Commit()
}
