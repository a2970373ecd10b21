package app

import "gitlab.com/tinyland/lab/color-picker/pkg/colormodel"

// Focus is the control that receives step keys.
type Focus int

const (
	FocusRed Focus = iota
	FocusGreen
	FocusBlue
	FocusButton
	focusCount
)

var focusNames = [...]string{
	FocusRed:    "red",
	FocusGreen:  "green",
	FocusBlue:   "blue",
	FocusButton: "button",
}

// String returns the control name.
func (f Focus) String() string {
	if f >= 0 && f < focusCount {
		return focusNames[f]
	}
	return "unknown"
}

// Channel returns the slider channel for f. ok is false for the button.
func (f Focus) Channel() (colormodel.Channel, bool) {
	if f >= FocusRed && f <= FocusBlue {
		return colormodel.AllChannels[f], true
	}
	return 0, false
}

// focusFor returns the focus value of a channel's slider.
func focusFor(ch colormodel.Channel) Focus {
	return Focus(ch)
}

// CycleFocusForward moves focus to the next control, wrapping after the
// button.
func (m *Model) CycleFocusForward() {
	m.focus = (m.focus + 1) % focusCount
}

// CycleFocusBackward moves focus to the previous control, wrapping before
// the red slider.
func (m *Model) CycleFocusBackward() {
	m.focus = (m.focus - 1 + focusCount) % focusCount
}

// FocusOn sets focus directly. Out-of-range values are ignored.
func (m *Model) FocusOn(f Focus) {
	if f >= 0 && f < focusCount {
		m.focus = f
	}
}
