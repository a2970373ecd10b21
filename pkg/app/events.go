// Package app is the Bubble Tea program for the picker screen. It owns
// one colormodel.Model, turns key presses, mouse clicks and programmatic
// messages into SetChannel/Commit calls, and renders the screen from the
// model's state on every View.
//
// Window resizes and appearance toggles only change how the screen is
// drawn. They never touch the color model.
package app

import (
	"gitlab.com/tinyland/lab/color-picker/pkg/colormodel"
	"gitlab.com/tinyland/lab/color-picker/pkg/theme"
)

// ChannelChangedMsg sets one channel to Value (clamped by the model).
type ChannelChangedMsg struct {
	Channel colormodel.Channel
	Value   float64
}

// CommitMsg copies the live channels into the committed color.
type CommitMsg struct{}

// AppearanceMsg switches the screen to a light or dark palette.
// AppearanceAuto is ignored.
type AppearanceMsg struct {
	Appearance theme.Appearance
}
