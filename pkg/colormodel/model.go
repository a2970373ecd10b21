// Package colormodel holds the state behind the picker screen: three live
// channel values edited by the sliders and the committed color shown in the
// swatch. It is the only piece of the program with behavior; everything in
// pkg/components and pkg/app renders from it.
//
// The committed color changes only through Commit. Editing a channel never
// touches it, so the swatch always shows the last committed values rather
// than the live slider positions.
//
// A Model is owned by a single screen and is not safe for concurrent use.
// All mutations are expected to happen on the UI's update loop.
package colormodel

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxChannel is the upper bound of a channel value.
const MaxChannel = 255.0

// Channel identifies one additive color component.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// AllChannels lists the channels in display order.
var AllChannels = [...]Channel{Red, Green, Blue}

var channelNames = [...]string{
	Red:   "red",
	Green: "green",
	Blue:  "blue",
}

// String returns the lowercase channel name.
func (c Channel) String() string {
	if c >= 0 && int(c) < len(channelNames) {
		return channelNames[c]
	}
	return "unknown"
}

// Label returns the capitalized channel name used on slider labels.
func (c Channel) Label() string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether c names one of the three channels.
func (c Channel) Valid() bool {
	return c >= Red && c <= Blue
}

// ParseChannel maps "red", "r", "green", "g", "blue", "b" (any case) to a
// Channel.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	}
	return 0, fmt.Errorf("colormodel: unknown channel %q", s)
}

// Channels is a triple of channel values in [0, 255].
type Channels struct {
	R, G, B float64
}

// Get returns the value of a single channel. Unknown channels read as 0.
func (c Channels) Get(ch Channel) float64 {
	switch ch {
	case Red:
		return c.R
	case Green:
		return c.G
	case Blue:
		return c.B
	}
	return 0
}

// With returns a copy of c with ch set to v. v is stored as given.
func (c Channels) With(ch Channel, v float64) Channels {
	switch ch {
	case Red:
		c.R = v
	case Green:
		c.G = v
	case Blue:
		c.B = v
	}
	return c
}

// Clamped returns c with every channel clamped to [0, 255].
func (c Channels) Clamped() Channels {
	return Channels{R: Clamp(c.R), G: Clamp(c.G), B: Clamp(c.B)}
}

// String formats the triple as "rgb(255, 214, 0)" using rounded values.
func (c Channels) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)",
		int(math.Round(c.R)), int(math.Round(c.G)), int(math.Round(c.B)))
}

// Color is a normalized RGB triple, each component in [0, 1].
type Color = colorful.Color

// Clamp constrains v to [0, 255]. NaN maps to 0.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > MaxChannel:
		return MaxChannel
	}
	return v
}

// Normalize scales channel values linearly into a Color. No gamma handling.
func Normalize(c Channels) Color {
	return Color{R: c.R / MaxChannel, G: c.G / MaxChannel, B: c.B / MaxChannel}
}

// Denormalize scales a Color back to channel values.
func Denormalize(c Color) Channels {
	return Channels{R: c.R * MaxChannel, G: c.G * MaxChannel, B: c.B * MaxChannel}
}

// Model is the picker state.
type Model struct {
	channels  Channels
	committed Color
	// source holds the channel values that produced committed.
	source Channels

	subs   []subscription
	nextID int
}

// New creates a Model whose channels start at initial (clamped) and whose
// committed color is derived from the same values.
func New(initial Channels) *Model {
	ch := initial.Clamped()
	return &Model{
		channels:  ch,
		committed: Normalize(ch),
		source:    ch,
	}
}

// SetChannel stores v on ch after clamping it to [0, 255]. Out-of-range input
// is not an error. The committed color is left alone. Unknown channels are
// ignored.
func (m *Model) SetChannel(ch Channel, v float64) {
	if !ch.Valid() {
		return
	}
	v = Clamp(v)
	if m.channels.Get(ch) == v {
		return
	}
	m.channels = m.channels.With(ch, v)
	m.publish(ChannelChanged{Channel: ch, Value: v})
}

// Nudge moves ch by delta, clamping the result.
func (m *Model) Nudge(ch Channel, delta float64) {
	m.SetChannel(ch, m.channels.Get(ch)+delta)
}

// Commit copies the live channel values into the committed color.
// Committing twice without an edit in between leaves the color unchanged.
func (m *Model) Commit() {
	m.committed = Normalize(m.channels)
	m.source = m.channels
	m.publish(Committed{Color: m.committed, Channels: m.channels})
}

// Channel returns the live value of one channel.
func (m *Model) Channel(ch Channel) float64 {
	return m.channels.Get(ch)
}

// CurrentChannels returns the live channel values.
func (m *Model) CurrentChannels() Channels {
	return m.channels
}

// CurrentColor returns the committed color.
func (m *Model) CurrentColor() Color {
	return m.committed
}

// Dirty reports whether the live channels differ from the values behind the
// committed color, i.e. whether a commit would change the swatch.
func (m *Model) Dirty() bool {
	return m.channels != m.source
}
