package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the picker screen reacts to.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Increase   key.Binding
	Decrease   key.Binding
	BigInc     key.Binding
	BigDec     key.Binding
	Min        key.Binding
	Max        key.Binding
	Press      key.Binding
	Commit     key.Binding
	Appearance key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:       key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab/↓", "next")),
		Prev:       key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab/↑", "prev")),
		Increase:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "+1")),
		Decrease:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "-1")),
		BigInc:     key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("shift+→", "+big step")),
		BigDec:     key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←", "-big step")),
		Min:        key.NewBinding(key.WithKeys("0", "home"), key.WithHelp("0/home", "min")),
		Max:        key.NewBinding(key.WithKeys("$", "end"), key.WithHelp("$/end", "max")),
		Press:      key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "press button")),
		Commit:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "set color")),
		Appearance: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Increase, k.Decrease, k.Commit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Press},
		{k.Increase, k.Decrease, k.BigInc, k.BigDec},
		{k.Min, k.Max, k.Commit},
		{k.Appearance, k.Help, k.Quit},
	}
}
