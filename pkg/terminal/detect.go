// Package terminal answers the questions the picker asks about the
// terminal it draws into: which emulator it is, how big it is, how many
// colors it shows, whether its background is dark, and which inline image
// protocol the swatch preview may use.
//
// Emulator detection reads environment variables only. Color depth and
// background come from termenv, and the background query is only sent
// when both stdin and stdout are a TTY.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown   Terminal = iota
	TermGhostty            // kitty graphics, true color
	TermKitty              // kitty graphics, true color
	TermWezTerm            // kitty graphics, sixel, iTerm2 images
	TermITerm2             // iTerm2 images, true color
	TermAlacritty          // true color, no graphics
	TermVTE                // GNOME Terminal, Tilix and friends
	TermVSCode             // VS Code integrated terminal
	TermTmux               // tmux multiplexer
	TermGeneric            // anything else
)

var terminalNames = [...]string{
	TermUnknown:   "unknown",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermVTE:       "vte",
	TermVSCode:    "vscode",
	TermTmux:      "tmux",
	TermGeneric:   "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsKittyGraphics reports whether the terminal speaks the kitty
// graphics protocol.
func (t Terminal) SupportsKittyGraphics() bool {
	return t == TermGhostty || t == TermKitty || t == TermWezTerm
}

// SupportsITerm2Images reports whether the terminal speaks the iTerm2
// inline images protocol.
func (t Terminal) SupportsITerm2Images() bool {
	return t == TermITerm2 || t == TermWezTerm
}

// SupportsSixel reports whether the terminal renders sixel images.
func (t Terminal) SupportsSixel() bool {
	return t == TermWezTerm
}

// SupportsTrueColor reports whether the terminal is known to render 24-bit
// color regardless of what TERM claims.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermVTE, TermVSCode:
		return true
	}
	return false
}

// tmProgramTerminals maps lowercase TERM_PROGRAM values.
var tmProgramTerminals = map[string]Terminal{
	"ghostty":   TermGhostty,
	"kitty":     TermKitty,
	"wezterm":   TermWezTerm,
	"iterm.app": TermITerm2,
	"vscode":    TermVSCode,
	"alacritty": TermAlacritty,
	"tmux":      TermTmux,
}

// tmMarkerVars maps emulator-specific variables; presence is enough.
var tmMarkerVars = []struct {
	name string
	term Terminal
}{
	{"KITTY_WINDOW_ID", TermKitty},
	{"ITERM_SESSION_ID", TermITerm2},
	{"WEZTERM_EXECUTABLE", TermWezTerm},
	{"VTE_VERSION", TermVTE},
}

// Detect identifies the terminal emulator from environment variables,
// most reliable signal first: TERM_PROGRAM, then TERM, then the
// emulator-specific marker variables, then TMUX and LC_TERMINAL.
func Detect() Terminal {
	if tp := os.Getenv("TERM_PROGRAM"); tp != "" {
		if t, ok := tmProgramTerminals[strings.ToLower(tp)]; ok {
			return t
		}
	}

	switch term := os.Getenv("TERM"); {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	}

	for _, m := range tmMarkerVars {
		if os.Getenv(m.name) != "" {
			return m.term
		}
	}

	if os.Getenv("TMUX") != "" {
		return TermTmux
	}
	// iTerm2 forwards LC_TERMINAL over SSH.
	if os.Getenv("LC_TERMINAL") == "iTerm2" {
		return TermITerm2
	}

	return TermGeneric
}

// IsSSH reports whether the current session is running over SSH.
func IsSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
