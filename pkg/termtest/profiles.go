package termtest

import "gitlab.com/tinyland/lab/color-picker/pkg/terminal"

// ttGhosttyProfile returns the Ghostty terminal profile.
func ttGhosttyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Ghostty",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "ghostty",
			"TERM":         "xterm-ghostty",
			"COLORTERM":    "truecolor",
		},
		Term:         terminal.TermGhostty,
		ColorDepth:   24,
		Protocol:     terminal.ProtocolKitty,
		MouseSupport: true,
		BoxDrawing:   true,
		EighthBlocks: true,
	}
}

// ttKittyProfile returns the Kitty terminal profile.
func ttKittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Kitty",
		EnvVars: map[string]string{
			"TERM":            "xterm-kitty",
			"COLORTERM":       "truecolor",
			"KITTY_WINDOW_ID": "1",
		},
		Term:         terminal.TermKitty,
		ColorDepth:   24,
		Protocol:     terminal.ProtocolKitty,
		MouseSupport: true,
		BoxDrawing:   true,
		EighthBlocks: true,
	}
}

// ttWezTermProfile returns the WezTerm terminal profile.
// WezTerm speaks every image protocol; kitty wins.
func ttWezTermProfile() TerminalProfile {
	return TerminalProfile{
		Name: "WezTerm",
		EnvVars: map[string]string{
			"TERM_PROGRAM":       "WezTerm",
			"TERM":               "xterm-256color",
			"WEZTERM_EXECUTABLE": "/usr/bin/wezterm-gui",
		},
		Term:         terminal.TermWezTerm,
		ColorDepth:   24,
		Protocol:     terminal.ProtocolKitty,
		MouseSupport: true,
		BoxDrawing:   true,
		EighthBlocks: true,
	}
}

// ttITerm2Profile returns the iTerm2 terminal profile.
func ttITerm2Profile() TerminalProfile {
	return TerminalProfile{
		Name: "iTerm2",
		EnvVars: map[string]string{
			"TERM_PROGRAM":     "iTerm.app",
			"TERM":             "xterm-256color",
			"ITERM_SESSION_ID": "w0t0p0:ABCDEF-1234",
		},
		Term:         terminal.TermITerm2,
		ColorDepth:   24,
		Protocol:     terminal.ProtocolITerm2,
		MouseSupport: true,
		BoxDrawing:   true,
		EighthBlocks: true,
	}
}

// ttAlacrittyProfile returns the Alacritty terminal profile.
// No image protocol, so previews fall back to halfblocks.
func ttAlacrittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Alacritty",
		EnvVars: map[string]string{
			"TERM": "alacritty",
		},
		Term:         terminal.TermAlacritty,
		ColorDepth:   24,
		Protocol:     terminal.ProtocolHalfblocks,
		MouseSupport: true,
		BoxDrawing:   true,
		EighthBlocks: true,
	}
}

// ttTilixProfile returns the Tilix (VTE) terminal profile.
func ttTilixProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Tilix",
		EnvVars: map[string]string{
			"TERM":        "xterm-256color",
			"VTE_VERSION": "7006",
		},
		Term:         terminal.TermVTE,
		ColorDepth:   24,
		Protocol:     terminal.ProtocolHalfblocks,
		MouseSupport: true,
		BoxDrawing:   true,
		EighthBlocks: true,
	}
}

// ttVSCodeProfile returns the VS Code integrated terminal profile.
func ttVSCodeProfile() TerminalProfile {
	return TerminalProfile{
		Name: "VSCode",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "vscode",
			"TERM":         "xterm-256color",
			"COLORTERM":    "truecolor",
		},
		Term:         terminal.TermVSCode,
		ColorDepth:   24,
		Protocol:     terminal.ProtocolHalfblocks,
		MouseSupport: true,
		BoxDrawing:   true,
		EighthBlocks: true,
	}
}

// ttTmuxProfile returns the tmux profile. tmux does not pass graphics
// through by default.
func ttTmuxProfile() TerminalProfile {
	return TerminalProfile{
		Name: "tmux",
		EnvVars: map[string]string{
			"TERM": "tmux-256color",
			"TMUX": "/tmp/tmux-1000/default,12345,0",
		},
		Term:         terminal.TermTmux,
		ColorDepth:   8,
		Protocol:     terminal.ProtocolHalfblocks,
		MouseSupport: true,
		BoxDrawing:   true,
		EighthBlocks: true,
	}
}

// ttAppleTerminalProfile returns the macOS Terminal.app profile. It tops
// out at 256 colors.
func ttAppleTerminalProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Apple Terminal",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "Apple_Terminal",
			"TERM":         "xterm-256color",
		},
		Term:         terminal.TermGeneric,
		ColorDepth:   8,
		Protocol:     terminal.ProtocolHalfblocks,
		MouseSupport: true,
		BoxDrawing:   true,
		EighthBlocks: true,
	}
}

// ttLinuxConsoleProfile returns the Linux virtual console profile: 16
// colors and a font without partial blocks.
func ttLinuxConsoleProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Linux console",
		EnvVars: map[string]string{
			"TERM": "linux",
		},
		Term:         terminal.TermGeneric,
		ColorDepth:   4,
		Protocol:     terminal.ProtocolHalfblocks,
		MouseSupport: false,
		BoxDrawing:   false,
		EighthBlocks: false,
	}
}

// ttNoColorProfile returns a generic terminal with NO_COLOR set.
func ttNoColorProfile() TerminalProfile {
	return TerminalProfile{
		Name: "No color",
		EnvVars: map[string]string{
			"TERM":     "xterm",
			"NO_COLOR": "1",
		},
		Term:         terminal.TermGeneric,
		ColorDepth:   1,
		Protocol:     terminal.ProtocolHalfblocks,
		MouseSupport: true,
		BoxDrawing:   true,
		EighthBlocks: true,
	}
}
