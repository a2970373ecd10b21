package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DepthForProfile returns the color depth in bits of a termenv profile.
func DepthForProfile(p termenv.Profile) int {
	switch p {
	case termenv.TrueColor:
		return 24
	case termenv.ANSI256:
		return 8
	case termenv.ANSI:
		return 4
	}
	return 1
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// tmColorDepth combines termenv's profile (which honors NO_COLOR and
// CLICOLOR_FORCE) with what the emulator is known to support. A known
// true-color emulator upgrades a 256-color TERM, but never re-enables
// color that the environment turned off.
func tmColorDepth(term Terminal) int {
	depth := DepthForProfile(termenv.EnvColorProfile())
	if depth >= 8 && depth < 24 && tmTrueColorEnv(term) {
		depth = 24
	}
	return depth
}

// tmTrueColorEnv reports whether the emulator or COLORTERM promise 24-bit
// color.
func tmTrueColorEnv(term Terminal) bool {
	if term.SupportsTrueColor() {
		return true
	}
	ct := os.Getenv("COLORTERM")
	return ct == "truecolor" || ct == "24bit"
}

// tmDarkBackground asks the terminal for its background color. Without a
// TTY to ask it assumes dark.
func tmDarkBackground(interactive bool) bool {
	if !interactive {
		return true
	}
	return termenv.HasDarkBackground()
}
