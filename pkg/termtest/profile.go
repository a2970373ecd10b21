// Package termtest provides terminal emulator profiles, a feature matrix
// and frame checks for verifying that the picker renders the same way
// across terminals. It is used from tests.
package termtest

import (
	"os"
	"sort"
	"testing"

	"gitlab.com/tinyland/lab/color-picker/pkg/terminal"
)

// TerminalProfile describes a terminal as the picker sees it.
type TerminalProfile struct {
	Name         string            // Human-readable terminal name
	EnvVars      map[string]string // Environment vars this terminal sets
	Term         terminal.Terminal // What terminal.Detect reports
	ColorDepth   int               // 24, 8, 4 or 1
	Protocol     terminal.GraphicsProtocol
	MouseSupport bool // Reports mouse clicks in cell-motion mode
	BoxDrawing   bool // Renders rounded box drawing characters
	EighthBlocks bool // Renders U+2589..U+258F partial blocks
}

// Profiles returns all known terminal profiles.
func Profiles() []TerminalProfile {
	return []TerminalProfile{
		ttGhosttyProfile(),
		ttKittyProfile(),
		ttWezTermProfile(),
		ttITerm2Profile(),
		ttAlacrittyProfile(),
		ttTilixProfile(),
		ttVSCodeProfile(),
		ttTmuxProfile(),
		ttAppleTerminalProfile(),
		ttLinuxConsoleProfile(),
		ttNoColorProfile(),
	}
}

// ProfileByName returns the profile matching the given name, or nil if not found.
func ProfileByName(name string) *TerminalProfile {
	for _, p := range Profiles() {
		if p.Name == name {
			cp := p
			return &cp
		}
	}
	return nil
}

// EnvVarNames returns every variable set by any profile, sorted.
func EnvVarNames() []string {
	seen := make(map[string]bool)
	for _, p := range Profiles() {
		for k := range p.EnvVars {
			seen[k] = true
		}
	}
	for _, k := range ttDetectionVars {
		seen[k] = true
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ttDetectionVars are read by terminal detection even though no profile
// sets them; Apply clears them so the host session cannot leak in.
var ttDetectionVars = []string{
	"SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT",
	"LC_TERMINAL", "CLICOLOR", "CLICOLOR_FORCE",
}

// Apply clears every terminal variable and sets the profile's own for the
// duration of the test.
func (p TerminalProfile) Apply(t testing.TB) {
	t.Helper()
	for _, k := range EnvVarNames() {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	for k, v := range p.EnvVars {
		t.Setenv(k, v)
	}
}
