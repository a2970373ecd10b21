package termtest

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/color-picker/pkg/app"
	"gitlab.com/tinyland/lab/color-picker/pkg/colormodel"
	"gitlab.com/tinyland/lab/color-picker/pkg/layout"
	"gitlab.com/tinyland/lab/color-picker/pkg/terminal"
	"gitlab.com/tinyland/lab/color-picker/pkg/theme"
)

// --- Profile Tests ---

func TestProfiles_NonEmptyNameAndEnvVars(t *testing.T) {
	profiles := Profiles()
	if len(profiles) < 8 {
		t.Errorf("Profiles() returned %d profiles, want >= 8", len(profiles))
	}
	for _, p := range profiles {
		if p.Name == "" {
			t.Error("profile has empty Name")
		}
		if len(p.EnvVars) == 0 {
			t.Errorf("profile %q has empty EnvVars", p.Name)
		}
	}
}

func TestProfileByName(t *testing.T) {
	p := ProfileByName("Ghostty")
	if p == nil {
		t.Fatal("Ghostty profile not found")
	}
	if p.Protocol != terminal.ProtocolKitty || p.ColorDepth != 24 {
		t.Errorf("Ghostty = %v/%d, want kitty/24", p.Protocol, p.ColorDepth)
	}
	if ProfileByName("NonExistent") != nil {
		t.Error("ProfileByName(NonExistent) should return nil")
	}
}

func TestEnvVarNamesCoversDetection(t *testing.T) {
	names := strings.Join(EnvVarNames(), " ")
	for _, want := range []string{"TERM_PROGRAM", "TERM", "TMUX", "SSH_CONNECTION", "NO_COLOR"} {
		if !strings.Contains(" "+names+" ", " "+want+" ") {
			t.Errorf("EnvVarNames missing %s", want)
		}
	}
}

func TestProfiles_DetectMatches(t *testing.T) {
	for _, p := range Profiles() {
		t.Run(p.Name, func(t *testing.T) {
			p.Apply(t)
			term := terminal.Detect()
			if term != p.Term {
				t.Errorf("Detect() = %v, want %v", term, p.Term)
			}
			if got := terminal.SelectProtocol(term, terminal.IsSSH()); got != p.Protocol {
				t.Errorf("SelectProtocol = %v, want %v", got, p.Protocol)
			}
		})
	}
}

func TestProfile_NoColorDetectsMonochrome(t *testing.T) {
	ProfileByName("No color").Apply(t)
	caps := terminal.ForceRefresh()
	if caps.ColorDepth != 1 {
		t.Errorf("ColorDepth = %d, want 1 with NO_COLOR", caps.ColorDepth)
	}
}

// --- Compat Tests ---

func TestCheckCompat_ReturnsAllFeatures(t *testing.T) {
	results := CheckCompat(ttGhosttyProfile())
	features := Features()
	if len(results) != len(features) {
		t.Fatalf("CheckCompat returned %d results, want %d", len(results), len(features))
	}
	for i, r := range results {
		if r.Feature != features[i] {
			t.Errorf("result %d feature = %q, want %q", i, r.Feature, features[i])
		}
		if r.Status != "full" {
			t.Errorf("Ghostty %s = %s, want full", r.Feature, r.Status)
		}
	}
}

func TestCheckCompat_Degraded(t *testing.T) {
	tests := []struct {
		profile string
		feature string
		status  string
	}{
		{"tmux", "truecolor", "degraded"},
		{"No color", "truecolor", "unsupported"},
		{"Alacritty", "swatch_preview", "degraded"},
		{"Linux console", "mouse_click", "unsupported"},
		{"Linux console", "slider_eighths", "degraded"},
		{"Linux console", "rounded_borders", "degraded"},
	}
	for _, tt := range tests {
		p := ProfileByName(tt.profile)
		if p == nil {
			t.Fatalf("profile %q not found", tt.profile)
		}
		for _, r := range CheckCompat(*p) {
			if r.Feature != tt.feature {
				continue
			}
			if r.Status != tt.status {
				t.Errorf("%s %s = %s, want %s", tt.profile, tt.feature, r.Status, tt.status)
			}
			if r.Workaround == "" {
				t.Errorf("%s %s has no workaround", tt.profile, tt.feature)
			}
		}
	}
}

func TestCheckFeatureUnknown(t *testing.T) {
	r := ttCheckFeature("telepathy", ttKittyProfile())
	if r.Status != "unsupported" {
		t.Errorf("unknown feature status = %q, want unsupported", r.Status)
	}
}

// --- Validate Tests ---

func TestValidateFrame(t *testing.T) {
	if err := ValidateFrame("abc\n\x1b[31mdef\x1b[0m", 3, 2); err != nil {
		t.Errorf("valid frame rejected: %v", err)
	}
	err := ValidateFrame("abc\nde", 3, 3)
	if err == nil {
		t.Fatal("expected error for short frame")
	}
	msg := err.Error()
	if !strings.Contains(msg, "2 lines, want 3") || !strings.Contains(msg, "line 2 is 2 cells wide") {
		t.Errorf("error should report every problem, got: %v", err)
	}
}

func TestValidateColorSequences(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		depth int
		ok    bool
	}{
		{"truecolor at 24", "\x1b[38;2;255;214;0mX", 24, true},
		{"truecolor at 8", "\x1b[38;2;255;214;0mX", 8, false},
		{"256 at 8", "\x1b[38;5;34mX", 8, true},
		{"256 at 4", "\x1b[48;5;34mX", 4, false},
		{"basic at 4", "\x1b[91mX", 4, true},
		{"basic at 1", "\x1b[91mX", 1, false},
		{"bold at 1", "\x1b[1mX\x1b[0m", 1, true},
		{"plain at 1", "X", 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColorSequences(tt.frame, tt.depth)
			if (err == nil) != tt.ok {
				t.Errorf("ValidateColorSequences(%q, %d) = %v, want ok=%v", tt.frame, tt.depth, err, tt.ok)
			}
		})
	}
}

func TestScanColorsSkipsExtendedArgs(t *testing.T) {
	// 34 here is a 256-color index, not a blue foreground.
	if use := ttScanColors("\x1b[38;5;34mX"); use.basic || !use.indexed {
		t.Errorf("38;5;34 = %+v, want indexed only", use)
	}
	if use := ttScanColors("\x1b[38;5;200;34mX"); !use.basic {
		t.Error("basic color after an extended one not found")
	}
	if use := ttScanColors("\x1b[48;2;1;2;94;1mX"); use.basic || !use.trueColor {
		t.Errorf("48;2;1;2;94 = %+v, want true color only", use)
	}
}

func TestValidateColorSequencesColonForm(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		depth int
		ok    bool
	}{
		{"truecolor colon at 8", "\x1b[38:2::255:0:0mX\x1b[m", 8, false},
		{"truecolor colon at 24", "\x1b[38:2::255:0:0mX\x1b[m", 24, true},
		{"256 colon at 4", "\x1b[38:5:1mX\x1b[m", 4, false},
		{"256 colon then basic at 4", "\x1b[38:5:1;31mX\x1b[m", 4, false},
		{"256 colon index not basic at 8", "\x1b[38:5:31mX\x1b[m", 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColorSequences(tt.frame, tt.depth)
			if (err == nil) != tt.ok {
				t.Errorf("ValidateColorSequences(%q, %d) = %v, want ok=%v", tt.frame, tt.depth, err, tt.ok)
			}
		})
	}
}

func TestValidateColorSequencesIgnoresText(t *testing.T) {
	if err := ValidateColorSequences("size 48;2;3 and 38;5;9", 1); err != nil {
		t.Errorf("plain text flagged as color: %v", err)
	}
	// Non-SGR CSI sequences ending elsewhere are not colors.
	if err := ValidateColorSequences("\x1b[31;1H\x1b[?25l", 1); err != nil {
		t.Errorf("cursor sequences flagged as color: %v", err)
	}
}

// --- Snapshot Tests ---

func TestCompareSnapshots(t *testing.T) {
	render := func(s string) func(w, h int) string {
		return func(int, int) string { return s }
	}
	a := CaptureSnapshot("a", "Kitty", render("one\ntwo"), 3, 2)
	b := CaptureSnapshot("b", "Kitty", render("one\ntwo"), 3, 2)
	if diffs := CompareSnapshots(a, b); diffs != nil {
		t.Errorf("identical snapshots differ: %+v", diffs)
	}

	c := CaptureSnapshot("c", "Kitty", render("one\nTWO\nthree"), 5, 3)
	diffs := CompareSnapshots(a, c)
	if len(diffs) != 2 {
		t.Fatalf("got %d diffs, want 2: %+v", len(diffs), diffs)
	}
	if diffs[0].Line != 2 || diffs[0].Expected != "two" || diffs[0].Actual != "TWO" {
		t.Errorf("diff[0] = %+v", diffs[0])
	}
	if diffs[1].Line != 3 || diffs[1].Expected != "" {
		t.Errorf("diff[1] = %+v", diffs[1])
	}
}

func TestCompareLayoutIgnoresColor(t *testing.T) {
	a := Snapshot{Content: "\x1b[38;2;1;2;3mab\x1b[0m"}
	b := Snapshot{Content: "\x1b[91mab\x1b[0m"}
	if diffs := CompareLayout(a, b); diffs != nil {
		t.Errorf("CompareLayout = %+v, want nil", diffs)
	}
	if diffs := CompareSnapshots(a, b); diffs == nil {
		t.Error("CompareSnapshots should see the color difference")
	}
}

// --- Picker Across Terminals ---

// ttRenderPicker renders the picker the way it would run on profile p.
func ttRenderPicker(t *testing.T, p TerminalProfile, appearance theme.Appearance) func(w, h int) string {
	t.Helper()
	return func(w, h int) string {
		prev := lipgloss.ColorProfile()
		lipgloss.SetColorProfile(theme.ProfileForDepth(p.ColorDepth))
		defer lipgloss.SetColorProfile(prev)

		m := app.New(app.Options{
			Initial:    colormodel.Channels{R: 255, G: 214, B: 0},
			Theme:      theme.ForAppearance(appearance),
			ColorDepth: p.ColorDepth,
			Breakpoint: layout.DefaultBreakpoint(),
			Padding:    1,
			Logger:     slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		})
		defer m.Close()
		updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
		return updated.(app.Model).View()
	}
}

func TestPickerRendersOnEveryProfile(t *testing.T) {
	sizes := []struct {
		name string
		w, h int
	}{
		{"portrait", 80, 40},
		{"landscape", 120, 30},
	}
	for _, appearance := range []theme.Appearance{theme.AppearanceLight, theme.AppearanceDark} {
		for _, sz := range sizes {
			ref := CaptureSnapshot(sz.name, "Ghostty", ttRenderPicker(t, ttGhosttyProfile(), appearance), sz.w, sz.h)

			for _, p := range Profiles() {
				t.Run(appearance.String()+"/"+sz.name+"/"+p.Name, func(t *testing.T) {
					snap := CaptureSnapshot(sz.name, p.Name, ttRenderPicker(t, p, appearance), sz.w, sz.h)
					if err := ValidateFrame(snap.Content, sz.w, sz.h); err != nil {
						t.Errorf("frame: %v", err)
					}
					if err := ValidateColorSequences(snap.Content, p.ColorDepth); err != nil {
						t.Errorf("colors: %v", err)
					}
					if diffs := CompareLayout(ref, snap); diffs != nil {
						t.Errorf("layout differs from Ghostty at %d lines, first: %+v", len(diffs), diffs[0])
					}
				})
			}
		}
	}
}
