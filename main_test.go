package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/color-picker/pkg/colormodel"
	"gitlab.com/tinyland/lab/color-picker/pkg/config"
)

func mainTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- parseTriple ---

func TestParseTriple(t *testing.T) {
	got, err := parseTriple("255, 214,0")
	if err != nil {
		t.Fatalf("parseTriple error: %v", err)
	}
	want := colormodel.Channels{R: 255, G: 214, B: 0}
	if got != want {
		t.Errorf("parseTriple = %v, want %v", got, want)
	}
}

func TestParseTripleKeepsOutOfRange(t *testing.T) {
	got, err := parseTriple("400,-20,12.5")
	if err != nil {
		t.Fatalf("parseTriple error: %v", err)
	}
	if got.R != 400 || got.G != -20 || got.B != 12.5 {
		t.Errorf("parseTriple = %+v, want raw values", got)
	}
}

func TestParseTripleErrors(t *testing.T) {
	for _, in := range []string{"", "1,2", "1,2,3,4", "1,x,3"} {
		if _, err := parseTriple(in); err == nil {
			t.Errorf("parseTriple(%q) should fail", in)
		}
	}
}

// --- applyFlagOverrides ---

func TestApplyFlagOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	applyFlagOverrides(cfg, "starter", "light", "", "portrait")

	if cfg.Picker.Preset != "starter" {
		t.Errorf("Preset = %q, want starter", cfg.Picker.Preset)
	}
	if cfg.Theme.Appearance != "light" {
		t.Errorf("Appearance = %q, want light", cfg.Theme.Appearance)
	}
	if cfg.Theme.Name != "" {
		t.Errorf("Theme.Name = %q, want empty", cfg.Theme.Name)
	}
	if cfg.Layout.Orientation != "portrait" {
		t.Errorf("Orientation = %q, want portrait", cfg.Layout.Orientation)
	}
}

func TestApplyFlagOverridesEmptyKeepsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	applyFlagOverrides(cfg, "", "", "", "")
	if cfg.Picker.Preset != "sunflower" || cfg.Layout.Orientation != "auto" {
		t.Errorf("empty flags changed config: %+v", cfg)
	}
}

// --- one-shot modes ---

func TestRunOneShotPrintDefault(t *testing.T) {
	var buf bytes.Buffer
	err := runOneShot(&buf, config.DefaultConfig(), mainTestLogger(), oneShotOptions{print: true})
	if err != nil {
		t.Fatalf("runOneShot error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "#ffd600" {
		t.Errorf("hex = %q, want #ffd600", lines[0])
	}
	if lines[1] != "rgb(255, 214, 0)" {
		t.Errorf("rgb = %q, want rgb(255, 214, 0)", lines[1])
	}
	if lines[2] != "1.000 0.839 0.000" {
		t.Errorf("normalized = %q, want 1.000 0.839 0.000", lines[2])
	}
}

func TestRunOneShotSetClampsAndCommits(t *testing.T) {
	var buf bytes.Buffer
	err := runOneShot(&buf, config.DefaultConfig(), mainTestLogger(), oneShotOptions{
		set:   "400,128,-20",
		print: true,
	})
	if err != nil {
		t.Fatalf("runOneShot error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "#ff8000\n") {
		t.Errorf("output = %q, want #ff8000 first", buf.String())
	}
	if !strings.Contains(buf.String(), "rgb(255, 128, 0)") {
		t.Errorf("output = %q, want clamped rgb(255, 128, 0)", buf.String())
	}
}

func TestRunOneShotBadSet(t *testing.T) {
	var buf bytes.Buffer
	err := runOneShot(&buf, config.DefaultConfig(), mainTestLogger(), oneShotOptions{set: "1,2", print: true})
	if err == nil {
		t.Fatal("expected error for malformed -set")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be printed on error, got %q", buf.String())
	}
}

func TestRunOneShotExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")
	err := runOneShot(io.Discard, config.DefaultConfig(), mainTestLogger(), oneShotOptions{
		exportPath: path,
		exportSize: 32,
	})
	if err != nil {
		t.Fatalf("runOneShot error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported file is empty")
	}
}

func TestRunOneShotExportBadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")
	err := runOneShot(io.Discard, config.DefaultConfig(), mainTestLogger(), oneShotOptions{
		exportPath: path,
		exportSize: 0,
	})
	if err == nil {
		t.Error("expected error for zero export size")
	}
}

// --- listings ---

func TestWritePresets(t *testing.T) {
	var buf bytes.Buffer
	writePresets(&buf)
	out := buf.String()
	for _, want := range []string{"sunflower", "rgb(255, 214, 0)", "starter", "rgb(0, 0, 0)"} {
		if !strings.Contains(out, want) {
			t.Errorf("preset listing missing %q:\n%s", want, out)
		}
	}
}

func TestWriteThemes(t *testing.T) {
	var buf bytes.Buffer
	writeThemes(&buf)
	out := buf.String()
	for _, want := range []string{"light", "dark", "solarized-light", "solarized-dark"} {
		if !strings.Contains(out, want) {
			t.Errorf("theme listing missing %q:\n%s", want, out)
		}
	}
}

func TestEnsureLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := ensureLogDir(filepath.Join(dir, "color-picker.log")); err != nil {
		t.Fatalf("ensureLogDir error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("directory %s not created", dir)
	}
}
