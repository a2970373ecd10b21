package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

var compTestSunflower = colorful.Color{R: 1, G: 214.0 / 255, B: 0}

// --- Swatch ---

func TestSwatchDimensions(t *testing.T) {
	sw := NewSwatch(SwatchStyle{BorderColor: "#7f7f7f"})
	out := sw.Render(compTestSunflower, 20, 8)
	if w := lipgloss.Width(out); w != 20 {
		t.Errorf("width = %d, want 20", w)
	}
	if h := lipgloss.Height(out); h != 8 {
		t.Errorf("height = %d, want 8", h)
	}
}

func TestSwatchMinimumSize(t *testing.T) {
	sw := NewSwatch(SwatchStyle{})
	out := sw.Render(compTestSunflower, 0, 1)
	if w, h := lipgloss.Width(out), lipgloss.Height(out); w != 3 || h != 3 {
		t.Errorf("size = %dx%d, want 3x3", w, h)
	}
}

func TestSwatchHexLabel(t *testing.T) {
	sw := NewSwatch(SwatchStyle{ShowHex: true})
	out := ansi.Strip(sw.Render(compTestSunflower, 20, 5))
	if !strings.Contains(out, "#ffd600") {
		t.Errorf("swatch missing hex label:\n%s", out)
	}

	narrow := ansi.Strip(sw.Render(compTestSunflower, 6, 5))
	if strings.Contains(narrow, "#") {
		t.Errorf("narrow swatch should omit the label:\n%s", narrow)
	}
}

func TestSwatchRoundedBorder(t *testing.T) {
	out := ansi.Strip(NewSwatch(SwatchStyle{}).Render(compTestSunflower, 10, 4))
	if !strings.HasPrefix(out, "╭") {
		t.Errorf("expected rounded corner, got:\n%s", out)
	}
}

func TestContrastText(t *testing.T) {
	tests := []struct {
		name string
		c    colorful.Color
		want string
	}{
		{"sunflower", compTestSunflower, "#000000"},
		{"white", colorful.Color{R: 1, G: 1, B: 1}, "#000000"},
		{"black", colorful.Color{}, "#ffffff"},
		{"navy", colorful.Color{B: 0.5}, "#ffffff"},
	}
	for _, tt := range tests {
		if got := ContrastText(tt.c); got != tt.want {
			t.Errorf("ContrastText(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// --- Button ---

func TestButtonRender(t *testing.T) {
	b := NewButton("Set Color", ButtonStyle{Fill: "#0a84ff", Text: "#ffffff"})
	out := b.Render(40)
	if !strings.Contains(ansi.Strip(out), "Set Color") {
		t.Errorf("button missing label:\n%s", ansi.Strip(out))
	}
	if h := lipgloss.Height(out); h != 3 {
		t.Errorf("height = %d, want 3", h)
	}
	if w := b.Width(40); w != len("Set Color")+4 {
		t.Errorf("Width(40) = %d, want %d", w, len("Set Color")+4)
	}
}

func TestButtonTruncatesWhenNarrow(t *testing.T) {
	b := NewButton("Set Color", ButtonStyle{})
	if w := b.Width(8); w != 8 {
		t.Errorf("Width(8) = %d, want 8", w)
	}
}

func TestButtonPendingMarker(t *testing.T) {
	b := NewButton("Set Color", ButtonStyle{Pending: true})
	if got := ansi.Strip(b.Render(40)); !strings.Contains(got, "Set Color"+ButtonPendingMarker) {
		t.Errorf("pending button missing marker:\n%s", got)
	}
	if w := b.Width(40); w != VisibleLen("Set Color"+ButtonPendingMarker)+4 {
		t.Errorf("Width(40) = %d, want %d", w, VisibleLen("Set Color"+ButtonPendingMarker)+4)
	}
	if got := ansi.Strip(NewButton("Set Color", ButtonStyle{}).Render(40)); strings.Contains(got, "•") {
		t.Errorf("idle button has marker:\n%s", got)
	}
}

// --- Title ---

func TestTitleCentered(t *testing.T) {
	out := Title("Color Picker", "#ffffff", "#000000", 20)
	if VisibleLen(out) != 20 {
		t.Errorf("visible width = %d, want 20", VisibleLen(out))
	}
	stripped := ansi.Strip(out)
	if strings.TrimSpace(stripped) != "Color Picker" {
		t.Errorf("title = %q", stripped)
	}
	if !strings.HasPrefix(stripped, "    Color") {
		t.Errorf("title not centered: %q", stripped)
	}
}

func TestTitleZeroWidth(t *testing.T) {
	if got := Title("Color Picker", "", "", 0); got != "" {
		t.Errorf("Title(width 0) = %q, want empty", got)
	}
}

// --- Text helpers ---

func TestPadding(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 4); got != "  ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadCenter("ab", 5); got != " ab  " {
		t.Errorf("PadCenter = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight(wider) = %q", got)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abcd"},
		{"abcd", 4, "abcd"},
		{"\x1b[1mbold\x1b[0m", 6, "\x1b[1mbold\x1b[0m  "},
	}
	for _, tt := range tests {
		got := Fit(tt.in, tt.width)
		if VisibleLen(got) != tt.width {
			t.Errorf("Fit(%q, %d) width = %d", tt.in, tt.width, VisibleLen(got))
		}
		if ansi.Strip(got) != ansi.Strip(tt.want) {
			t.Errorf("Fit(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestVisibleLenIgnoresANSI(t *testing.T) {
	if got := VisibleLen("\x1b[38;2;255;0;0mred\x1b[0m"); got != 3 {
		t.Errorf("VisibleLen = %d, want 3", got)
	}
}

func TestTruncateWithTail(t *testing.T) {
	if got := TruncateWithTail("Color Picker", 6, "…"); VisibleLen(got) != 6 || !strings.HasSuffix(got, "…") {
		t.Errorf("TruncateWithTail = %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Errorf("Truncate(0) = %q", got)
	}
}
