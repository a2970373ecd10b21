package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block characters for sub-cell precision (8 levels per cell).
var sliderBlocks = [9]rune{
	' ', // 0/8 empty
	'▏', // 1/8
	'▎', // 2/8
	'▍', // 3/8
	'▌', // 4/8
	'▋', // 5/8
	'▊', // 6/8
	'▉', // 7/8
	'█', // 8/8
}

const (
	sliderMarkerWidth = 2 // "▸ " or "  "
	sliderValueWidth  = 4 // " 255"
	sliderFocusMarker = "▸ "
)

// SliderStyle configures the appearance of a channel slider.
type SliderStyle struct {
	Label      string  // e.g. "Red"
	LabelWidth int     // fixed width for the label column (0 = len(Label)+1)
	Max        float64 // value at a full bar (default 255)
	FillColor  string
	EmptyColor string
	LabelColor string
	ValueColor string
	FocusColor string
	Background string
	Focused    bool
}

// Slider renders one labelled horizontal bar:
//
//	▸ Red   ██████████████▋        214
//
// The bar has sub-cell precision so small steps are visible even on
// narrow terminals.
type Slider struct {
	style SliderStyle
}

// NewSlider creates a new Slider with the given style.
func NewSlider(style SliderStyle) *Slider {
	if style.Max <= 0 {
		style.Max = 255
	}
	return &Slider{style: style}
}

// Render renders the slider at exactly width cells (when width is at least
// the fixed columns plus one bar cell).
func (s *Slider) Render(value float64, width int) string {
	barW := s.BarWidth(width)

	ratio := 0.0
	if !math.IsNaN(value) {
		ratio = value / s.style.Max
	}
	ratio = math.Max(0, math.Min(1, ratio))

	var b strings.Builder

	bg := compColor(s.style.Background)
	marker := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", sliderMarkerWidth))
	if s.style.Focused {
		marker = compStyle(s.style.FocusColor).Background(bg).Bold(true).Render(sliderFocusMarker)
	}
	b.WriteString(marker)

	label := compStyle(s.style.LabelColor).Background(bg)
	if s.style.Focused {
		label = label.Bold(true)
	}
	b.WriteString(label.Render(PadRight(s.style.Label, s.labelWidth())))

	b.WriteString(sliderRenderBar(ratio, barW, s.style.FillColor, s.style.EmptyColor))

	readout := fmt.Sprintf("%d", int(math.Round(ratio*s.style.Max)))
	b.WriteString(compStyle(s.style.ValueColor).Background(bg).Render(PadLeft(readout, sliderValueWidth)))

	return b.String()
}

// BarOffset returns the column at which the bar starts.
func (s *Slider) BarOffset() int {
	return sliderMarkerWidth + s.labelWidth()
}

// BarWidth returns the number of bar cells at the given total width.
// Never less than one.
func (s *Slider) BarWidth(width int) int {
	w := width - s.BarOffset() - sliderValueWidth
	if w < 1 {
		return 1
	}
	return w
}

// ValueAt maps a column x (relative to the slider's left edge) to the
// value a click there selects. Columns left of the bar give 0 and columns
// right of it give Max; the first bar cell is 0 and the last is Max.
func (s *Slider) ValueAt(x, width int) float64 {
	barW := s.BarWidth(width)
	pos := x - s.BarOffset()
	if pos <= 0 {
		return 0
	}
	if pos >= barW-1 {
		return s.style.Max
	}
	return math.Round(float64(pos) / float64(barW-1) * s.style.Max)
}

func (s *Slider) labelWidth() int {
	if s.style.LabelWidth > 0 {
		return s.style.LabelWidth
	}
	return VisibleLen(s.style.Label) + 1
}

// sliderRenderBar builds the colored bar with sub-cell precision.
func sliderRenderBar(ratio float64, width int, fillColor, emptyColor string) string {
	totalUnits := width * 8
	filledUnits := int(math.Round(ratio * float64(totalUnits)))
	filledUnits = max(0, min(filledUnits, totalUnits))

	fullCells := filledUnits / 8
	partialEighths := filledUnits % 8
	emptyCells := width - fullCells
	if partialEighths > 0 {
		emptyCells--
	}
	emptyCells = max(emptyCells, 0)

	filled := compStyle(fillColor).Background(compColor(emptyColor))
	empty := lipgloss.NewStyle().Background(compColor(emptyColor))

	var b strings.Builder
	if fullCells > 0 {
		b.WriteString(filled.Render(strings.Repeat(string(sliderBlocks[8]), fullCells)))
	}
	if partialEighths > 0 {
		b.WriteString(filled.Render(string(sliderBlocks[partialEighths])))
	}
	if emptyCells > 0 {
		b.WriteString(empty.Render(strings.Repeat(" ", emptyCells)))
	}
	return b.String()
}
