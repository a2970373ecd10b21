package app

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/color-picker/pkg/components"
	"gitlab.com/tinyland/lab/color-picker/pkg/layout"
)

// canvas assembles rendered blocks at fixed rectangles. Blocks must not
// overlap; gaps are filled with background-colored spaces.
type canvas struct {
	width  int
	rows   [][]appSegment
	filler lipgloss.Style
}

type appSegment struct {
	x     int
	width int
	text  string
}

func newCanvas(width, height int, filler lipgloss.Style) *canvas {
	return &canvas{
		width:  width,
		rows:   make([][]appSegment, max(height, 0)),
		filler: filler,
	}
}

// place draws block into r, one line per row, each line cut or padded to
// r.Width. Lines beyond r.Height are dropped.
func (c *canvas) place(r layout.Rect, block string) {
	if r.Empty() {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		y := r.Y + i
		if i >= r.Height || y < 0 || y >= len(c.rows) {
			break
		}
		c.rows[y] = append(c.rows[y], appSegment{
			x:     r.X,
			width: r.Width,
			text:  components.Fit(line, r.Width),
		})
	}
}

// String renders the canvas, each row exactly width cells wide.
func (c *canvas) String() string {
	lines := make([]string, len(c.rows))
	for y, segs := range c.rows {
		sort.Slice(segs, func(i, j int) bool { return segs[i].x < segs[j].x })

		var b strings.Builder
		col := 0
		for _, s := range segs {
			if s.x > col {
				b.WriteString(c.gap(s.x - col))
				col = s.x
			}
			b.WriteString(s.text)
			col += s.width
		}
		if col < c.width {
			b.WriteString(c.gap(c.width - col))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (c *canvas) gap(n int) string {
	return c.filler.Render(strings.Repeat(" ", n))
}
