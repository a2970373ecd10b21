// Package layout turns a terminal area into the picker's screen regions.
//
// It has two halves. Classify decides the screen class (portrait or
// landscape) from the terminal size and a configured breakpoint rule.
// Arrange then splits the area into title, swatch, slider, and button
// rectangles for that class using a small constraint solver:
//
//   - Length(n): fixed size in cells
//   - Percentage(p): percentage of available space (0-100)
//   - Min(n): at least n cells, grows with surplus like Fill(1)
//   - Fill(w): fills remaining space proportional to weight
//
// Everything here is a pure function of its inputs. Orientation changes are
// re-render triggers, never state.
package layout

// Rect represents a rectangular area in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

// Empty returns true if this rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the X coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Inner returns a new Rect shrunk by margin on all sides.
// If the margin would cause negative dimensions, a zero-size rect is returned.
func (r Rect) Inner(margin int) Rect {
	margin = clampNonNeg(margin)
	w := clampNonNeg(r.Width - 2*margin)
	h := clampNonNeg(r.Height - 2*margin)
	return Rect{X: r.X + margin, Y: r.Y + margin, Width: w, Height: h}
}

// Contains returns true if the point (px, py) lies within this rectangle.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Overlaps reports whether two rectangles share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Direction controls the axis along which Split divides space.
type Direction int

const (
	// Horizontal splits left-to-right (constraints control width).
	Horizontal Direction = iota
	// Vertical splits top-to-bottom (constraints control height).
	Vertical
)

// Constraint is the interface satisfied by all layout constraint types.
type Constraint interface {
	constraint() // sealed marker
}

// Length allocates exactly Value cells.
type Length struct{ Value int }

func (Length) constraint() {}

// Percentage allocates Value percent of the available space (0-100).
type Percentage struct{ Value int }

func (Percentage) constraint() {}

// Min allocates at least Value cells and shares surplus with Fill items.
type Min struct{ Value int }

func (Min) constraint() {}

// Fill distributes remaining space proportional to Weight.
// A Weight of 0 is treated as 1.
type Fill struct{ Weight int }

func (Fill) constraint() {}

// Align positions the allocated items when they do not use the whole axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Split divides area along dir into len(constraints) non-overlapping Rects
// separated by spacing cells.
//
// Fixed items (Length, Percentage, the base of Min) are allocated first;
// the rest goes to Fill and Min items by weight. If fixed items alone
// exceed the space, every allocation is shrunk proportionally.
func Split(area Rect, dir Direction, spacing int, align Align, constraints ...Constraint) []Rect {
	n := len(constraints)
	if n == 0 {
		return nil
	}
	spacing = clampNonNeg(spacing)

	total := area.Width
	if dir == Vertical {
		total = area.Height
	}
	available := clampNonNeg(total - spacing*(n-1))

	allocs := make([]int, n)
	weights := make([]int, n)
	fixed, totalWeight := 0, 0

	for i, c := range constraints {
		switch v := c.(type) {
		case Length:
			allocs[i] = clampNonNeg(v.Value)
		case Percentage:
			allocs[i] = available * clampRange(v.Value, 0, 100) / 100
		case Min:
			allocs[i] = clampNonNeg(v.Value)
			weights[i] = 1
		case Fill:
			weights[i] = v.Weight
			if weights[i] <= 0 {
				weights[i] = 1
			}
		}
		fixed += allocs[i]
		totalWeight += weights[i]
	}

	if fixed > available {
		shrinkToFit(allocs, available)
	} else if remaining := available - fixed; remaining > 0 && totalWeight > 0 {
		last := -1
		for i := range weights {
			if weights[i] > 0 {
				last = i
			}
		}
		given := 0
		for i := range weights {
			if weights[i] == 0 {
				continue
			}
			share := remaining * weights[i] / totalWeight
			if i == last {
				// Last weighted item takes the rounding remainder.
				share = remaining - given
			}
			allocs[i] += share
			given += share
		}
	}

	used := spacing * (n - 1)
	for _, a := range allocs {
		used += a
	}
	pos := 0
	if surplus := total - used; surplus > 0 {
		switch align {
		case AlignCenter:
			pos = surplus / 2
		case AlignEnd:
			pos = surplus
		}
	}

	rects := make([]Rect, n)
	for i, a := range allocs {
		if dir == Horizontal {
			rects[i] = Rect{X: area.X + pos, Y: area.Y, Width: a, Height: area.Height}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + pos, Width: area.Width, Height: a}
		}
		pos += a + spacing
	}
	return rects
}

// shrinkToFit proportionally reduces allocations so they sum to at most target.
func shrinkToFit(allocs []int, target int) {
	total := 0
	for _, a := range allocs {
		total += a
	}
	if total <= target {
		return
	}
	if target <= 0 {
		for i := range allocs {
			allocs[i] = 0
		}
		return
	}
	sum := 0
	for i := range allocs {
		allocs[i] = allocs[i] * target / total
		sum += allocs[i]
	}
	// Rounding remainder goes to the last item.
	allocs[len(allocs)-1] += target - sum
}

func clampNonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
