package layout

// Fixed heights of the picker's parts, in cells.
const (
	TitleHeight   = 1
	SliderHeight  = 1
	ButtonHeight  = 3
	MinSwatchSize = 3
)

// Regions are the rectangles each part of the screen renders into.
type Regions struct {
	Orientation Orientation
	Title       Rect
	Swatch      Rect
	Sliders     [3]Rect // red, green, blue
	Button      Rect
}

// Controls returns the bounding rectangle of the sliders and the button.
func (r Regions) Controls() Rect {
	top := r.Sliders[0]
	return Rect{
		X:      top.X,
		Y:      top.Y,
		Width:  max(top.Width, r.Button.Width),
		Height: r.Button.Bottom() - top.Y,
	}
}

// Arrange splits area (shrunk by padding) into the picker's regions.
//
// Portrait:
//
//	title
//	swatch (fills)
//	red / green / blue
//	[ Set Color ]
//
// Landscape:
//
//	title            red / green / blue
//	swatch (fills)   [ Set Color ]
func Arrange(o Orientation, area Rect, padding int) Regions {
	inner := area.Inner(padding)
	reg := Regions{Orientation: o}

	var controls Rect
	if o == Landscape {
		cols := Split(inner, Horizontal, 2, AlignStart, Percentage{Value: 45}, Fill{Weight: 1})
		left := Split(cols[0], Vertical, 1, AlignStart, Length{Value: TitleHeight}, Min{Value: MinSwatchSize})
		reg.Title, reg.Swatch = left[0], left[1]
		controls = cols[1]
	} else {
		rows := Split(inner, Vertical, 1, AlignStart,
			Length{Value: TitleHeight},
			Min{Value: MinSwatchSize},
			Length{Value: 3*SliderHeight + ButtonHeight},
		)
		reg.Title, reg.Swatch = rows[0], rows[1]
		controls = rows[2]
	}

	align := AlignStart
	if o == Landscape {
		align = AlignCenter
	}
	parts := Split(controls, Vertical, 0, align,
		Length{Value: SliderHeight},
		Length{Value: SliderHeight},
		Length{Value: SliderHeight},
		Length{Value: ButtonHeight},
	)
	copy(reg.Sliders[:], parts[:3])
	reg.Button = parts[3]
	return reg
}
