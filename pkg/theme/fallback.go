package theme

import (
	"strconv"

	"github.com/muesli/termenv"
)

// Adapt snaps every color in a theme to the palette of a terminal with the
// given color depth (bits: 24, 8, 4, 1). 24-bit terminals get the theme
// unchanged. 8-bit and 4-bit terminals get palette indexes such as "196";
// monochrome terminals get empty strings, which render uncolored.
func Adapt(t Theme, colorDepth int) Theme {
	p := ProfileForDepth(colorDepth)
	if p == termenv.TrueColor {
		return t
	}

	conv := func(s string) string { return thConvert(p, s) }

	t.Background = conv(t.Background)
	t.Foreground = conv(t.Foreground)
	t.Dim = conv(t.Dim)
	t.Title = conv(t.Title)

	t.SwatchBorder = conv(t.SwatchBorder)

	t.Button = conv(t.Button)
	t.ButtonText = conv(t.ButtonText)
	t.ButtonBorder = conv(t.ButtonBorder)

	t.SliderRed = conv(t.SliderRed)
	t.SliderGreen = conv(t.SliderGreen)
	t.SliderBlue = conv(t.SliderBlue)
	t.SliderEmpty = conv(t.SliderEmpty)
	t.Focus = conv(t.Focus)

	t.HelpKey = conv(t.HelpKey)
	t.HelpDesc = conv(t.HelpDesc)

	return t
}

// ProfileForDepth maps a color depth in bits to a termenv profile.
func ProfileForDepth(colorDepth int) termenv.Profile {
	switch {
	case colorDepth >= 24:
		return termenv.TrueColor
	case colorDepth >= 8:
		return termenv.ANSI256
	case colorDepth >= 4:
		return termenv.ANSI
	}
	return termenv.Ascii
}

// thConvert converts a hex color to the nearest color p can show. Returns
// the input unchanged if it does not parse.
func thConvert(p termenv.Profile, hex string) string {
	switch c := p.Color(hex).(type) {
	case termenv.ANSI256Color:
		return strconv.Itoa(int(c))
	case termenv.ANSIColor:
		return strconv.Itoa(int(c))
	case termenv.NoColor:
		return ""
	case termenv.RGBColor:
		return string(c)
	}
	return hex
}
