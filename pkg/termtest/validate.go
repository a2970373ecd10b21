package termtest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ValidateFrame checks that a rendered frame fills exactly width x height
// cells. Every problem is reported.
func ValidateFrame(frame string, width, height int) error {
	lines := strings.Split(frame, "\n")
	var errs []error
	if len(lines) != height {
		errs = append(errs, fmt.Errorf("frame has %d lines, want %d", len(lines), height))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != width {
			errs = append(errs, fmt.Errorf("line %d is %d cells wide, want %d: %q", i+1, w, width, ansi.Strip(l)))
		}
	}
	return errors.Join(errs...)
}

// ValidateColorSequences checks that frame uses no SGR color sequence
// deeper than depth allows: no 24-bit colors below 24, no 256-color
// indexes below 8, no color at all at 1. Both the semicolon and the colon
// forms of extended colors are recognized.
func ValidateColorSequences(frame string, depth int) error {
	use := ttScanColors(frame)
	var errs []error
	if depth < 24 && use.trueColor {
		errs = append(errs, fmt.Errorf("24-bit color in a %d-bit frame", depth))
	}
	if depth < 8 && use.indexed {
		errs = append(errs, fmt.Errorf("256-color index in a %d-bit frame", depth))
	}
	if depth <= 1 && use.basic {
		errs = append(errs, errors.New("color in a monochrome frame"))
	}
	return errors.Join(errs...)
}

// ttColorUse records which kinds of SGR color a frame sets.
type ttColorUse struct {
	trueColor bool // 38/48/58 with 2
	indexed   bool // 38/48/58 with 5
	basic     bool // 30-37, 40-47, 90-97, 100-107
}

// ttScanColors decodes frame and inspects every SGR sequence. Text and
// other control sequences are ignored.
func ttScanColors(frame string) ttColorUse {
	var use ttColorUse
	p := ansi.NewParser()
	var state byte
	for len(frame) > 0 {
		seq, _, n, newState := ansi.DecodeSequence(frame, state, p)
		state = newState
		frame = frame[n:]

		if !ansi.HasCsiPrefix(seq) {
			continue
		}
		cmd := ansi.Cmd(p.Command())
		if cmd.Final() != 'm' || cmd.Prefix() != 0 || cmd.Intermediate() != 0 {
			continue
		}
		ttSGRColors(p.Params(), &use)
	}
	return use
}

// ttSGRColors walks the parameters of one SGR sequence. Arguments of an
// extended color are skipped so they are not read as attributes.
func ttSGRColors(params ansi.Params, use *ttColorUse) {
	for i := 0; i < len(params); i++ {
		n := params[i].Param(0)
		switch {
		case n == 38 || n == 48 || n == 58:
			if i+1 >= len(params) {
				return
			}
			kind := params[i+1].Param(-1)
			switch kind {
			case 2:
				use.trueColor = true
			case 5:
				use.indexed = true
			}
			// Colon form: sub-parameters run to the first one without a
			// trailing colon.
			if params[i].HasMore() {
				for i < len(params) && params[i].HasMore() {
					i++
				}
				continue
			}
			switch kind {
			case 2:
				i += 4
			case 5:
				i += 2
			default:
				i++
			}
		case (n >= 30 && n <= 37) || (n >= 40 && n <= 47) ||
			(n >= 90 && n <= 97) || (n >= 100 && n <= 107):
			use.basic = true
		}
	}
}
