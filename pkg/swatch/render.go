package swatch

import (
	"fmt"
	"image"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"gitlab.com/tinyland/lab/color-picker/pkg/terminal"
)

// Default cell size in pixels when the terminal does not report one.
const (
	defaultCellW = 8
	defaultCellH = 16
)

// Render converts img to a terminal escape string that fills cols x rows
// cells using proto.
func Render(img image.Image, proto terminal.GraphicsProtocol, cols, rows int) (string, error) {
	if img == nil {
		return "", fmt.Errorf("swatch: image is nil")
	}
	if cols <= 0 || rows <= 0 {
		return "", fmt.Errorf("swatch: invalid preview size %dx%d", cols, rows)
	}

	switch proto {
	case terminal.ProtocolNone:
		return "", fmt.Errorf("swatch: image preview is disabled (protocol=none)")
	case terminal.ProtocolKitty:
		return swRenderTermimg(img, termimg.Kitty, cols, rows)
	case terminal.ProtocolITerm2:
		return swRenderTermimg(img, termimg.ITerm2, cols, rows)
	case terminal.ProtocolSixel:
		return swRenderTermimg(img, termimg.Sixel, cols, rows)
	}
	return renderHalfblocks(swScale(img, cols, rows*2)), nil
}

// Preview builds a swatch sized for cols x rows cells of the terminal
// described by caps and renders it with caps.Protocol.
func Preview(c colorful.Color, caps terminal.Capabilities, cols, rows int) (string, error) {
	cellW, cellH := caps.Size.CellW, caps.Size.CellH
	if cellW <= 0 {
		cellW = defaultCellW
	}
	if cellH <= 0 {
		cellH = defaultCellH
	}
	w, h := cols*cellW, rows*cellH
	if caps.Protocol == terminal.ProtocolHalfblocks {
		w, h = cols, rows*2
	}
	border := max(1, min(w, h)*DefaultBorder/DefaultSize)
	return Render(Image(c, w, h, border), caps.Protocol, cols, rows)
}

// swRenderTermimg delegates kitty, iTerm2 and sixel output to go-termimg.
func swRenderTermimg(img image.Image, proto termimg.Protocol, cols, rows int) (string, error) {
	ti := termimg.New(img)
	if ti == nil {
		return "", fmt.Errorf("swatch: go-termimg: failed to create image wrapper")
	}
	ti.Protocol(proto).Size(cols, rows).Scale(termimg.ScaleFit)
	out, err := ti.Render()
	if err != nil {
		return "", fmt.Errorf("swatch: render %v: %w", proto, err)
	}
	return out, nil
}

// swScale resamples img to exactly w x h pixels. Images already that size
// are returned as NRGBA without resampling.
func swScale(img image.Image, w, h int) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Dx() == w && b.Dy() == h {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// renderHalfblocks draws two pixel rows per cell with "▀": the top pixel
// as foreground and the bottom pixel as background. Transparent pixels
// show the terminal background.
func renderHalfblocks(img *image.NRGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	sb.Grow(b.Dx() * (b.Dy()/2 + 1) * 40)

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteString("\x1b[0m\n")
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.NRGBAAt(x, y)
			bot := top
			bot.A = 0
			if y+1 < b.Max.Y {
				bot = img.NRGBAAt(x, y+1)
			}

			switch {
			case top.A == 0 && bot.A == 0:
				sb.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&sb, "\x1b[49;38;2;%d;%d;%dm▄", bot.R, bot.G, bot.B)
			case bot.A == 0:
				fmt.Fprintf(&sb, "\x1b[49;38;2;%d;%d;%dm▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}
