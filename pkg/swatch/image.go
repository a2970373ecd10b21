// Package swatch turns a committed color into a raster image: the same
// rounded, gray-bordered rectangle the picker draws, as an *image.NRGBA
// that can be written to a PNG file or shown inline in terminals that
// support an image protocol.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultSize is the edge length of an exported swatch in pixels.
	DefaultSize = 256
	// DefaultBorder is the border width of a DefaultSize swatch.
	DefaultBorder = 10
	// cornerRatio is corner radius / border width.
	cornerRatio = 2.1
)

// Border stroke: 50% gray at half opacity, blended over the fill.
var (
	BorderColor = colorful.Color{R: 0x80 / 255.0, G: 0x80 / 255.0, B: 0x80 / 255.0}
	BorderAlpha = 0x80 / 255.0
)

// Image renders c as a w x h rounded rectangle with a border of the given
// width. Pixels outside the rounded corners are transparent. Dimensions
// below 1 are raised to 1; border and radius shrink to fit small images.
func Image(c colorful.Color, w, h, border int) *image.NRGBA {
	w, h = max(w, 1), max(h, 1)
	half := min(w, h) / 2
	border = max(0, min(border, half))
	radius := min(int(math.Round(float64(border)*cornerRatio)), half)

	fill := swNRGBA(c)
	edge := swNRGBA(c.Clamped().BlendRgb(BorderColor, BorderAlpha))
	img := imaging.New(w, h, fill)

	// Only the frame of width max(border, radius) can differ from the fill.
	frame := max(border, radius)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x >= frame && x < w-frame && y >= frame && y < h-frame {
				continue
			}
			switch {
			case !swInsideRounded(x, y, 0, w, h, radius):
				img.SetNRGBA(x, y, color.NRGBA{})
			case !swInsideRounded(x, y, border, w, h, max(radius-border, 0)):
				img.SetNRGBA(x, y, edge)
			}
		}
	}
	return img
}

// ExportPNG writes a w x h swatch of c to path. The path must end in .png.
func ExportPNG(path string, c colorful.Color, w, h int) error {
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		return fmt.Errorf("swatch: export path %q must end in .png", path)
	}
	border := max(1, int(math.Round(float64(min(w, h))*DefaultBorder/DefaultSize)))
	if err := imaging.Save(Image(c, w, h, border), path); err != nil {
		return fmt.Errorf("swatch: save %s: %w", path, err)
	}
	return nil
}

// swInsideRounded reports whether the center of pixel (x, y) lies inside
// the rectangle inset by inset pixels with corner radius r.
func swInsideRounded(x, y, inset, w, h, r int) bool {
	px, py := float64(x)+0.5, float64(y)+0.5
	left, top := float64(inset), float64(inset)
	right, bottom := float64(w-inset), float64(h-inset)
	if px < left || px > right || py < top || py > bottom {
		return false
	}
	if r <= 0 {
		return true
	}
	rf := float64(r)
	dx := math.Max(0, math.Max(left+rf-px, px-(right-rf)))
	dy := math.Max(0, math.Max(top+rf-py, py-(bottom-rf)))
	return dx*dx+dy*dy <= rf*rf
}

// swNRGBA converts a normalized color to an opaque 8-bit pixel.
func swNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
