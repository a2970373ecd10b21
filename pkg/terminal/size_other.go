//go:build !unix

package terminal

import "github.com/charmbracelet/x/term"

// tmPlatformSize asks the console for its cell size. Pixel dimensions are
// not available here.
func tmPlatformSize(fd uintptr) Size {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return Size{}
	}
	return Size{Cols: w, Rows: h}
}
