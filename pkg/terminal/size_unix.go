//go:build unix

package terminal

import "golang.org/x/sys/unix"

// tmPlatformSize queries TIOCGWINSZ, which also reports pixel dimensions.
// Returns a zero Size on failure.
func tmPlatformSize(fd uintptr) Size {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}
	}
	return Size{
		Cols:   int(ws.Col),
		Rows:   int(ws.Row),
		PixelW: int(ws.Xpixel),
		PixelH: int(ws.Ypixel),
	}.withCells()
}
