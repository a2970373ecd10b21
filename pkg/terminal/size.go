package terminal

import (
	"os"
	"strconv"
)

// Size represents terminal dimensions in character cells and, where the
// platform reports them, pixels.
type Size struct {
	Cols   int
	Rows   int
	PixelW int // 0 if unknown
	PixelH int // 0 if unknown
	CellW  int // pixel width per cell, 0 if unknown
	CellH  int // pixel height per cell, 0 if unknown
}

// GetSize returns the current terminal dimensions: stdout first, then
// stderr, then COLUMNS/LINES, then 80x24.
func GetSize() Size {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s := tmPlatformSize(fd); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	return getSizeFromEnv()
}

// GetSizeFromFd returns the size of the terminal on fd, falling back to
// COLUMNS/LINES and then 80x24.
func GetSizeFromFd(fd uintptr) Size {
	if s := tmPlatformSize(fd); s.Cols > 0 && s.Rows > 0 {
		return s
	}
	return getSizeFromEnv()
}

// withCells fills in per-cell pixel dimensions when pixel info is known.
func (s Size) withCells() Size {
	if s.PixelW > 0 && s.Cols > 0 {
		s.CellW = s.PixelW / s.Cols
	}
	if s.PixelH > 0 && s.Rows > 0 {
		s.CellH = s.PixelH / s.Rows
	}
	return s
}

func getSizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

// envInt reads a positive integer from the named environment variable,
// returning fallback when it is unset or malformed.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
