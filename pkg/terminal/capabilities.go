package terminal

import (
	"os"
	"sync"
)

// Capabilities is the cached terminal summary for the current session.
type Capabilities struct {
	Term           Terminal
	Protocol       GraphicsProtocol
	Size           Size
	TrueColor      bool
	ColorDepth     int  // 24, 8, 4 or 1
	DarkBackground bool // true when unknown
	Interactive    bool // stdin and stdout are both a TTY
	SSH            bool
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex // guards ForceRefresh reset
)

// DetectCapabilities performs full terminal detection once and caches the
// result. Safe to call from multiple goroutines.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// ForceRefresh re-detects terminal capabilities, replacing the cached
// value.
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()

	detectOnce = sync.Once{}
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// Cached returns the previously cached capabilities without re-detection.
// Returns nil if DetectCapabilities has not been called yet.
func Cached() *Capabilities {
	return cached
}

func detect() *Capabilities {
	term := Detect()
	ssh := IsSSH()
	interactive := IsInteractive(os.Stdin) && IsInteractive(os.Stdout)
	depth := tmColorDepth(term)

	return &Capabilities{
		Term:           term,
		Protocol:       SelectProtocol(term, ssh),
		Size:           GetSize(),
		TrueColor:      depth >= 24,
		ColorDepth:     depth,
		DarkBackground: tmDarkBackground(interactive),
		Interactive:    interactive,
		SSH:            ssh,
	}
}
