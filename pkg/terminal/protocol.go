package terminal

import (
	"fmt"
	"strings"
)

// GraphicsProtocol identifies how the swatch preview image is drawn.
type GraphicsProtocol int

const (
	ProtocolNone       GraphicsProtocol = iota // no preview
	ProtocolKitty                              // kitty graphics protocol
	ProtocolITerm2                             // iTerm2 inline images
	ProtocolSixel                              // sixel
	ProtocolHalfblocks                         // "▀" cells with fg/bg color
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
	ProtocolHalfblocks: "halfblocks",
}

// String returns the human-readable name of the graphics protocol.
func (p GraphicsProtocol) String() string {
	if p >= 0 && int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// ParseProtocol maps a user-supplied protocol name to a GraphicsProtocol.
// "auto" and "" are not protocols; callers treat them as "detect".
func ParseProtocol(s string) (GraphicsProtocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kitty":
		return ProtocolKitty, nil
	case "iterm2":
		return ProtocolITerm2, nil
	case "sixel":
		return ProtocolSixel, nil
	case "halfblocks", "half-blocks", "unicode":
		return ProtocolHalfblocks, nil
	case "none", "off":
		return ProtocolNone, nil
	}
	return ProtocolNone, fmt.Errorf("terminal: unknown graphics protocol %q", s)
}

// SelectProtocol returns the best preview protocol for term. Over SSH
// every image protocol degrades to halfblocks.
func SelectProtocol(term Terminal, ssh bool) GraphicsProtocol {
	var proto GraphicsProtocol
	switch {
	case term.SupportsKittyGraphics():
		proto = ProtocolKitty
	case term.SupportsITerm2Images():
		proto = ProtocolITerm2
	case term.SupportsSixel():
		proto = ProtocolSixel
	default:
		proto = ProtocolHalfblocks
	}
	if ssh {
		return ProtocolHalfblocks
	}
	return proto
}

// SelectProtocolWithOverride honors a user-forced protocol name and falls
// back to SelectProtocol for "", "auto", or an unknown name.
func SelectProtocolWithOverride(term Terminal, ssh bool, override string) GraphicsProtocol {
	o := strings.ToLower(strings.TrimSpace(override))
	if o == "" || o == "auto" {
		return SelectProtocol(term, ssh)
	}
	p, err := ParseProtocol(o)
	if err != nil {
		return SelectProtocol(term, ssh)
	}
	return p
}
