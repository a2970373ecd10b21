package termtest

// CompatResult describes the expected behavior of a feature on a terminal.
type CompatResult struct {
	Feature    string // Feature name from Features()
	Terminal   string // Terminal profile name
	Status     string // "full", "degraded", "unsupported"
	Notes      string // Human-readable explanation
	Workaround string // If degraded/unsupported, what the picker does instead
}

// Features returns all picker features that vary by terminal.
func Features() []string {
	return []string{
		"truecolor",
		"swatch_preview",
		"mouse_click",
		"rounded_borders",
		"slider_eighths",
	}
}

// CheckCompat evaluates a terminal profile against all picker features.
func CheckCompat(profile TerminalProfile) []CompatResult {
	features := Features()
	results := make([]CompatResult, 0, len(features))
	for _, feat := range features {
		results = append(results, ttCheckFeature(feat, profile))
	}
	return results
}

// ttCheckFeature evaluates a single feature against a terminal profile.
func ttCheckFeature(feature string, profile TerminalProfile) CompatResult {
	r := CompatResult{
		Feature:  feature,
		Terminal: profile.Name,
	}

	switch feature {
	case "truecolor":
		switch {
		case profile.ColorDepth >= 24:
			r.Status, r.Notes = "full", "24-bit swatch and slider colors"
		case profile.ColorDepth > 1:
			r.Status, r.Notes = "degraded", "theme colors quantized to the terminal palette"
			r.Workaround = "swatch hex label shows the exact committed color"
		default:
			r.Status, r.Notes = "unsupported", "colors disabled"
			r.Workaround = "swatch hex label and slider values only"
		}
	case "swatch_preview":
		switch profile.Protocol.String() {
		case "kitty", "iterm2", "sixel":
			r.Status, r.Notes = "full", profile.Protocol.String()+" inline image"
		case "halfblocks":
			r.Status, r.Notes = "degraded", "two pixels per cell"
			r.Workaround = "halfblock rendering"
		default:
			r.Status, r.Notes = "unsupported", "no preview"
			r.Workaround = "use -export to write a PNG"
		}
	case "mouse_click":
		if profile.MouseSupport {
			r.Status, r.Notes = "full", "click sliders and the button"
		} else {
			r.Status, r.Notes = "unsupported", "no mouse reporting"
			r.Workaround = "keyboard navigation"
		}
	case "rounded_borders":
		if profile.BoxDrawing {
			r.Status, r.Notes = "full", "rounded swatch and button borders"
		} else {
			r.Status, r.Notes = "degraded", "box drawing glyphs missing from font"
			r.Workaround = "borders render as replacement glyphs; layout is unchanged"
		}
	case "slider_eighths":
		if profile.EighthBlocks {
			r.Status, r.Notes = "full", "1/8 cell slider resolution"
		} else {
			r.Status, r.Notes = "degraded", "partial blocks missing from font"
			r.Workaround = "value column shows the exact channel value"
		}
	default:
		r.Status, r.Notes = "unsupported", "unknown feature"
	}
	return r
}
