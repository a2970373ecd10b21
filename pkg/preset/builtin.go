package preset

// prBuiltins returns the presets shipped with the binary.
func prBuiltins() []Preset {
	return []Preset{
		{
			Name:        "sunflower",
			Description: "Warm yellow; sliders and swatch start in sync",
			Red:         255,
			Green:       214,
			Blue:        0,
		},
		{
			Name:        "starter",
			Description: "Everything at zero; the swatch starts black",
			Red:         0,
			Green:       0,
			Blue:        0,
		},
		{
			Name:        "white",
			Description: "All channels at full",
			Red:         255,
			Green:       255,
			Blue:        255,
		},
		{
			Name:        "sky",
			Description: "Light sky blue",
			Red:         135,
			Green:       206,
			Blue:        235,
		},
		{
			Name:        "crimson",
			Description: "Deep red",
			Red:         220,
			Green:       20,
			Blue:        60,
		},
	}
}
