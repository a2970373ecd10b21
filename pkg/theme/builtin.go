package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thLightTheme(),
		thDarkTheme(),
		thSolarizedLightTheme(),
		thSolarizedDarkTheme(),
	} {
		thRegister(t)
	}
}

// thLightTheme returns the white-background theme.
func thLightTheme() Theme {
	return Theme{
		Name:       "light",
		Appearance: AppearanceLight,
		Background: "#ffffff",
		Foreground: "#000000",
		Dim:        "#6b6b6b",
		Title:      "#000000",

		SwatchBorder: "#bfbfbf",

		Button:       "#0a84ff",
		ButtonText:   "#ffffff",
		ButtonBorder: "#ffffff",

		SliderRed:   "#d70015",
		SliderGreen: "#248a3d",
		SliderBlue:  "#0040dd",
		SliderEmpty: "#e5e5ea",
		Focus:       "#0a84ff",

		HelpKey:  "#0a84ff",
		HelpDesc: "#8e8e93",
	}
}

// thDarkTheme returns the black-background theme.
func thDarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Appearance: AppearanceDark,
		Background: "#000000",
		Foreground: "#ffffff",
		Dim:        "#8e8e93",
		Title:      "#ffffff",

		SwatchBorder: "#7f7f7f",

		Button:       "#0a84ff",
		ButtonText:   "#ffffff",
		ButtonBorder: "#ffffff",

		SliderRed:   "#ff453a",
		SliderGreen: "#30d158",
		SliderBlue:  "#409cff",
		SliderEmpty: "#3a3a3c",
		Focus:       "#0a84ff",

		HelpKey:  "#409cff",
		HelpDesc: "#8e8e93",
	}
}

// thSolarizedLightTheme returns Solarized on its light base.
func thSolarizedLightTheme() Theme {
	return Theme{
		Name:       "solarized-light",
		Appearance: AppearanceLight,
		Background: "#fdf6e3",
		Foreground: "#657b83",
		Dim:        "#93a1a1",
		Title:      "#586e75",

		SwatchBorder: "#93a1a1",

		Button:       "#268bd2",
		ButtonText:   "#fdf6e3",
		ButtonBorder: "#eee8d5",

		SliderRed:   "#dc322f",
		SliderGreen: "#859900",
		SliderBlue:  "#268bd2",
		SliderEmpty: "#eee8d5",
		Focus:       "#b58900",

		HelpKey:  "#268bd2",
		HelpDesc: "#93a1a1",
	}
}

// thSolarizedDarkTheme returns Solarized on its dark base.
func thSolarizedDarkTheme() Theme {
	return Theme{
		Name:       "solarized-dark",
		Appearance: AppearanceDark,
		Background: "#002b36",
		Foreground: "#839496",
		Dim:        "#586e75",
		Title:      "#93a1a1",

		SwatchBorder: "#586e75",

		Button:       "#268bd2",
		ButtonText:   "#fdf6e3",
		ButtonBorder: "#073642",

		SliderRed:   "#dc322f",
		SliderGreen: "#859900",
		SliderBlue:  "#268bd2",
		SliderEmpty: "#073642",
		Focus:       "#b58900",

		HelpKey:  "#268bd2",
		HelpDesc: "#586e75",
	}
}
