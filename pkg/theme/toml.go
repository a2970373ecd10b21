package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name       string       `toml:"name"`
	Appearance string       `toml:"appearance"`
	Base       thTOMLBase   `toml:"base"`
	Swatch     thTOMLSwatch `toml:"swatch"`
	Button     thTOMLButton `toml:"button"`
	Slider     thTOMLSlider `toml:"slider"`
	Help       thTOMLHelp   `toml:"help"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Title      string `toml:"title"`
}

type thTOMLSwatch struct {
	Border string `toml:"border"`
}

type thTOMLButton struct {
	Fill   string `toml:"fill"`
	Text   string `toml:"text"`
	Border string `toml:"border"`
}

type thTOMLSlider struct {
	Red   string `toml:"red"`
	Green string `toml:"green"`
	Blue  string `toml:"blue"`
	Empty string `toml:"empty"`
	Focus string `toml:"focus"`
}

type thTOMLHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	appearance, err := ParseAppearance(tt.Appearance)
	if err != nil {
		return Theme{}, err
	}

	t := Theme{
		Name:       tt.Name,
		Appearance: appearance,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Title:      tt.Base.Title,

		SwatchBorder: tt.Swatch.Border,

		Button:       tt.Button.Fill,
		ButtonText:   tt.Button.Text,
		ButtonBorder: tt.Button.Border,

		SliderRed:   tt.Slider.Red,
		SliderGreen: tt.Slider.Green,
		SliderBlue:  tt.Slider.Blue,
		SliderEmpty: tt.Slider.Empty,
		Focus:       tt.Slider.Focus,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// LoadFile reads a TOML theme from path and registers it. The registered
// theme's name is returned so callers can select it.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return "", fmt.Errorf("%w (in %s)", err, path)
	}
	thRegister(t)
	return t.Name, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name:       t.Name,
		Appearance: t.Appearance.String(),
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Title:      t.Title,
		},
		Swatch: thTOMLSwatch{Border: t.SwatchBorder},
		Button: thTOMLButton{
			Fill:   t.Button,
			Text:   t.ButtonText,
			Border: t.ButtonBorder,
		},
		Slider: thTOMLSlider{
			Red:   t.SliderRed,
			Green: t.SliderGreen,
			Blue:  t.SliderBlue,
			Empty: t.SliderEmpty,
			Focus: t.Focus,
		},
		Help: thTOMLHelp{
			Key:  t.HelpKey,
			Desc: t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thColorFields lists the color fields of t in a stable order, keyed by
// their TOML path.
func thColorFields(t Theme) [][2]string {
	return [][2]string{
		{"base.background", t.Background},
		{"base.foreground", t.Foreground},
		{"base.dim", t.Dim},
		{"base.title", t.Title},
		{"swatch.border", t.SwatchBorder},
		{"button.fill", t.Button},
		{"button.text", t.ButtonText},
		{"button.border", t.ButtonBorder},
		{"slider.red", t.SliderRed},
		{"slider.green", t.SliderGreen},
		{"slider.blue", t.SliderBlue},
		{"slider.empty", t.SliderEmpty},
		{"slider.focus", t.Focus},
		{"help.key", t.HelpKey},
		{"help.desc", t.HelpDesc},
	}
}

// thValidateTheme checks that all required color fields are present and valid hex.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for _, f := range thColorFields(t) {
		field, value := f[0], f[1]
		if value == "" {
			return fmt.Errorf("theme: missing required field %q", field)
		}
		if !thHexColorRegex.MatchString(value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", value, field)
		}
	}
	return nil
}
