// color-picker is a terminal RGB color picker.
//
// Three sliders edit the red, green and blue channels in [0, 255]; the
// "Set Color" button commits them and the swatch shows the committed color.
// The screen switches between a portrait (stacked) and a landscape
// (side-by-side) arrangement with the terminal size, and comes in light and
// dark appearances.
//
// Usage:
//
//	color-picker [flags]
//
// Flags:
//
//	-config string       Path to configuration file (default: ~/.config/color-picker/config.toml)
//	-preset string       Initial preset (see -list-presets)
//	-appearance string   auto, light or dark
//	-theme string        Named theme; overrides -appearance
//	-orientation string  auto, portrait or landscape
//	-list-presets        List presets and exit
//	-list-themes         List themes and exit
//	-set r,g,b           Set the channels and commit before -print/-export/-preview
//	-print               Print the committed color and exit
//	-export path.png     Write the committed color as a PNG swatch and exit
//	-size int            Edge length of the exported swatch in pixels (default 256)
//	-preview             Draw the committed color inline and exit
//	-verbose             Enable verbose logging
//	-version             Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/color-picker/pkg/app"
	"gitlab.com/tinyland/lab/color-picker/pkg/colormodel"
	"gitlab.com/tinyland/lab/color-picker/pkg/config"
	"gitlab.com/tinyland/lab/color-picker/pkg/preset"
	"gitlab.com/tinyland/lab/color-picker/pkg/swatch"
	"gitlab.com/tinyland/lab/color-picker/pkg/terminal"
	"gitlab.com/tinyland/lab/color-picker/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// previewCols and previewRows bound the inline swatch drawn by -preview.
const (
	previewCols = 16
	previewRows = 8
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		presetName  = flag.String("preset", "", "Initial preset (see -list-presets)")
		appearance  = flag.String("appearance", "", "Appearance: auto, light or dark")
		themeName   = flag.String("theme", "", "Named theme; overrides -appearance")
		orientation = flag.String("orientation", "", "Orientation: auto, portrait or landscape")
		listPresets = flag.Bool("list-presets", false, "List presets and exit")
		listThemes  = flag.Bool("list-themes", false, "List themes and exit")
		setChannels = flag.String("set", "", "Set channels as r,g,b and commit")
		printColor  = flag.Bool("print", false, "Print the committed color and exit")
		exportPath  = flag.String("export", "", "Write the committed color as a PNG swatch and exit")
		exportSize  = flag.Int("size", swatch.DefaultSize, "Edge length of the exported swatch in pixels")
		preview     = flag.Bool("preview", false, "Draw the committed color inline and exit")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("color-picker %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	applyFlagOverrides(cfg, *presetName, *appearance, *themeName, *orientation)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// User presets and themes register next to the built-ins.
	if cfg.Picker.PresetsFile != "" {
		if _, err := preset.LoadFile(cfg.Picker.PresetsFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load presets: %v\n", err)
			os.Exit(1)
		}
	}
	if cfg.Theme.File != "" {
		name, err := theme.LoadFile(cfg.Theme.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load theme: %v\n", err)
			os.Exit(1)
		}
		if cfg.Theme.Name == "" {
			cfg.Theme.Name = name
		}
	}

	if *listPresets {
		writePresets(os.Stdout)
		os.Exit(0)
	}
	if *listThemes {
		writeThemes(os.Stdout)
		os.Exit(0)
	}

	if cfg.Picker.Preset != "" {
		if _, ok := preset.Lookup(cfg.Picker.Preset); !ok {
			fmt.Fprintf(os.Stderr, "unknown preset %q, using %q\n", cfg.Picker.Preset, preset.DefaultName)
		}
	}

	logLevel, _ := config.ParseLogLevel(cfg.General.LogLevel)
	if *verbose {
		logLevel = slog.LevelDebug
	}

	oneShot := *setChannels != "" || *printColor || *exportPath != "" || *preview
	if oneShot {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
		if err := runOneShot(os.Stdout, cfg, logger, oneShotOptions{
			set:        *setChannels,
			print:      *printColor,
			exportPath: *exportPath,
			exportSize: *exportSize,
			preview:    *preview,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// The renderer owns the terminal while the TUI runs, so logs only go to
	// the log file.
	if err := ensureLogDir(cfg.General.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := runTUI(cfg, logger); err != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlagOverrides copies non-empty command line values over the loaded
// configuration. A named theme wins over the appearance.
func applyFlagOverrides(cfg *config.Config, presetName, appearance, themeName, orientation string) {
	if presetName != "" {
		cfg.Picker.Preset = presetName
	}
	if appearance != "" {
		cfg.Theme.Appearance = appearance
	}
	if themeName != "" {
		cfg.Theme.Name = themeName
	}
	if orientation != "" {
		cfg.Layout.Orientation = orientation
	}
}

// runTUI starts the interactive picker and blocks until it exits. The last
// committed color is printed once the alternate screen is gone.
func runTUI(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	caps := terminal.DetectCapabilities()
	logger.Debug("terminal detected",
		"term", caps.Term.String(),
		"color_depth", caps.ColorDepth,
		"dark_background", caps.DarkBackground,
		"protocol", caps.Protocol.String(),
		"ssh", caps.SSH,
	)

	model := app.New(app.Options{
		Initial:    cfg.InitialChannels(),
		Theme:      theme.Resolve(cfg.Theme.Name, cfg.Appearance(), caps.DarkBackground),
		ColorDepth: caps.ColorDepth,
		Breakpoint: cfg.Breakpoint(),
		Padding:    cfg.Layout.Padding,
		Step:       cfg.Keys.Step,
		BigStep:    cfg.Keys.BigStep,
		Logger:     logger,
	})
	defer model.Close()

	logger.Info("starting picker", "preset", cfg.Picker.Preset, "theme", model.Theme().Name)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(app.Model); ok {
		fmt.Println(m.Picker().CurrentColor().Hex())
	}
	return nil
}

type oneShotOptions struct {
	set        string
	print      bool
	exportPath string
	exportSize int
	preview    bool
}

// runOneShot builds the color model from the configuration, applies -set,
// and produces the requested non-interactive outputs in a fixed order:
// print, export, preview.
func runOneShot(w io.Writer, cfg *config.Config, logger *slog.Logger, opts oneShotOptions) error {
	picker := colormodel.New(cfg.InitialChannels())

	if opts.set != "" {
		ch, err := parseTriple(opts.set)
		if err != nil {
			return err
		}
		for _, c := range colormodel.AllChannels {
			picker.SetChannel(c, ch.Get(c))
		}
		picker.Commit()
		logger.Info("color committed",
			"hex", picker.CurrentColor().Hex(),
			"rgb", picker.CurrentChannels().String(),
		)
	}

	if opts.print {
		writeColor(w, picker)
	}

	if opts.exportPath != "" {
		if opts.exportSize <= 0 {
			return fmt.Errorf("export: size must be positive, got %d", opts.exportSize)
		}
		if err := swatch.ExportPNG(opts.exportPath, picker.CurrentColor(), opts.exportSize, opts.exportSize); err != nil {
			return err
		}
		logger.Info("swatch exported", "path", opts.exportPath, "size", opts.exportSize)
	}

	if opts.preview {
		caps := terminal.DetectCapabilities()
		out, err := swatch.Preview(picker.CurrentColor(), *caps, previewCols, previewRows)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	}
	return nil
}

// parseTriple parses "r,g,b" into channel values. Values outside [0, 255]
// are accepted and clamped by the color model.
func parseTriple(s string) (colormodel.Channels, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colormodel.Channels{}, fmt.Errorf("set: want r,g,b, got %q", s)
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return colormodel.Channels{}, fmt.Errorf("set: %s: %w", colormodel.AllChannels[i], err)
		}
		vals[i] = v
	}
	return colormodel.Channels{R: vals[0], G: vals[1], B: vals[2]}, nil
}

// writeColor prints the committed color as hex, the 0..255 triple behind it,
// and the normalized 0..1 triple.
func writeColor(w io.Writer, picker *colormodel.Model) {
	c := picker.CurrentColor()
	fmt.Fprintln(w, c.Hex())
	fmt.Fprintln(w, colormodel.Denormalize(c).String())
	fmt.Fprintf(w, "%.3f %.3f %.3f\n", c.R, c.G, c.B)
}

func writePresets(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range preset.Names() {
		p := preset.Get(name)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Channels().String(), p.Description)
	}
	tw.Flush()
}

func writeThemes(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range theme.Names() {
		t := theme.Get(name)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, t.Appearance, t.Background)
	}
	tw.Flush()
}

// ensureLogDir creates the parent directory of the log file if it does not exist.
func ensureLogDir(logFile string) error {
	dir := filepath.Dir(logFile)
	return os.MkdirAll(dir, 0755)
}
