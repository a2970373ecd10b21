package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/color-picker/pkg/colormodel"
	"gitlab.com/tinyland/lab/color-picker/pkg/layout"
	"gitlab.com/tinyland/lab/color-picker/pkg/theme"
)

// Options configures a new Model.
type Options struct {
	Initial    colormodel.Channels
	Theme      theme.Theme // unadapted; the model adapts it to ColorDepth
	ColorDepth int         // 24, 8, 4 or 1; 0 means 24
	Breakpoint layout.Breakpoint
	Padding    int
	Step       float64 // slider step per arrow key, default 1
	BigStep    float64 // slider step per shifted arrow key, default 16
	Logger     *slog.Logger
}

// Model is the root Bubble Tea model of the picker screen.
type Model struct {
	picker *colormodel.Model
	keys   KeyMap
	help   help.Model
	zones  *zone.Manager

	baseTheme  theme.Theme
	theme      theme.Theme
	colorDepth int
	breakpoint layout.Breakpoint
	padding    int
	step       float64
	bigStep    float64

	width    int
	height   int
	focus    Focus
	quitting bool

	logger      *slog.Logger
	unsubscribe func()
}

// New creates the picker screen. The color model starts at opts.Initial
// with its committed color derived from the same values.
func New(opts Options) Model {
	if opts.ColorDepth <= 0 {
		opts.ColorDepth = 24
	}
	if opts.Step <= 0 {
		opts.Step = 1
	}
	if opts.BigStep <= 0 {
		opts.BigStep = 16
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.Get("dark")
	}
	if opts.Breakpoint.MinRatio <= 0 {
		opts.Breakpoint.MinRatio = layout.DefaultBreakpoint().MinRatio
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	m := Model{
		picker:     colormodel.New(opts.Initial),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		zones:      zone.New(),
		colorDepth: opts.ColorDepth,
		breakpoint: opts.Breakpoint,
		padding:    max(opts.Padding, 0),
		step:       opts.Step,
		bigStep:    opts.BigStep,
		logger:     opts.Logger,
	}
	m.setTheme(opts.Theme)
	m.unsubscribe = m.picker.Subscribe(appLogEvent(opts.Logger))
	return m
}

// appLogEvent returns the subscriber that records model events.
func appLogEvent(logger *slog.Logger) func(colormodel.Event) {
	return func(e colormodel.Event) {
		switch ev := e.(type) {
		case colormodel.Committed:
			logger.Info("color committed",
				"hex", ev.Color.Hex(),
				"rgb", ev.Channels.String(),
				"r", ev.Color.R, "g", ev.Color.G, "b", ev.Color.B,
			)
		case colormodel.ChannelChanged:
			logger.Debug("channel changed", "channel", ev.Channel.String(), "value", ev.Value)
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case ChannelChangedMsg:
		m.picker.SetChannel(msg.Channel, msg.Value)
		return m, nil

	case CommitMsg:
		m.picker.Commit()
		return m, nil

	case AppearanceMsg:
		m.setAppearance(msg.Appearance)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		m.CycleFocusForward()
	case key.Matches(msg, m.keys.Prev):
		m.CycleFocusBackward()
	case key.Matches(msg, m.keys.Increase):
		m.nudge(m.step)
	case key.Matches(msg, m.keys.Decrease):
		m.nudge(-m.step)
	case key.Matches(msg, m.keys.BigInc):
		m.nudge(m.bigStep)
	case key.Matches(msg, m.keys.BigDec):
		m.nudge(-m.bigStep)
	case key.Matches(msg, m.keys.Min):
		m.setFocused(0)
	case key.Matches(msg, m.keys.Max):
		m.setFocused(colormodel.MaxChannel)
	case key.Matches(msg, m.keys.Press):
		if m.focus == FocusButton {
			m.picker.Commit()
		}
	case key.Matches(msg, m.keys.Commit):
		m.picker.Commit()
	case key.Matches(msg, m.keys.Appearance):
		m.setAppearance(m.baseTheme.Appearance.Toggle())
	}
	return m, nil
}

// nudge moves the focused slider by delta. No-op on the button.
func (m *Model) nudge(delta float64) {
	if ch, ok := m.focus.Channel(); ok {
		m.picker.Nudge(ch, delta)
	}
}

// setFocused sets the focused slider to v. No-op on the button.
func (m *Model) setFocused(v float64) {
	if ch, ok := m.focus.Channel(); ok {
		m.picker.SetChannel(ch, v)
	}
}

func (m *Model) setAppearance(a theme.Appearance) {
	if a == theme.AppearanceAuto || a == m.baseTheme.Appearance {
		return
	}
	m.setTheme(theme.Counterpart(m.baseTheme))
	m.logger.Debug("appearance changed", "appearance", a.String(), "theme", m.baseTheme.Name)
}

func (m *Model) setTheme(t theme.Theme) {
	m.baseTheme = t
	m.theme = theme.Adapt(t, m.colorDepth)

	st := help.Styles{
		ShortKey:       lipgloss.NewStyle().Foreground(theme.Color(m.theme.HelpKey)),
		ShortDesc:      lipgloss.NewStyle().Foreground(theme.Color(m.theme.HelpDesc)),
		ShortSeparator: lipgloss.NewStyle().Foreground(theme.Color(m.theme.Dim)),
		Ellipsis:       lipgloss.NewStyle().Foreground(theme.Color(m.theme.Dim)),
		FullKey:        lipgloss.NewStyle().Foreground(theme.Color(m.theme.HelpKey)),
		FullDesc:       lipgloss.NewStyle().Foreground(theme.Color(m.theme.HelpDesc)),
		FullSeparator:  lipgloss.NewStyle().Foreground(theme.Color(m.theme.Dim)),
	}
	m.help.Styles = st
}

// Close detaches the model's event logging from the color model.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Picker returns the underlying color model.
func (m Model) Picker() *colormodel.Model { return m.picker }

// Focus returns the focused control.
func (m Model) Focus() Focus { return m.focus }

// Theme returns the active (unadapted) theme.
func (m Model) Theme() theme.Theme { return m.baseTheme }

// Width returns the last known terminal width.
func (m Model) Width() int { return m.width }

// Height returns the last known terminal height.
func (m Model) Height() int { return m.height }

// Quitting reports whether a quit key was pressed.
func (m Model) Quitting() bool { return m.quitting }

// ShowingFullHelp reports whether the full key help is expanded.
func (m Model) ShowingFullHelp() bool { return m.help.ShowAll }
