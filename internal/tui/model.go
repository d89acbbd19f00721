// Package tui provides the terminal user interface for meridian.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/meridian/internal/clock"
	"github.com/javiermolinar/meridian/internal/config"
	"github.com/javiermolinar/meridian/internal/tui/commands"
	"github.com/javiermolinar/meridian/internal/tui/input"
	"github.com/javiermolinar/meridian/internal/tui/theme"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config    *config.Config
	clipboard commands.Clipboard

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Conversion state
	session *clock.Session
	presets input.Presets

	// Components
	source textinput.Model

	// Copy feedback: the check mark stays until the ClearCopiedMsg for copySeq arrives
	copied  bool
	copySeq int

	// Terminal dimensions
	width  int
	height int
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClipboard replaces the system clipboard.
func WithClipboard(cb commands.Clipboard) ModelOption {
	return func(m *Model) {
		m.clipboard = cb
	}
}

// New creates a new TUI model seeded with the configured initial value.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	// Create styles from theme
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 16
	ti.Width = defaultPanelWidth - 6
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.InputTextStyle
	ti.PlaceholderStyle = styles.PlaceholderStyle
	ti.Cursor.Style = styles.CursorStyle
	ti.Cursor.TextStyle = styles.InputTextStyle
	ti.Focus()

	m := &Model{
		config:    cfg,
		clipboard: commands.SystemClipboard{},
		theme:     t,
		styles:    styles,
		session:   clock.NewSession(cfg.ModeValue(), cfg.MeridiemValue(), cfg.HourPolicyValue()),
		presets:   input.NewPresets(cfg.Clock.Examples),
		source:    ti,
	}

	for _, opt := range opts {
		opt(m)
	}

	// The initial value is a 24-hour time, entered like an example preset.
	m.session.LoadPreset(clock.FormatInput(cfg.Clock.InitialValue))
	m.syncSource()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// syncSource copies the session's cleaned source value into the text field
// and updates the placeholder for the current mode.
func (m *Model) syncSource() {
	if m.source.Value() != m.session.Source {
		m.source.SetValue(m.session.Source)
		m.source.CursorEnd()
	}
	m.source.Placeholder = textForMode(m.session.Mode, m.session.Policy).SourcePlaceholder
}

// panelWidth returns the width of the source and result boxes.
func (m Model) panelWidth() int {
	if m.width <= 0 {
		return defaultPanelWidth
	}
	return max(16, min(defaultPanelWidth, m.width-4))
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(cfg)
	LogConversion(model.session)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
