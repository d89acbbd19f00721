// Package tui provides the terminal user interface for meridian.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/meridian/internal/tui/theme"
)

// Default panel width - shrinks on narrow terminals.
const defaultPanelWidth = 36

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg lipgloss.Color

	// Header
	TitleStyle     lipgloss.Style
	ModeLabelStyle lipgloss.Style
	ArrowStyle     lipgloss.Style

	// Panels
	PanelLabelStyle lipgloss.Style
	SourceBoxStyle  lipgloss.Style
	ResultBoxStyle  lipgloss.Style
	ErrorBoxStyle   lipgloss.Style
	HintStyle       lipgloss.Style

	// Source input
	InputTextStyle   lipgloss.Style
	PlaceholderStyle lipgloss.Style
	CursorStyle      lipgloss.Style
	PromptStyle      lipgloss.Style

	// Result text
	ResultStyle      lipgloss.Style
	ResultEmptyStyle lipgloss.Style
	ErrorStyle       lipgloss.Style
	CopiedStyle      lipgloss.Style

	// AM/PM toggle and example presets
	ToggleOnStyle  lipgloss.Style
	ToggleOffStyle lipgloss.Style
	PresetOnStyle  lipgloss.Style
	PresetOffStyle lipgloss.Style

	// Help line
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		BorderBackground(p.Bg).
		Padding(0, 1)

	return &Styles{
		colorBg: p.Bg,

		TitleStyle: lipgloss.NewStyle().
			Foreground(p.TextOnAccent).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),
		ModeLabelStyle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.Bg).
			Bold(true),
		ArrowStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Background(p.Bg),

		PanelLabelStyle: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.Bg).
			Bold(true),
		SourceBoxStyle: box.Background(p.BgInput),
		ResultBoxStyle: box.Background(p.ResultBg),
		ErrorBoxStyle:  box.Background(p.ErrorBg).BorderForeground(p.Error),
		HintStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Background(p.Bg).
			Italic(true),

		InputTextStyle: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.BgInput),
		PlaceholderStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Background(p.BgInput),
		CursorStyle: lipgloss.NewStyle().
			Foreground(p.Accent),
		PromptStyle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.BgInput),

		ResultStyle: lipgloss.NewStyle().
			Foreground(p.Result).
			Background(p.ResultBg).
			Bold(true),
		ResultEmptyStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Background(p.ResultBg),
		ErrorStyle: lipgloss.NewStyle().
			Foreground(p.Error).
			Background(p.ErrorBg).
			Bold(true),
		CopiedStyle: lipgloss.NewStyle().
			Foreground(p.Success).
			Background(p.ResultBg).
			Bold(true),

		ToggleOnStyle: lipgloss.NewStyle().
			Foreground(p.TextOnMeridiem).
			Background(p.Meridiem).
			Bold(true).
			Padding(0, 1),
		ToggleOffStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Background(p.BgPanel).
			Padding(0, 1),
		PresetOnStyle: lipgloss.NewStyle().
			Foreground(p.TextOnSelected).
			Background(p.Selected).
			Padding(0, 1),
		PresetOffStyle: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.BgPanel).
			Padding(0, 1),

		HelpKeyStyle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.Bg),
		HelpDescStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Background(p.Bg),
	}
}
