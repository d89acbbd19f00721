package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/meridian/internal/clock"
	"github.com/javiermolinar/meridian/internal/tui/view"
)

// helpEntries lists the key bindings in display order.
var helpEntries = []view.HelpEntry{
	{Key: "ctrl+s", Desc: "swap"},
	{Key: "tab", Desc: "am/pm"},
	{Key: "ctrl+y", Desc: "copy"},
	{Key: "esc", Desc: "clear"},
	{Key: "ctrl+n/p", Desc: "examples"},
	{Key: "ctrl+c", Desc: "quit"},
}

// View renders the converter.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	text := textForMode(m.session.Mode, m.session.Policy)
	width := m.panelWidth()

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		Header:           m.renderHeader(text),
		Source:           m.renderSource(text, width),
		Target:           m.renderTarget(text, width),
		Meridiem:         m.renderMeridiem(),
		Examples:         m.renderExamples(width),
		Help:             view.RenderHelp(m.helpEntries(), m.styles.HelpKeyStyle, m.styles.HelpDescStyle, max(width, m.width-4)),
		Bg:               m.styles.colorBg,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderHeader(text modeText) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.TitleStyle.Render("meridian"),
		m.styles.ArrowStyle.Render("  "),
		m.styles.ModeLabelStyle.Render(text.SourceLabel),
		m.styles.ArrowStyle.Render(" → "),
		m.styles.ModeLabelStyle.Render(text.TargetLabel),
	)
}

func (m Model) renderSource(text modeText, width int) string {
	return view.RenderPanel(view.PanelState{
		Label:      text.SourceLabel,
		Body:       m.source.View(),
		Hint:       text.SourceHint,
		Width:      width,
		BoxStyle:   m.styles.SourceBoxStyle,
		LabelStyle: m.styles.PanelLabelStyle,
		HintStyle:  m.styles.HintStyle,
	})
}

func (m Model) renderTarget(text modeText, width int) string {
	target := m.session.Target
	box := m.styles.ResultBoxStyle
	var body, trailer string

	switch {
	case target == "":
		body = m.styles.ResultEmptyStyle.Render(text.TargetPlaceholder)
	case clock.IsError(target):
		box = m.styles.ErrorBoxStyle
		body = m.styles.ErrorStyle.Render(target)
	default:
		body = m.styles.ResultStyle.Render(target)
		if m.copied {
			trailer = m.styles.CopiedStyle.Render("✓")
		}
	}

	return view.RenderPanel(view.PanelState{
		Label:      text.TargetLabel,
		Body:       body,
		Trailer:    trailer,
		Hint:       text.TargetHint,
		Width:      width,
		BoxStyle:   box,
		LabelStyle: m.styles.PanelLabelStyle,
		HintStyle:  m.styles.HintStyle,
	})
}

// renderMeridiem renders the AM/PM switch, shown only for 12-hour input.
func (m Model) renderMeridiem() string {
	if m.session.Mode != clock.Mode12To24 {
		return ""
	}
	return view.RenderToggle(
		[]string{clock.AM.String(), clock.PM.String()},
		int(m.session.Meridiem),
		m.styles.ToggleOnStyle,
		m.styles.ToggleOffStyle,
		m.styles.ArrowStyle.Render(" "),
	)
}

func (m Model) renderExamples(width int) string {
	values := m.presets.Values()
	if len(values) == 0 {
		return ""
	}
	row := view.RenderToggle(values, m.presets.Selected(), m.styles.PresetOnStyle, m.styles.PresetOffStyle, m.styles.ArrowStyle.Render(" "))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.PanelLabelStyle.Render("Examples"),
		view.Truncate(row, max(width, m.width-4)),
	)
}

// helpEntries hides bindings that do nothing in the current state.
func (m Model) helpEntries() []view.HelpEntry {
	entries := make([]view.HelpEntry, 0, len(helpEntries))
	for _, e := range helpEntries {
		if e.Key == "tab" && m.session.Mode != clock.Mode12To24 {
			continue
		}
		if e.Key == "ctrl+n/p" && len(m.presets.Values()) == 0 {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
