package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelState describes one labelled box: the source field or the result.
type PanelState struct {
	Label      string
	Body       string // pre-styled content
	Trailer    string // right-aligned mark, e.g. the copied check
	Hint       string
	Width      int // outer width including the border
	BoxStyle   lipgloss.Style
	LabelStyle lipgloss.Style
	HintStyle  lipgloss.Style
}

// RenderPanel renders the label line, the bordered box and the hint line.
func RenderPanel(state PanelState) string {
	inner := state.Width - state.BoxStyle.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	body := state.Body
	if state.Trailer != "" {
		trailerW := lipgloss.Width(state.Trailer)
		body = Truncate(body, inner-trailerW-1)
		gap := inner - lipgloss.Width(body) - trailerW
		body += strings.Repeat(" ", max(gap, 1)) + state.Trailer
	} else {
		body = Truncate(body, inner)
	}

	box := state.BoxStyle.
		Width(state.Width - state.BoxStyle.GetHorizontalBorderSize()).
		Render(body)

	parts := []string{state.LabelStyle.Render(state.Label), box}
	if state.Hint != "" {
		parts = append(parts, state.HintStyle.Render(Truncate(state.Hint, state.Width)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderToggle renders options in a row, highlighting the selected one.
// A negative selected index highlights nothing.
func RenderToggle(options []string, selected int, on, off lipgloss.Style, sep string) string {
	rendered := make([]string, len(options))
	for i, opt := range options {
		if i == selected {
			rendered[i] = on.Render(opt)
		} else {
			rendered[i] = off.Render(opt)
		}
	}
	return strings.Join(rendered, sep)
}
