// Package view provides view composition helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// ViewState contains the pre-rendered sections of the converter screen.
type ViewState struct {
	Width            int
	Height           int
	Header           string
	Source           string
	Target           string
	Meridiem         string // empty hides the AM/PM row
	Examples         string
	Help             string
	Bg               lipgloss.Color
	EmptyPlaceholder string
}

// Render composes the final view output, centered in the terminal.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	sections := []string{state.Header, "", state.Source, state.Target}
	if state.Meridiem != "" {
		sections = append(sections, state.Meridiem)
	}
	if state.Examples != "" {
		sections = append(sections, "", state.Examples)
	}
	sections = append(sections, "", state.Help)

	card := lipgloss.JoinVertical(lipgloss.Left, sections...)
	placed := lipgloss.Place(
		state.Width,
		state.Height,
		lipgloss.Center,
		lipgloss.Center,
		card,
		lipgloss.WithWhitespaceBackground(state.Bg),
	)
	return PadLinesWithBackground(placed, state.Width, state.Height, state.Bg)
}
