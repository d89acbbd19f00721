package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := 0; i < height; i++ {
		line := lines[i]
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Truncate(line, width, "")
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// Truncate shortens styled text to width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
