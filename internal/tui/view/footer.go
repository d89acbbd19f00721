package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpEntry is one key binding shown in the help line.
type HelpEntry struct {
	Key  string
	Desc string
}

// RenderHelp renders key bindings on a single line, dropping entries that
// do not fit in width.
func RenderHelp(entries []HelpEntry, keyStyle, descStyle lipgloss.Style, width int) string {
	sep := descStyle.Render(" • ")
	var b strings.Builder
	used := 0
	for i, e := range entries {
		item := keyStyle.Render(e.Key) + descStyle.Render(" "+e.Desc)
		itemW := lipgloss.Width(item)
		if i > 0 {
			itemW += lipgloss.Width(sep)
		}
		if width > 0 && used+itemW > width {
			break
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(item)
		used += itemW
	}
	return b.String()
}
