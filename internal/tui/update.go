package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/meridian/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.source.Width = m.panelWidth() - 6
		return m, nil

	case commands.CopiedMsg:
		LogClipboard(msg.Text, nil)
		m.copySeq++
		m.copied = true
		return m, commands.ClearCopiedAfter(m.config.CopyFeedbackDuration(), m.copySeq)

	case commands.CopyFailedMsg:
		// No user-facing error: the mark simply does not appear.
		LogClipboard(msg.Text, msg.Err)
		return m, nil

	case commands.ClearCopiedMsg:
		if msg.Seq == m.copySeq {
			m.copied = false
		}
		return m, nil
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	m.source, cmd = m.source.Update(msg)
	return m, cmd
}
