package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/meridian/internal/clock"
	"github.com/javiermolinar/meridian/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+s":
		from := m.session.Mode
		m.session.Toggle()
		m.presets.Reset()
		m.copied = false
		m.syncSource()
		LogModeChange(from, m.session.Mode, "swap")
		LogConversion(m.session)
		return m, nil

	case "ctrl+y":
		text, ok := m.session.Copyable()
		if !ok {
			return m, nil
		}
		return m, commands.Copy(m.clipboard, text)

	case "esc":
		m.session.Clear()
		m.presets.Reset()
		m.copied = false
		m.syncSource()
		return m, nil

	case "tab":
		// AM/PM only matters when reading 12-hour input
		if m.session.Mode == clock.Mode12To24 {
			m.session.ToggleMeridiem()
			m.copied = false
			LogConversion(m.session)
		}
		return m, nil

	case "ctrl+n":
		if preset, ok := m.presets.Next(); ok {
			m.loadPreset(preset)
		}
		return m, nil

	case "ctrl+p":
		if preset, ok := m.presets.Prev(); ok {
			m.loadPreset(preset)
		}
		return m, nil
	}

	return m.handleSourceKeys(msg)
}

// handleSourceKeys forwards editing keys to the source field and reconverts
// when its value changed.
func (m Model) handleSourceKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.source.Value()

	var cmd tea.Cmd
	m.source, cmd = m.source.Update(msg)

	if m.source.Value() != before {
		m.session.SetSource(m.source.Value())
		m.presets.Reset()
		m.copied = false
		m.syncSource()
		LogConversion(m.session)
	}
	return m, cmd
}

func (m *Model) loadPreset(preset string) {
	m.session.LoadPreset(preset)
	m.copied = false
	m.syncSource()
	LogConversion(m.session)
}
