// Package commands provides TUI command constructors and message types.
package commands

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this system")

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the operating system clipboard.
type SystemClipboard struct{}

// WriteAll writes text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// CopiedMsg is sent when the result was written to the clipboard.
type CopiedMsg struct {
	Text string
}

// CopyFailedMsg is sent when writing to the clipboard failed.
type CopyFailedMsg struct {
	Text string
	Err  error
}

// ClearCopiedMsg is sent when the copied mark should disappear.
// Seq identifies the copy it belongs to so a later copy keeps its mark.
type ClearCopiedMsg struct {
	Seq int
}

// Copy writes text to cb.
func Copy(cb Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		if err := cb.WriteAll(text); err != nil {
			return CopyFailedMsg{Text: text, Err: err}
		}
		return CopiedMsg{Text: text}
	}
}

// ClearCopiedAfter schedules a ClearCopiedMsg for the copy numbered seq.
func ClearCopiedAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearCopiedMsg{Seq: seq}
	})
}
