package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/meridian/internal/clock"
)

// DebugLogger logs keystrokes, conversions and clipboard results as JSON lines.
type DebugLogger struct {
	file    *os.File
	logger  zerolog.Logger
	enabled bool
}

// Global debug logger instance
var debugLog = &DebugLogger{logger: zerolog.Nop()}

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "meridian-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{logger: zerolog.Nop()}
		return nil
	}

	// Create log file in current directory with fixed name (easy to find)
	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = newDebugLogger(f)
	debugLog.file = f
	debugLog.logger.Info().Str("log_file", DebugLogPath).Msg("debug_start")
	return nil
}

func newDebugLogger(w io.Writer) *DebugLogger {
	return &DebugLogger{
		logger:  zerolog.New(w).With().Timestamp().Logger(),
		enabled: true,
	}
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.logger.Info().Msg("debug_end")
		_ = debugLog.file.Close()
		debugLog.file = nil
	}
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugLog.enabled {
		return
	}
	debugLog.logger.Debug().
		Str("key", msg.String()).
		Str("type", msg.Type.String()).
		Msg("key_press")
}

// LogModeChange logs a conversion direction change.
func LogModeChange(from, to clock.Mode, reason string) {
	if !debugLog.enabled {
		return
	}
	debugLog.logger.Info().
		Stringer("from", from).
		Stringer("to", to).
		Str("reason", reason).
		Msg("mode_change")
}

// LogConversion logs the current session values.
func LogConversion(s *clock.Session) {
	if !debugLog.enabled || s == nil {
		return
	}
	debugLog.logger.Debug().
		Stringer("mode", s.Mode).
		Stringer("meridiem", s.Meridiem).
		Str("source", s.Source).
		Str("target", s.Target).
		Bool("error", clock.IsError(s.Target)).
		Msg("conversion")
}

// LogClipboard logs the outcome of a copy. Failures are only ever reported here.
func LogClipboard(text string, err error) {
	if !debugLog.enabled {
		return
	}
	if err != nil {
		debugLog.logger.Error().Err(err).Str("text", text).Msg("clipboard_failed")
		return
	}
	debugLog.logger.Info().Str("text", text).Msg("clipboard_copied")
}
