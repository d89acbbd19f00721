package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Converted values: bold green
	colorResult = color.New(color.FgGreen, color.Bold)

	// Sentinel errors and invalid input
	colorError = color.New(color.FgRed, color.Bold)

	// Input values echoed back next to their result
	colorSource = color.New(color.FgCyan)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// configureColor turns color off when asked to or when out is not a terminal.
func configureColor(noColor bool, out io.Writer) {
	if noColor || !isTerminal(out) {
		DisableColor()
		return
	}
	EnableColor()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func formatResult(s string) string {
	return colorResult.Sprint(s)
}

func formatError(s string) string {
	return colorError.Sprint(s)
}

func formatSource(s string) string {
	return colorSource.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
