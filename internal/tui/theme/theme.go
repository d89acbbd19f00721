// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name     string `toml:"name"`
	Bg       string `toml:"bg"`       // Base background
	BgPanel  string `toml:"bg_panel"` // Source and result panels
	BgInput  string `toml:"bg_input"` // Focused input field
	Fg       string `toml:"fg"`       // Primary foreground
	FgMuted  string `toml:"fg_muted"` // Hints, placeholders, help line
	Accent   string `toml:"accent"`   // Title, borders, mode labels
	Result   string `toml:"result"`   // Converted time
	Meridiem string `toml:"meridiem"` // AM/PM indicator
	Success  string `toml:"success"`  // Copied mark
	Error    string `toml:"error"`    // Invalid hour/minute/format
	Border   string `toml:"border"`   // Panel borders (optional)
	Selected string `toml:"selected"` // Active example preset (optional)
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to mocha
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.BgPanel == "" {
		t.BgPanel = t.Bg
	}
	if t.BgInput == "" {
		t.BgInput = t.BgPanel
	}
	if t.Border == "" {
		t.Border = t.Accent
	}
	if t.Selected == "" {
		t.Selected = coalesce(t.Result, t.Accent)
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
