// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/meridian/internal/clock"
	"github.com/javiermolinar/meridian/internal/tui/theme"
)

// Validation errors.
var (
	ErrEmptyInitialValue = errors.New("initial_value must not be empty")
	ErrBadInitialValue   = errors.New("initial_value must be a 24-hour time")
	ErrNoExamples        = errors.New("at least one example must be configured")
	ErrBadCopyFeedback   = errors.New("copy_feedback must be a positive duration")
)

// Config holds the application configuration.
type Config struct {
	Clock ClockConfig `toml:"clock"`
	UI    UIConfig    `toml:"ui"`
}

// ClockConfig holds conversion settings.
type ClockConfig struct {
	Mode         string   `toml:"mode"`          // "24to12" or "12to24"
	HourPolicy   string   `toml:"hour_policy"`   // "strict" (0-23) or "allow24" (0-24)
	Meridiem     string   `toml:"meridiem"`      // "am" or "pm", used in 12to24 mode
	InitialValue string   `toml:"initial_value"` // 24-hour, e.g., "14:30"; shown as 12-hour in 12to24 mode
	Examples     []string `toml:"examples"`      // presets cycled with ctrl+n / ctrl+p
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme        string `toml:"theme"`         // "mocha", "macchiato", "frappe", "latte", "light"
	CopyFeedback string `toml:"copy_feedback"` // how long the copied mark stays, e.g. "2s"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Clock: ClockConfig{
			Mode:         "24to12",
			HourPolicy:   "strict",
			Meridiem:     "am",
			InitialValue: "14:30",
			Examples:     []string{"00:00", "09:15", "12:00", "18:45", "23:59"},
		},
		UI: UIConfig{
			Theme:        "frappe",
			CopyFeedback: "2s",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "meridian", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, loads a .env
// file next to it, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// loadDotEnv exports variables from a .env file if it exists.
// Variables already set in the environment win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	// Clock overrides
	if v := os.Getenv("MERIDIAN_MODE"); v != "" {
		cfg.Clock.Mode = v
	}
	if v := os.Getenv("MERIDIAN_HOUR_POLICY"); v != "" {
		cfg.Clock.HourPolicy = v
	}
	if v := os.Getenv("MERIDIAN_MERIDIEM"); v != "" {
		cfg.Clock.Meridiem = v
	}
	if v := os.Getenv("MERIDIAN_INITIAL_VALUE"); v != "" {
		cfg.Clock.InitialValue = v
	}
	if v := os.Getenv("MERIDIAN_EXAMPLES"); v != "" {
		cfg.Clock.Examples = splitList(v)
	}

	// UI overrides
	if v := os.Getenv("MERIDIAN_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("MERIDIAN_COPY_FEEDBACK"); v != "" {
		cfg.UI.CopyFeedback = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := clock.ParseMode(c.Clock.Mode); err != nil {
		return err
	}
	policy, err := clock.ParseHourPolicy(c.Clock.HourPolicy)
	if err != nil {
		return err
	}
	if _, err := clock.ParseMeridiem(c.Clock.Meridiem); err != nil {
		return err
	}

	initial := clock.FormatInput(c.Clock.InitialValue)
	if initial == "" {
		return ErrEmptyInitialValue
	}
	if clock.IsError(clock.To12(initial, policy)) {
		return fmt.Errorf("%w, got %q", ErrBadInitialValue, c.Clock.InitialValue)
	}

	if len(c.Clock.Examples) == 0 {
		return ErrNoExamples
	}
	for _, ex := range c.Clock.Examples {
		if !isHHMM(ex) || clock.IsError(clock.To12(ex, policy)) {
			return fmt.Errorf("invalid example %q: must be a 24-hour HH:MM time", ex)
		}
	}

	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("invalid theme %q: available are %s", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}

	if d, err := time.ParseDuration(c.UI.CopyFeedback); err != nil || d <= 0 {
		return fmt.Errorf("%w, got %q", ErrBadCopyFeedback, c.UI.CopyFeedback)
	}
	return nil
}

// isHHMM reports whether s is exactly two hour digits, a colon and two
// minute digits.
func isHHMM(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ModeValue returns the configured conversion mode.
// It assumes the config has been validated.
func (c *Config) ModeValue() clock.Mode {
	m, _ := clock.ParseMode(c.Clock.Mode)
	return m
}

// HourPolicyValue returns the configured hour policy.
func (c *Config) HourPolicyValue() clock.HourPolicy {
	p, _ := clock.ParseHourPolicy(c.Clock.HourPolicy)
	return p
}

// MeridiemValue returns the configured meridiem.
func (c *Config) MeridiemValue() clock.Meridiem {
	m, _ := clock.ParseMeridiem(c.Clock.Meridiem)
	return m
}

// CopyFeedbackDuration returns how long the copy confirmation is shown.
// Falls back to two seconds when the value does not parse.
func (c *Config) CopyFeedbackDuration() time.Duration {
	d, err := time.ParseDuration(c.UI.CopyFeedback)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
