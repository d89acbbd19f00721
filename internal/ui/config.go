package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/meridian/internal/clock"
	"github.com/javiermolinar/meridian/internal/config"
	"github.com/javiermolinar/meridian/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  meridian config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	// One reader for every prompt so buffered input is not lost between them.
	reader := bufio.NewReader(in)

	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Clock.Mode = promptChoice(reader, out, "Mode (24to12, 12to24)", cfg.Clock.Mode, func(v string) bool {
		_, err := clock.ParseMode(v)
		return err == nil
	})
	cfg.Clock.HourPolicy = promptChoice(reader, out, "Hour policy (strict, allow24)", cfg.Clock.HourPolicy, func(v string) bool {
		_, err := clock.ParseHourPolicy(v)
		return err == nil
	})
	cfg.Clock.Meridiem = promptChoice(reader, out, "Default meridiem (am, pm)", cfg.Clock.Meridiem, func(v string) bool {
		_, err := clock.ParseMeridiem(v)
		return err == nil
	})
	cfg.Clock.InitialValue = promptValue(reader, out, "Initial value", cfg.Clock.InitialValue)
	cfg.Clock.Examples = promptSlice(reader, out, "Examples (comma-separated)", cfg.Clock.Examples)
	cfg.UI.Theme = promptChoice(reader, out, "UI theme ("+strings.Join(theme.Available(), ", ")+")", cfg.UI.Theme, theme.IsAvailable)
	cfg.UI.CopyFeedback = promptValue(reader, out, "Copy feedback duration", cfg.UI.CopyFeedback)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, formatHeader("Current configuration:"))
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[clock]")
	fmt.Fprintf(out, "  mode          = %s\n", cfg.Clock.Mode)
	fmt.Fprintf(out, "  hour_policy   = %s\n", cfg.Clock.HourPolicy)
	fmt.Fprintf(out, "  meridiem      = %s\n", cfg.Clock.Meridiem)
	fmt.Fprintf(out, "  initial_value = %s\n", cfg.Clock.InitialValue)
	fmt.Fprintf(out, "  examples      = %s\n", strings.Join(cfg.Clock.Examples, ", "))
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme         = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  copy_feedback = %s\n", cfg.UI.CopyFeedback)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptSlice(reader *bufio.Reader, out io.Writer, label string, current []string) []string {
	currentStr := strings.Join(current, ", ")
	fmt.Fprintf(out, "  %s [%s]: ", label, currentStr)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// promptChoice asks until valid accepts the answer. The current value is
// kept on empty input or when input runs out.
func promptChoice(reader *bufio.Reader, out io.Writer, label, current string, valid func(string) bool) string {
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if valid(value) {
			return value
		}
		if _, err := reader.Peek(1); err != nil {
			return current
		}
		fmt.Fprintf(out, "  Invalid value %q.\n", value)
	}
}
