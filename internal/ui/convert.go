package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/meridian/internal/clock"
)

// ErrInvalidTime is returned when at least one value could not be converted
// or validated. The command has already printed the details.
var ErrInvalidTime = errors.New("invalid time")

// convertOpts holds the flags shared by convert and check.
type convertOpts struct {
	to      string
	pm      bool
	am      bool
	copy    bool
	noColor bool
}

// mode resolves --to against the configured default direction.
func (a *App) mode(to string) (clock.Mode, error) {
	if to == "" {
		return a.config.ModeValue(), nil
	}
	m, err := clock.ParseMode(to)
	if err != nil {
		return 0, fmt.Errorf("--to: %w", err)
	}
	return m, nil
}

func (a *App) meridiem(opts convertOpts) clock.Meridiem {
	switch {
	case opts.pm:
		return clock.PM
	case opts.am:
		return clock.AM
	default:
		return a.config.MeridiemValue()
	}
}

func (a *App) convertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <time>...",
		Short: "Convert times between 24-hour and 12-hour format",
		Long: `Convert one or more clock times.

By default the direction comes from the config file (24-hour to 12-hour).
12-hour input may carry its own AM/PM suffix, which wins over --am/--pm.

Examples:
  meridian convert 14:30
  meridian convert --to 24 --pm 2:30
  meridian convert --to 24 "11:15 am" 7pm
  meridian convert --copy 0 12 23:59`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := a.mode(opts.to)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			configureColor(opts.noColor, cmd.OutOrStdout())

			results, failed := a.convertAll(cmd.OutOrStdout(), args, mode, a.meridiem(opts))

			if opts.copy && len(results) > 0 {
				text := strings.Join(results, "\n")
				if err := a.clipboard.WriteAll(text); err != nil {
					return fmt.Errorf("copying result: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), formatMuted("copied to clipboard"))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d values: %w", failed, len(args), ErrInvalidTime)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "Target format: 12 or 24 (default from config)")
	cmd.Flags().BoolVar(&opts.pm, "pm", false, "Treat 12-hour input without a suffix as PM")
	cmd.Flags().BoolVar(&opts.am, "am", false, "Treat 12-hour input without a suffix as AM")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the converted values to the clipboard")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable color output")
	cmd.MarkFlagsMutuallyExclusive("am", "pm")
	return cmd
}

// convertAll prints one line per value and returns the successful results
// plus the number of failures. A single value prints only its result.
func (a *App) convertAll(out io.Writer, args []string, mode clock.Mode, meridiem clock.Meridiem) ([]string, int) {
	policy := a.config.HourPolicyValue()

	width := 0
	for _, arg := range args {
		width = max(width, len(arg))
	}

	results := make([]string, 0, len(args))
	failed := 0
	for _, arg := range args {
		result := convertOne(arg, mode, meridiem, policy)

		var shown string
		if clock.IsError(result) {
			failed++
			shown = formatError(result)
		} else {
			results = append(results, result)
			shown = formatResult(result)
		}

		if len(args) == 1 {
			fmt.Fprintln(out, shown)
			continue
		}
		fmt.Fprintf(out, "%s  %s %s\n", formatSource(fmt.Sprintf("%-*s", width, arg)), formatMuted("→"), shown)
	}
	return results, failed
}

// convertOne converts a single argument. An explicit AM/PM suffix on 12-hour
// input overrides meridiem, and input that converts to nothing is reported
// as a format error.
func convertOne(arg string, mode clock.Mode, meridiem clock.Meridiem, policy clock.HourPolicy) string {
	value := arg
	if mode == clock.Mode12To24 {
		if v, m, ok := clock.StripMeridiem(arg); ok {
			value, meridiem = v, m
		}
	}

	result := clock.Convert(value, mode, meridiem, policy)
	if result == "" {
		return clock.InvalidFormat
	}
	return result
}
