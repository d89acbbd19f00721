package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/meridian/internal/clock"
)

func (a *App) checkCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "check <time>",
		Short: "Check whether a value is valid (possibly partial) input",
		Long: `Check reports whether a value is valid input for the converter, or a
prefix that could still become valid while typing ("1", "14:", "9:3").

Exits with status 1 when the value is invalid.

Example:
  meridian check 23:5
  meridian check --to 24 13`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := a.mode(opts.to)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			configureColor(opts.noColor, cmd.OutOrStdout())

			value := args[0]
			if clock.IsValidPartial(value, mode, a.config.HourPolicyValue()) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatResult("valid"), formatMuted(mode.SourceLabel()+" input"))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatError("invalid"), formatMuted(mode.SourceLabel()+" input"))
			return fmt.Errorf("%q: %w", value, ErrInvalidTime)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "Target format: 12 or 24 (default from config)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <raw>",
		Short: "Clean raw input the way the interactive field does",
		Long: `Normalize strips everything but digits and one colon, and caps the value
at HH:MM.

Example:
  meridian normalize "1a4:3x09"`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), clock.FormatInput(args[0]))
		},
	}
}
