package ui

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/meridian/internal/config"
	"github.com/javiermolinar/meridian/internal/tui"
	"github.com/javiermolinar/meridian/internal/tui/commands"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config    *config.Config
	clipboard commands.Clipboard
	root      *cobra.Command
	debug     bool // Enable debug logging
}

// AppOption configures optional application behavior.
type AppOption func(*App)

// WithClipboard replaces the system clipboard used by convert --copy.
func WithClipboard(cb commands.Clipboard) AppOption {
	return func(a *App) {
		a.clipboard = cb
	}
}

// WithIO redirects command input and output.
func WithIO(in io.Reader, out, errOut io.Writer) AppOption {
	return func(a *App) {
		a.root.SetIn(in)
		a.root.SetOut(out)
		a.root.SetErr(errOut)
	}
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	a := &App{config: cfg, clipboard: commands.SystemClipboard{}}

	a.root = &cobra.Command{
		Use:   "meridian",
		Short: "Convert between 24-hour and 12-hour clock times",
		Long: `Meridian converts clock times between the 24-hour and 12-hour formats.

Run without arguments to open the interactive converter, or use the
subcommands to convert and validate times from scripts.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.convertCmd())
	a.root.AddCommand(a.checkCmd())
	a.root.AddCommand(a.normalizeCmd())

	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "meridian %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application with the process arguments.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ExecuteArgs runs the CLI application with explicit arguments.
func (a *App) ExecuteArgs(args ...string) error {
	if args == nil {
		args = []string{}
	}
	a.root.SetArgs(args)
	return a.root.Execute()
}
