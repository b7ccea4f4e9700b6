// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/regview/regview/internal/config"
	"github.com/regview/regview/internal/engine"
	"github.com/regview/regview/internal/issue"
	"github.com/regview/regview/internal/session"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the regview command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	modes := make([]string, 0, len(session.Modes()))
	for _, m := range session.Modes() {
		modes = append(modes, m.String())
	}

	rootCmd := &cobra.Command{
		Use:   "regview",
		Short: "Pick entry keys with a live preview",
		Long: TitleStyle.Render("regview") + SubtitleStyle.Render(" - Pick entry keys with a live preview") + `

regview reads a single entry key for a command. While you type, a preview
pane lists the entries the command accepts; the key is printed to stdout.

Entries are loaded from a CUE or TOML snapshot given with --store or the
'store.path' configuration value.

` + SubtitleStyle.Render("Examples:") + `
  regview pick                      Pick an entry for insert-entry
  regview pick jump-to-entry        Pick an entry to jump to
  regview pick --keys 'a<enter>'    Play a key script instead of the terminal
  regview list view-entry           List the entries view-entry accepts
  regview config show               Show current configuration`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app.loadConfig(cmd.Context())
			app.initLogging()
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/regview/config.cue)")
	rootCmd.PersistentFlags().StringVar(&app.flags.storePath, "store", "", "entry store snapshot (.cue or .toml)")
	rootCmd.PersistentFlags().StringVar(&app.flags.mode, "mode", "", "preview mode: "+strings.Join(modes, ", "))

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetIn(app.stdin)

	rootCmd.AddCommand(newPickCommand(app))
	rootCmd.AddCommand(newViewCommand(app))
	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newCommandsCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command with fang and exits with the mapped exit code.
// This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithCommit(Commit),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	)
	os.Exit(int(exitCode(err)))
}

// handleError prints err for the user. Aborts and bare exit codes are silent;
// in verbose mode the catalog guide of an actionable error follows the message.
func (a *App) handleError(w io.Writer, _ fang.Styles, err error) {
	if errors.Is(err, engine.ErrAborted) {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.flags.verbose))

	var ae *issue.ActionableError
	if !a.flags.verbose || !errors.As(err, &ae) {
		return
	}
	if guide := ae.CatalogIssue(); guide != nil {
		rendered, renderErr := guide.Render(a.issueStyle())
		if renderErr != nil {
			return
		}
		fmt.Fprint(w, rendered)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// configSubcommandPreRun replaces the root hook for the config tree, which
// reports load failures itself.
func configSubcommandPreRun(app *App) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		app.initLogging()
		return nil
	}
}

var _ ConfigProvider = config.NewProvider()
