// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/zapenv/zap/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the zap command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zap",
		Short: "Manage Python virtual environments in one place",
		Long: TitleStyle.Render("zap") + SubtitleStyle.Render(" - Python virtual environments in one place") + `

zap keeps every virtual environment under a single root directory,
grouped by Python version: ROOT/<version>/<name>. The root defaults to
~/venvs (C:\venvs on Windows) and can be moved with ENV_ROOT.

` + SubtitleStyle.Render("Examples:") + `
  zap list                      Show interpreters and environments
  zap create 3.11 myenv         Create myenv with Python 3.11
  zap set-default 3.12          Use 3.12 when create gets no version
  zap activate myenv            Print the activation command
  zap delete myenv -v 3.11 -y   Delete without prompting`,
		SilenceUsage: true,
	}

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().BoolVar(&app.flags.verbose, "verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "config file (default is <config dir>/zap/config.cue)")

	rootCmd.AddCommand(
		newListCommand(app),
		newCreateCommand(app),
		newDeleteCommand(app),
		newActivateCommand(app),
		newDeactivateCommand(app),
		newSetDefaultCommand(app),
		newConfigCommand(app),
	)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute() int {
	return execute(context.Background(), NewApp(Dependencies{}), os.Args[1:])
}

func execute(ctx context.Context, app *App, args []string) int {
	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(args)

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			app.renderError(w, err)
		}),
	)
	return exitCodeFor(err)
}

// renderError prints err verbatim with its suggestions, followed by the
// issue catalog entry when one applies.
func (a *App) renderError(w io.Writer, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("[!]")+" "+formatErrorForDisplay(err, a.verbose))

	var svcErr *ServiceError
	if errors.As(err, &svcErr) && a.verbose {
		fmt.Fprintln(w)
		renderServiceError(w, svcErr, a.issueStyle())
	}
}

// ExitError ends the process with Code. A nil Err exits silently.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status " + e.Code.String()
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func exitCodeFor(err error) int {
	if err == nil {
		return int(types.ExitSuccess)
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return int(exitErr.Code)
	}
	return int(types.ExitFailure)
}
