// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapenv/zap/internal/lifecycle"
)

// virtualEnvVar is set by activation scripts to the active environment directory.
const virtualEnvVar = "VIRTUAL_ENV"

func newDeactivateCommand(app *App) *cobra.Command {
	var opts lifecycle.ShellOptions
	cmd := &cobra.Command{
		Use:   "deactivate",
		Short: "Print the command that leaves the active environment",
		Long: `Print the command that leaves the active environment.

Only the printed command is meaningful, and only in the shell that activated
the environment: eval "$(zap deactivate)". A shell started with --shell or
--interactive is a fresh process where no environment is active, so the
deactivate function it runs is not defined there.`,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			res := s.manager.Deactivate(app.getenv(virtualEnvVar), opts)
			if !res.Active {
				fmt.Fprintln(app.stdout, "No active virtual environment detected.")
				return nil
			}

			fmt.Fprintf(app.stderr, "Deactivating environment: %s\n", res.Name)
			fmt.Fprintln(app.stdout, res.Command)
			if !res.Spawn {
				return nil
			}
			return classifyError("start shell", s.manager.SpawnShell(cmd.Context(), res.Command))
		},
	}
	addShellFlags(cmd, &opts)
	return cmd
}
