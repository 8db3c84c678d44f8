// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapenv/zap/internal/lifecycle"
	"github.com/zapenv/zap/internal/registry"
)

func newActivateCommand(app *App) *cobra.Command {
	var opts lifecycle.ShellOptions
	cmd := &cobra.Command{
		Use:   "activate <name>",
		Short: "Print the command that activates an environment",
		Long: `Print the shell command that activates an environment.

A child process cannot change its parent shell, so the command is always
printed for you to run or eval. With --shell (or --interactive on a
terminal) zap also starts a new shell with the environment activated.`,
		Example: `  eval "$(zap activate myenv --version 3.11)"
  zap activate myenv --shell`,
		Args:              usageArgs(cobra.ExactArgs(1)),
		ValidArgsFunction: completeEnvNames(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			name := registry.EnvName(args[0])
			res, err := s.manager.Activate(cmd.Context(), lifecycle.ActivateRequest{
				Name:         name,
				Version:      versionFlag(cmd),
				ShellOptions: opts,
			})
			if err != nil {
				return classifyError("activate environment", err)
			}

			switch res.Status {
			case lifecycle.Ambiguous:
				printAmbiguous(app.stdout, "activate", name, res.Matches)
				return nil
			case lifecycle.Cancelled:
				fmt.Fprintln(app.stdout, WarningStyle.Render("Cancelled."))
				return nil
			}

			if res.AutoSelected {
				printUsing(app.stderr, res.Environment)
			}
			fmt.Fprintln(app.stdout, res.Command)
			if !res.Spawn {
				return nil
			}
			fmt.Fprintln(app.stderr, "\nActivating environment...")
			return classifyError("start shell", s.manager.SpawnShell(cmd.Context(), res.Command))
		},
	}
	cmd.Flags().StringP("version", "v", "", "Python version of the environment (e.g. 3.11, 3.12-arm64)")
	addShellFlags(cmd, &opts)
	return cmd
}

func addShellFlags(cmd *cobra.Command, opts *lifecycle.ShellOptions) {
	cmd.Flags().BoolVar(&opts.Shell, "shell", false, "spawn a new shell with the command already run")
	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "spawn the shell only when running in a terminal")
}
