// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapenv/zap/internal/lifecycle"
	"github.com/zapenv/zap/internal/registry"
)

func newCreateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create [version] <name>",
		Short: "Create an environment",
		Long: `Create ROOT/<version>/<name> with the matching Python interpreter.

The version may be omitted once a default is set with 'zap set-default'.
Python 3.12 and newer also upgrade pip and setuptools in the new environment.`,
		Example: `  zap create 3.11 myenv
  zap create 3.10-arm64 tools
  zap create myenv`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := lifecycle.CreateRequest{Name: registry.EnvName(args[len(args)-1])}
			if len(args) == 2 {
				req.Version = registry.VersionTag(args[0])
			}

			s, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			res, err := s.manager.Create(cmd.Context(), req)
			if err != nil {
				return classifyError("create environment", err)
			}

			if res.UsedDefault {
				fmt.Fprintf(app.stdout, "Using default Python version %s.\n", res.Environment.Version)
			}
			fmt.Fprintf(app.stdout, "Created venv at %s using %s\n", res.Environment.Path, res.Interpreter.Path)
			fmt.Fprintln(app.stdout, SuccessStyle.Render("Success!"))
			return nil
		},
	}
}
