// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zapenv/zap/internal/lifecycle"
	"github.com/zapenv/zap/internal/registry"
)

func newDeleteCommand(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an environment",
		Long: `Delete an environment directory tree.

Without --version every Python version is searched. When several versions
hold the same name, an interactive terminal gets a numbered menu; otherwise
zap stops and asks for --version.`,
		Example: `  zap delete myenv
  zap delete myenv --version 3.11 -y`,
		Args:              usageArgs(cobra.ExactArgs(1)),
		ValidArgsFunction: completeEnvNames(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			name := registry.EnvName(args[0])
			res, err := s.manager.Delete(cmd.Context(), lifecycle.DeleteRequest{
				Name:    name,
				Version: versionFlag(cmd),
				Yes:     yes,
			})
			if err != nil {
				return classifyError("delete environment", err)
			}

			if res.AutoSelected {
				printUsing(app.stdout, res.Environment)
			}
			switch res.Status {
			case lifecycle.Done:
				fmt.Fprintln(app.stdout, SuccessStyle.Render("Done."))
			case lifecycle.Ambiguous:
				printAmbiguous(app.stdout, "delete", name, res.Matches)
			case lifecycle.ConfirmationRequired:
				fmt.Fprintf(app.stdout, "Not deleting %s without confirmation.\n", res.Environment.Path)
				fmt.Fprintln(app.stdout, "Re-run with -y to delete without a prompt:")
				fmt.Fprintf(app.stdout, "  %s\n", CmdStyle.Render(fmt.Sprintf("zap delete %s --version %s -y", name, res.Environment.Version)))
			case lifecycle.Cancelled:
				fmt.Fprintln(app.stdout, WarningStyle.Render("Cancelled."))
			}
			return nil
		},
	}
	cmd.Flags().StringP("version", "v", "", "Python version of the environment (e.g. 3.11, 3.12-arm64)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the deletion confirmation prompt")
	return cmd
}

// printUsing reports which version a name-only lookup picked.
func printUsing(w io.Writer, env registry.Environment) {
	fmt.Fprintf(w, "Using Python %s environment.\n", env.Version)
}

// printAmbiguous tells an unattended caller how to pick one of matches.
func printAmbiguous(w io.Writer, action string, name registry.EnvName, matches []registry.Environment) {
	fmt.Fprintf(w, "Multiple environments named '%s' found:\n", name)
	for i, env := range matches {
		fmt.Fprintf(w, "  %d. Python %s\n", i+1, env.Version)
	}
	fmt.Fprintln(w, "\nPlease specify a version with --version or use the full command:")
	fmt.Fprintf(w, "  %s\n", CmdStyle.Render(fmt.Sprintf("zap %s %s --version VERSION", action, name)))
	if len(matches) > 0 {
		fmt.Fprintln(w, "\nFor example:")
		fmt.Fprintf(w, "  %s\n", CmdStyle.Render(fmt.Sprintf("zap %s %s --version %s", action, name, matches[0].Version)))
	}
}
