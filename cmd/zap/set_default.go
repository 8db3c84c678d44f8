// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapenv/zap/internal/registry"
)

func newSetDefaultCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <version>",
		Short: "Set the default Python version for create",
		Long: `Record the version tag that 'zap create' uses when no version is given.
The tag is stored in ~/.zaprc and is not checked against installed interpreters.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			version := registry.VersionTag(args[0])
			if err := s.manager.SetDefault(version); err != nil {
				return classifyError("set default version", err)
			}
			fmt.Fprintf(app.stdout, "Default Python version set to %s\n", version)
			return nil
		},
	}
}
