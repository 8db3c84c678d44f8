// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zapenv/zap/internal/registry"
	"github.com/zapenv/zap/pkg/types"
)

// usageArgs makes positional argument errors exit with the usage code.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &ExitError{Code: types.ExitUsage, Err: err}
		}
		return nil
	}
}

// completeEnvNames completes the first argument with existing environment names.
func completeEnvNames(app *App) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		s, err := app.session(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names, err := s.manager.Names()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		out := make([]cobra.Completion, len(names))
		for i, n := range names {
			out[i] = n.String()
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// versionFlag reads --version as a tag; empty means any version.
func versionFlag(cmd *cobra.Command) registry.VersionTag {
	v, _ := cmd.Flags().GetString("version")
	return registry.VersionTag(v)
}
