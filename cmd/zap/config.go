// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zapenv/zap/internal/config"
)

// newConfigCommand creates the `zap config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage zap configuration",
		Long: `Manage zap configuration.

Configuration is stored in:
  - Linux: ~/.config/zap/config.cue
  - macOS: ~/Library/Application Support/zap/config.cue
  - Windows: %APPDATA%\zap\config.cue`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configFilePath(app)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configFilePath(app)
			if err != nil {
				return err
			}
			created, err := config.CreateDefaultConfig(path)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(app.stdout, "Config file already exists: %s\n", path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created"), path)
			return nil
		},
	})

	return cfgCmd
}

func configFilePath(app *App) (string, error) {
	if app.flags.configPath != "" {
		return app.flags.configPath, nil
	}
	return config.ConfigFilePath()
}

func showConfig(ctx context.Context, app *App) error {
	cfg, path, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}
	root, err := config.ResolveEnvRoot(cfg, app.getenv)
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Registry root"), valueStyle.Render(root))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("interpreters.launcher"), valueStyle.Render(cfg.Interpreters.Launcher))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("interpreters.patterns"), valueStyle.Render(strings.Join(cfg.Interpreters.PatternStrings(), ", ")))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("activation.posix_shell"), valueStyle.Render(cfg.Activation.PosixShell))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("activation.windows_shell"), valueStyle.Render(cfg.Activation.WindowsShell))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("ui.color_scheme"), valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("ui.prompt"), valueStyle.Render(cfg.UI.Prompt.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("ui.verbose"), valueStyle.Render(fmt.Sprint(cfg.UI.Verbose)))
	return nil
}
