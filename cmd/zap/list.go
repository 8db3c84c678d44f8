// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zapenv/zap/internal/lifecycle"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List interpreters and environments",
		Long: `List the Python interpreters zap can use and every environment under
the registry root, grouped by version in numeric order.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			listing, err := s.manager.List(cmd.Context())
			if err != nil {
				return classifyError("list environments", err)
			}
			renderListing(app.stdout, listing)
			return nil
		},
	}
}

func renderListing(w io.Writer, l lifecycle.Listing) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render(">> Available Python interpreters:"))
	for _, it := range l.Interpreters {
		fmt.Fprintf(w, "  %-9s -> %s\n", it.Version, it.Path)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf(">> Virtual environments in %s:", l.Root)))
	for _, g := range l.Groups {
		fmt.Fprintf(w, "  Python %s\n", g.Version)
		for _, env := range g.Environments {
			fmt.Fprintf(w, "    * %s\n", env.Name)
		}
	}
	fmt.Fprintln(w)
}
