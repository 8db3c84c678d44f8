// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the zap command tree.
//
// Each subcommand maps to one lifecycle.Manager operation. App is the
// composition root: it loads configuration, resolves the registry root and
// wires interpreter discovery, environment creation, prompting and shell
// spawning into the Manager.
package cmd
