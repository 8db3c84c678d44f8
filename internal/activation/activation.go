// SPDX-License-Identifier: MPL-2.0

// Package activation builds the shell commands that activate or deactivate an
// environment and optionally spawns an interactive shell running them.
// zap cannot change its parent shell's environment, so the command is
// always printed for the user to run.
package activation

import (
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// DeactivateCommand is the same on every platform; venv activation defines it.
const DeactivateCommand = "deactivate"

// Shell flavors.
const (
	POSIX      Flavor = "posix"
	PowerShell Flavor = "powershell"
)

// Flavor selects the shell syntax of generated commands.
type Flavor string

// ActivateCommand returns the command that activates the environment at dir.
func ActivateCommand(flavor Flavor, dir string) string {
	if flavor == PowerShell {
		script := strings.TrimRight(dir, `\/`) + `\Scripts\Activate.ps1`
		return "& " + powerShellQuote(script)
	}

	script := filepath.ToSlash(filepath.Join(dir, "bin", "activate"))
	return "source " + posixQuote(script)
}

// posixQuote leaves plain paths bare and quotes the rest so the command can be pasted as-is.
func posixQuote(s string) string {
	quoted, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		// Only invalid UTF-8 or NUL bytes reach here.
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return quoted
}

func powerShellQuote(s string) string {
	if !strings.ContainsAny(s, " '`$&;(){}@#\"") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
