// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Theme names a huh color theme for form prompts. Unknown names fall back to
// the base theme.
type Theme string

// Known themes.
const (
	ThemeDefault    Theme = "default"
	ThemeCharm      Theme = "charm"
	ThemeDracula    Theme = "dracula"
	ThemeCatppuccin Theme = "catppuccin"
	ThemeBase16     Theme = "base16"
)

// Config holds common configuration for prompts.
type Config struct {
	Theme Theme
	// Accessible replaces the TUI with plain-text prompts for screen readers.
	Accessible bool
	// Input is where answers are read from.
	Input io.Reader
	// Output is where prompts are written.
	Output io.Writer
}

// DefaultConfig returns a Config on stdin and stderr. Prompts go to stderr so
// command output on stdout stays pipeable. Accessible mode follows the
// ACCESSIBLE variable as seen through getenv; nil means os.Getenv.
func DefaultConfig(getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	return Config{
		Theme:      ThemeCharm,
		Accessible: getenv("ACCESSIBLE") != "",
		Input:      os.Stdin,
		Output:     os.Stderr,
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// IsAttended reports whether both stdin and stdout are terminals, meaning a
// human can see and answer prompts.
func IsAttended() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}

func getHuhTheme(t Theme) *huh.Theme {
	switch t {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	case ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}
