// SPDX-License-Identifier: MPL-2.0

package interpreter

import "github.com/zapenv/zap/pkg/platform"

// Options selects and configures the platform's interpreter source.
type Options struct {
	Launcher string
	Patterns []string
	Run      Runner
}

// NewSource returns the launcher source on Windows and the PATH scanner elsewhere.
func NewSource(opts Options) Source {
	if platform.IsWindows() {
		return &LauncherSource{Launcher: opts.Launcher, Run: opts.Run}
	}
	return &PathSource{Patterns: opts.Patterns, Run: opts.Run}
}
