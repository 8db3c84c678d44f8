// SPDX-License-Identifier: MPL-2.0

package interpreter

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/zapenv/zap/internal/registry"
)

// DefaultLauncher is the Windows Python launcher executable.
const DefaultLauncher = "py"

// launcherLine matches `py -0p` rows such as " -V:3.12-arm64 *   C:\Python312\python.exe".
var launcherLine = regexp.MustCompile(`-V:(?P<tag>[^\s*]+)\s+\*?\s*(?P<path>.+)`)

// LauncherSource enumerates interpreters through the py launcher.
type LauncherSource struct {
	// Launcher is the launcher executable; empty means DefaultLauncher.
	Launcher string
	Run      Runner
}

// Discover runs `<launcher> -0p` and parses its listing. A missing launcher or
// a failing listing yields an empty set, logged as a warning.
func (s *LauncherSource) Discover(ctx context.Context) (*Set, error) {
	launcher := s.Launcher
	if launcher == "" {
		launcher = DefaultLauncher
	}

	code, out, err := defaultRunner(s.Run)(ctx, launcher, "-0p")
	if err != nil {
		slog.Warn("python launcher unavailable", "launcher", launcher, "error", err)
		return NewSet(), nil
	}
	if !code.IsSuccess() {
		slog.Warn("python launcher failed", "launcher", launcher, "exit_code", code, "output", out)
	}
	return ParseLauncherOutput(out), nil
}

// ParseLauncherOutput extracts tag and path pairs from `py -0p` output.
// Lines that do not match are skipped.
func ParseLauncherOutput(out string) *Set {
	set := NewSet()
	tagIdx := launcherLine.SubexpIndex("tag")
	pathIdx := launcherLine.SubexpIndex("path")

	for line := range strings.Lines(out) {
		m := launcherLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		tag := registry.VersionTag(m[tagIdx])
		if tag.Validate() != nil {
			continue
		}
		set.Add(Interpreter{Version: tag, Path: strings.TrimSpace(m[pathIdx])})
	}
	return set
}
