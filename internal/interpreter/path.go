// SPDX-License-Identifier: MPL-2.0

package interpreter

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches python3.N and python3.NN executable names.
const DefaultPattern = "python3.{[0-9],[0-9][0-9]}"

// PathSource scans PATH directories for interpreter executables.
type PathSource struct {
	// Patterns are doublestar globs matched against file names in each
	// directory; empty means DefaultPattern.
	Patterns []string
	// PathList is a PATH-style directory list; empty means the process PATH.
	PathList string
	Run      Runner
}

// Discover probes every matching executable on PATH. Directories are visited
// in PATH order so the first interpreter reporting a tag wins. Candidates
// that fail the probe are skipped.
func (s *PathSource) Discover(ctx context.Context) (*Set, error) {
	patterns := s.Patterns
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid interpreter pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}

	pathList := s.PathList
	if pathList == "" {
		pathList = os.Getenv("PATH")
	}

	set := NewSet()
	seen := make(map[string]bool)
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			continue
		}
		for _, exe := range candidates(dir, patterns) {
			if seen[exe] {
				continue
			}
			seen[exe] = true

			if err := ctx.Err(); err != nil {
				return nil, err
			}
			tag, err := Probe(ctx, s.Run, exe)
			if err != nil {
				slog.Debug("skipping interpreter candidate", "path", exe, "error", err)
				continue
			}
			if !set.Add(Interpreter{Version: tag, Path: exe}) {
				slog.Debug("interpreter shadowed by earlier PATH entry", "version", tag, "path", exe)
			}
		}
	}
	return set, nil
}

// candidates returns executable files in dir whose names match any pattern.
func candidates(dir string, patterns []string) []string {
	fsys := os.DirFS(dir)
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			slog.Debug("interpreter glob failed", "dir", dir, "pattern", pattern, "error", err)
			continue
		}
		for _, m := range matches {
			if isExecutable(fsys, m) {
				out = append(out, filepath.Join(dir, filepath.FromSlash(m)))
			}
		}
	}
	return out
}

func isExecutable(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
