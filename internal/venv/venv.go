// SPDX-License-Identifier: MPL-2.0

// Package venv creates environments with the interpreter's own venv module.
package venv

import (
	"context"
	"log/slog"

	"golang.org/x/mod/semver"

	"github.com/zapenv/zap/internal/interpreter"
	"github.com/zapenv/zap/pkg/platform"
	"github.com/zapenv/zap/pkg/types"
)

// UpgradeDepsSince is the first interpreter release whose venv module accepts --upgrade-deps.
const UpgradeDepsSince = "3.12"

type (
	// Output is the outcome of a creation run.
	Output struct {
		ExitCode types.ExitCode
		// Text is the combined stdout and stderr of the interpreter.
		Text string
	}

	// Creator runs `<python> -m venv [--upgrade-deps] <dir>` on the host.
	Creator struct {
		run interpreter.Runner
	}
)

// NewCreator creates a Creator. A nil run uses the host runner.
func NewCreator(run interpreter.Runner) *Creator {
	return &Creator{run: run}
}

// SupportsUpgrade reports whether exe is new enough for --upgrade-deps.
// A failing probe means no.
func (c *Creator) SupportsUpgrade(ctx context.Context, exe string) bool {
	tag, err := interpreter.Probe(ctx, c.run, exe)
	if err != nil {
		slog.Debug("version probe failed, creating without --upgrade-deps", "path", exe, "error", err)
		return false
	}
	return AtLeast(tag.String(), UpgradeDepsSince)
}

// CreateAt builds an environment at dir using exe. The error is non-nil only
// when the interpreter could not be started; a failing venv run is reported
// through Output.ExitCode.
func (c *Creator) CreateAt(ctx context.Context, dir, exe string, upgrade bool) (Output, error) {
	args := Args(dir, upgrade)
	slog.Debug("creating environment", "interpreter", exe, "args", args)

	run := c.run
	if run == nil {
		run = platform.RunHost
	}
	code, text, err := run(ctx, exe, args...)
	return Output{ExitCode: code, Text: text}, err
}

// Args returns the interpreter arguments that create an environment at dir.
func Args(dir string, upgrade bool) []string {
	args := []string{"-m", "venv"}
	if upgrade {
		args = append(args, "--upgrade-deps")
	}
	return append(args, dir)
}

// AtLeast compares two major.minor strings. Invalid versions compare as older.
func AtLeast(version, minimum string) bool {
	v, m := "v"+version, "v"+minimum
	if !semver.IsValid(v) || !semver.IsValid(m) {
		return false
	}
	return semver.Compare(v, m) >= 0
}
