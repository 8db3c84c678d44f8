// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/zapenv/zap/internal/activation"
	"github.com/zapenv/zap/internal/registry"
)

type (
	// ShellOptions control whether an interactive shell is spawned after the
	// command is printed.
	ShellOptions struct {
		// Shell always spawns.
		Shell bool
		// Interactive spawns only when a human is attached.
		Interactive bool
	}

	// ActivateRequest names the environment to activate.
	ActivateRequest struct {
		Name    registry.EnvName
		Version registry.VersionTag
		ShellOptions
	}

	// ActivateResult carries the activation command for a resolved environment.
	ActivateResult struct {
		// Status is Resolved, Cancelled or Ambiguous.
		Status       Status
		Environment  registry.Environment
		Matches      []registry.Environment
		AutoSelected bool
		// Command is the shell command that activates the environment.
		Command string
		// Spawn reports whether the caller should run Command in a new shell
		// after printing it.
		Spawn bool
	}

	// DeactivateResult describes the currently active environment, if any.
	DeactivateResult struct {
		Active bool
		// Name is the base name of the active environment directory.
		Name    string
		Command string
		Spawn   bool
	}
)

// errNoSpawner is returned by SpawnShell when no spawner is wired.
var errNoSpawner = errors.New("no shell spawner configured")

// Activate resolves an environment and returns its activation command.
// Nothing on disk is touched.
func (m *Manager) Activate(ctx context.Context, req ActivateRequest) (ActivateResult, error) {
	sel, err := m.selectEnvironment(ctx, req.Name, req.Version, "activate")
	if err != nil {
		return ActivateResult{}, err
	}
	res := ActivateResult{Status: sel.status, Environment: sel.env, Matches: sel.matches, AutoSelected: sel.auto}
	if sel.status != Resolved {
		return res, nil
	}

	res.Command = activation.ActivateCommand(m.flavor, sel.env.Path)
	res.Spawn = m.shouldSpawn(req.ShellOptions)
	return res, nil
}

// Deactivate reports the environment named by activeEnv (the VIRTUAL_ENV
// value of the calling shell) and the command that leaves it. An empty
// activeEnv means nothing is active.
func (m *Manager) Deactivate(activeEnv string, opts ShellOptions) DeactivateResult {
	activeEnv = strings.TrimSpace(activeEnv)
	if activeEnv == "" {
		return DeactivateResult{}
	}
	return DeactivateResult{
		Active:  true,
		Name:    filepath.Base(filepath.Clean(activeEnv)),
		Command: activation.DeactivateCommand,
		Spawn:   m.shouldSpawn(opts),
	}
}

// SpawnShell runs command in a new interactive shell and waits for it to exit.
func (m *Manager) SpawnShell(ctx context.Context, command string) error {
	if m.spawner == nil {
		return errNoSpawner
	}
	return m.spawner.Spawn(ctx, command)
}

func (m *Manager) shouldSpawn(opts ShellOptions) bool {
	return opts.Shell || (opts.Interactive && m.attended)
}
