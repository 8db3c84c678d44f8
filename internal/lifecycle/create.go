// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/zapenv/zap/internal/interpreter"
	"github.com/zapenv/zap/internal/registry"
)

type (
	// CreateRequest names the environment to create. An empty Version falls
	// back to the default version preference.
	CreateRequest struct {
		Version registry.VersionTag
		Name    registry.EnvName
	}

	// CreateResult describes a created environment.
	CreateResult struct {
		Environment registry.Environment
		Interpreter interpreter.Interpreter
		// UsedDefault is true when Version came from the default preference.
		UsedDefault bool
		// UpgradedDeps is true when the interpreter was asked to upgrade pip and setuptools.
		UpgradedDeps bool
		Output       string
	}
)

// Create builds ROOT/version/name with the matching interpreter. Nothing is
// touched unless the interpreter exists and the target path is free. A failed
// build removes whatever it left behind.
func (m *Manager) Create(ctx context.Context, req CreateRequest) (CreateResult, error) {
	if err := req.Name.Validate(); err != nil {
		return CreateResult{}, err
	}

	version, usedDefault := req.Version, false
	if version == "" {
		def, err := m.defaultVersion()
		if err != nil {
			return CreateResult{}, err
		}
		if def == "" {
			return CreateResult{}, &NoVersionSpecifiedError{Name: req.Name}
		}
		version, usedDefault = def, true
	}
	if err := version.Validate(); err != nil {
		return CreateResult{}, err
	}

	pythons, err := m.interpreters.Discover(ctx)
	if err != nil {
		return CreateResult{}, fmt.Errorf("failed to discover interpreters: %w", err)
	}
	python, ok := pythons.Lookup(version)
	if !ok {
		available := make([]registry.VersionTag, 0, pythons.Len())
		for _, it := range pythons.All() {
			available = append(available, it.Version)
		}
		registry.SortVersionTags(available)
		return CreateResult{}, &InterpreterNotFoundError{Version: version, Available: available}
	}

	dir := m.store.EnvironmentDir(version, req.Name)
	if m.store.Occupied(version, req.Name) {
		return CreateResult{}, &AlreadyExistsError{Version: version, Name: req.Name, Path: dir}
	}
	if err := os.MkdirAll(m.store.VersionDir(version), 0o755); err != nil {
		return CreateResult{}, &CreationFailedError{Version: version, Name: req.Name, Err: err}
	}

	upgrade := m.creator.SupportsUpgrade(ctx, python.Path)
	slog.Debug("creating environment", "version", version, "name", req.Name, "interpreter", python.Path, "upgrade_deps", upgrade)

	out, err := m.creator.CreateAt(ctx, dir, python.Path, upgrade)
	if err != nil || !out.ExitCode.IsSuccess() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			slog.Warn("failed to clean up partial environment", "path", dir, "error", rmErr)
		}
		return CreateResult{}, &CreationFailedError{
			Version:  version,
			Name:     req.Name,
			ExitCode: out.ExitCode,
			Output:   out.Text,
			Err:      err,
		}
	}

	env, ok := m.store.Lookup(version, req.Name)
	if !ok {
		// The interpreter reported success without writing the marker.
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			slog.Warn("failed to clean up partial environment", "path", dir, "error", rmErr)
		}
		return CreateResult{}, &CreationFailedError{
			Version:  version,
			Name:     req.Name,
			ExitCode: out.ExitCode,
			Output:   fmt.Sprintf("%s missing after venv completed\n%s", registry.MarkerFile, out.Text),
		}
	}

	return CreateResult{
		Environment:  env,
		Interpreter:  python,
		UsedDefault:  usedDefault,
		UpgradedDeps: upgrade,
		Output:       out.Text,
	}, nil
}

func (m *Manager) defaultVersion() (registry.VersionTag, error) {
	if m.prefs == nil {
		return "", nil
	}
	def, err := m.prefs.DefaultVersion()
	if err != nil {
		return "", fmt.Errorf("failed to read default version: %w", err)
	}
	return def, nil
}

// SetDefault persists version as the default for Create. The tag is not
// checked against installed interpreters.
func (m *Manager) SetDefault(version registry.VersionTag) error {
	if err := version.Validate(); err != nil {
		return err
	}
	if m.prefs == nil {
		return fmt.Errorf("no preference store configured")
	}
	return m.prefs.SetDefaultVersion(version)
}
