// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"context"

	"github.com/zapenv/zap/internal/activation"
	"github.com/zapenv/zap/internal/interpreter"
	"github.com/zapenv/zap/internal/registry"
	"github.com/zapenv/zap/internal/venv"
)

type (
	// InterpreterSource returns a fresh snapshot of installed interpreters.
	InterpreterSource interface {
		Discover(ctx context.Context) (*interpreter.Set, error)
	}

	// Creator builds an environment directory with an interpreter.
	Creator interface {
		SupportsUpgrade(ctx context.Context, exe string) bool
		CreateAt(ctx context.Context, dir, exe string, upgrade bool) (venv.Output, error)
	}

	// Prompter asks the attended user to choose or confirm.
	Prompter interface {
		// Select returns the chosen option index. ok is false when the input
		// was empty, invalid or cancelled.
		Select(ctx context.Context, title string, options []string) (index int, ok bool, err error)
		// Confirm returns true only for an affirmative answer.
		Confirm(ctx context.Context, question string) (bool, error)
	}

	// Spawner runs a command in a new interactive shell.
	Spawner interface {
		Spawn(ctx context.Context, command string) error
	}

	// Preferences persists the default version used by Create.
	Preferences interface {
		DefaultVersion() (registry.VersionTag, error)
		SetDefaultVersion(version registry.VersionTag) error
	}

	// Options wires a Manager's collaborators.
	Options struct {
		Store        *registry.Store
		Interpreters InterpreterSource
		Creator      Creator
		Prompter     Prompter
		Spawner      Spawner
		Preferences  Preferences
		// Flavor selects activation command syntax.
		Flavor activation.Flavor
		// Attended reports whether a human can answer prompts.
		Attended bool
	}

	// Manager performs environment operations over one registry root.
	Manager struct {
		store        *registry.Store
		resolver     *registry.Resolver
		interpreters InterpreterSource
		creator      Creator
		prompter     Prompter
		spawner      Spawner
		prefs        Preferences
		flavor       activation.Flavor
		attended     bool
	}
)

// New creates a Manager.
func New(opts Options) *Manager {
	flavor := opts.Flavor
	if flavor == "" {
		flavor = activation.POSIX
	}
	return &Manager{
		store:        opts.Store,
		resolver:     registry.NewResolver(opts.Store),
		interpreters: opts.Interpreters,
		creator:      opts.Creator,
		prompter:     opts.Prompter,
		spawner:      opts.Spawner,
		prefs:        opts.Preferences,
		flavor:       flavor,
		attended:     opts.Attended,
	}
}

// Root returns the registry root directory.
func (m *Manager) Root() string { return m.store.Root() }

// Attended reports whether prompts can be shown.
func (m *Manager) Attended() bool { return m.attended }

// Names returns every valid environment name, for completion.
func (m *Manager) Names() ([]registry.EnvName, error) {
	return m.resolver.Names()
}
