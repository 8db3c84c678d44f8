// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/zapenv/zap/internal/activation"
	"github.com/zapenv/zap/internal/interpreter"
	"github.com/zapenv/zap/internal/registry"
	"github.com/zapenv/zap/internal/testutil"
	"github.com/zapenv/zap/internal/venv"
	"github.com/zapenv/zap/pkg/types"
)

type (
	fakeSource struct {
		set *interpreter.Set
		err error
	}

	// fakeCreator writes the marker on success, or leaves a partial tree on failure.
	fakeCreator struct {
		upgrade  bool
		exitCode types.ExitCode
		output   string
		err      error
		noMarker bool
		calls    []createCall
	}

	createCall struct {
		dir, exe string
		upgrade  bool
	}

	fakePrompter struct {
		selectIndex  int
		selectOK     bool
		confirm      bool
		err          error
		selectTitles []string
		selectOpts   [][]string
		questions    []string
	}

	fakeSpawner struct {
		commands []string
	}

	fakePrefs struct {
		version registry.VersionTag
		err     error
	}
)

func (f *fakeSource) Discover(context.Context) (*interpreter.Set, error) {
	return f.set, f.err
}

func (f *fakeCreator) SupportsUpgrade(context.Context, string) bool { return f.upgrade }

func (f *fakeCreator) CreateAt(_ context.Context, dir, exe string, upgrade bool) (venv.Output, error) {
	f.calls = append(f.calls, createCall{dir: dir, exe: exe, upgrade: upgrade})
	if err := os.MkdirAll(filepath.Join(dir, "lib"), 0o755); err != nil {
		return venv.Output{}, err
	}
	if f.err != nil {
		return venv.Output{ExitCode: types.ExitFailure}, f.err
	}
	if f.exitCode.IsSuccess() && !f.noMarker {
		if err := os.WriteFile(filepath.Join(dir, registry.MarkerFile), []byte("home = /usr/bin\n"), 0o644); err != nil {
			return venv.Output{}, err
		}
	}
	return venv.Output{ExitCode: f.exitCode, Text: f.output}, nil
}

func (f *fakePrompter) Select(_ context.Context, title string, options []string) (int, bool, error) {
	f.selectTitles = append(f.selectTitles, title)
	f.selectOpts = append(f.selectOpts, options)
	return f.selectIndex, f.selectOK, f.err
}

func (f *fakePrompter) Confirm(_ context.Context, question string) (bool, error) {
	f.questions = append(f.questions, question)
	return f.confirm, f.err
}

func (f *fakeSpawner) Spawn(_ context.Context, command string) error {
	f.commands = append(f.commands, command)
	return nil
}

func (f *fakePrefs) DefaultVersion() (registry.VersionTag, error) { return f.version, f.err }

func (f *fakePrefs) SetDefaultVersion(v registry.VersionTag) error {
	f.version = v
	return f.err
}

// harness bundles a Manager with its fakes over a temporary registry.
type harness struct {
	tree     *testutil.RegistryTree
	creator  *fakeCreator
	prompter *fakePrompter
	spawner  *fakeSpawner
	prefs    *fakePrefs
	manager  *Manager
}

func newHarness(t *testing.T, attended bool) *harness {
	t.Helper()
	h := &harness{
		tree:     testutil.NewRegistryTree(t),
		creator:  &fakeCreator{},
		prompter: &fakePrompter{},
		spawner:  &fakeSpawner{},
		prefs:    &fakePrefs{},
	}
	pythons := interpreter.NewSet(
		interpreter.Interpreter{Version: "3.11", Path: "/usr/bin/python3.11"},
		interpreter.Interpreter{Version: "3.12", Path: "/usr/bin/python3.12"},
	)
	h.manager = New(Options{
		Store:        registry.NewStore(h.tree.Root),
		Interpreters: &fakeSource{set: pythons},
		Creator:      h.creator,
		Prompter:     h.prompter,
		Spawner:      h.spawner,
		Preferences:  h.prefs,
		Flavor:       activation.POSIX,
		Attended:     attended,
	})
	return h
}
