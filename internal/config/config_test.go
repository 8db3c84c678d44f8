// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/zapenv/zap/internal/issue"
	"github.com/zapenv/zap/internal/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg, path := loaded.Config, loaded.Source
	if path != "" {
		t.Errorf("source = %q, want defaults only", path)
	}

	want := DefaultConfig()
	if cfg.Interpreters.Launcher != want.Interpreters.Launcher ||
		!slices.Equal(cfg.Interpreters.Patterns, want.Interpreters.Patterns) ||
		cfg.Activation != want.Activation ||
		cfg.UI != want.UI {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_CUEFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), `
env_root: "/srv/venvs"
interpreters: patterns: ["python3.*", "pypy3.*"]
ui: {
	prompt: "form"
	verbose: true
}
`)

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg, path := loaded.Config, loaded.Source
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("source = %q", path)
	}
	if cfg.EnvRoot != "/srv/venvs" || cfg.UI.Prompt != PromptForm || !cfg.UI.Verbose {
		t.Errorf("Load() = %+v", cfg)
	}
	if want := []InterpreterPattern{"python3.*", "pypy3.*"}; !slices.Equal(cfg.Interpreters.Patterns, want) {
		t.Errorf("patterns = %v, want %v", cfg.Interpreters.Patterns, want)
	}
	// Unset keys keep their defaults.
	if cfg.Activation.PosixShell != "bash" || cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("defaults lost after merge: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"syntax error", "ui: {", "config.cue"},
		{"schema enum", `ui: prompt: "fancy"`, "prompt"},
		{"unknown key", `container_engine: "docker"`, "container_engine"},
		{"bad glob", `interpreters: patterns: ["python3.[0-9"]`, "python3.[0-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), tt.content)

			_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			var actionable *issue.ActionableError
			if !errors.As(err, &actionable) {
				t.Errorf("Load() error %T is not actionable", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %q, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: missing})
	if err == nil || !strings.Contains(err.Error(), missing) {
		t.Errorf("Load() error = %v, want not-found error naming %s", err, missing)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ZAP_UI_VERBOSE", "true")
	t.Setenv("ZAP_ACTIVATION_POSIX_SHELL", "zsh")

	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg := loaded.Config
	if !cfg.UI.Verbose || cfg.Activation.PosixShell != "zsh" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "zap", "config.cue")
	written, err := CreateDefaultConfig(path)
	if err != nil || !written {
		t.Fatalf("CreateDefaultConfig() = %v, %v; want true, nil", written, err)
	}

	// The generated file must load back as the defaults.
	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load(generated) error = %v", err)
	}
	cfg := loaded.Config
	if cfg.UI != DefaultConfig().UI || cfg.Interpreters.Launcher != "py" {
		t.Errorf("generated config loaded as %+v", cfg)
	}

	written, err = CreateDefaultConfig(path)
	if err != nil || written {
		t.Errorf("second CreateDefaultConfig() = %v, %v; want false, nil", written, err)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("skipping: XDG_CONFIG_HOME applies to Linux only")
	}
	testutil.IsolateUserDirs(t)
	xdg := os.Getenv("XDG_CONFIG_HOME")

	got, err := ConfigDir()
	if err != nil || got != filepath.Join(xdg, "zap") {
		t.Errorf("ConfigDir() = %q, %v; want %q", got, err, filepath.Join(xdg, "zap"))
	}
	path, err := ConfigFilePath()
	if err != nil || path != filepath.Join(xdg, "zap", "config.cue") {
		t.Errorf("ConfigFilePath() = %q, %v", path, err)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	if got, _ := ConfigDir(); got != filepath.Join(home, ".config", "zap") {
		t.Errorf("ConfigDir() without XDG_CONFIG_HOME = %q", got)
	}
}
