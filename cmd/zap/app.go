// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/log"

	"github.com/zapenv/zap/internal/activation"
	"github.com/zapenv/zap/internal/config"
	"github.com/zapenv/zap/internal/interpreter"
	"github.com/zapenv/zap/internal/issue"
	"github.com/zapenv/zap/internal/lifecycle"
	"github.com/zapenv/zap/internal/registry"
	"github.com/zapenv/zap/internal/tui"
	"github.com/zapenv/zap/internal/venv"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every command handler receives an App and
	// delegates to the lifecycle.Manager built by App.session.
	App struct {
		deps    Dependencies
		stdin   io.Reader
		stdout  io.Writer
		stderr  io.Writer
		getenv  func(string) string
		flags   rootFlags
		verbose bool
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults, most of them only once
	// the configuration is known.
	Dependencies struct {
		Config       config.Provider
		Interpreters lifecycle.InterpreterSource
		Creator      lifecycle.Creator
		Prompter     lifecycle.Prompter
		Spawner      lifecycle.Spawner
		Preferences  lifecycle.Preferences
		// Attended overrides terminal detection when set.
		Attended *bool
		// Getenv overrides os.Getenv for ENV_ROOT and VIRTUAL_ENV.
		Getenv func(string) string
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// rootFlags holds the persistent flag values.
	rootFlags struct {
		verbose    bool
		configPath string
	}

	// session is the per-invocation state derived from configuration.
	session struct {
		cfg     *config.Config
		cfgPath string
		manager *lifecycle.Manager
	}
)

// NewApp creates an App with defaults for omitted I/O dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	return &App{
		deps:   deps,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		getenv: deps.Getenv,
	}
}

// loadConfig reads the configuration honoring --config and applies the
// logging level it implies.
func (a *App) loadConfig(ctx context.Context) (*config.Config, string, error) {
	loaded, err := a.deps.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.flags.configPath})
	if err != nil {
		return nil, "", newServiceError(err, issue.ConfigLoadFailedId, "")
	}
	a.verbose = a.flags.verbose || loaded.Config.UI.Verbose
	a.configureLogging()
	return loaded.Config, loaded.Source, nil
}

// session loads configuration, resolves the registry root and builds the
// Manager. The root directory is created if missing.
func (a *App) session(ctx context.Context) (*session, error) {
	cfg, path, err := a.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	root, err := config.ResolveEnvRoot(cfg, a.getenv)
	if err != nil {
		return nil, newServiceError(err, issue.RegistryRootUnavailableId, "")
	}
	store := registry.NewStore(root)
	if err := store.EnsureRoot(); err != nil {
		return nil, newServiceError(
			issue.NewErrorContext().
				WithOperation("prepare registry root").
				WithResource(root).
				WithSuggestion("Set ENV_ROOT to a writable directory").
				Wrap(err).
				BuildError(),
			issue.RegistryRootUnavailableId, "")
	}
	slog.Debug("registry root resolved", "root", root, "config", path)

	prefs := a.deps.Preferences
	if prefs == nil {
		prefsPath, err := config.DefaultPreferencesPath()
		if err != nil {
			return nil, err
		}
		prefs = config.NewPreferences(prefsPath)
	}

	flavor := activation.FlavorFor(runtime.GOOS)
	manager := lifecycle.New(lifecycle.Options{
		Store:        store,
		Interpreters: a.interpreters(cfg),
		Creator:      a.creator(),
		Prompter:     a.prompter(cfg),
		Spawner:      a.spawner(cfg, flavor),
		Preferences:  prefs,
		Flavor:       flavor,
		Attended:     a.attended(),
	})
	return &session{cfg: cfg, cfgPath: path, manager: manager}, nil
}

func (a *App) interpreters(cfg *config.Config) lifecycle.InterpreterSource {
	if a.deps.Interpreters != nil {
		return a.deps.Interpreters
	}
	return interpreter.NewSource(interpreter.Options{
		Launcher: cfg.Interpreters.Launcher,
		Patterns: cfg.Interpreters.PatternStrings(),
	})
}

func (a *App) creator() lifecycle.Creator {
	if a.deps.Creator != nil {
		return a.deps.Creator
	}
	return venv.NewCreator(nil)
}

func (a *App) prompter(cfg *config.Config) lifecycle.Prompter {
	if a.deps.Prompter != nil {
		return a.deps.Prompter
	}
	tcfg := tui.DefaultConfig(a.getenv)
	tcfg.Theme = promptTheme(cfg.UI.ColorScheme)
	tcfg.Input = a.stdin
	tcfg.Output = a.stdout
	if cfg.UI.Prompt == config.PromptForm {
		return tui.NewFormPrompter(tcfg)
	}
	return tui.NewLinePrompter(tcfg)
}

func (a *App) spawner(cfg *config.Config, flavor activation.Flavor) lifecycle.Spawner {
	if a.deps.Spawner != nil {
		return a.deps.Spawner
	}
	shell := cfg.Activation.PosixShell
	if flavor == activation.PowerShell {
		shell = cfg.Activation.WindowsShell
	}
	return activation.NewSpawner(flavor, shell)
}

func (a *App) attended() bool {
	if a.deps.Attended != nil {
		return *a.deps.Attended
	}
	return tui.IsAttended()
}

// configureLogging installs a charmbracelet/log handler behind slog.
func (a *App) configureLogging() {
	level := log.WarnLevel
	if a.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(a.stderr, log.Options{
		Prefix: "zap",
		Level:  level,
	})
	slog.SetDefault(slog.New(logger))
}

// issueStyle picks the glamour style for issue help text.
func (a *App) issueStyle() string {
	if f, ok := a.stderr.(*os.File); !ok || !tui.IsTerminal(f) {
		return styles.NoTTYStyle
	}
	return styles.DarkStyle
}

func promptTheme(scheme config.ColorScheme) tui.Theme {
	switch scheme {
	case config.ColorSchemeDark:
		return tui.ThemeDracula
	case config.ColorSchemeLight:
		return tui.ThemeBase16
	default:
		return tui.ThemeCharm
	}
}
