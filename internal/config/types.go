// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// PromptPlain asks with numbered line prompts on stdin.
	PromptPlain PromptStyle = "plain"
	// PromptForm asks with huh forms.
	PromptForm PromptStyle = "form"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidPromptStyle is returned when a PromptStyle value is not recognized.
	ErrInvalidPromptStyle = errors.New("invalid prompt style")
	// ErrInvalidInterpreterPattern is the sentinel error wrapped by InvalidInterpreterPatternError.
	ErrInvalidInterpreterPattern = errors.New("invalid interpreter pattern")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// PromptStyle selects how menus and confirmations are presented.
	PromptStyle string

	// InvalidPromptStyleError is returned when a PromptStyle value is not recognized.
	InvalidPromptStyleError struct {
		Value PromptStyle
	}

	// InterpreterPattern is a doublestar glob matched against executable names in PATH directories.
	InterpreterPattern string

	// InvalidInterpreterPatternError is returned for unparsable patterns.
	InvalidInterpreterPatternError struct {
		Value InterpreterPattern
	}

	// InvalidConfigError collects field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the zap configuration.
	Config struct {
		// EnvRoot overrides the registry root; ENV_ROOT still takes precedence.
		EnvRoot string `json:"env_root" mapstructure:"env_root"`
		// Interpreters configures interpreter discovery.
		Interpreters InterpretersConfig `json:"interpreters" mapstructure:"interpreters"`
		// Activation configures spawned shells.
		Activation ActivationConfig `json:"activation" mapstructure:"activation"`
		// UI contains user interface settings.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// InterpretersConfig configures interpreter discovery.
	InterpretersConfig struct {
		// Launcher is the Windows Python launcher executable.
		Launcher string `json:"launcher" mapstructure:"launcher"`
		// Patterns are matched against file names in each PATH directory on POSIX systems.
		Patterns []InterpreterPattern `json:"patterns" mapstructure:"patterns"`
	}

	// ActivationConfig selects the shells started by --shell and --interactive.
	ActivationConfig struct {
		PosixShell   string `json:"posix_shell" mapstructure:"posix_shell"`
		WindowsShell string `json:"windows_shell" mapstructure:"windows_shell"`
	}

	// UIConfig contains user interface settings.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
		Prompt      PromptStyle `json:"prompt" mapstructure:"prompt"`
	}
)

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidPromptStyleError.
func (e *InvalidPromptStyleError) Error() string {
	return fmt.Sprintf("invalid prompt style %q (valid: plain, form)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidPromptStyleError) Unwrap() error { return ErrInvalidPromptStyle }

// String returns the string representation of the PromptStyle.
func (p PromptStyle) String() string { return string(p) }

// IsValid returns whether the PromptStyle is plain or form.
func (p PromptStyle) IsValid() (bool, []error) {
	switch p {
	case PromptPlain, PromptForm:
		return true, nil
	default:
		return false, []error{&InvalidPromptStyleError{Value: p}}
	}
}

// Error implements the error interface for InvalidInterpreterPatternError.
func (e *InvalidInterpreterPatternError) Error() string {
	return fmt.Sprintf("invalid interpreter pattern %q", e.Value)
}

// Unwrap returns ErrInvalidInterpreterPattern for errors.Is() compatibility.
func (e *InvalidInterpreterPatternError) Unwrap() error { return ErrInvalidInterpreterPattern }

// IsValid reports whether the pattern is a well-formed glob matching bare file names.
func (p InterpreterPattern) IsValid() (bool, []error) {
	s := string(p)
	if strings.TrimSpace(s) == "" || strings.Contains(s, "/") || !doublestar.ValidatePattern(s) {
		return false, []error{&InvalidInterpreterPatternError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// IsValid checks the fields CUE cannot: glob syntax in Interpreters.Patterns,
// plus the enumerations for configs built in code.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	for _, p := range c.Interpreters.Patterns {
		if valid, fieldErrs := p.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.Prompt.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// PatternStrings returns the interpreter patterns as plain strings.
func (c InterpretersConfig) PatternStrings() []string {
	out := make([]string, len(c.Patterns))
	for i, p := range c.Patterns {
		out[i] = string(p)
	}
	return out
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Interpreters: InterpretersConfig{
			Launcher: "py",
			Patterns: []InterpreterPattern{"python3.{[0-9],[0-9][0-9]}"},
		},
		Activation: ActivationConfig{
			PosixShell:   "bash",
			WindowsShell: "powershell",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Prompt:      PromptPlain,
		},
	}
}
