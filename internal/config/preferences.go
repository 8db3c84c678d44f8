// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zapenv/zap/internal/registry"
)

const (
	// PreferencesFileName is the per-user preferences file in the home directory.
	PreferencesFileName = ".zaprc"
	// DefaultVersionKey is the only key read from the preferences file.
	DefaultVersionKey = "default_version"
)

// Preferences reads and writes the single-line default version file.
type Preferences struct {
	path string
}

// NewPreferences creates Preferences backed by path.
func NewPreferences(path string) *Preferences {
	return &Preferences{path: path}
}

// DefaultPreferencesPath returns ~/.zaprc.
func DefaultPreferencesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, PreferencesFileName), nil
}

// Path returns the preferences file location.
func (p *Preferences) Path() string { return p.path }

// DefaultVersion returns the stored default version, or "" when the file or
// key is missing.
func (p *Preferences) DefaultVersion() (registry.VersionTag, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", p.path, err)
	}

	v := viper.New()
	v.SetConfigType("env")
	if err := v.ReadConfig(bytes.NewReader(defaultVersionLine(data))); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", p.path, err)
	}
	return registry.VersionTag(strings.TrimSpace(v.GetString(DefaultVersionKey))), nil
}

// defaultVersionLine keeps the first default_version line and drops
// everything else, so notes or foreign keys in the file never break parsing.
func defaultVersionLine(data []byte) []byte {
	prefix := []byte(DefaultVersionKey + "=")
	for line := range bytes.Lines(data) {
		if bytes.HasPrefix(line, prefix) {
			return line
		}
	}
	return nil
}

// SetDefaultVersion overwrites the file with a single default_version line.
func (p *Preferences) SetDefaultVersion(version registry.VersionTag) error {
	if strings.ContainsAny(string(version), "\r\n=#") {
		return &registry.InvalidNameError{Kind: "version tag", Value: string(version), Reason: "must fit on one key=value line"}
	}
	line := DefaultVersionKey + "=" + string(version) + "\n"
	if err := os.WriteFile(p.path, []byte(line), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.path, err)
	}
	return nil
}
