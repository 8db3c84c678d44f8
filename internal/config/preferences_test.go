// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/zapenv/zap/internal/registry"
	"github.com/zapenv/zap/internal/testutil"
)

func TestPreferences(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), PreferencesFileName)
	prefs := NewPreferences(path)

	got, err := prefs.DefaultVersion()
	if err != nil || got != "" {
		t.Fatalf("DefaultVersion() on missing file = %q, %v; want empty, nil", got, err)
	}

	if err := prefs.SetDefaultVersion("3.11"); err != nil {
		t.Fatalf("SetDefaultVersion() error = %v", err)
	}
	if err := prefs.SetDefaultVersion("3.10-arm64"); err != nil {
		t.Fatalf("SetDefaultVersion() error = %v", err)
	}

	if content := testutil.MustReadFile(t, path); content != "default_version=3.10-arm64\n" {
		t.Errorf("file content = %q, want a single overwritten line", content)
	}
	got, err = prefs.DefaultVersion()
	if err != nil || got != "3.10-arm64" {
		t.Errorf("DefaultVersion() = %q, %v; want 3.10-arm64", got, err)
	}
}

func TestPreferences_IgnoresOtherKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), PreferencesFileName)
	testutil.MustWriteFile(t, path, "theme=dark\n")

	got, err := NewPreferences(path).DefaultVersion()
	if err != nil || got != "" {
		t.Errorf("DefaultVersion() = %q, %v; want empty, nil", got, err)
	}
}

func TestPreferences_RejectsMultiline(t *testing.T) {
	t.Parallel()

	prefs := NewPreferences(filepath.Join(t.TempDir(), PreferencesFileName))
	if err := prefs.SetDefaultVersion("3.11\nevil=1"); !errors.Is(err, registry.ErrInvalidName) {
		t.Errorf("SetDefaultVersion() error = %v, want ErrInvalidName", err)
	}
}

func TestPreferences_SkipsUnrecognizedLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    registry.VersionTag
	}{
		{"stray note after key", "default_version=3.11\nsome note\n", "3.11"},
		{"stray note before key", "remember to upgrade\ndefault_version=3.12\n", "3.12"},
		{"first key wins", "default_version=3.10\ndefault_version=3.13\n", "3.10"},
		{"only notes", "just a note\n# comment\n", ""},
		{"no trailing newline", "default_version=3.11", "3.11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), PreferencesFileName)
			testutil.MustWriteFile(t, path, tt.content)

			got, err := NewPreferences(path).DefaultVersion()
			if err != nil || got != tt.want {
				t.Errorf("DefaultVersion() = %q, %v; want %q, nil", got, err, tt.want)
			}
		})
	}
}
