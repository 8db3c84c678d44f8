// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

// SetHomeDir points os.UserHomeDir at dir for the rest of the test:
// USERPROFILE on Windows, HOME elsewhere.
func SetHomeDir(t *testing.T, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", dir)
		return
	}
	t.Setenv("HOME", dir)
}

// IsolateUserDirs gives the test a fresh home and config directory so
// ~/.zaprc, ~/venvs and the config file never touch the real user's files.
// It returns the home directory.
func IsolateUserDirs(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	MustMkdirAll(t, home)
	SetHomeDir(t, home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("APPDATA", filepath.Join(base, "appdata"))
	return home
}
