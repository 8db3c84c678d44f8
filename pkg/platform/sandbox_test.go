// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"os"
	"slices"
	"testing"
)

func TestDetectSandboxFrom(t *testing.T) {
	t.Parallel()

	present := func(string) error { return nil }
	absent := func(string) error { return os.ErrNotExist }

	if got := detectSandboxFrom(present); got != SandboxFlatpak {
		t.Errorf("detectSandboxFrom(present) = %q, want %q", got, SandboxFlatpak)
	}
	if got := detectSandboxFrom(absent); got != SandboxNone {
		t.Errorf("detectSandboxFrom(absent) = %q, want %q", got, SandboxNone)
	}

	var probed string
	detectSandboxFrom(func(p string) error {
		probed = p
		return errors.New("boom")
	})
	if probed != "/.flatpak-info" {
		t.Errorf("probed path = %q, want /.flatpak-info", probed)
	}
}

func TestHostArgv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		st   SandboxType
		want []string
	}{
		{"no sandbox", SandboxNone, []string{"python3.11", "-m", "venv", "/envs/3.11/alpha"}},
		{"flatpak", SandboxFlatpak, []string{"flatpak-spawn", "--host", "python3.11", "-m", "venv", "/envs/3.11/alpha"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := HostArgv(tt.st, "python3.11", "-m", "venv", "/envs/3.11/alpha")
			if !slices.Equal(got, tt.want) {
				t.Errorf("HostArgv() = %v, want %v", got, tt.want)
			}
		})
	}
}
