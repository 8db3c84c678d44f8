// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"context"
	"os"
	"os/exec"
	"sync"
)

// Sandbox type constants.
const (
	// SandboxNone indicates no sandbox environment detected.
	SandboxNone SandboxType = ""
	// SandboxFlatpak indicates a Flatpak sandbox environment.
	SandboxFlatpak SandboxType = "flatpak"
)

// detectOnce caches the sandbox detection result for the lifetime of the process.
//
// INVARIANT: detectSandboxFrom MUST NOT panic; sync.OnceValue re-raises a
// panic on every subsequent call.
var detectOnce = sync.OnceValue(func() SandboxType {
	return detectSandboxFrom(statFile)
})

// SandboxType identifies the type of application sandbox, if any.
type SandboxType string

// DetectSandbox returns the type of application sandbox the current process is running in.
// The result is cached after the first call.
func DetectSandbox() SandboxType {
	return detectOnce()
}

// HostCommand builds an exec.Cmd that runs name on the host system.
// Inside a Flatpak the interpreters and shells zap drives live outside the
// sandbox, so the command is routed through flatpak-spawn --host.
func HostCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	argv := HostArgv(DetectSandbox(), name, args...)
	return exec.CommandContext(ctx, argv[0], argv[1:]...)
}

// HostArgv returns the full argument vector used to run name on the host for
// the given sandbox type. It is a pure function so tests can cover every
// sandbox type without touching process-wide detection state.
func HostArgv(st SandboxType, name string, args ...string) []string {
	argv := make([]string, 0, len(args)+3)
	if st == SandboxFlatpak {
		argv = append(argv, "flatpak-spawn", "--host")
	}
	argv = append(argv, name)
	return append(argv, args...)
}

// detectSandboxFrom performs sandbox detection using the provided lookup function.
// The /.flatpak-info file is always present inside Flatpak sandboxes.
func detectSandboxFrom(statFile func(string) error) SandboxType {
	if err := statFile("/.flatpak-info"); err == nil {
		return SandboxFlatpak
	}
	return SandboxNone
}

// statFile is the production adapter for detectSandboxFrom.
func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}
