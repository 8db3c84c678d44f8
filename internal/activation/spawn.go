// SPDX-License-Identifier: MPL-2.0

package activation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/zapenv/zap/pkg/platform"
)

// Default shells.
const (
	DefaultPOSIXShell   = "bash"
	DefaultWindowsShell = "powershell"
)

// ErrShellFailed is the sentinel error wrapped by ShellError.
var ErrShellFailed = errors.New("interactive shell failed")

type (
	// ShellError is returned when the interactive shell cannot be started.
	ShellError struct {
		Shell string
		Err   error
	}

	// Spawner starts an interactive shell that runs a command first.
	Spawner struct {
		flavor Flavor
		shell  string
		stdin  *os.File
		stdout *os.File
		stderr *os.File
	}
)

// Error implements the error interface.
func (e *ShellError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Shell, e.Err)
}

// Unwrap returns ErrShellFailed for errors.Is compatibility.
func (e *ShellError) Unwrap() error { return ErrShellFailed }

// NewSpawner creates a Spawner attached to the process's standard streams.
// An empty shell selects the flavor's default.
func NewSpawner(flavor Flavor, shell string) *Spawner {
	if shell == "" {
		shell = DefaultPOSIXShell
		if flavor == PowerShell {
			shell = DefaultWindowsShell
		}
	}
	return &Spawner{flavor: flavor, shell: shell, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// Shell returns the shell executable.
func (s *Spawner) Shell() string { return s.shell }

// Spawn runs command in a new interactive shell and waits for the user to
// leave it. The shell's own exit status is not an error. Cancelling ctx does
// not kill the shell: an interrupt typed inside it belongs to the shell.
func (s *Spawner) Spawn(ctx context.Context, command string) error {
	argv := ShellArgv(s.flavor, s.shell, command)
	slog.Debug("spawning interactive shell", "argv", argv)

	cmd := platform.HostCommand(context.WithoutCancel(ctx), argv[0], argv[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = s.stdin, s.stdout, s.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Debug("interactive shell exited", "exit_code", exitErr.ExitCode())
			return nil
		}
		return &ShellError{Shell: s.shell, Err: err}
	}
	return nil
}

// ShellArgv returns the argument vector that runs command and then stays interactive.
func ShellArgv(flavor Flavor, shell, command string) []string {
	if flavor == PowerShell {
		return []string{shell, "-NoExit", "-Command", command}
	}
	return []string{shell, "-c", command + "; exec " + shell}
}

// FlavorFor returns the shell flavor for the current platform.
func FlavorFor(goos string) Flavor {
	if goos == platform.Windows {
		return PowerShell
	}
	return POSIX
}
