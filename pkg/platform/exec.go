// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/zapenv/zap/pkg/types"
)

// RunHost runs name on the host and captures stdout and stderr together.
// A process that starts and exits non-zero is not an error: its code is
// returned with a nil error. The error is reserved for commands that could
// not be started at all.
func RunHost(ctx context.Context, name string, args ...string) (types.ExitCode, string, error) {
	cmd := HostCommand(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	output := strings.TrimSpace(out.String())
	if err == nil {
		return types.ExitSuccess, output, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return types.FromProcess(exitErr.ExitCode()), output, nil
	}
	return types.ExitFailure, output, fmt.Errorf("failed to run %s: %w", name, err)
}
