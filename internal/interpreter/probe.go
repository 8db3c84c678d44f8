// SPDX-License-Identifier: MPL-2.0

package interpreter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zapenv/zap/internal/registry"
)

// versionScript prints "major.minor" for the running interpreter.
const versionScript = `import sys; print("%d.%d" % sys.version_info[:2])`

// ErrProbeFailed is the sentinel error wrapped by ProbeError.
var ErrProbeFailed = errors.New("interpreter probe failed")

// ProbeError is returned when an executable cannot report its version.
type ProbeError struct {
	Path   string
	Output string
	Err    error
}

// Error implements the error interface.
func (e *ProbeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to probe %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to probe %s: %s", e.Path, e.Output)
}

// Unwrap returns ErrProbeFailed for errors.Is compatibility.
func (e *ProbeError) Unwrap() error { return ErrProbeFailed }

// Probe asks the interpreter at exe for its major.minor version.
func Probe(ctx context.Context, run Runner, exe string) (registry.VersionTag, error) {
	code, out, err := defaultRunner(run)(ctx, exe, "-c", versionScript)
	if err != nil {
		return "", &ProbeError{Path: exe, Err: err}
	}
	if !code.IsSuccess() {
		return "", &ProbeError{Path: exe, Output: out}
	}

	tag := strings.TrimSpace(out)
	if !isMajorMinor(tag) {
		return "", &ProbeError{Path: exe, Output: out}
	}
	return registry.VersionTag(tag), nil
}

func isMajorMinor(s string) bool {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return false
	}
	_, errMajor := strconv.Atoi(major)
	_, errMinor := strconv.Atoi(minor)
	return errMajor == nil && errMinor == nil
}
