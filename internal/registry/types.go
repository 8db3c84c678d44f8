// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zapenv/zap/pkg/platform"
)

// MarkerFile is the file whose presence proves a directory is a complete environment.
const MarkerFile = "pyvenv.cfg"

// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
var ErrInvalidName = errors.New("invalid name")

type (
	// VersionTag identifies an interpreter release (e.g. "3.11", "3.10-arm64").
	// Equality is exact string match; ordering is numeric-segment aware (see CompareVersionTags).
	VersionTag string

	// EnvName is the name of an environment, unique only within a version tag.
	EnvName string

	// InvalidNameError is returned when a version tag or environment name cannot
	// be used as a single path segment under the registry root.
	InvalidNameError struct {
		// Kind is "version tag" or "environment name".
		Kind   string
		Value  string
		Reason string
	}

	// Environment is a valid environment found in the registry.
	Environment struct {
		Version VersionTag
		Name    EnvName
		// Path is the absolute environment directory ROOT/Version/Name.
		Path string
	}
)

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidName for errors.Is compatibility.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// String returns the tag as a plain string.
func (v VersionTag) String() string { return string(v) }

// Validate returns an error if the tag cannot be used as a directory name.
// Tags are opaque, so no version grammar is enforced.
func (v VersionTag) Validate() error {
	if reason := segmentProblem(string(v)); reason != "" {
		return &InvalidNameError{Kind: "version tag", Value: string(v), Reason: reason}
	}
	return nil
}

// String returns the name as a plain string.
func (n EnvName) String() string { return string(n) }

// Validate returns an error if the name is not a filesystem-safe directory name.
func (n EnvName) Validate() error {
	reason := segmentProblem(string(n))
	if reason == "" && platform.IsWindowsReservedName(string(n)) {
		reason = "reserved device name on Windows"
	}
	if reason != "" {
		return &InvalidNameError{Kind: "environment name", Value: string(n), Reason: reason}
	}
	return nil
}

// segmentProblem describes why s is not a safe single path segment, or returns "".
func segmentProblem(s string) string {
	switch {
	case strings.TrimSpace(s) == "":
		return "must not be empty"
	case s == "." || s == "..":
		return "must not be a relative path element"
	case strings.ContainsAny(s, `/\`):
		return "must not contain path separators"
	case strings.ContainsRune(s, 0):
		return "must not contain NUL bytes"
	}
	return ""
}
