// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zapenv/zap/internal/registry"
	"github.com/zapenv/zap/pkg/types"
)

var (
	// ErrNoVersionSpecified is returned when create has no version and no default is set.
	ErrNoVersionSpecified = errors.New("no version specified")
	// ErrInterpreterNotFound is returned when the requested version is not installed.
	ErrInterpreterNotFound = errors.New("interpreter not found")
	// ErrAlreadyExists is returned when create targets an occupied directory.
	ErrAlreadyExists = errors.New("environment already exists")
	// ErrCreationFailed is returned when the interpreter failed to build the environment.
	ErrCreationFailed = errors.New("environment creation failed")
	// ErrEnvironmentNotFound is returned when a lookup matches nothing.
	ErrEnvironmentNotFound = errors.New("environment not found")
	// ErrDeletionFailed is returned when an environment could not be fully removed.
	ErrDeletionFailed = errors.New("environment deletion failed")
)

type (
	// NoVersionSpecifiedError is returned by Create when neither a version nor
	// a default version is available.
	NoVersionSpecifiedError struct {
		Name registry.EnvName
	}

	// InterpreterNotFoundError is returned by Create when the version tag is
	// absent from the interpreter snapshot.
	InterpreterNotFoundError struct {
		Version   registry.VersionTag
		Available []registry.VersionTag
	}

	// AlreadyExistsError is returned by Create when anything exists at the target path.
	AlreadyExistsError struct {
		Version registry.VersionTag
		Name    registry.EnvName
		Path    string
	}

	// CreationFailedError carries the interpreter's output after the partial
	// directory has been removed.
	CreationFailedError struct {
		Version  registry.VersionTag
		Name     registry.EnvName
		ExitCode types.ExitCode
		Output   string
		Err      error
	}

	// EnvironmentNotFoundError is returned when a name resolves to no environment.
	EnvironmentNotFoundError struct {
		Name registry.EnvName
		// Version is empty for name-only lookups.
		Version     registry.VersionTag
		Suggestions []registry.EnvName
	}

	// DeletionFailedError is returned when removal did not complete.
	DeletionFailedError struct {
		Version registry.VersionTag
		Name    registry.EnvName
		Path    string
		Err     error
	}
)

func (e *NoVersionSpecifiedError) Error() string {
	return fmt.Sprintf("no Python version specified for %q and no default set", e.Name)
}

func (e *NoVersionSpecifiedError) Unwrap() error { return ErrNoVersionSpecified }

func (e *InterpreterNotFoundError) Error() string {
	return fmt.Sprintf("Python %s not found", e.Version)
}

func (e *InterpreterNotFoundError) Unwrap() error { return ErrInterpreterNotFound }

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("environment %q already exists for Python %s", e.Name, e.Version)
}

func (e *AlreadyExistsError) Unwrap() error { return ErrAlreadyExists }

func (e *CreationFailedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to create environment %q for Python %s", e.Name, e.Version)
	switch {
	case e.Err != nil:
		fmt.Fprintf(&b, ": %v", e.Err)
	case e.Output != "":
		fmt.Fprintf(&b, " (exit code %s):\n%s", e.ExitCode, e.Output)
	default:
		fmt.Fprintf(&b, " (exit code %s)", e.ExitCode)
	}
	return b.String()
}

// Unwrap returns both the sentinel and the underlying start error, if any.
func (e *CreationFailedError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCreationFailed}
	}
	return []error{ErrCreationFailed, e.Err}
}

func (e *EnvironmentNotFoundError) Error() string {
	if e.Version != "" {
		return fmt.Sprintf("no environment named %q with Python %s", e.Name, e.Version)
	}
	return fmt.Sprintf("no environment named %q", e.Name)
}

func (e *EnvironmentNotFoundError) Unwrap() error { return ErrEnvironmentNotFound }

func (e *DeletionFailedError) Error() string {
	return fmt.Sprintf("failed to delete environment %q (Python %s) at %s: %v", e.Name, e.Version, e.Path, e.Err)
}

func (e *DeletionFailedError) Unwrap() []error { return []error{ErrDeletionFailed, e.Err} }
