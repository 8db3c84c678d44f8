// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/zapenv/zap/internal/activation"
	"github.com/zapenv/zap/internal/issue"
	"github.com/zapenv/zap/internal/lifecycle"
	"github.com/zapenv/zap/internal/registry"
)

// ServiceError is an error that carries optional rendering information for
// the CLI layer. Always create via newServiceError.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
	// StyledMessage is the optional pre-rendered styled error text.
	StyledMessage string
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id, styledMessage string) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{
		Err:           err,
		IssueID:       issueID,
		StyledMessage: styledMessage,
	}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// renderServiceError prints any styled message, then the issue help section
// rendered with glamour style.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, style string) {
	if svcErr == nil {
		return
	}

	if svcErr.StyledMessage != "" {
		fmt.Fprint(stderr, svcErr.StyledMessage)
	}

	if svcErr.IssueID == 0 {
		return
	}

	if catalogEntry := issue.Get(svcErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render(style)
		if renderErr != nil {
			slog.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", renderErr)
		} else {
			fmt.Fprint(stderr, rendered)
		}
	}
}

// classifyError maps an operation failure onto the issue catalog and attaches
// actionable suggestions. Errors it does not recognize pass through unchanged.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return err
	}

	ctx := issue.NewErrorContext().WithOperation(op).Wrap(err)
	var id issue.Id

	var (
		noVersion   *lifecycle.NoVersionSpecifiedError
		noPython    *lifecycle.InterpreterNotFoundError
		exists      *lifecycle.AlreadyExistsError
		createErr   *lifecycle.CreationFailedError
		notFound    *lifecycle.EnvironmentNotFoundError
		deleteErr   *lifecycle.DeletionFailedError
		invalidName *registry.InvalidNameError
	)
	switch {
	case errors.As(err, &invalidName):
		id = issue.InvalidNameId
		ctx.WithSuggestion("Use a plain directory name without path separators")
	case errors.As(err, &noVersion):
		id = issue.NoVersionSpecifiedId
		ctx.WithSuggestions(
			fmt.Sprintf("Pass a version: zap create 3.11 %s", noVersion.Name),
			"Or set a default: zap set-default 3.11",
		)
	case errors.As(err, &noPython):
		id = issue.InterpreterNotFoundId
		if len(noPython.Available) > 0 {
			ctx.WithSuggestion("Available versions: " + joinTags(noPython.Available))
		}
		ctx.WithSuggestion("Run 'zap list' to see installed interpreters")
	case errors.As(err, &exists):
		id = issue.EnvironmentExistsId
		ctx.WithResource(exists.Path).
			WithSuggestion(fmt.Sprintf("Delete it first: zap delete %s --version %s", exists.Name, exists.Version))
	case errors.As(err, &createErr):
		id = issue.CreationFailedId
	case errors.As(err, &notFound):
		id = issue.EnvironmentNotFoundId
		for _, s := range notFound.Suggestions {
			ctx.WithSuggestion(fmt.Sprintf("Did you mean %q?", s))
		}
		ctx.WithSuggestion("Run 'zap list' to see existing environments")
	case errors.As(err, &deleteErr):
		id = issue.DeletionFailedId
		ctx.WithResource(deleteErr.Path)
	case errors.Is(err, activation.ErrShellFailed):
		id = issue.ShellSpawnFailedId
	default:
		return err
	}
	return newServiceError(ctx.BuildError(), id, "")
}

func joinTags(tags []registry.VersionTag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// include their suggestions; verbose mode adds the error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
