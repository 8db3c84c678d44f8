// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahilm/fuzzy"

	"github.com/zapenv/zap/internal/registry"
)

// maxSuggestions caps "did you mean" hints on EnvironmentNotFound.
const maxSuggestions = 3

// Resolution statuses shared by Delete and Activate.
const (
	// Resolved means exactly one environment was selected.
	Resolved Status = iota
	// Cancelled means the user declined, gave an invalid choice or interrupted.
	Cancelled
	// Ambiguous means several versions matched and nobody could choose.
	Ambiguous
	// ConfirmationRequired means an unattended delete was not pre-confirmed.
	ConfirmationRequired
	// Done means the operation completed.
	Done
)

// Status describes how an operation ended without error.
type Status int

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Cancelled:
		return "cancelled"
	case Ambiguous:
		return "ambiguous"
	case ConfirmationRequired:
		return "confirmation required"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// selection is the outcome of resolving a name to one environment.
type selection struct {
	status Status
	env    registry.Environment
	// matches holds every candidate for Ambiguous outcomes.
	matches []registry.Environment
	// auto is true when a name-only lookup found a single match.
	auto bool
}

// selectEnvironment resolves name (optionally pinned to version) and, when
// several versions match, lets the attended user pick one. It never guesses.
func (m *Manager) selectEnvironment(ctx context.Context, name registry.EnvName, version registry.VersionTag, action string) (selection, error) {
	if err := name.Validate(); err != nil {
		return selection{}, err
	}
	if version != "" {
		if err := version.Validate(); err != nil {
			return selection{}, err
		}
	}

	out, err := m.resolver.Resolve(name, version)
	if err != nil {
		return selection{}, err
	}

	switch out.Kind {
	case registry.SingleMatch:
		return selection{status: Resolved, env: out.Matches[0], auto: version == ""}, nil
	case registry.MultipleMatches:
		if !m.attended || m.prompter == nil {
			return selection{status: Ambiguous, matches: out.Matches}, nil
		}
		options := make([]string, len(out.Matches))
		for i, env := range out.Matches {
			options[i] = "Python " + env.Version.String()
		}
		title := fmt.Sprintf("Multiple environments named '%s' found. Select one to %s:", name, action)
		idx, ok, err := m.prompter.Select(ctx, title, options)
		if err != nil {
			return selection{}, err
		}
		if !ok || idx < 0 || idx >= len(out.Matches) {
			slog.Debug("environment selection abandoned", "name", name)
			return selection{status: Cancelled, matches: out.Matches}, nil
		}
		return selection{status: Resolved, env: out.Matches[idx], matches: out.Matches}, nil
	default:
		return selection{}, &EnvironmentNotFoundError{
			Name:        name,
			Version:     version,
			Suggestions: m.suggest(name),
		}
	}
}

// suggest returns existing names that fuzzily match name, best first.
func (m *Manager) suggest(name registry.EnvName) []registry.EnvName {
	names, err := m.resolver.Names()
	if err != nil || len(names) == 0 {
		return nil
	}
	candidates := make([]string, len(names))
	for i, n := range names {
		candidates[i] = n.String()
	}

	var out []registry.EnvName
	for _, match := range fuzzy.Find(name.String(), candidates) {
		if match.Str == name.String() {
			continue
		}
		out = append(out, registry.EnvName(match.Str))
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
