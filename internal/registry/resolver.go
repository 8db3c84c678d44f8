// SPDX-License-Identifier: MPL-2.0

package registry

import "log/slog"

const (
	// NotFound means no valid environment matched.
	NotFound OutcomeKind = iota
	// SingleMatch means exactly one valid environment matched.
	SingleMatch
	// MultipleMatches means the name exists under two or more version tags.
	MultipleMatches
)

type (
	// OutcomeKind classifies a resolution result.
	OutcomeKind int

	// Outcome is the result of resolving an environment name.
	Outcome struct {
		Kind OutcomeKind
		// Matches holds every match in version-tag iteration order.
		// It is empty for NotFound and has one element for SingleMatch.
		Matches []Environment
	}

	// Resolver finds environments by name, optionally pinned to a version tag.
	Resolver struct {
		store *Store
	}
)

// String returns a human-readable outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case SingleMatch:
		return "single match"
	case MultipleMatches:
		return "multiple matches"
	default:
		return "unknown"
	}
}

// Single returns the matched environment when the outcome is SingleMatch.
func (o Outcome) Single() (Environment, bool) {
	if o.Kind != SingleMatch {
		return Environment{}, false
	}
	return o.Matches[0], true
}

// NewResolver creates a Resolver over store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve looks up name. With a non-empty version only ROOT/version/name is
// considered; other version tags are never searched. With an empty version
// every version directory is scanned and all valid matches are returned in
// iteration order, unsorted.
func (r *Resolver) Resolve(name EnvName, version VersionTag) (Outcome, error) {
	if version != "" {
		env, ok := r.store.Lookup(version, name)
		if !ok {
			return Outcome{Kind: NotFound}, nil
		}
		return Outcome{Kind: SingleMatch, Matches: []Environment{env}}, nil
	}

	tags, err := r.store.VersionTags()
	if err != nil {
		return Outcome{}, err
	}

	var matches []Environment
	for _, tag := range tags {
		if env, ok := r.store.Lookup(tag, name); ok {
			matches = append(matches, env)
		}
	}

	slog.Debug("resolved environment name", "name", name, "matches", len(matches))

	switch len(matches) {
	case 0:
		return Outcome{Kind: NotFound}, nil
	case 1:
		return Outcome{Kind: SingleMatch, Matches: matches}, nil
	default:
		return Outcome{Kind: MultipleMatches, Matches: matches}, nil
	}
}

// Names returns the distinct names of every valid environment in the registry,
// in version-tag iteration order. It feeds suggestions and shell completion.
func (r *Resolver) Names() ([]EnvName, error) {
	tags, err := r.store.VersionTags()
	if err != nil {
		return nil, err
	}

	seen := make(map[EnvName]bool)
	var names []EnvName
	for _, tag := range tags {
		envs, err := r.store.Environments(tag)
		if err != nil {
			return nil, err
		}
		for _, env := range envs {
			if !seen[env.Name] {
				seen[env.Name] = true
				names = append(names, env.Name)
			}
		}
	}
	return names, nil
}
