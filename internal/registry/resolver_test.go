// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"slices"
	"testing"

	"github.com/zapenv/zap/internal/testutil"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tree := testutil.NewRegistryTree(t)
	tree.AddEnv("3.9", "proj")
	tree.AddEnv("3.10", "proj")
	tree.AddEnv("3.11", "proj")
	tree.AddEnv("3.11", "solo")
	tree.AddBrokenEnv("3.12", "solo")
	resolver := NewResolver(NewStore(tree.Root))

	tests := []struct {
		name     string
		env      EnvName
		version  VersionTag
		wantKind OutcomeKind
		wantTags []VersionTag
	}{
		// Matches follow directory listing order, where 3.9 sorts after 3.11.
		{"collision", "proj", "", MultipleMatches, []VersionTag{"3.10", "3.11", "3.9"}},
		{"collision pinned", "proj", "3.10", SingleMatch, []VersionTag{"3.10"}},
		{"single ignores broken", "solo", "", SingleMatch, []VersionTag{"3.11"}},
		{"pinned to broken", "solo", "3.12", NotFound, nil},
		{"pinned elsewhere is not searched", "solo", "3.10", NotFound, nil},
		{"absent", "nope", "", NotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := resolver.Resolve(tt.env, tt.version)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if out.Kind != tt.wantKind {
				t.Fatalf("Resolve() kind = %s, want %s", out.Kind, tt.wantKind)
			}
			var tags []VersionTag
			for _, m := range out.Matches {
				tags = append(tags, m.Version)
			}
			if !slices.Equal(tags, tt.wantTags) {
				t.Errorf("Resolve() tags = %v, want %v", tags, tt.wantTags)
			}
		})
	}
}

func TestResolverNames(t *testing.T) {
	t.Parallel()

	tree := testutil.NewRegistryTree(t)
	tree.AddEnv("3.10", "proj")
	tree.AddEnv("3.11", "proj")
	tree.AddEnv("3.11", "web")
	tree.AddBrokenEnv("3.11", "half")

	names, err := NewResolver(NewStore(tree.Root)).Names()
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	slices.Sort(names)
	if want := []EnvName{"proj", "web"}; !slices.Equal(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}
