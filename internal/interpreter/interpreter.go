// SPDX-License-Identifier: MPL-2.0

package interpreter

import (
	"context"

	"github.com/zapenv/zap/internal/registry"
	"github.com/zapenv/zap/pkg/platform"
	"github.com/zapenv/zap/pkg/types"
)

type (
	// Interpreter is one discovered installation.
	Interpreter struct {
		Version registry.VersionTag
		Path    string
	}

	// Set maps version tags to interpreters, preserving discovery order.
	// The first interpreter added for a tag wins.
	Set struct {
		items []Interpreter
		index map[registry.VersionTag]int
	}

	// Source produces a fresh snapshot of installed interpreters.
	Source interface {
		Discover(ctx context.Context) (*Set, error)
	}

	// Runner runs a host command and returns its exit code and combined output.
	// The error is non-nil only when the command could not be started.
	Runner func(ctx context.Context, name string, args ...string) (types.ExitCode, string, error)
)

// NewSet creates a Set from interpreters, keeping the first of any duplicate tag.
func NewSet(items ...Interpreter) *Set {
	s := &Set{index: make(map[registry.VersionTag]int, len(items))}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts it unless its tag is already present. It reports whether it was added.
func (s *Set) Add(it Interpreter) bool {
	if s.index == nil {
		s.index = make(map[registry.VersionTag]int)
	}
	if _, ok := s.index[it.Version]; ok {
		return false
	}
	s.index[it.Version] = len(s.items)
	s.items = append(s.items, it)
	return true
}

// Lookup returns the interpreter registered for tag.
func (s *Set) Lookup(tag registry.VersionTag) (Interpreter, bool) {
	if s == nil {
		return Interpreter{}, false
	}
	i, ok := s.index[tag]
	if !ok {
		return Interpreter{}, false
	}
	return s.items[i], true
}

// All returns the interpreters in discovery order.
func (s *Set) All() []Interpreter {
	if s == nil {
		return nil
	}
	out := make([]Interpreter, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of interpreters.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// defaultRunner routes through the sandbox-aware host runner.
func defaultRunner(r Runner) Runner {
	if r != nil {
		return r
	}
	return platform.RunHost
}
