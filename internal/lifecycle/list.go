// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"context"
	"fmt"

	"github.com/zapenv/zap/internal/interpreter"
	"github.com/zapenv/zap/internal/registry"
)

type (
	// VersionGroup holds the valid environments under one version tag.
	VersionGroup struct {
		Version      registry.VersionTag
		Environments []registry.Environment
	}

	// Listing is a snapshot of interpreters and environments.
	Listing struct {
		Root string
		// Interpreters are passed through in discovery order.
		Interpreters []interpreter.Interpreter
		// Groups are in version order; versions without environments are omitted.
		Groups []VersionGroup
	}
)

// List returns every discovered interpreter and every valid environment.
func (m *Manager) List(ctx context.Context) (Listing, error) {
	pythons, err := m.interpreters.Discover(ctx)
	if err != nil {
		return Listing{}, fmt.Errorf("failed to discover interpreters: %w", err)
	}

	tags, err := m.store.VersionTags()
	if err != nil {
		return Listing{}, err
	}
	registry.SortVersionTags(tags)

	listing := Listing{Root: m.store.Root(), Interpreters: pythons.All()}
	for _, tag := range tags {
		envs, err := m.store.Environments(tag)
		if err != nil {
			return Listing{}, err
		}
		if len(envs) == 0 {
			continue
		}
		listing.Groups = append(listing.Groups, VersionGroup{Version: tag, Environments: envs})
	}
	return listing, nil
}
