// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/zapenv/zap/internal/registry"
)

type (
	// DeleteRequest names the environment to delete.
	DeleteRequest struct {
		Name    registry.EnvName
		Version registry.VersionTag
		// Yes skips the confirmation prompt.
		Yes bool
	}

	// DeleteResult reports how a delete ended.
	DeleteResult struct {
		// Status is Done, Cancelled, Ambiguous or ConfirmationRequired.
		Status      Status
		Environment registry.Environment
		// Matches holds the candidates when Status is Ambiguous or Cancelled after a menu.
		Matches []registry.Environment
		// AutoSelected is true when a name-only lookup found exactly one environment.
		AutoSelected bool
	}
)

// Delete removes an environment directory tree after resolution and
// confirmation. Cancellation, ambiguity and missing confirmation are results,
// not errors; the environment is untouched in each case.
func (m *Manager) Delete(ctx context.Context, req DeleteRequest) (DeleteResult, error) {
	sel, err := m.selectEnvironment(ctx, req.Name, req.Version, "delete")
	if err != nil {
		return DeleteResult{}, err
	}
	res := DeleteResult{Status: sel.status, Environment: sel.env, Matches: sel.matches, AutoSelected: sel.auto}
	if sel.status != Resolved {
		return res, nil
	}

	if !req.Yes {
		if !m.attended || m.prompter == nil {
			res.Status = ConfirmationRequired
			return res, nil
		}
		ok, err := m.prompter.Confirm(ctx, fmt.Sprintf("Delete %s?", sel.env.Path))
		if err != nil {
			return DeleteResult{}, err
		}
		if !ok {
			res.Status = Cancelled
			return res, nil
		}
	}

	slog.Debug("removing environment", "path", sel.env.Path)
	if err := os.RemoveAll(sel.env.Path); err != nil {
		return DeleteResult{}, &DeletionFailedError{
			Version: sel.env.Version,
			Name:    sel.env.Name,
			Path:    sel.env.Path,
			Err:     err,
		}
	}
	res.Status = Done
	return res, nil
}
