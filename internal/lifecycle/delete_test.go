// SPDX-License-Identifier: MPL-2.0

package lifecycle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/zapenv/zap/internal/registry"
)

func TestDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		attended    bool
		req         DeleteRequest
		selectIndex int
		selectOK    bool
		confirm     bool
		wantStatus  Status
		wantGone    []string
		wantKept    []string
	}{
		{
			name:       "single match confirmed",
			attended:   true,
			req:        DeleteRequest{Name: "solo"},
			confirm:    true,
			wantStatus: Done,
			wantGone:   []string{"3.11/solo"},
		},
		{
			name:       "single match declined",
			attended:   true,
			req:        DeleteRequest{Name: "solo"},
			confirm:    false,
			wantStatus: Cancelled,
			wantKept:   []string{"3.11/solo/" + registry.MarkerFile},
		},
		{
			name:       "skip confirmation",
			req:        DeleteRequest{Name: "solo", Yes: true},
			wantStatus: Done,
			wantGone:   []string{"3.11/solo"},
		},
		{
			name:       "unattended without yes",
			req:        DeleteRequest{Name: "solo"},
			wantStatus: ConfirmationRequired,
			wantKept:   []string{"3.11/solo"},
		},
		{
			name:        "menu selection",
			attended:    true,
			req:         DeleteRequest{Name: "proj", Yes: true},
			selectIndex: 1,
			selectOK:    true,
			wantStatus:  Done,
			wantKept:    []string{"3.10/proj"},
			wantGone:    []string{"3.11/proj"},
		},
		{
			name:       "menu abandoned",
			attended:   true,
			req:        DeleteRequest{Name: "proj", Yes: true},
			selectOK:   false,
			wantStatus: Cancelled,
			wantKept:   []string{"3.10/proj", "3.11/proj"},
		},
		{
			name:        "menu out of range",
			attended:    true,
			req:         DeleteRequest{Name: "proj", Yes: true},
			selectIndex: 7,
			selectOK:    true,
			wantStatus:  Cancelled,
			wantKept:    []string{"3.10/proj", "3.11/proj"},
		},
		{
			name:       "unattended ambiguity",
			req:        DeleteRequest{Name: "proj", Yes: true},
			wantStatus: Ambiguous,
			wantKept:   []string{"3.10/proj", "3.11/proj"},
		},
		{
			name:       "explicit version",
			req:        DeleteRequest{Name: "proj", Version: "3.10", Yes: true},
			wantStatus: Done,
			wantGone:   []string{"3.10/proj"},
			wantKept:   []string{"3.11/proj"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t, tt.attended)
			h.tree.AddEnv("3.10", "proj")
			h.tree.AddEnv("3.11", "proj")
			h.tree.AddEnv("3.11", "solo")
			h.prompter.selectIndex = tt.selectIndex
			h.prompter.selectOK = tt.selectOK
			h.prompter.confirm = tt.confirm

			res, err := h.manager.Delete(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if res.Status != tt.wantStatus {
				t.Errorf("Delete() status = %s, want %s", res.Status, tt.wantStatus)
			}
			for _, rel := range tt.wantGone {
				if h.tree.Exists(rel) {
					t.Errorf("%s still exists", rel)
				}
			}
			for _, rel := range tt.wantKept {
				if !h.tree.Exists(rel) {
					t.Errorf("%s was removed", rel)
				}
			}
			if !tt.attended && (len(h.prompter.selectTitles) > 0 || len(h.prompter.questions) > 0) {
				t.Error("unattended delete prompted the user")
			}
		})
	}
}

func TestDelete_MenuOptionsInDiscoveryOrder(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	h.tree.AddEnv("3.10", "proj")
	h.tree.AddEnv("3.9", "proj")

	res, err := h.manager.Delete(context.Background(), DeleteRequest{Name: "proj", Yes: true})
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if res.Status != Cancelled {
		t.Fatalf("Delete() status = %s, want cancelled", res.Status)
	}

	var want []string
	for _, env := range res.Matches {
		want = append(want, "Python "+env.Version.String())
	}
	if len(h.prompter.selectOpts) != 1 || !slices.Equal(h.prompter.selectOpts[0], want) {
		t.Errorf("menu options = %v, want %v", h.prompter.selectOpts, want)
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true)
	h.tree.AddEnv("3.11", "project")
	h.tree.AddBrokenEnv("3.12", "projekt")

	_, err := h.manager.Delete(context.Background(), DeleteRequest{Name: "projec", Yes: true})
	var notFound *EnvironmentNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Delete() error = %v, want EnvironmentNotFoundError", err)
	}
	if !slices.Equal(notFound.Suggestions, []registry.EnvName{"project"}) {
		t.Errorf("Suggestions = %v, want [project]", notFound.Suggestions)
	}

	_, err = h.manager.Delete(context.Background(), DeleteRequest{Name: "project", Version: "3.12", Yes: true})
	if !errors.Is(err, ErrEnvironmentNotFound) {
		t.Errorf("Delete(pinned to other version) error = %v, want ErrEnvironmentNotFound", err)
	}
	if !h.tree.Exists("3.11/project") {
		t.Error("pinned lookup removed an environment under another version")
	}
}

func TestDelete_DeletionFailed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping: directory permissions differ on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("skipping: root ignores directory permissions")
	}
	t.Parallel()

	h := newHarness(t, false)
	dir := h.tree.AddEnv("3.11", "locked")
	inner := filepath.Join(dir, "lib")
	if err := os.MkdirAll(filepath.Join(inner, "site-packages"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(inner, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(inner, 0o755) })

	_, err := h.manager.Delete(context.Background(), DeleteRequest{Name: "locked", Yes: true})
	var failed *DeletionFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("Delete() error = %v, want DeletionFailedError", err)
	}
	if failed.Name != "locked" || failed.Version != "3.11" {
		t.Errorf("DeletionFailedError = %+v", failed)
	}
}
