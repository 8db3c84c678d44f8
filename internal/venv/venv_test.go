// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"slices"
	"testing"

	"github.com/zapenv/zap/pkg/types"
)

func TestAtLeast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    bool
	}{
		{"3.12", true},
		{"3.13", true},
		{"4.0", true},
		{"3.11", false},
		{"3.9", false},
		{"garbage", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := AtLeast(tt.version, UpgradeDepsSince); got != tt.want {
			t.Errorf("AtLeast(%q, %q) = %v, want %v", tt.version, UpgradeDepsSince, got, tt.want)
		}
	}
}

func TestArgs(t *testing.T) {
	t.Parallel()

	if got, want := Args("/r/3.11/a", false), []string{"-m", "venv", "/r/3.11/a"}; !slices.Equal(got, want) {
		t.Errorf("Args(no upgrade) = %v, want %v", got, want)
	}
	if got, want := Args("/r/3.12/a", true), []string{"-m", "venv", "--upgrade-deps", "/r/3.12/a"}; !slices.Equal(got, want) {
		t.Errorf("Args(upgrade) = %v, want %v", got, want)
	}
}

func TestCreator(t *testing.T) {
	t.Parallel()

	var calls [][]string
	run := func(_ context.Context, name string, args ...string) (types.ExitCode, string, error) {
		calls = append(calls, append([]string{name}, args...))
		switch {
		case len(args) > 0 && args[0] == "-c" && name == "/py312":
			return types.ExitSuccess, "3.12", nil
		case len(args) > 0 && args[0] == "-c":
			return types.ExitFailure, "boom", nil
		}
		return 3, "venv failed", nil
	}
	c := NewCreator(run)
	ctx := context.Background()

	if !c.SupportsUpgrade(ctx, "/py312") {
		t.Error("SupportsUpgrade(3.12) = false, want true")
	}
	if c.SupportsUpgrade(ctx, "/broken") {
		t.Error("SupportsUpgrade(failing probe) = true, want false")
	}

	out, err := c.CreateAt(ctx, "/r/3.12/a", "/py312", true)
	if err != nil {
		t.Fatalf("CreateAt() error = %v", err)
	}
	if out.ExitCode != 3 || out.Text != "venv failed" {
		t.Errorf("CreateAt() = %+v, want exit 3 with output", out)
	}
	last := calls[len(calls)-1]
	if want := []string{"/py312", "-m", "venv", "--upgrade-deps", "/r/3.12/a"}; !slices.Equal(last, want) {
		t.Errorf("CreateAt() ran %v, want %v", last, want)
	}
}
