// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func newTestPrompter(input string) (*LinePrompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewLinePrompter(Config{Input: strings.NewReader(input), Output: &out}), &out
}

func TestLinePrompterSelect(t *testing.T) {
	t.Parallel()

	options := []string{"Python 3.11", "Python 3.12"}
	tests := []struct {
		name      string
		input     string
		wantIndex int
		wantOK    bool
		wantOut   string
	}{
		{name: "first", input: "1\n", wantIndex: 0, wantOK: true, wantOut: "Selected: Python 3.11"},
		{name: "second with spaces", input: "  2 \n", wantIndex: 1, wantOK: true, wantOut: "Selected: Python 3.12"},
		{name: "no trailing newline", input: "2", wantIndex: 1, wantOK: true},
		{name: "out of range", input: "3\n", wantIndex: -1, wantOut: "Invalid selection. Please choose a number between 1 and 2."},
		{name: "zero", input: "0\n", wantIndex: -1, wantOut: "Invalid selection."},
		{name: "not a number", input: "abc\n", wantIndex: -1, wantOut: "Invalid input."},
		{name: "empty line", input: "\n", wantIndex: -1, wantOut: "No selection made."},
		{name: "eof", input: "", wantIndex: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, out := newTestPrompter(tt.input)
			idx, ok, err := p.Select(context.Background(), "Pick one:", options)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if idx != tt.wantIndex || ok != tt.wantOK {
				t.Errorf("Select() = (%d, %v), want (%d, %v)", idx, ok, tt.wantIndex, tt.wantOK)
			}
			if !strings.Contains(out.String(), "Pick one:\n  1. Python 3.11\n  2. Python 3.12\n") {
				t.Errorf("menu not rendered, got %q", out.String())
			}
			if tt.wantOut != "" && !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output %q does not contain %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestLinePrompterConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"yep\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			t.Parallel()

			p, out := newTestPrompter(tt.input)
			got, err := p.Confirm(context.Background(), "Delete /tmp/x?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.HasPrefix(out.String(), "Delete /tmp/x? [y/N] ") {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestLinePrompterCancelledContext(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	var out bytes.Buffer
	p := NewLinePrompter(Config{Input: pr, Output: &out})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := p.Confirm(ctx, "Proceed?")
	if err != nil || ok {
		t.Fatalf("Confirm() = (%v, %v), want (false, nil)", ok, err)
	}
	if !strings.Contains(out.String(), "Operation cancelled.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestGetHuhTheme(t *testing.T) {
	t.Parallel()

	for _, theme := range []Theme{ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16, "unknown"} {
		if getHuhTheme(theme) == nil {
			t.Errorf("getHuhTheme(%q) = nil", theme)
		}
	}
}

func TestDefaultConfigAccessible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"unset", nil, false},
		{"set", map[string]string{"ACCESSIBLE": "1"}, true},
		{"empty", map[string]string{"ACCESSIBLE": ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig(func(k string) string { return tt.env[k] })
			if cfg.Accessible != tt.want {
				t.Errorf("DefaultConfig().Accessible = %v, want %v", cfg.Accessible, tt.want)
			}
		})
	}
}
