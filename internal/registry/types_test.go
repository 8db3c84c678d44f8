// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"testing"
)

func TestEnvNameValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   EnvName
		wantErr bool
	}{
		{"simple", "proj", false},
		{"with dash and dot", "my-proj.v2", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"nul", "a\x00b", true},
		{"reserved device", "CON", true},
		{"reserved device with extension", "nul.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("errors.Is(err, ErrInvalidName) = false for %v", err)
			}
			var nameErr *InvalidNameError
			if !errors.As(err, &nameErr) || nameErr.Kind != "environment name" {
				t.Errorf("errors.As(*InvalidNameError) kind mismatch: %v", err)
			}
		})
	}
}

func TestVersionTagValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   VersionTag
		wantErr bool
	}{
		{"3.11", false},
		{"3.10-arm64", false},
		{"pypy", false},
		{"", true},
		{"..", true},
		{"3/11", true},
	}

	for _, tt := range tests {
		if err := tt.value.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}
