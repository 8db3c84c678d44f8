// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions selects where configuration is read from. The zero value
	// reads <config dir>/zap/config.cue if it exists.
	LoadOptions struct {
		// ConfigFilePath names an explicit file (--config). It must exist.
		ConfigFilePath string
		// ConfigDirPath replaces the platform config directory.
		ConfigDirPath string
	}

	// Loaded is a validated configuration plus the file it came from.
	Loaded struct {
		Config *Config
		// Source is "" when only defaults and ZAP_* overrides apply.
		Source string
	}

	// Provider loads configuration. The CLI takes one so tests can skip the
	// filesystem entirely.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (Loaded, error)
	}

	fileProvider struct{}
)

// NewProvider returns the Provider backed by the CUE config file.
func NewProvider() Provider {
	return fileProvider{}
}

func (fileProvider) Load(ctx context.Context, opts LoadOptions) (Loaded, error) {
	cfg, source, err := loadWithOptions(ctx, opts)
	if err != nil {
		return Loaded{}, err
	}
	return Loaded{Config: cfg, Source: source}, nil
}
