// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/zapenv/zap/pkg/platform"
)

// EnvRootVar names the environment variable that overrides the registry root.
const EnvRootVar = "ENV_ROOT"

// windowsDefaultRoot is the registry root on Windows.
const windowsDefaultRoot = `C:\venvs`

// ResolveEnvRoot picks the registry root: ENV_ROOT, then the env_root config
// key, then the platform default. getenv is usually os.Getenv.
func ResolveEnvRoot(cfg *Config, getenv func(string) string) (string, error) {
	if root := getenv(EnvRootVar); root != "" {
		return filepath.Clean(root), nil
	}
	if cfg != nil && cfg.EnvRoot != "" {
		return filepath.Clean(cfg.EnvRoot), nil
	}
	return DefaultEnvRoot(runtime.GOOS)
}

// DefaultEnvRoot returns ~/venvs on POSIX systems and C:\venvs on Windows.
func DefaultEnvRoot(goos string) (string, error) {
	if goos == platform.Windows {
		return windowsDefaultRoot, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "venvs"), nil
}
