// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Store answers queries against the registry tree rooted at a single directory.
// It holds no state besides the root path.
type Store struct {
	root string
}

// NewStore creates a Store for the given registry root.
func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// Root returns the registry root directory.
func (s *Store) Root() string {
	return s.root
}

// EnsureRoot creates the registry root if it is missing. The root is never
// removed by zap.
func (s *Store) EnsureRoot() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to create registry root %s: %w", s.root, err)
	}
	return nil
}

// VersionDir returns ROOT/version.
func (s *Store) VersionDir(version VersionTag) string {
	return filepath.Join(s.root, string(version))
}

// EnvironmentDir returns ROOT/version/name without checking that it exists.
func (s *Store) EnvironmentDir(version VersionTag, name EnvName) string {
	return filepath.Join(s.root, string(version), string(name))
}

// VersionTags returns the name of every immediate subdirectory of the root,
// unfiltered, in directory-listing order.
func (s *Store) VersionTags() ([]VersionTag, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry root %s: %w", s.root, err)
	}

	tags := make([]VersionTag, 0, len(entries))
	for _, entry := range entries {
		if isDirEntry(s.root, entry) {
			tags = append(tags, VersionTag(entry.Name()))
		}
	}
	return tags, nil
}

// Environments returns the valid environments under ROOT/version, sorted by name.
// Subdirectories without the marker file are skipped. A missing version
// directory yields an empty result.
func (s *Store) Environments(version VersionTag) ([]Environment, error) {
	dir := s.VersionDir(version)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read version directory %s: %w", dir, err)
	}

	envs := make([]Environment, 0, len(entries))
	for _, entry := range entries {
		if !isDirEntry(dir, entry) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !hasMarker(path) {
			continue
		}
		envs = append(envs, Environment{Version: version, Name: EnvName(entry.Name()), Path: path})
	}

	slices.SortFunc(envs, func(a, b Environment) int {
		return strings.Compare(string(a.Name), string(b.Name))
	})
	return envs, nil
}

// Exists reports whether ROOT/version/name is a directory containing the
// marker file. Directory existence alone never counts.
func (s *Store) Exists(version VersionTag, name EnvName) bool {
	path := s.EnvironmentDir(version, name)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	return hasMarker(path)
}

// Occupied reports whether anything at all exists at ROOT/version/name,
// valid environment or not.
func (s *Store) Occupied(version VersionTag, name EnvName) bool {
	_, err := os.Lstat(s.EnvironmentDir(version, name))
	return err == nil
}

// Lookup returns the environment at ROOT/version/name if it is valid.
func (s *Store) Lookup(version VersionTag, name EnvName) (Environment, bool) {
	if !s.Exists(version, name) {
		return Environment{}, false
	}
	return Environment{Version: version, Name: name, Path: s.EnvironmentDir(version, name)}, true
}

func hasMarker(envDir string) bool {
	info, err := os.Stat(filepath.Join(envDir, MarkerFile))
	return err == nil && !info.IsDir()
}

// isDirEntry follows symlinks so a linked version or environment directory counts.
func isDirEntry(parent string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}
