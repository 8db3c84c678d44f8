// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MarkerFile mirrors the registry marker so fixtures do not import the registry package.
const MarkerFile = "pyvenv.cfg"

// RegistryTree builds environment fixtures under a temporary registry root.
type RegistryTree struct {
	t    testing.TB
	Root string
}

// NewRegistryTree creates an empty registry root in a test temp directory.
func NewRegistryTree(t testing.TB) *RegistryTree {
	t.Helper()
	root := filepath.Join(t.TempDir(), "venvs")
	MustMkdirAll(t, root)
	return &RegistryTree{t: t, Root: root}
}

// AddEnv creates ROOT/version/name with a marker file and returns its path.
func (r *RegistryTree) AddEnv(version, name string) string {
	r.t.Helper()
	dir := filepath.Join(r.Root, version, name)
	MustWriteFile(r.t, filepath.Join(dir, MarkerFile), "home = /usr/bin\nversion = "+version+"\n")
	return dir
}

// AddBrokenEnv creates ROOT/version/name without a marker file.
func (r *RegistryTree) AddBrokenEnv(version, name string) string {
	r.t.Helper()
	dir := filepath.Join(r.Root, version, name)
	MustMkdirAll(r.t, filepath.Join(dir, "lib"))
	return dir
}

// AddFile creates a regular file at ROOT/rel.
func (r *RegistryTree) AddFile(rel string) string {
	r.t.Helper()
	path := filepath.Join(r.Root, filepath.FromSlash(rel))
	MustWriteFile(r.t, path, "")
	return path
}

// Exists reports whether ROOT/rel exists.
func (r *RegistryTree) Exists(rel string) bool {
	_, err := os.Lstat(filepath.Join(r.Root, filepath.FromSlash(rel)))
	return err == nil
}
