// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers that fail the test on error instead
// of returning one.
//
// RegistryTree builds environment fixtures under a temporary registry root;
// IsolateUserDirs keeps tests away from the real home and config directories.
package testutil
