// SPDX-License-Identifier: MPL-2.0

// Package registry implements the on-disk environment registry.
//
// The registry is a directory tree ROOT/<version-tag>/<env-name>/. A directory
// at that position is a valid environment only when it contains the marker
// file (pyvenv.cfg). Nothing is cached: every query re-reads the filesystem,
// because environments may be created or removed by other tools between calls.
//
// The Resolver layers name-based lookup on top of the Store. A name may exist
// under several version tags at once; a name-only lookup therefore yields
// NotFound, SingleMatch or MultipleMatches and never guesses between matches.
package registry
