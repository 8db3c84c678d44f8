// SPDX-License-Identifier: MPL-2.0

// Package interpreter discovers installed Python interpreters.
//
// Two sources exist. On Windows the py launcher enumerates installations
// (`py -0p`). Elsewhere each PATH directory is scanned for executables matching
// the configured glob patterns and every candidate is asked for its
// major.minor version, which becomes its tag. Either way the result is a Set
// mapping version tags to executable paths, rebuilt on every call.
package interpreter
