// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// It centralizes GOOS name constants, the Windows reserved device names that
// cannot be used as environment directory names, and sandbox detection so that
// interpreters and shells are launched on the host when zap itself runs inside
// a Flatpak.
package platform
