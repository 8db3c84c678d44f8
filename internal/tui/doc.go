// SPDX-License-Identifier: MPL-2.0

// Package tui asks the attended user to pick an environment or confirm a
// deletion. LinePrompter reads numbered answers from a plain line stream;
// FormPrompter uses charmbracelet/huh forms. Both treat empty, invalid or
// interrupted input as a declined answer rather than an error.
package tui
