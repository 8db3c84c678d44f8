// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError pairs a failure with the operation, entity and suggested fixes.
// The issue catalog holds Markdown guidance per failure kind, rendered with glamour.
package issue
