// SPDX-License-Identifier: MPL-2.0

// Package config handles zap configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/zap/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/zap/config.cue on macOS, %APPDATA%\zap\config.cue
// on Windows), validated against an embedded CUE schema and overridable through
// ZAP_* environment variables. The package also resolves the registry root and
// stores the per-user default version in ~/.zaprc.
package config
