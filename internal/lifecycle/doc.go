// SPDX-License-Identifier: MPL-2.0

// Package lifecycle implements the environment operations behind every zap
// command: create, list, delete, activate, deactivate and set-default.
//
// The Manager never prints. Each operation returns a result describing what
// happened (including clean cancellations) or a typed error from the zap
// error taxonomy. Every side effect outside the registry tree goes through an
// injected collaborator, so tests substitute fakes for the interpreter
// source, the venv creator, prompts and shell spawning. Whether a human is
// attached is an explicit Attended flag rather than a terminal query.
package lifecycle
