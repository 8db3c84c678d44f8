// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Exit codes zap itself returns.
const (
	// ExitSuccess covers completed operations and ones the user abandoned.
	ExitSuccess ExitCode = 0
	// ExitFailure covers every operation failure.
	ExitFailure ExitCode = 1
	// ExitUsage means the command line itself was malformed.
	ExitUsage ExitCode = 2
)

// ErrInvalidExitCode is wrapped by Validate for codes outside 0-255.
var ErrInvalidExitCode = errors.New("invalid exit code")

// ExitCode is a process exit status. Only 0-255 can be reported to a POSIX parent.
type ExitCode int

// FromProcess converts the value of os.ProcessState.ExitCode. A process
// killed by a signal reports -1 there and becomes ExitFailure.
func FromProcess(code int) ExitCode {
	c := ExitCode(code)
	if c.Validate() != nil {
		return ExitFailure
	}
	return c
}

// Validate reports codes that cannot be returned to a parent process.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return fmt.Errorf("%w %d: must be in range 0-255", ErrInvalidExitCode, int(c))
	}
	return nil
}

// IsSuccess reports whether c is zero.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
