// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/matt-FFFFFF/cargo-run-script/internal/shell"
)

// Exit codes for failures that are not the script's own exit code.
const (
	ExitCodeScriptNotFound = 64  // EX_USAGE
	ExitCodeManifest       = 78  // EX_CONFIG
	ExitCodeCannotExecute  = 126 // shell could not be started
	ExitCodeSignaledBase   = 128 // plus the signal number
	ExitCodeSignaledNoNum  = ExitCodeSignaledBase + 1
)

var (
	// ErrScriptExecutionFailed is returned when the script exits with a non-zero code.
	ErrScriptExecutionFailed = errors.New("script ended with error code")
	// ErrScriptTerminatedBySignal is returned when the script is terminated by a signal.
	ErrScriptTerminatedBySignal = errors.New("script ended with exit signal")
)

// ExitError pairs an error with the exit code the process should end with.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}

	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode implements the urfave/cli ExitCoder interface.
func (e *ExitError) ExitCode() int { return e.Code }

func newExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// exitErrorFromOutcome maps a non-successful outcome to an ExitError. It returns nil on success.
func exitErrorFromOutcome(o shell.Outcome) *ExitError {
	if o.Success() {
		return nil
	}

	if o.Status == shell.StatusFailed {
		return newExitError(o.ExitCode, fmt.Errorf("%w %d", ErrScriptExecutionFailed, o.ExitCode))
	}

	code := ExitCodeSignaledNoNum
	name := "unknown"

	if o.Signal != nil {
		name = o.Signal.String()

		if s, ok := o.Signal.(syscall.Signal); ok && s > 0 {
			code = ExitCodeSignaledBase + int(s)
		}
	}

	return newExitError(code, fmt.Errorf("%w: %s", ErrScriptTerminatedBySignal, name))
}
