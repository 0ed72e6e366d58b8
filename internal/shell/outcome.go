// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"os"
	"syscall"
)

// Status describes how the child process ended.
type Status int

const (
	// StatusSuccess means the child exited with code 0.
	StatusSuccess Status = iota
	// StatusFailed means the child exited with a non-zero code.
	StatusFailed
	// StatusSignaled means the child was terminated by a signal and has no exit code.
	StatusSignaled
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusSignaled:
		return "signaled"
	}

	return "unknown"
}

// Outcome is the termination state of the child process.
type Outcome struct {
	Status   Status
	ExitCode int       // Exit code of the child, -1 when Status is StatusSignaled.
	Signal   os.Signal // Terminating signal when Status is StatusSignaled, may be nil if unknown.
}

// Success reports whether the child exited with code 0.
func (o Outcome) Success() bool {
	return o.Status == StatusSuccess
}

func outcomeFromState(state *os.ProcessState) Outcome {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return Outcome{
			Status:   StatusSignaled,
			ExitCode: -1,
			Signal:   ws.Signal(),
		}
	}

	code := state.ExitCode()

	switch {
	case code == 0:
		return Outcome{Status: StatusSuccess}
	case code < 0:
		return Outcome{Status: StatusSignaled, ExitCode: -1}
	}

	return Outcome{Status: StatusFailed, ExitCode: code}
}
