// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/matt-FFFFFF/cargo-run-script/internal/ctxlog"
	"github.com/matt-FFFFFF/cargo-run-script/internal/signalbroker"
)

var (
	// ErrCouldNotStartProcess is returned when the shell could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrWaitProcess is returned when waiting for the shell fails.
	ErrWaitProcess = errors.New("failed to wait for process")
	// ErrDuplicateSignalReceived is the reason logged when a duplicate signal forces the child to be killed.
	ErrDuplicateSignalReceived = errors.New("duplicate signal received, process forcefully terminated")
	// ErrContextDone is the reason logged when the child is killed because the context ended.
	ErrContextDone = errors.New("context done, process forcefully terminated")
)

// Executor runs command lines in the platform shell.
// The zero value inherits the parent's standard streams and working directory.
type Executor struct {
	Stdin  *os.File // Defaults to os.Stdin.
	Stdout *os.File // Defaults to os.Stdout.
	Stderr *os.File // Defaults to os.Stderr.
	Dir    string   // Working directory of the child, defaults to the current one.
	path   string   // Overrides the shell executable, allows testing spawn failures.
	sigCh  chan os.Signal
}

// Execute runs commandLine and blocks until the shell exits. There is no timeout.
// A non-nil error means the shell could not be run at all; how it ended is reported in the Outcome.
func (e *Executor) Execute(ctx context.Context, commandLine string) (Outcome, error) {
	path, args := Command(commandLine)
	if e.path != "" {
		path = e.path
	}

	logger := ctxlog.Logger(ctx).With("shell", path)
	logger.Debug("command info", "args", args, "cwd", e.Dir)

	sigCh := e.sigCh
	if sigCh == nil {
		sigCh = signalbroker.New(ctx)
		defer signalbroker.Stop(sigCh)
	}

	ps, err := os.StartProcess(path, slices.Concat([]string{filepath.Base(path)}, args), &os.ProcAttr{
		Dir:   e.Dir,
		Env:   os.Environ(),
		Files: []*os.File{e.stdin(), e.stdout(), e.stderr()},
	})
	if err != nil {
		return Outcome{}, errors.Join(ErrCouldNotStartProcess, err)
	}

	startTime := time.Now()

	logger.Debug("process started", "pid", ps.Pid)

	done := make(chan struct{})
	// At most one reason is sent, the watchdog returns straight after.
	killed := make(chan error, 1)

	var wg sync.WaitGroup

	wg.Add(1)

	// watchdog for process signals and context cancellation
	go func() {
		defer wg.Done()

		signalCount := make(map[os.Signal]struct{})

		for {
			select {
			case s, ok := <-sigCh:
				if !ok {
					sigCh = nil
					continue
				}

				if _, seen := signalCount[s]; seen {
					logger.Info("received duplicate signal, killing process", "signal", s.String())
					killPs(ctx, ps)

					killed <- ErrDuplicateSignalReceived

					return
				}

				signalCount[s] = struct{}{}

				logger.Info("relaying signal", "signal", s.String())

				if err := ps.Signal(s); err != nil {
					logger.Info("failed to send signal", "signal", s.String(), "error", err)
				}

			case <-ctx.Done():
				logger.Info("context done, killing process")
				killPs(ctx, ps)

				killed <- ErrContextDone

				return

			case <-done:
				return
			}
		}
	}()

	logger.Debug("waiting for process to finish")

	state, err := ps.Wait()

	close(done)
	wg.Wait()

	if err != nil {
		return Outcome{}, errors.Join(ErrWaitProcess, err)
	}

	outcome := outcomeFromState(state)

	select {
	case reason := <-killed:
		logger.Debug("process was killed", "reason", reason)
	default:
	}

	logger.Debug("process finished",
		"status", outcome.Status.String(),
		"exitCode", outcome.ExitCode,
		"duration", time.Since(startTime).Round(time.Millisecond).String(),
	)

	return outcome, nil
}

func (e *Executor) stdin() *os.File {
	if e.Stdin != nil {
		return e.Stdin
	}

	return os.Stdin
}

func (e *Executor) stdout() *os.File {
	if e.Stdout != nil {
		return e.Stdout
	}

	return os.Stdout
}

func (e *Executor) stderr() *os.File {
	if e.Stderr != nil {
		return e.Stderr
	}

	return os.Stderr
}

// killPs kills the process, a process that already exited is not an error.
func killPs(ctx context.Context, ps *os.Process) {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Logger(ctx).Debug("process already done", "pid", ps.Pid)
			return
		}

		ctxlog.Logger(ctx).Error("process kill error", "pid", ps.Pid, "error", err)

		return
	}

	ctxlog.Logger(ctx).Info("process killed", "pid", ps.Pid)
}
