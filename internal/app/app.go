// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/cargo-run-script/internal/argparse"
	"github.com/matt-FFFFFF/cargo-run-script/internal/ctxlog"
	"github.com/matt-FFFFFF/cargo-run-script/internal/invocation"
	"github.com/matt-FFFFFF/cargo-run-script/internal/manifest"
	"github.com/matt-FFFFFF/cargo-run-script/internal/shell"
)

// Executor runs a fully substituted command line.
type Executor interface {
	Execute(ctx context.Context, commandLine string) (shell.Outcome, error)
}

// Options configures a single Run.
type Options struct {
	// Args is the argument vector with tool flags already removed, element 0 being the binary path.
	Args []string
	// ManifestPath defaults to manifest.DefaultPath.
	ManifestPath string
	// Stdout receives script name listings, defaults to os.Stdout.
	Stdout io.Writer
	// Executor defaults to a shell.Executor inheriting the parent's stdio.
	Executor Executor
	// IfPresent turns an unknown script name into a successful no-op.
	IfPresent bool
}

// Run executes the script named in opts.Args.
// It returns nil on success, otherwise an *ExitError.
func Run(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()
	logger := ctxlog.Logger(ctx)

	table, err := manifest.Load(ctx, opts.ManifestPath)
	if err != nil {
		return newExitError(ExitCodeManifest, err)
	}

	args := argparse.Parse(opts.Args)

	name, ok := args.Script()
	if !ok {
		logger.Debug("no script name given, listing scripts", "count", table.Len())

		if err := writeNames(opts.Stdout, table); err != nil {
			return newExitError(1, err)
		}

		return nil
	}

	body, err := table.Resolve(name)
	if err != nil {
		if opts.IfPresent && errors.Is(err, manifest.ErrScriptNotFound) {
			ctxlog.Info(ctx, "script not present, skipping", "script", name)
			return nil
		}

		if werr := writeNames(opts.Stdout, table); werr != nil {
			err = errors.Join(err, werr)
		}

		return newExitError(ExitCodeScriptNotFound, err)
	}

	resolved := invocation.Build(body, args.BinaryPath(), args.Forwarded())
	logger.Debug("running script", "script", name, "commandLine", resolved.CommandLine)

	outcome, err := opts.Executor.Execute(ctx, resolved.CommandLine)
	if err != nil {
		return newExitError(ExitCodeCannotExecute, err)
	}

	if exitErr := exitErrorFromOutcome(outcome); exitErr != nil {
		logger.Debug("script did not succeed", "script", name, "status", outcome.Status.String())
		return exitErr
	}

	return nil
}

func (o Options) withDefaults() Options {
	if o.ManifestPath == "" {
		o.ManifestPath = manifest.DefaultPath
	}

	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}

	if o.Executor == nil {
		o.Executor = &shell.Executor{}
	}

	return o
}

func writeNames(w io.Writer, table manifest.ScriptTable) error {
	for _, name := range table.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("writing script names: %w", err)
		}
	}

	return nil
}
