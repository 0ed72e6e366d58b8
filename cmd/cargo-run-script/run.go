// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/cargo-run-script/internal/app"
	"github.com/matt-FFFFFF/cargo-run-script/internal/argparse"
	"github.com/matt-FFFFFF/cargo-run-script/internal/ctxlog"
	"github.com/matt-FFFFFF/cargo-run-script/internal/manifest"
	"github.com/urfave/cli/v3"
)

const usageText = `cargo run-script [options] <script> [args...]
   cargo-run-script [options] <script> [args...]

Scripts are read from [package.metadata.scripts] or [workspace.metadata.scripts]
in ` + manifest.DefaultPath + ` and run with /bin/sh -c (cmd /C on Windows).
$0 is replaced with the binary path and $1, $2, ... with the forwarded arguments.
Running without a script name lists the declared scripts.

Options must come before the script name, except --if-present which may follow it.
Every other argument after the script name is passed to the script.

Options:
   --if-present   exit successfully when the script is not declared
   -h, --help     show help
   -V, --version  print the version
   --             treat every following argument as the script name and its arguments`

// run is the action of the root command. raw is the full argument vector, element 0 being the binary path.
func run(ctx context.Context, cmd *cli.Command, raw []string, executor app.Executor) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	flags, rest := argparse.SplitFlags(raw)
	logger.Debug("parsed tool flags", "ifPresent", flags.IfPresent, "args", rest)

	switch {
	case flags.Help:
		_, err := fmt.Fprintf(cmd.Writer, "%s - %s\n\nUsage:\n   %s\n", cmd.Name, cmd.Usage, cmd.UsageText)
		return err
	case flags.Version:
		_, err := fmt.Fprintf(cmd.Writer, "%s version %s\n", cmd.Name, cmd.Version)
		return err
	}

	err := app.Run(ctx, app.Options{
		Args:      rest,
		Stdout:    cmd.Writer,
		Executor:  executor,
		IfPresent: flags.IfPresent,
	})
	if err == nil {
		return nil
	}

	var exitErr *app.ExitError
	if errors.As(err, &exitErr) {
		logger.Debug("run failed", "exitCode", exitErr.Code, "error", exitErr.Err)
		return cli.Exit(exitErr.Error(), exitErr.Code)
	}

	return cli.Exit(err.Error(), 1)
}
