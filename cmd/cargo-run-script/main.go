// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the cargo-run-script command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	runscript "github.com/matt-FFFFFF/cargo-run-script"
	"github.com/matt-FFFFFF/cargo-run-script/internal/app"
	"github.com/matt-FFFFFF/cargo-run-script/internal/ctxlog"
	"github.com/matt-FFFFFF/cargo-run-script/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd := newRootCmd(os.Args[0], nil)
	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", runscript.Version, runscript.Commit)

	err := rootCmd.Run(ctx, os.Args) // exit codes are handled by the cli framework

	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command. Tool flags are extracted by hand so that everything else,
// including flags meant for the script, reaches the script untouched.
func newRootCmd(binaryPath string, executor app.Executor) *cli.Command {
	return &cli.Command{
		Name:            "cargo-run-script",
		Usage:           "run scripts declared in Cargo.toml",
		UsageText:       usageText,
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Copyright:       "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw := append([]string{binaryPath}, cmd.Args().Slice()...)
			return run(ctx, cmd, raw, executor)
		},
	}
}
