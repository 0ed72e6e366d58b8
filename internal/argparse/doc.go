// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package argparse turns the raw process argument vector into a script name and the
// arguments to forward to it.
//
// The binary can be started directly (`cargo-run-script hello world`) or by cargo as a
// subcommand, in which case cargo inserts the subcommand name as the first argument
// (`cargo-run-script run-script hello world`). Both forms normalize to the same Args.
package argparse
