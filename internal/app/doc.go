// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package app wires the manifest, argument and shell packages into a single run of a script.
//
// Run loads the scripts table, normalizes the command line, picks the script and hands the
// substituted command line to an Executor. Failures are returned as *ExitError values carrying
// the process exit code.
package app
