// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell runs a single command line in the platform shell and reports how it ended.
//
// On Windows the command line is passed to `cmd.exe /C`, everywhere else to `/bin/sh -c`.
// The child inherits the parent's standard streams by default. Signals delivered to the
// parent while the child runs are relayed to it; a second signal of the same kind kills it.
package shell
