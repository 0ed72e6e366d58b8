// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package manifest loads the scripts table from a Cargo manifest.
//
// Scripts are declared under exactly one of:
//
//	[package.metadata.scripts]
//	hello = "echo hello $1"
//
//	[workspace.metadata.scripts]
//	hello = "echo hello $1"
//
// Every value must be a single shell command string.
package manifest
