// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package argparse

import "slices"

// SubcommandMarker is the token cargo inserts at index 1 when it delegates to this binary.
const SubcommandMarker = "run-script"

const (
	binaryPathIndex = 0
	markerIndex     = 1
)

// Args is the normalized form of the process arguments.
// It is immutable once returned by Parse.
type Args struct {
	binaryPath string
	script     string
	hasScript  bool
	forwarded  []string
}

// Parse normalizes the raw argument vector, where raw[0] is the path to the running binary.
// The marker is only recognised at index 1, so a script that happens to be called
// "run-script" can still be run with `cargo run-script run-script`.
// Parse never fails; a missing script name is reported by Args.Script.
func Parse(raw []string) Args {
	if len(raw) == 0 {
		return Args{}
	}

	args := Args{
		binaryPath: raw[binaryPathIndex],
	}

	rest := raw[binaryPathIndex+1:]
	if len(raw) > markerIndex && raw[markerIndex] == SubcommandMarker {
		rest = raw[markerIndex+1:]
	}

	if len(rest) == 0 {
		return args
	}

	args.script = rest[0]
	args.hasScript = true
	args.forwarded = slices.Clone(rest[1:])

	return args
}

// BinaryPath returns the path of the running binary, used to substitute $0.
func (a Args) BinaryPath() string {
	return a.binaryPath
}

// Script returns the script name and whether one was given.
func (a Args) Script() (string, bool) {
	return a.script, a.hasScript
}

// Forwarded returns a copy of the arguments that follow the script name, in order.
func (a Args) Forwarded() []string {
	if len(a.forwarded) == 0 {
		return []string{}
	}

	return slices.Clone(a.forwarded)
}
