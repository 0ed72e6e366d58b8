// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package argparse

const (
	// IfPresentFlag turns a missing script into a successful no-op.
	IfPresentFlag = "--if-present"
	// HelpFlag prints usage.
	HelpFlag = "--help"
	// HelpFlagShort is the short form of HelpFlag.
	HelpFlagShort = "-h"
	// VersionFlag prints the version.
	VersionFlag = "--version"
	// VersionFlagShort is the short form of VersionFlag.
	VersionFlagShort = "-V"
	// EndOfFlags stops flag recognition, every later token is passed through untouched.
	EndOfFlags = "--"
)

// Flags are the options understood by the tool itself, as opposed to the script.
type Flags struct {
	IfPresent bool
	Help      bool
	Version   bool
}

// SplitFlags removes the tool's own flags from raw and returns them alongside the remaining
// arguments. raw[0] is never inspected and the subcommand marker at index 1 is kept in place.
//
// Before the script name every tool flag is recognised and a "--" is consumed, forwarding
// everything after it verbatim. After the script name only IfPresentFlag is taken; any other
// token, including "-h" or "--version", belongs to the script. A "--" there is kept and stops
// IfPresentFlag from being recognised in the tokens following it.
func SplitFlags(raw []string) (Flags, []string) {
	var flags Flags

	if len(raw) == 0 {
		return flags, []string{}
	}

	rest := make([]string, 0, len(raw))
	rest = append(rest, raw[0])

	start := 1
	if len(raw) > 1 && raw[1] == SubcommandMarker {
		rest = append(rest, raw[1])
		start = 2
	}

	named := false

	for i := start; i < len(raw); i++ {
		tok := raw[i]

		if named {
			switch tok {
			case EndOfFlags:
				return flags, append(rest, raw[i:]...)
			case IfPresentFlag:
				flags.IfPresent = true
			default:
				rest = append(rest, tok)
			}

			continue
		}

		switch tok {
		case EndOfFlags:
			return flags, append(rest, raw[i+1:]...)
		case IfPresentFlag:
			flags.IfPresent = true
		case HelpFlag, HelpFlagShort:
			flags.Help = true
		case VersionFlag, VersionFlagShort:
			flags.Version = true
		default:
			named = true

			rest = append(rest, tok)
		}
	}

	return flags, rest
}
