// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	sbPadding = 16 // padding for the strings.Builder
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	reset      = "\033[0m"
	prefix     = "\033["
	suffix     = "m"
)

// Code represents an ANSI control code for text formatting.
type Code int

// Control codes for text formatting.
const (
	Bold  Code = 1
	Faint Code = 2
)

// Foreground text colors.
const (
	FgRed    Code = 31
	FgYellow Code = 33
	FgBlue   Code = 34
	FgCyan   Code = 36
	FgWhite  Code = 37
)

// Foreground Hi-Intensity text colors.
const (
	FgHiMagenta Code = 95
	FgHiWhite   Code = 97
)

// Wrap returns str surrounded by the given codes and a trailing reset.
// With no codes, str is returned unchanged.
func Wrap(str string, codes ...Code) string {
	if len(codes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

// EnabledFor reports whether colour should be written to f.
// NO_COLOR wins over FORCE_COLOR. Without either, f must be a terminal.
func EnabledFor(f *os.File) bool {
	if !envAllowsColor() {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return f != nil && term.IsTerminal(int(f.Fd()))
}

func envAllowsColor() bool {
	return os.Getenv(NoColor) == ""
}
