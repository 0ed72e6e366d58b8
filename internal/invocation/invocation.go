// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package invocation substitutes positional placeholders in a script body.
//
// `$0` is replaced by the binary path and `$N` (N >= 1) by the Nth forwarded argument.
// Substitution is plain text: nothing is quoted or escaped.
package invocation

import (
	"strconv"
	"strings"
)

const placeholderPrefix = '$'

// Resolved is the final command line handed to the shell.
type Resolved struct {
	CommandLine string
}

// Build replaces placeholders in body in a single left-to-right pass.
// The digits after `$` are read greedily, so `$12` is the twelfth argument, never `$1` followed by "2".
// `$0` is never extended, so `$01` is the binary path followed by "1".
// Placeholders without a matching argument and any `$` not followed by a digit are kept as written.
// Replacement text is not scanned again.
func Build(body, binaryPath string, forwarded []string) Resolved {
	if strings.IndexByte(body, placeholderPrefix) < 0 {
		return Resolved{CommandLine: body}
	}

	var sb strings.Builder

	sb.Grow(len(body))

	for i := 0; i < len(body); {
		if body[i] != placeholderPrefix {
			sb.WriteByte(body[i])
			i++

			continue
		}

		digits := placeholderDigits(body[i+1:])
		if digits == "" {
			sb.WriteByte(body[i])
			i++

			continue
		}

		token := body[i : i+1+len(digits)]
		i += len(token)

		if value, ok := lookup(digits, binaryPath, forwarded); ok {
			sb.WriteString(value)
			continue
		}

		sb.WriteString(token)
	}

	return Resolved{CommandLine: sb.String()}
}

// placeholderDigits returns the index part of a placeholder at the start of s:
// either "0" or a run of digits that does not start with 0.
func placeholderDigits(s string) string {
	if s == "" || !isDigit(s[0]) {
		return ""
	}

	if s[0] == '0' {
		return s[:1]
	}

	end := 1
	for end < len(s) && isDigit(s[end]) {
		end++
	}

	return s[:end]
}

func lookup(digits, binaryPath string, forwarded []string) (string, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		// only reachable when the index overflows an int, which no argument list can match
		return "", false
	}

	if n == 0 {
		return binaryPath, true
	}

	if n > len(forwarded) {
		return "", false
	}

	return forwarded[n-1], true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
