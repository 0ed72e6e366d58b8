// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFlags(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		raw       []string
		wantFlags Flags
		wantRest  []string
	}{
		{
			name:      "no flags",
			raw:       []string{devBinary, "hello", "world"},
			wantFlags: Flags{},
			wantRest:  []string{devBinary, "hello", "world"},
		},
		{
			name:      "if-present after the script name",
			raw:       []string{devBinary, "missing", IfPresentFlag},
			wantFlags: Flags{IfPresent: true},
			wantRest:  []string{devBinary, "missing"},
		},
		{
			name:      "if-present before the script name keeps the marker at index 1",
			raw:       []string{cargoBinary, SubcommandMarker, IfPresentFlag, "hello"},
			wantFlags: Flags{IfPresent: true},
			wantRest:  []string{cargoBinary, SubcommandMarker, "hello"},
		},
		{
			name:      "help and version",
			raw:       []string{devBinary, HelpFlagShort, VersionFlag},
			wantFlags: Flags{Help: true, Version: true},
			wantRest:  []string{devBinary},
		},
		{
			name:      "end of flags before the name is consumed",
			raw:       []string{devBinary, EndOfFlags, HelpFlag, IfPresentFlag, EndOfFlags},
			wantFlags: Flags{},
			wantRest:  []string{devBinary, HelpFlag, IfPresentFlag, EndOfFlags},
		},
		{
			name:      "end of flags after the name is forwarded",
			raw:       []string{devBinary, "hello", EndOfFlags, IfPresentFlag, HelpFlag},
			wantFlags: Flags{},
			wantRest:  []string{devBinary, "hello", EndOfFlags, IfPresentFlag, HelpFlag},
		},
		{
			name:      "flags before the name still count",
			raw:       []string{devBinary, IfPresentFlag, "hello", EndOfFlags, "-V"},
			wantFlags: Flags{IfPresent: true},
			wantRest:  []string{devBinary, "hello", EndOfFlags, "-V"},
		},
		{
			name:      "help and version after the name belong to the script",
			raw:       []string{devBinary, "show", "a", HelpFlagShort},
			wantFlags: Flags{},
			wantRest:  []string{devBinary, "show", "a", HelpFlagShort},
		},
		{
			name:      "long and short forms after a delegated name",
			raw:       []string{cargoBinary, SubcommandMarker, "test", VersionFlagShort, HelpFlag, VersionFlag},
			wantFlags: Flags{},
			wantRest:  []string{cargoBinary, SubcommandMarker, "test", VersionFlagShort, HelpFlag, VersionFlag},
		},
		{
			name:      "help before a delegated name",
			raw:       []string{cargoBinary, SubcommandMarker, HelpFlag, "test"},
			wantFlags: Flags{Help: true},
			wantRest:  []string{cargoBinary, SubcommandMarker, "test"},
		},
		{
			name:      "binary path is never a flag",
			raw:       []string{HelpFlag},
			wantFlags: Flags{},
			wantRest:  []string{HelpFlag},
		},
		{
			name:      "unknown flags are forwarded",
			raw:       []string{devBinary, "build", "--release"},
			wantFlags: Flags{},
			wantRest:  []string{devBinary, "build", "--release"},
		},
		{
			name:      "empty input",
			raw:       nil,
			wantFlags: Flags{},
			wantRest:  []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flags, rest := SplitFlags(tc.raw)
			assert.Equal(t, tc.wantFlags, flags)
			assert.Equal(t, tc.wantRest, rest)
		})
	}
}

func TestSplitFlags_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	raw := []string{devBinary, IfPresentFlag, "hello"}
	_, _ = SplitFlags(raw)

	assert.Equal(t, []string{devBinary, IfPresentFlag, "hello"}, raw)
}

func TestSplitFlags_ForwardsEverythingAfterTheName(t *testing.T) {
	t.Parallel()

	flags, rest := SplitFlags([]string{devBinary, "test", VersionFlagShort, HelpFlagShort})
	assert.Equal(t, Flags{}, flags)

	name, ok := Parse(rest).Script()
	assert.True(t, ok)
	assert.Equal(t, "test", name)
	assert.Equal(t, []string{VersionFlagShort, HelpFlagShort}, Parse(rest).Forwarded())
}
