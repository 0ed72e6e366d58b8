// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabledFor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	require.NoError(t, err)

	defer f.Close() //nolint:errcheck

	t.Setenv(NoColor, "")
	t.Setenv(ForceColor, "")
	assert.False(t, EnabledFor(f), "Expected color output to be disabled for a regular file")

	t.Setenv(NoColor, "1")
	assert.False(t, EnabledFor(f), "Expected color output to be disabled")

	t.Setenv(ForceColor, "1")
	assert.False(t, EnabledFor(f), "Expected color output to be disabled as NO_COLOR is still set")

	t.Setenv(NoColor, "")
	assert.True(t, EnabledFor(f), "Expected color output to be enabled as FORCE_COLOR is set and NO_COLOR is unset")
	assert.True(t, EnabledFor(nil), "FORCE_COLOR does not need a stream")
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "plain", Wrap("plain"))
	assert.Equal(t, "\033[31mred\033[0m", Wrap("red", FgRed))
	assert.Equal(t, "\033[1;95mbold\033[0m", Wrap("bold", Bold, FgHiMagenta))
}
