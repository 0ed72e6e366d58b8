// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "signaled", StatusSignaled.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestOutcome_Success(t *testing.T) {
	assert.True(t, Outcome{Status: StatusSuccess}.Success())
	assert.False(t, Outcome{Status: StatusFailed, ExitCode: 3}.Success())
	assert.False(t, Outcome{Status: StatusSignaled, ExitCode: -1}.Success())
}
