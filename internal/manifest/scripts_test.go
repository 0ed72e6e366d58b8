// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptTable_Resolve(t *testing.T) {
	table := NewScriptTable(map[string]string{
		"hello":  "echo hi $1",
		"spaced": "  echo padded  ",
	})

	t.Run("hit returns the body unchanged", func(t *testing.T) {
		body, err := table.Resolve("spaced")
		require.NoError(t, err)
		assert.Equal(t, "  echo padded  ", body)
	})

	t.Run("lookup is exact", func(t *testing.T) {
		_, err := table.Resolve("Hello")
		require.ErrorIs(t, err, ErrScriptNotFound)
	})

	t.Run("miss carries the requested name", func(t *testing.T) {
		_, err := table.Resolve("missing")

		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "missing", nf.Name)
		assert.Equal(t, `script "missing" not found`, err.Error())
	})
}

func TestScriptTable_Empty(t *testing.T) {
	table := NewScriptTable(nil)

	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Names())

	_, err := table.Resolve("anything")
	require.ErrorIs(t, err, ErrScriptNotFound)
}

func TestNewScriptTable_Copies(t *testing.T) {
	scripts := map[string]string{"a": "echo a"}
	table := NewScriptTable(scripts)

	scripts["b"] = "echo b"

	assert.Equal(t, []string{"a"}, table.Names())
}
