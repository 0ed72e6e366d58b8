// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package invocation

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const binaryPath = "/home/user/.cargo/bin/cargo-run-script"

func TestBuild(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		body      string
		forwarded []string
		want      string
	}{
		{
			name:      "no placeholders",
			body:      "cargo build --release",
			forwarded: []string{"ignored"},
			want:      "cargo build --release",
		},
		{
			name:      "first positional",
			body:      "echo hi $1",
			forwarded: []string{"world"},
			want:      "echo hi world",
		},
		{
			name:      "binary path",
			body:      "$0 --version",
			forwarded: nil,
			want:      binaryPath + " --version",
		},
		{
			name:      "repeated placeholders",
			body:      "echo $1 $1 $0 $0",
			forwarded: []string{"a"},
			want:      "echo a a " + binaryPath + " " + binaryPath,
		},
		{
			name:      "missing argument is left as written",
			body:      "echo $1 $2 $3",
			forwarded: []string{"a", "b"},
			want:      "echo a b $3",
		},
		{
			name:      "no forwarded arguments",
			body:      "echo $1",
			forwarded: []string{},
			want:      "echo $1",
		},
		{
			name:      "multi digit index",
			body:      "echo $10 $1",
			forwarded: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "ten"},
			want:      "echo ten 1",
		},
		{
			name:      "multi digit index beyond arguments is not split",
			body:      "echo $12",
			forwarded: []string{"one"},
			want:      "echo $12",
		},
		{
			name:      "dollar zero is not extended",
			body:      "echo $01",
			forwarded: []string{"one"},
			want:      "echo " + binaryPath + "1",
		},
		{
			name:      "replacement text is not rescanned",
			body:      "echo $1 $2",
			forwarded: []string{"$2", "$0"},
			want:      "echo $2 $0",
		},
		{
			name:      "shell variables untouched",
			body:      "echo $HOME $$ ${1} $",
			forwarded: []string{"x"},
			want:      "echo $HOME $$ ${1} $",
		},
		{
			name:      "placeholder adjacent to text",
			body:      "cp $1.bak $2/",
			forwarded: []string{"file", "dir"},
			want:      "cp file.bak dir/",
		},
		{
			name:      "argument with whitespace is not quoted",
			body:      "echo $1",
			forwarded: []string{"hello world"},
			want:      "echo hello world",
		},
		{
			name:      "huge index is kept",
			body:      "echo $99999999999999999999999",
			forwarded: []string{"a"},
			want:      "echo $99999999999999999999999",
		},
		{
			name:      "empty body",
			body:      "",
			forwarded: []string{"a"},
			want:      "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Build(tc.body, binaryPath, tc.forwarded)
			assert.Equal(t, tc.want, got.CommandLine)
		})
	}
}

func TestBuild_AllPositionalsReplaced(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 12; n++ {
		forwarded := make([]string, n)
		placeholders := make([]string, 0, n+2)
		want := make([]string, 0, n+2)

		placeholders = append(placeholders, "$0")
		want = append(want, binaryPath)

		for i := range n {
			forwarded[i] = "arg" + strconv.Itoa(i+1)
			placeholders = append(placeholders, "$"+strconv.Itoa(i+1))
			want = append(want, forwarded[i])
		}

		beyond := "$" + strconv.Itoa(n+1)
		placeholders = append(placeholders, beyond)
		want = append(want, beyond)

		got := Build(strings.Join(placeholders, " "), binaryPath, forwarded)
		assert.Equal(t, strings.Join(want, " "), got.CommandLine, "with %d arguments", n)
	}
}

func TestBuild_NoArgumentsOnlyTouchesDollarZero(t *testing.T) {
	t.Parallel()

	body := "cargo run -- $1 $2 && echo $0"
	got := Build(body, binaryPath, nil)

	assert.Equal(t, strings.ReplaceAll(body, "$0", binaryPath), got.CommandLine)
}
