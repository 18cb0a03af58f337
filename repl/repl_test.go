// SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string) string {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	require.NoError(t, Start(strings.NewReader(input), &out))
	return out.String()
}

func TestSingleLineDefinition(t *testing.T) {
	out := run(t, "def id(x; a) = x | a\n")
	assert.Equal(t, ">> def id(x; a) =\n  x | a\n>> \n", out)
}

func TestDefinitionContinuesOverLines(t *testing.T) {
	out := run(t, "def id(x; a) =\n  x | a\n")
	assert.Equal(t, ">> .. def id(x; a) =\n  x | a\n>> \n", out)
}

func TestBlankLinesAreSkipped(t *testing.T) {
	out := run(t, "\n   \n")
	assert.Equal(t, ">> >> >> \n", out)
}

func TestSyntaxErrorIsRendered(t *testing.T) {
	out := run(t, "def f(x; a) x | a\ndef id(x; a) = x | a\n")

	assert.Contains(t, out, "error[E0100]: unexpected identifier \"x\", expected \"=\"")
	assert.Contains(t, out, "<repl>:1:13")
	// The next definition is read on its own.
	assert.Contains(t, out, "def id(x; a) =\n  x | a\n")
}

func TestBlankLineEndsContinuation(t *testing.T) {
	out := run(t, "def f(\n\n")

	assert.True(t, strings.HasPrefix(out, ">> .. "))
	assert.Contains(t, out, "error[E0101]")
	assert.True(t, strings.HasSuffix(out, ">> \n"))
}
