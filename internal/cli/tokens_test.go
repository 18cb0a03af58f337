package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensText(t *testing.T) {
	stdout, _, err := execute(t, "tokens", "testdata/good.sq")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "0..3       IDENTIFIER   def", lines[0])
	assert.Equal(t, "6..7       PUNCTUATION  (", lines[2])
	assert.Equal(t, "19..20     IDENTIFIER   a", lines[10])
}

func TestTokensJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "tokens", "testdata/good.sq")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   []TokenInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 11)

	assert.Equal(t, TokenInfo{Kind: "PUNCTUATION", Text: "=", Start: 13, End: 14, Line: 1, Column: 14}, resp.Data[7])
}

func TestTokensLexError(t *testing.T) {
	stdout, stderr, err := execute(t, "tokens", "testdata/lex.sq")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	// Tokens before the error are still printed.
	assert.Contains(t, stdout, "IDENTIFIER   x")
	assert.Contains(t, stderr, "error[E0102]: unexpected character: '@'")
}
