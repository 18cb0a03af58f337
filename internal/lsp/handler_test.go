package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sequent/internal/lsp"
)

const testURI = "file:///tmp/test.sq"

// recorder collects the diagnostics published through a glsp.Context.
type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published, "no diagnostics were published")
	return r.published[len(r.published)-1]
}

func open(t *testing.T, handler *lsp.SequentHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, LanguageID: "sequent", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	handler := lsp.NewSequentHandler("1.2.3")

	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	initResult, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, "sequent", initResult.ServerInfo.Name)
	assert.Equal(t, "1.2.3", *initResult.ServerInfo.Version)
	assert.True(t, *initResult.Capabilities.DocumentSymbolProvider.(*bool))

	tokens := initResult.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	assert.Equal(t, lsp.SemanticTokenTypes, tokens.Legend.TokenTypes)
	assert.Equal(t, lsp.SemanticTokenModifiers, tokens.Legend.TokenModifiers)
}

func TestDidOpenValidDocumentClearsDiagnostics(t *testing.T) {
	handler := lsp.NewSequentHandler("test")
	rec := &recorder{}

	open(t, handler, rec.context(), "def id(x; a) = x | a\n")

	last := rec.last(t)
	assert.Equal(t, testURI, last.URI)
	assert.NotNil(t, last.Diagnostics)
	assert.Empty(t, last.Diagnostics)
}

func TestDidOpenPublishesSyntaxError(t *testing.T) {
	handler := lsp.NewSequentHandler("test")
	rec := &recorder{}

	open(t, handler, rec.context(), "def f(x; a) x | a\n")

	diagnostics := rec.last(t).Diagnostics
	require.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 12},
		End:   protocol.Position{Line: 0, Character: 13},
	}, d.Range)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, "E0100", d.Code.Value)
	assert.Equal(t, "sequent-parser", *d.Source)
	assert.Contains(t, d.Message, `unexpected identifier "x", expected "="`)
}

func TestDiagnosticRangeCountsUTF16(t *testing.T) {
	handler := lsp.NewSequentHandler("test")
	rec := &recorder{}

	// "😀" is four bytes and two UTF-16 code units.
	open(t, handler, rec.context(), "def f(; k) =\n  \"😀\" @ k\n")

	diagnostics := rec.last(t).Diagnostics
	require.Len(t, diagnostics, 1)
	assert.Equal(t, protocol.Position{Line: 1, Character: 7}, diagnostics[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 8}, diagnostics[0].Range.End)
	assert.Equal(t, "E0102", diagnostics[0].Code.Value)
}

func TestDidChangeWholeDocument(t *testing.T) {
	handler := lsp.NewSequentHandler("test")
	rec := &recorder{}
	ctx := rec.context()

	open(t, handler, ctx, "def f(x; a) x | a\n")
	require.Len(t, rec.last(t).Diagnostics, 1)

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "def f(x; a) = x | a\n"},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestDidChangeRangedEdit(t *testing.T) {
	handler := lsp.NewSequentHandler("test")
	rec := &recorder{}
	ctx := rec.context()

	open(t, handler, ctx, "def f(x; a) x | a\n")

	// Insert "= " before the body.
	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{
					Start: protocol.Position{Line: 0, Character: 12},
					End:   protocol.Position{Line: 0, Character: 12},
				},
				Text: "= ",
			},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).Diagnostics)

	symbols, err := handler.TextDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	assert.Len(t, symbols, 1)
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	handler := lsp.NewSequentHandler("test")
	rec := &recorder{}
	ctx := rec.context()

	open(t, handler, ctx, "def f(x; a) x | a\n")
	require.NoError(t, handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	}))

	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestDocumentSymbols(t *testing.T) {
	handler := lsp.NewSequentHandler("test")
	ctx := (&recorder{}).context()

	open(t, handler, ctx, "def id(x; a) = x | a\n\ndef g(; k) = invoke[id](1; k)\n")

	result, err := handler.TextDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	symbols, ok := result.([]protocol.DocumentSymbol)
	require.True(t, ok)
	require.Len(t, symbols, 2)

	assert.Equal(t, "id", symbols[0].Name)
	assert.Equal(t, "(x; a)", *symbols[0].Detail)
	assert.Equal(t, protocol.SymbolKindFunction, symbols[0].Kind)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 20},
	}, symbols[0].Range)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 4},
		End:   protocol.Position{Line: 0, Character: 6},
	}, symbols[0].SelectionRange)

	assert.Equal(t, "g", symbols[1].Name)
	assert.Equal(t, "(; k)", *symbols[1].Detail)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 2, Character: 4},
		End:   protocol.Position{Line: 2, Character: 5},
	}, symbols[1].SelectionRange)
}

func TestSemanticTokensOfOpenDocument(t *testing.T) {
	handler := lsp.NewSequentHandler("test")
	ctx := (&recorder{}).context()

	open(t, handler, ctx, "def id(x; a) = x | a\n")

	decoded := semanticTokens(t, handler, ctx, testURI)
	require.Len(t, decoded, 7)

	assertToken(t, &decoded[0], 1, 1, 3, "keyword", nil)
	assertToken(t, &decoded[1], 1, 5, 2, "function", []string{"declaration", "definition"})
	assertToken(t, &decoded[2], 1, 8, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[3], 1, 11, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[4], 1, 16, 1, "variable", nil)
	assertToken(t, &decoded[5], 1, 18, 1, "operator", nil)
	assertToken(t, &decoded[6], 1, 20, 1, "variable", nil)
}

func TestSemanticTokensClassifyContext(t *testing.T) {
	handler := lsp.NewSequentHandler("test")
	ctx := (&recorder{}).context()

	open(t, handler, ctx, "def f(; k) = invoke[g](1; k)\n")

	decoded := semanticTokens(t, handler, ctx, testURI)
	require.Len(t, decoded, 7)

	assertToken(t, &decoded[0], 1, 1, 3, "keyword", nil)
	assertToken(t, &decoded[1], 1, 5, 1, "function", []string{"declaration", "definition"})
	assertToken(t, &decoded[2], 1, 9, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[3], 1, 14, 6, "keyword", nil)
	assertToken(t, &decoded[4], 1, 21, 1, "function", nil)
	assertToken(t, &decoded[5], 1, 24, 1, "number", nil)
	assertToken(t, &decoded[6], 1, 27, 1, "variable", nil)
}

func TestSemanticTokensUTF16Columns(t *testing.T) {
	handler := lsp.NewSequentHandler("test")
	ctx := (&recorder{}).context()

	open(t, handler, ctx, "def f(x; k) = \"😀\" | k\n")

	decoded := semanticTokens(t, handler, ctx, testURI)
	require.Len(t, decoded, 7)

	assertToken(t, &decoded[4], 1, 15, 4, "string", nil)
	assertToken(t, &decoded[5], 1, 20, 1, "operator", nil)
	assertToken(t, &decoded[6], 1, 22, 1, "variable", nil)
}

func TestSemanticTokensFromDisk(t *testing.T) {
	handler := lsp.NewSequentHandler("test")
	rec := &recorder{}

	absPath, err := filepath.Abs(filepath.Join("testdata", "id.sq"))
	require.NoError(t, err, "Failed to get absolute path")
	uri := "file://" + filepath.ToSlash(absPath)

	decoded := semanticTokens(t, handler, rec.context(), uri)
	require.Len(t, decoded, 7)
	assertToken(t, &decoded[1], 1, 5, 2, "function", []string{"declaration", "definition"})

	// Loading an unopened file publishes its diagnostics once.
	require.Len(t, rec.published, 1)
	assert.Empty(t, rec.published[0].Diagnostics)
}

func TestSemanticTokensMissingFile(t *testing.T) {
	handler := lsp.NewSequentHandler("test")

	_, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///does/not/exist.sq"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func semanticTokens(t *testing.T, handler *lsp.SequentHandler, ctx *glsp.Context, uri string) []DecodedToken {
	t.Helper()

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	return decoded
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
