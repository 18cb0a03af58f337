package lsp

import (
	"slices"

	"sequent/internal/ir"
	"sequent/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const (
	modDeclaration = 1 << iota
	modDefinition
)

// collectSemanticTokens classifies the tokens of source. Keywords are
// contextual, so every identifier is classified from its neighbours. Lexing
// stops at the first lexical error; the tokens before it are still returned.
func collectSemanticTokens(source string) []SemanticToken {
	tokens := lexAll(source)
	c := &classifier{tokens: tokens}

	var out []SemanticToken
	for i, tok := range tokens {
		tokenType, modifiers, ok := c.classify(i)
		if !ok {
			continue
		}
		out = append(out, makeToken(source, tok.Location, tokenType, modifiers)...)
	}
	return out
}

func lexAll(source string) []parser.Token {
	var tokens []parser.Token
	lexer := parser.NewLexer("", source)
	for {
		tok, err := lexer.Next()
		if err != nil {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

type classifier struct {
	tokens    []parser.Token
	signature bool // between the parentheses after a definition name
	brackets  bool // between the brackets of invoke or prim
}

func (c *classifier) at(i int) parser.Token {
	if i < 0 || i >= len(c.tokens) {
		return parser.Token{Kind: parser.PUNCTUATION}
	}
	return c.tokens[i]
}

func (c *classifier) classify(i int) (string, int, bool) {
	tok := c.tokens[i]
	prev, next := c.at(i-1), c.at(i+1)

	switch tok.Kind {
	case parser.PUNCTUATION:
		switch tok.Text {
		case parser.ARROW, parser.PIPE:
			return "operator", 0, true
		case parser.LEFT_PAREN:
			c.signature = prev.Kind == parser.IDENTIFIER && c.at(i-2).IsIdentifier(parser.DEF)
		case parser.RIGHT_PAREN:
			c.signature = false
		case parser.LEFT_BRACKET:
			c.brackets = prev.IsIdentifier(parser.INVOKE) || prev.IsIdentifier(parser.PRIM)
		case parser.RIGHT_BRACKET:
			c.brackets = false
		}
		return "", 0, false

	case parser.LITERAL:
		switch tok.Literal.Kind {
		case ir.StringLiteral:
			return "string", 0, true
		case ir.BoolLiteral:
			return "keyword", 0, true
		}
		return "number", 0, true
	}

	switch {
	case c.brackets:
		return "function", 0, true
	case c.signature:
		return "parameter", modDeclaration, true
	case prev.IsIdentifier(parser.DEF):
		return "function", modDeclaration | modDefinition, true
	case parser.KEYWORDS[tok.Text] || tok.Text == parser.DEFAULT:
		return "keyword", 0, true
	case prev.IsIdentifier(parser.DO) || prev.IsIdentifier(parser.THEN):
		return "variable", modDeclaration, true
	case next.IsPunctuation(parser.LEFT_PAREN):
		return "type", 0, true
	}
	return "variable", 0, true
}

// makeToken creates a semantic token for a location. Tokens spanning more
// than one line are dropped.
func makeToken(source string, loc ir.Location, tokenType string, modifiers int) []SemanticToken {
	start, end := positionOf(source, loc.Start), positionOf(source, loc.End)
	if start.Line != end.Line || end.Character <= start.Character {
		return nil
	}

	return []SemanticToken{{
		Line:           start.Line,
		StartChar:      start.Character,
		Length:         end.Character - start.Character,
		TokenType:      slices.Index(SemanticTokenTypes, tokenType),
		TokenModifiers: modifiers,
	}}
}

// encodeSemanticTokens packs tokens into the LSP wire format using
// delta-line, delta-start compression.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}
