package parser

import (
	"fmt"

	"sequent/internal/ir"
)

type TokenKind int

const (
	IDENTIFIER TokenKind = iota
	LITERAL
	PUNCTUATION
)

func (k TokenKind) String() string {
	switch k {
	case IDENTIFIER:
		return "IDENTIFIER"
	case LITERAL:
		return "LITERAL"
	case PUNCTUATION:
		return "PUNCTUATION"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one lexeme. Text holds the identifier or punctuation spelling and
// the source slice of a literal; Literal is only meaningful for LITERAL.
type Token struct {
	Kind     TokenKind
	Text     string
	Literal  ir.Literal
	Location ir.Location
}

func (t Token) IsIdentifier(text string) bool {
	return t.Kind == IDENTIFIER && t.Text == text
}

func (t Token) IsPunctuation(text string) bool {
	return t.Kind == PUNCTUATION && t.Text == text
}

func (t Token) IsLiteral() bool {
	return t.Kind == LITERAL
}

func (t Token) String() string {
	switch t.Kind {
	case IDENTIFIER:
		return fmt.Sprintf("identifier %q", t.Text)
	case LITERAL:
		return fmt.Sprintf("%s literal %s", t.Literal.Kind, t.Literal.Text())
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}
