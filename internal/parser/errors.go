package parser

import (
	"fmt"
	"strings"

	"sequent/internal/ir"
)

// Error is implemented by every error the lexer and parser return.
type Error interface {
	error
	Located() ir.Location
}

// UnexpectedTokenError reports a token that none of the Expected spellings
// match. Expected entries are either literal spellings or the class names
// "identifier" and "literal".
type UnexpectedTokenError struct {
	Expected []string
	Actual   Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s, expected %s", e.Actual, FormatExpected(e.Expected))
}

func (e *UnexpectedTokenError) Located() ir.Location { return e.Actual.Location }

// UnexpectedEOFError reports that input ended early. Last is the location of
// the last token consumed.
type UnexpectedEOFError struct {
	Last ir.Location
}

func (e *UnexpectedEOFError) Error() string {
	return "unexpected end of file"
}

func (e *UnexpectedEOFError) Located() ir.Location { return e.Last }

// LexError reports malformed input found by the lexer.
type LexError struct {
	Location ir.Location
	Detail   string
}

func (e *LexError) Error() string {
	return e.Detail
}

func (e *LexError) Located() ir.Location { return e.Location }

// FormatExpected renders a list of expected spellings for a message:
// `"="`, `"," or ")"`, `"do", identifier or literal`.
func FormatExpected(expected []string) string {
	parts := make([]string, len(expected))
	for i, e := range expected {
		switch e {
		case "identifier", "literal":
			parts[i] = e
		default:
			parts[i] = fmt.Sprintf("%q", e)
		}
	}
	switch len(parts) {
	case 0:
		return "nothing"
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
	}
}

func unexpected(actual Token, expected ...string) error {
	return &UnexpectedTokenError{Expected: expected, Actual: actual}
}
