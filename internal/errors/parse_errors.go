package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"sequent/internal/ir"
	"sequent/internal/parser"
)

// ErrorBuilder provides a fluent interface for creating errors with suggestions
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, loc ir.Location) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Location: loc,
		},
	}
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *ErrorBuilder) WithReplacement(message, replacement string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// FromParseError converts an error returned by the lexer or parser into a
// CompilerError. Errors of any other kind keep their message and get no
// code or location.
func FromParseError(err error) CompilerError {
	var (
		tokErr *parser.UnexpectedTokenError
		eofErr *parser.UnexpectedEOFError
		lexErr *parser.LexError
	)

	switch {
	case stderrors.As(err, &tokErr):
		return UnexpectedToken(tokErr)
	case stderrors.As(err, &eofErr):
		return UnexpectedEOF(eofErr)
	case stderrors.As(err, &lexErr):
		return Lexical(lexErr)
	}

	return CompilerError{Level: Error, Message: err.Error()}
}

// UnexpectedToken creates an error for a token the parser could not use
func UnexpectedToken(err *parser.UnexpectedTokenError) CompilerError {
	builder := NewError(ErrorUnexpectedToken, err.Error(), err.Actual.Location)

	if err.Actual.Kind == parser.IDENTIFIER {
		similar := findSimilarNames(err.Actual.Text, spellings(err.Expected))
		switch len(similar) {
		case 0:
		case 1:
			builder = builder.WithReplacement(fmt.Sprintf("did you mean '%s'?", similar[0]), similar[0])
		default:
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
		}
	}

	if err.Actual.IsIdentifier(parser.DEF) {
		builder = builder.WithNote("a new definition starts here; the previous one is incomplete")
	}

	return builder.Build()
}

// UnexpectedEOF creates an error for input that ends inside a definition
func UnexpectedEOF(err *parser.UnexpectedEOFError) CompilerError {
	return NewError(ErrorUnexpectedEOF, err.Error(), err.Last).
		WithNote("the last complete token is marked").
		WithHelp("check for a missing closing bracket or an unfinished statement").
		Build()
}

// Lexical creates an error for malformed input found by the lexer
func Lexical(err *parser.LexError) CompilerError {
	builder := NewError(ErrorLexical, err.Detail, err.Location)

	switch {
	case strings.HasPrefix(err.Detail, "unterminated string"):
		builder = builder.WithHelp("add a closing '\"'; a backslash escapes the character after it")
	case strings.HasPrefix(err.Detail, "integer literal"):
		builder = builder.WithNote("integer literals are 64-bit signed")
	}

	return builder.Build()
}

// spellings drops the token class names from an expected list, leaving the
// keywords and punctuation a misspelled identifier could have meant.
func spellings(expected []string) []string {
	var out []string
	for _, e := range expected {
		if e != "identifier" && e != "literal" && parser.KEYWORDS[e] {
			out = append(out, e)
		}
	}
	return out
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 && candidate != target {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
