// Package grammar is a declarative reference grammar for sequent source,
// built with participle. It accepts the same language as the hand-written
// parser in internal/parser and is used to cross-check it and to export the
// grammar as EBNF.
package grammar

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var parser = participle.MustBuild[File](
	participle.Lexer(SequentLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(3),
)

// EBNF returns the grammar in participle's EBNF notation.
func EBNF() string {
	return parser.String()
}

// ParseString parses source into a concrete syntax tree.
func ParseString(path, source string) (*File, error) {
	return parser.ParseString(path, source)
}

func ParseFile(path string) (*File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// FormatError renders a participle error with a caret under the offending
// column. Errors without a position are rendered on one line.
func FormatError(source string, err error) string {
	red := color.New(color.FgRed).SprintFunc()
	hiRed := color.New(color.FgHiRed).SprintFunc()

	pe, ok := err.(participle.Error)
	if !ok {
		return red(fmt.Sprintf("Unexpected error: %s", err)) + "\n"
	}

	pos := pe.Position()
	lines := strings.Split(source, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return red(fmt.Sprintf("Syntax error at unknown location: %s", err)) + "\n"
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	var b strings.Builder
	b.WriteString(red(fmt.Sprintf("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)) + "\n")
	b.WriteString(line + "\n")
	b.WriteString(hiRed(caret) + "\n")
	b.WriteString(fmt.Sprintf("→ %s\n", pe.Message()))
	return b.String()
}
