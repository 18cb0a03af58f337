package parser

import (
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"sequent/internal/ir"
)

// Lexer turns source text into tokens on demand. Its only state is a byte
// cursor, so copying a Lexer saves its position and lexing the copy yields
// exactly the tokens the original would.
type Lexer struct {
	file   string
	source string
	cursor int
}

func NewLexer(file, source string) Lexer {
	return Lexer{file: file, source: source}
}

func (l *Lexer) File() string { return l.file }
func (l *Lexer) Cursor() int  { return l.cursor }

// Next returns the next token, or io.EOF once only whitespace remains.
// Malformed input yields a *LexError.
func (l *Lexer) Next() (Token, error) {
	l.skipWhile(unicode.IsSpace)
	if l.isAtEnd() {
		return Token{}, io.EOF
	}

	start := l.cursor
	c := l.peek()
	switch {
	case isIdentifierStart(c):
		return l.scanIdentifier(start), nil
	case isDigit(c):
		return l.scanNumber(start)
	case c == '"':
		return l.scanString(start)
	}

	l.advance()
	switch c {
	case '(', ')', '{', '}', '[', ']', '<', '>', ',', ';', ':', '.', '=', '|':
		return l.makeToken(PUNCTUATION, start), nil
	case '-':
		if l.peek() == '>' {
			l.advance()
			return l.makeToken(PUNCTUATION, start), nil
		}
		return Token{}, l.errorAt(start, "unexpected character: '-' (did you mean '->'?)")
	default:
		return Token{}, l.errorAt(start, fmt.Sprintf("unexpected character: %q", c))
	}
}

func (l *Lexer) scanIdentifier(start int) Token {
	text := l.skipWhile(isIdentifierContinue)
	tok := l.makeToken(IDENTIFIER, start)
	switch text {
	case "true":
		tok.Kind = LITERAL
		tok.Literal = ir.Bool(true)
	case "false":
		tok.Kind = LITERAL
		tok.Literal = ir.Bool(false)
	}
	return tok
}

// scanNumber reads a run of digits, optionally followed by '.' and another
// (possibly empty) run of digits, which makes it a float.
func (l *Lexer) scanNumber(start int) (Token, error) {
	l.skipWhile(isDigit)
	if l.peek() != '.' {
		text := l.source[start:l.cursor]
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Token{}, l.errorAt(start, fmt.Sprintf("integer literal %s is out of range", text))
		}
		tok := l.makeToken(LITERAL, start)
		tok.Literal = ir.Int(v)
		return tok, nil
	}

	l.advance()
	l.skipWhile(isDigit)
	text := l.source[start:l.cursor]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, l.errorAt(start, fmt.Sprintf("float literal %s is out of range", text))
	}
	tok := l.makeToken(LITERAL, start)
	tok.Literal = ir.Float(v)
	return tok, nil
}

// scanString reads up to the closing quote. A backslash makes the next rune
// part of the string; escapes are not interpreted.
func (l *Lexer) scanString(start int) (Token, error) {
	l.advance()
	for {
		if l.isAtEnd() {
			return Token{}, l.errorAt(start, "unterminated string literal")
		}
		c := l.advance()
		if c == '"' {
			break
		}
		if c == '\\' && !l.isAtEnd() {
			l.advance()
		}
	}
	tok := l.makeToken(LITERAL, start)
	tok.Literal = ir.String(l.source[start+1 : l.cursor-1])
	return tok, nil
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.cursor:])
	return r
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.cursor:])
	l.cursor += size
	return r
}

// skipWhile advances past every rune matching pred and returns the text it
// skipped.
func (l *Lexer) skipWhile(pred func(rune) bool) string {
	start := l.cursor
	for !l.isAtEnd() && pred(l.peek()) {
		l.advance()
	}
	return l.source[start:l.cursor]
}

func (l *Lexer) isAtEnd() bool {
	return l.cursor >= len(l.source)
}

func (l *Lexer) location(start int) ir.Location {
	return ir.Location{File: l.file, Start: start, End: l.cursor}
}

func (l *Lexer) makeToken(kind TokenKind, start int) Token {
	return Token{
		Kind:     kind,
		Text:     l.source[start:l.cursor],
		Location: l.location(start),
	}
}

func (l *Lexer) errorAt(start int, detail string) error {
	return &LexError{Location: l.location(start), Detail: detail}
}

// Helper functions.

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// Letters include letter-numbers and the combining signs of alphabetic scripts.
func isIdentifierStart(c rune) bool {
	return unicode.In(c, unicode.Letter, unicode.Nl, unicode.Other_Alphabetic) || c == '_'
}

func isIdentifierContinue(c rune) bool {
	return isIdentifierStart(c) || unicode.IsDigit(c)
}

// Tokenize lexes the whole source.
func Tokenize(file, source string) ([]Token, error) {
	lexer := NewLexer(file, source)
	var tokens []Token
	for {
		tok, err := lexer.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}
