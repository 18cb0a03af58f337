package parser

import (
	"errors"
	"io"

	"sequent/internal/ir"
)

// peek lexes the next token from a copy of the lexer, leaving the cursor
// where it is.
func (p *Parser) peek() (Token, error) {
	lexer := p.lexer
	tok, err := lexer.Next()
	if errors.Is(err, io.EOF) {
		return Token{}, &UnexpectedEOFError{Last: p.last}
	}
	return tok, err
}

// advance consumes the next token. It is only called after peek has
// succeeded, so lexing cannot fail here.
func (p *Parser) advance() Token {
	tok, err := p.lexer.Next()
	if err == nil {
		p.last = tok.Location
	}
	return tok
}

func (p *Parser) isAtEnd() bool {
	lexer := p.lexer
	_, err := lexer.Next()
	return errors.Is(err, io.EOF)
}

// checkPunctuation reports whether the next token is the given punctuation.
func (p *Parser) checkPunctuation(punctuation string) bool {
	tok, err := p.peek()
	return err == nil && tok.IsPunctuation(punctuation)
}

// expectKeyword consumes the next token if it is the identifier keyword.
func (p *Parser) expectKeyword(keyword string) (Token, error) {
	tok, err := p.peek()
	if err != nil {
		return Token{}, err
	}
	if !tok.IsIdentifier(keyword) {
		return Token{}, unexpected(tok, keyword)
	}
	return p.advance(), nil
}

// expectPunctuation consumes the next token if it is the given punctuation.
func (p *Parser) expectPunctuation(punctuation string) (Token, error) {
	tok, err := p.peek()
	if err != nil {
		return Token{}, err
	}
	if !tok.IsPunctuation(punctuation) {
		return Token{}, unexpected(tok, punctuation)
	}
	return p.advance(), nil
}

// identifier consumes any identifier, keywords included.
func (p *Parser) identifier() (string, ir.Location, error) {
	tok, err := p.peek()
	if err != nil {
		return "", ir.Location{}, err
	}
	if tok.Kind != IDENTIFIER {
		return "", ir.Location{}, unexpected(tok, "identifier")
	}
	p.advance()
	return tok.Text, tok.Location, nil
}

func (p *Parser) name() (string, error) {
	name, _, err := p.identifier()
	return name, err
}

// sepEnd parses elements separated by sep up to and including end. The list
// may be empty and may carry a trailing separator. It returns the end token.
func sepEnd[T any](p *Parser, end, sep string, element func() (T, error)) ([]T, Token, error) {
	items := []T{}

	for !p.isAtEnd() {
		tok, err := p.peek()
		if err != nil {
			return nil, Token{}, err
		}
		if tok.IsPunctuation(end) {
			return items, p.advance(), nil
		}

		item, err := element()
		if err != nil {
			return nil, Token{}, err
		}
		items = append(items, item)

		tok, err = p.peek()
		if err != nil {
			return nil, Token{}, err
		}
		switch {
		case tok.IsPunctuation(sep):
			p.advance()
		case tok.IsPunctuation(end):
			return items, p.advance(), nil
		default:
			return nil, Token{}, unexpected(tok, sep, end)
		}
	}

	return nil, Token{}, &UnexpectedEOFError{Last: p.last}
}

// nameList parses identifiers separated by commas up to end.
func (p *Parser) nameList(end string) ([]string, Token, error) {
	return sepEnd(p, end, COMMA, p.name)
}
