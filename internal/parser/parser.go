// Package parser turns sequent source text into core IR.
//
// The lexer is pull based and never buffers: the parser looks ahead by lexing
// from a copy of its cursor, and commits by lexing from the cursor itself.
// The first error aborts the parse.
package parser

import (
	"sequent/internal/ir"
)

type Parser struct {
	lexer Lexer
	last  ir.Location
}

func NewParser(lexer Lexer) *Parser {
	return &Parser{
		lexer: lexer,
		last:  ir.Location{File: lexer.File(), Start: lexer.Cursor(), End: lexer.Cursor()},
	}
}

// Parse reads definitions until the input is exhausted.
func (p *Parser) Parse() (ir.Program[string], error) {
	program := ir.Program[string]{}

	for !p.isAtEnd() {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		program = append(program, def)
	}

	return program, nil
}
