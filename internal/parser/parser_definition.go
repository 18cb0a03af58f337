package parser

import "sequent/internal/ir"

// parseDefinition parses `def name(params; returns) = statement`.
func (p *Parser) parseDefinition() (*ir.Definition[string], error) {
	def, err := p.expectKeyword(DEF)
	if err != nil {
		return nil, err
	}

	name, err := p.name()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunctuation(LEFT_PAREN); err != nil {
		return nil, err
	}
	parameters, _, err := p.nameList(SEMICOLON)
	if err != nil {
		return nil, err
	}
	returns, _, err := p.nameList(RIGHT_PAREN)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunctuation(EQUAL); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ir.Definition[string]{
		Loc:        def.Location.To(body.Location()),
		Name:       name,
		Parameters: parameters,
		Returns:    returns,
		Body:       body,
	}, nil
}
