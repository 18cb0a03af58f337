package parser

import "sequent/internal/ir"

// parseStatement dispatches on the keywords that can only start a statement;
// everything else is a cut.
func (p *Parser) parseStatement() (ir.Statement[string], error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Kind == IDENTIFIER {
		switch tok.Text {
		case PRIM:
			return p.parsePrim()
		case SWITCH:
			return p.parseSwitch()
		case INVOKE:
			return p.parseInvoke()
		}
	}

	producer, err := p.parseProducer()
	if err != nil {
		return nil, err
	}
	return p.parseCut(producer)
}

// parseCut parses the `| consumer` that must follow a producer in statement
// position.
func (p *Parser) parseCut(producer ir.Producer[string]) (ir.Statement[string], error) {
	if _, err := p.expectPunctuation(PIPE); err != nil {
		return nil, err
	}

	consumer, err := p.parseConsumer()
	if err != nil {
		return nil, err
	}

	return &ir.Cut[string]{
		Loc:      producer.Location().To(consumer.Location()),
		Producer: producer,
		Consumer: consumer,
	}, nil
}

// parsePrim parses `prim[name](producers; consumers)`.
func (p *Parser) parsePrim() (ir.Statement[string], error) {
	prim, err := p.expectKeyword(PRIM)
	if err != nil {
		return nil, err
	}

	name, err := p.parseBracketedName()
	if err != nil {
		return nil, err
	}

	producers, consumers, end, err := p.parseArguments()
	if err != nil {
		return nil, err
	}

	return &ir.Prim[string]{
		Loc:       prim.Location.To(end.Location),
		Name:      name,
		Producers: producers,
		Consumers: consumers,
	}, nil
}

// parseInvoke parses `invoke[name](producers; consumers)`.
func (p *Parser) parseInvoke() (ir.Statement[string], error) {
	invoke, err := p.expectKeyword(INVOKE)
	if err != nil {
		return nil, err
	}

	name, err := p.parseBracketedName()
	if err != nil {
		return nil, err
	}

	producers, consumers, end, err := p.parseArguments()
	if err != nil {
		return nil, err
	}

	return &ir.Invoke[string]{
		Loc:       invoke.Location.To(end.Location),
		Name:      name,
		Producers: producers,
		Consumers: consumers,
	}, nil
}

// parseSwitch parses `switch producer { branch, ... }`.
func (p *Parser) parseSwitch() (ir.Statement[string], error) {
	sw, err := p.expectKeyword(SWITCH)
	if err != nil {
		return nil, err
	}

	scrutinee, err := p.parseProducer()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunctuation(LEFT_BRACE); err != nil {
		return nil, err
	}
	branches, end, err := sepEnd(p, RIGHT_BRACE, COMMA, p.parseBranch)
	if err != nil {
		return nil, err
	}

	return &ir.Switch[string]{
		Loc:       sw.Location.To(end.Location),
		Scrutinee: scrutinee,
		Branches:  branches,
	}, nil
}

// parseBranch parses `_ -> statement` or `literal -> statement`.
func (p *Parser) parseBranch() (ir.Branch[string], error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.IsIdentifier(DEFAULT):
		p.advance()
		body, err := p.parseArrowBody()
		if err != nil {
			return nil, err
		}
		return &ir.DefaultBranch[string]{
			Loc:  tok.Location.To(body.Location()),
			Body: body,
		}, nil

	case tok.IsLiteral():
		p.advance()
		body, err := p.parseArrowBody()
		if err != nil {
			return nil, err
		}
		return &ir.LiteralBranch[string]{
			Loc:     tok.Location.To(body.Location()),
			Literal: tok.Literal,
			Body:    body,
		}, nil
	}

	return nil, unexpected(tok, "literal", DEFAULT)
}

func (p *Parser) parseArrowBody() (ir.Statement[string], error) {
	if _, err := p.expectPunctuation(ARROW); err != nil {
		return nil, err
	}
	return p.parseStatement()
}

// parseBracketedName parses `[name]`.
func (p *Parser) parseBracketedName() (string, error) {
	if _, err := p.expectPunctuation(LEFT_BRACKET); err != nil {
		return "", err
	}
	name, err := p.name()
	if err != nil {
		return "", err
	}
	if _, err := p.expectPunctuation(RIGHT_BRACKET); err != nil {
		return "", err
	}
	return name, nil
}

// parseArguments parses `(producers; consumers)` and returns the closing
// parenthesis.
func (p *Parser) parseArguments() ([]ir.Producer[string], []ir.Consumer[string], Token, error) {
	if _, err := p.expectPunctuation(LEFT_PAREN); err != nil {
		return nil, nil, Token{}, err
	}
	producers, _, err := sepEnd(p, SEMICOLON, COMMA, p.parseProducer)
	if err != nil {
		return nil, nil, Token{}, err
	}
	consumers, end, err := sepEnd(p, RIGHT_PAREN, COMMA, p.parseConsumer)
	if err != nil {
		return nil, nil, Token{}, err
	}
	return producers, consumers, end, nil
}
