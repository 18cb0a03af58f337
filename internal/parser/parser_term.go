package parser

import "sequent/internal/ir"

// parseProducer parses `do name statement`, a constructor application, a
// variable or a literal.
func (p *Parser) parseProducer() (ir.Producer[string], error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.IsIdentifier(DO):
		return p.parseDo()
	case tok.Kind == IDENTIFIER:
		return p.parseVariable()
	case tok.IsLiteral():
		p.advance()
		return &ir.Lit[string]{Loc: tok.Location, Literal: tok.Literal}, nil
	}

	return nil, unexpected(tok, DO, "identifier", "literal")
}

func (p *Parser) parseDo() (ir.Producer[string], error) {
	do, err := p.expectKeyword(DO)
	if err != nil {
		return nil, err
	}

	name, err := p.name()
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ir.Do[string]{
		Loc:  do.Location.To(body.Location()),
		Name: name,
		Body: body,
	}, nil
}

// parseVariable parses an identifier. An identifier followed by '(' is the
// tag of a constructor application instead.
func (p *Parser) parseVariable() (ir.Producer[string], error) {
	name, loc, err := p.identifier()
	if err != nil {
		return nil, err
	}

	if p.checkPunctuation(LEFT_PAREN) {
		return p.parseConstruct(name, loc)
	}

	return &ir.Var[string]{Loc: loc, Name: name}, nil
}

// parseConstruct parses the argument list of `Tag(producers; consumers)`.
func (p *Parser) parseConstruct(tag string, loc ir.Location) (ir.Producer[string], error) {
	producers, consumers, end, err := p.parseArguments()
	if err != nil {
		return nil, err
	}

	return &ir.Construct[string]{
		Loc:       loc.To(end.Location),
		Tag:       tag,
		Producers: producers,
		Consumers: consumers,
	}, nil
}

// parseConsumer parses `then name statement`, `match { ... }` or a
// consumer variable.
func (p *Parser) parseConsumer() (ir.Consumer[string], error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.IsIdentifier(THEN):
		return p.parseThen()
	case tok.IsIdentifier(MATCH):
		return p.parseMatch()
	case tok.Kind == IDENTIFIER:
		return p.parseCovariable()
	}

	return nil, unexpected(tok, THEN, MATCH, "identifier")
}

func (p *Parser) parseThen() (ir.Consumer[string], error) {
	then, err := p.expectKeyword(THEN)
	if err != nil {
		return nil, err
	}

	name, err := p.name()
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ir.Then[string]{
		Loc:  then.Location.To(body.Location()),
		Name: name,
		Body: body,
	}, nil
}

// parseMatch parses `match { clause, ... }`.
func (p *Parser) parseMatch() (ir.Consumer[string], error) {
	match, err := p.expectKeyword(MATCH)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPunctuation(LEFT_BRACE); err != nil {
		return nil, err
	}
	clauses, end, err := sepEnd(p, RIGHT_BRACE, COMMA, p.parseClause)
	if err != nil {
		return nil, err
	}

	return &ir.Match[string]{
		Loc:     match.Location.To(end.Location),
		Clauses: clauses,
	}, nil
}

// parseClause parses `Tag(params; returns) -> statement`.
func (p *Parser) parseClause() (*ir.Clause[string], error) {
	pattern, loc, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	body, err := p.parseArrowBody()
	if err != nil {
		return nil, err
	}

	return &ir.Clause[string]{
		Loc:     loc.To(body.Location()),
		Pattern: pattern,
		Body:    body,
	}, nil
}

func (p *Parser) parsePattern() (ir.Pattern[string], ir.Location, error) {
	tag, loc, err := p.identifier()
	if err != nil {
		return ir.Pattern[string]{}, ir.Location{}, err
	}

	if _, err := p.expectPunctuation(LEFT_PAREN); err != nil {
		return ir.Pattern[string]{}, ir.Location{}, err
	}
	parameters, _, err := p.nameList(SEMICOLON)
	if err != nil {
		return ir.Pattern[string]{}, ir.Location{}, err
	}
	returns, end, err := p.nameList(RIGHT_PAREN)
	if err != nil {
		return ir.Pattern[string]{}, ir.Location{}, err
	}

	return ir.Pattern[string]{
		Tag:        tag,
		Parameters: parameters,
		Returns:    returns,
	}, loc.To(end.Location), nil
}

func (p *Parser) parseCovariable() (ir.Consumer[string], error) {
	name, loc, err := p.identifier()
	if err != nil {
		return nil, err
	}
	return &ir.Covar[string]{Loc: loc, Name: name}, nil
}
