package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"sequent/internal/ir"
)

// ToIR lowers the syntax tree into core IR. Locations come from participle
// positions; an end position is where the next token starts, so spans may
// include trailing whitespace.
func (f *File) ToIR() ir.Program[string] {
	program := make(ir.Program[string], len(f.Definitions))
	for i, def := range f.Definitions {
		program[i] = &ir.Definition[string]{
			Loc:        span(def.Pos, def.EndPos),
			Name:       def.Name,
			Parameters: names(def.Parameters),
			Returns:    names(def.Returns),
			Body:       def.Body.toIR(),
		}
	}
	return program
}

func span(start, end lexer.Position) ir.Location {
	return ir.Location{File: start.Filename, Start: start.Offset, End: max(start.Offset, end.Offset)}
}

func names(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func (s *Statement) toIR() ir.Statement[string] {
	loc := span(s.Pos, s.EndPos)

	switch {
	case s.Prim != nil:
		producers, consumers := s.Prim.Arguments.toIR()
		return &ir.Prim[string]{Loc: loc, Name: s.Prim.Name, Producers: producers, Consumers: consumers}
	case s.Invoke != nil:
		producers, consumers := s.Invoke.Arguments.toIR()
		return &ir.Invoke[string]{Loc: loc, Name: s.Invoke.Name, Producers: producers, Consumers: consumers}
	case s.Switch != nil:
		branches := make([]ir.Branch[string], len(s.Switch.Branches))
		for i, b := range s.Switch.Branches {
			branches[i] = b.toIR()
		}
		return &ir.Switch[string]{Loc: loc, Scrutinee: s.Switch.Scrutinee.toIR(), Branches: branches}
	case s.Cut != nil:
		return &ir.Cut[string]{Loc: loc, Producer: s.Cut.Producer.toIR(), Consumer: s.Cut.Consumer.toIR()}
	}
	return nil
}

func (b *Branch) toIR() ir.Branch[string] {
	loc := span(b.Pos, b.EndPos)
	if b.Default {
		return &ir.DefaultBranch[string]{Loc: loc, Body: b.Body.toIR()}
	}
	return &ir.LiteralBranch[string]{Loc: loc, Literal: b.Literal.toIR(), Body: b.Body.toIR()}
}

func (a *Arguments) toIR() ([]ir.Producer[string], []ir.Consumer[string]) {
	producers := make([]ir.Producer[string], len(a.Producers))
	for i, p := range a.Producers {
		producers[i] = p.toIR()
	}
	consumers := make([]ir.Consumer[string], len(a.Consumers))
	for i, c := range a.Consumers {
		consumers[i] = c.toIR()
	}
	return producers, consumers
}

func (p *Producer) toIR() ir.Producer[string] {
	loc := span(p.Pos, p.EndPos)

	switch {
	case p.Do != nil:
		return &ir.Do[string]{Loc: loc, Name: p.Do.Name, Body: p.Do.Body.toIR()}
	case p.Literal != nil:
		return &ir.Lit[string]{Loc: loc, Literal: p.Literal.toIR()}
	case p.Construct != nil:
		producers, consumers := p.Construct.Arguments.toIR()
		return &ir.Construct[string]{Loc: loc, Tag: p.Construct.Tag, Producers: producers, Consumers: consumers}
	case p.Var != nil:
		return &ir.Var[string]{Loc: loc, Name: *p.Var}
	}
	return nil
}

func (c *Consumer) toIR() ir.Consumer[string] {
	loc := span(c.Pos, c.EndPos)

	switch {
	case c.Then != nil:
		return &ir.Then[string]{Loc: loc, Name: c.Then.Name, Body: c.Then.Body.toIR()}
	case c.Match != nil:
		clauses := make([]*ir.Clause[string], len(c.Match.Clauses))
		for i, cl := range c.Match.Clauses {
			clauses[i] = &ir.Clause[string]{
				Loc: span(cl.Pos, cl.EndPos),
				Pattern: ir.Pattern[string]{
					Tag:        cl.Tag,
					Parameters: names(cl.Parameters),
					Returns:    names(cl.Returns),
				},
				Body: cl.Body.toIR(),
			}
		}
		return &ir.Match[string]{Loc: loc, Clauses: clauses}
	case c.Covar != nil:
		return &ir.Covar[string]{Loc: loc, Name: *c.Covar}
	}
	return nil
}

func (l *Literal) toIR() ir.Literal {
	switch {
	case l.Float != nil:
		return ir.Float(*l.Float)
	case l.Int != nil:
		return ir.Int(*l.Int)
	case l.Bool != nil:
		return ir.Bool(bool(*l.Bool))
	default:
		return ir.String(strings.TrimSuffix(strings.TrimPrefix(*l.String, `"`), `"`))
	}
}
