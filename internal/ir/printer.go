package ir

import (
	"fmt"
	"strings"
)

// Printer renders IR back into surface syntax. The output parses back into
// an equivalent program.
type Printer struct {
	indent    int
	multiline bool
	output    strings.Builder
}

// NewPrinter creates a printer. A multiline printer breaks match, comatch and
// switch bodies onto indented lines; otherwise everything stays on one line.
func NewPrinter(multiline bool) *Printer {
	return &Printer{multiline: multiline}
}

// Print returns the multiline rendering of a whole program, one definition
// per paragraph.
func Print[N any](program Program[N]) string {
	p := NewPrinter(true)
	for i, def := range program {
		if i > 0 {
			p.write("\n")
		}
		printDefinition(p, def)
	}
	return p.output.String()
}

func (p *Printer) String() string {
	return p.output.String()
}

// Helper methods

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) write(format string, args ...interface{}) {
	p.output.WriteString(fmt.Sprintf(format, args...))
}

// open starts a braced block.
func (p *Printer) open() {
	p.write("{")
	if p.multiline {
		p.write("\n")
	}
	p.indent++
}

// item starts the i-th entry of a braced block.
func (p *Printer) item(i int) {
	if p.multiline {
		p.writeIndent()
	} else if i > 0 {
		p.write(", ")
	} else {
		p.write(" ")
	}
}

// endItem terminates an entry of a braced block.
func (p *Printer) endItem() {
	if p.multiline {
		p.write(",\n")
	}
}

func (p *Printer) close(empty bool) {
	p.indent--
	if p.multiline {
		p.writeIndent()
	} else if !empty {
		p.write(" ")
	}
	p.write("}")
}

func nameText[N any](name N) string {
	return fmt.Sprint(name)
}

func nameList[N any](names []N) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = nameText(name)
	}
	return strings.Join(parts, ", ")
}

// signature renders "(a, b; c)". Empty sides collapse, giving "(;)" or "(; c)".
func signature(producers, consumers string) string {
	if consumers == "" {
		return "(" + producers + ";)"
	}
	return "(" + producers + "; " + consumers + ")"
}

func printDefinition[N any](p *Printer, def *Definition[N]) {
	p.write("def %s%s =\n", nameText(def.Name), signature(nameList(def.Parameters), nameList(def.Returns)))
	p.indent++
	p.writeIndent()
	printStatement[N](p, def.Body)
	p.indent--
	p.write("\n")
}

func printStatement[N any](p *Printer, stmt Statement[N]) {
	switch s := stmt.(type) {
	case *Cut[N]:
		printProducer[N](p, s.Producer)
		p.write(" | ")
		printConsumer[N](p, s.Consumer)
	case *Prim[N]:
		p.write("prim[%s]", s.Name)
		printArguments(p, s.Producers, s.Consumers)
	case *Invoke[N]:
		p.write("invoke[%s]", nameText(s.Name))
		printArguments(p, s.Producers, s.Consumers)
	case *Switch[N]:
		p.write("switch ")
		printProducer[N](p, s.Scrutinee)
		p.write(" ")
		p.open()
		for i, branch := range s.Branches {
			p.item(i)
			printBranch[N](p, branch)
			p.endItem()
		}
		p.close(len(s.Branches) == 0)
	case nil:
		p.write("<nil>")
	default:
		p.write("<unknown statement %T>", stmt)
	}
}

func printBranch[N any](p *Printer, branch Branch[N]) {
	switch b := branch.(type) {
	case *LiteralBranch[N]:
		p.write("%s -> ", b.Literal.Text())
		printStatement[N](p, b.Body)
	case *DefaultBranch[N]:
		p.write("_ -> ")
		printStatement[N](p, b.Body)
	default:
		p.write("<unknown branch %T>", branch)
	}
}

func printProducer[N any](p *Printer, producer Producer[N]) {
	switch v := producer.(type) {
	case *Var[N]:
		p.write("%s", nameText(v.Name))
	case *Lit[N]:
		p.write("%s", v.Literal.Text())
	case *Do[N]:
		p.write("do %s ", nameText(v.Name))
		printStatement[N](p, v.Body)
	case *Construct[N]:
		p.write("%s", v.Tag)
		printArguments(p, v.Producers, v.Consumers)
	case *Comatch[N]:
		p.write("comatch ")
		p.open()
		for i, clause := range v.Clauses {
			p.item(i)
			printCoclause(p, clause)
			p.endItem()
		}
		p.close(len(v.Clauses) == 0)
	case nil:
		p.write("<nil>")
	default:
		p.write("<unknown producer %T>", producer)
	}
}

func printConsumer[N any](p *Printer, consumer Consumer[N]) {
	switch v := consumer.(type) {
	case *Finish[N]:
		p.write("finish")
	case *Covar[N]:
		p.write("%s", nameText(v.Name))
	case *Then[N]:
		p.write("then %s ", nameText(v.Name))
		printStatement[N](p, v.Body)
	case *Destruct[N]:
		p.write("destruct %s", v.Tag)
		printArguments(p, v.Producers, v.Consumers)
	case *Match[N]:
		p.write("match ")
		p.open()
		for i, clause := range v.Clauses {
			p.item(i)
			printClause(p, clause)
			p.endItem()
		}
		p.close(len(v.Clauses) == 0)
	case nil:
		p.write("<nil>")
	default:
		p.write("<unknown consumer %T>", consumer)
	}
}

func printClause[N any](p *Printer, clause *Clause[N]) {
	p.write("%s%s -> ", clause.Pattern.Tag, signature(nameList(clause.Pattern.Parameters), nameList(clause.Pattern.Returns)))
	printStatement[N](p, clause.Body)
}

func printCoclause[N any](p *Printer, clause *Coclause[N]) {
	p.write("%s%s -> ", clause.Copattern.Tag, signature(nameList(clause.Copattern.Parameters), nameList(clause.Copattern.Returns)))
	printStatement[N](p, clause.Body)
}

func printArguments[N any](p *Printer, producers []Producer[N], consumers []Consumer[N]) {
	p.write("(")
	for i, producer := range producers {
		if i > 0 {
			p.write(", ")
		}
		printProducer[N](p, producer)
	}
	if len(consumers) == 0 {
		p.write(";)")
		return
	}
	p.write("; ")
	for i, consumer := range consumers {
		if i > 0 {
			p.write(", ")
		}
		printConsumer[N](p, consumer)
	}
	p.write(")")
}

// String methods render a single node on one line.

func compact(render func(*Printer)) string {
	p := NewPrinter(false)
	render(p)
	return p.String()
}

func (v *Var[N]) String() string       { return compact(func(p *Printer) { printProducer[N](p, v) }) }
func (l *Lit[N]) String() string       { return l.Literal.Text() }
func (d *Do[N]) String() string        { return compact(func(p *Printer) { printProducer[N](p, d) }) }
func (c *Construct[N]) String() string { return compact(func(p *Printer) { printProducer[N](p, c) }) }
func (c *Comatch[N]) String() string   { return compact(func(p *Printer) { printProducer[N](p, c) }) }

func (f *Finish[N]) String() string   { return "finish" }
func (c *Covar[N]) String() string    { return compact(func(p *Printer) { printConsumer[N](p, c) }) }
func (t *Then[N]) String() string     { return compact(func(p *Printer) { printConsumer[N](p, t) }) }
func (d *Destruct[N]) String() string { return compact(func(p *Printer) { printConsumer[N](p, d) }) }
func (m *Match[N]) String() string    { return compact(func(p *Printer) { printConsumer[N](p, m) }) }

func (c *Cut[N]) String() string    { return compact(func(p *Printer) { printStatement[N](p, c) }) }
func (s *Prim[N]) String() string   { return compact(func(p *Printer) { printStatement[N](p, s) }) }
func (s *Switch[N]) String() string { return compact(func(p *Printer) { printStatement[N](p, s) }) }
func (i *Invoke[N]) String() string { return compact(func(p *Printer) { printStatement[N](p, i) }) }

func (b *LiteralBranch[N]) String() string { return compact(func(p *Printer) { printBranch[N](p, b) }) }
func (b *DefaultBranch[N]) String() string { return compact(func(p *Printer) { printBranch[N](p, b) }) }

func (c *Clause[N]) String() string   { return compact(func(p *Printer) { printClause(p, c) }) }
func (c *Coclause[N]) String() string { return compact(func(p *Printer) { printCoclause(p, c) }) }

func (d *Definition[N]) String() string {
	return fmt.Sprintf("def %s%s = %s", nameText(d.Name),
		signature(nameList(d.Parameters), nameList(d.Returns)), d.Body.String())
}
