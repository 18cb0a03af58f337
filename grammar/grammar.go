package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is the concrete syntax tree of one source file.
type File struct {
	Pos         lexer.Position
	Definitions []*Definition `@@*`
}

type Definition struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Name       string     `"def" @Ident`
	Parameters []string   `"(" ( @Ident ( "," @Ident )* ","? )?`
	Returns    []string   `";" ( @Ident ( "," @Ident )* ","? )? ")"`
	Body       *Statement `"=" @@`
}

type Statement struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Prim   *Call   `  "prim" @@`
	Invoke *Call   `| "invoke" @@`
	Switch *Switch `| @@`
	Cut    *Cut    `| @@`
}

// Call is the `[name](producers; consumers)` tail shared by prim and invoke.
type Call struct {
	Name      string     `"[" @Ident "]"`
	Arguments *Arguments `@@`
}

type Arguments struct {
	Producers []*Producer `"(" ( @@ ( "," @@ )* ","? )?`
	Consumers []*Consumer `";" ( @@ ( "," @@ )* ","? )? ")"`
}

type Switch struct {
	Scrutinee *Producer `"switch" @@`
	Branches  []*Branch `"{" ( @@ ( "," @@ )* ","? )? "}"`
}

type Branch struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Default bool       `(  @"_"`
	Literal *Literal   ` | @@ )`
	Body    *Statement `"->" @@`
}

type Cut struct {
	Producer *Producer `@@`
	Consumer *Consumer `"|" @@`
}

type Producer struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Do        *Do        `  @@`
	Literal   *Literal   `| @@`
	Construct *Construct `| @@`
	Var       *string    `| @Ident`
}

type Do struct {
	Name string     `"do" @Ident`
	Body *Statement `@@`
}

type Construct struct {
	Tag       string     `@Ident`
	Arguments *Arguments `@@`
}

type Consumer struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Then   *Then   `  @@`
	Match  *Match  `| @@`
	Covar  *string `| @Ident`
}

type Then struct {
	Name string     `"then" @Ident`
	Body *Statement `@@`
}

type Match struct {
	Clauses []*Clause `"match" "{" ( @@ ( "," @@ )* ","? )? "}"`
}

type Clause struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Tag        string     `@Ident`
	Parameters []string   `"(" ( @Ident ( "," @Ident )* ","? )?`
	Returns    []string   `";" ( @Ident ( "," @Ident )* ","? )? ")"`
	Body       *Statement `"->" @@`
}

type Literal struct {
	Float  *float64 `  @Float`
	Int    *int64   `| @Int`
	Bool   *Boolean `| @( "true" | "false" )`
	String *string  `| @String`
}

// Boolean captures the keywords true and false.
type Boolean bool

func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}
