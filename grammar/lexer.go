package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var SequentLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Identifiers and keywords (keywords are matched by value in the grammar)
		{"Ident", `[\p{L}\p{Nl}\p{Mn}\p{Mc}_][\p{L}\p{Nl}\p{Mn}\p{Mc}\p{Nd}_]*`, nil},

		// Numbers: a dot makes a float, digits after it are optional
		{"Float", `[0-9]+\.[0-9]*`, nil},
		{"Int", `[0-9]+`, nil},

		// Strings keep their escapes
		{"String", `"(\\.|[^"\\])*"`, nil},

		// Arrow (must come before punctuation)
		{"Arrow", `->`, nil},

		// Punctuation
		{"Punctuation", `[(){}\[\]<>,;:.=|]`, nil},

		// Whitespace
		{"Whitespace", `[\s\p{Z}]+`, nil},
	},
})
