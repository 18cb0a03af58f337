package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"sequent/internal/ir"
	"sequent/internal/parser"
)

// documentSymbols lists one function symbol per definition.
func documentSymbols(source string, program ir.Program[string]) []protocol.DocumentSymbol {
	symbols := make([]protocol.DocumentSymbol, 0, len(program))

	for _, def := range program {
		detail := "(" + strings.Join(def.Parameters, ", ") + "; " + strings.Join(def.Returns, ", ") + ")"
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           def.Name,
			Detail:         &detail,
			Kind:           protocol.SymbolKindFunction,
			Range:          rangeOf(source, def.Loc),
			SelectionRange: rangeOf(source, nameLocation(source, def)),
		})
	}

	return symbols
}

// nameLocation finds the identifier after `def`. The IR does not keep it.
func nameLocation(source string, def *ir.Definition[string]) ir.Location {
	lexer := parser.NewLexer("", source[def.Loc.Start:def.Loc.End])
	if _, err := lexer.Next(); err != nil {
		return def.Loc
	}
	name, err := lexer.Next()
	if err != nil || name.Kind != parser.IDENTIFIER {
		return def.Loc
	}

	return ir.Location{
		File:  def.Loc.File,
		Start: def.Loc.Start + name.Location.Start,
		End:   def.Loc.Start + name.Location.End,
	}
}
