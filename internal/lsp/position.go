package lsp

import (
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"sequent/internal/ir"
)

// positionOf converts a byte offset into an LSP position. Characters are
// counted in UTF-16 code units.
func positionOf(source string, offset int) protocol.Position {
	offset = min(max(offset, 0), len(source))

	var line, character uint32
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(source[i:])
		if r == '\n' {
			line++
			character = 0
		} else {
			character += uint32(utf16Len(r))
		}
		i += size
	}

	return protocol.Position{Line: line, Character: character}
}

// offsetOf is the inverse of positionOf. Positions past the end of a line
// clamp to the line end.
func offsetOf(source string, pos protocol.Position) int {
	var line, character uint32

	for i := 0; i < len(source); {
		if line == pos.Line && character >= pos.Character {
			return i
		}
		r, size := utf8.DecodeRuneInString(source[i:])
		if r == '\n' {
			if line == pos.Line {
				return i
			}
			line++
			character = 0
		} else {
			character += uint32(utf16Len(r))
		}
		i += size
	}

	return len(source)
}

func rangeOf(source string, loc ir.Location) protocol.Range {
	return protocol.Range{
		Start: positionOf(source, loc.Start),
		End:   positionOf(source, loc.End),
	}
}

func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
