package ir

import (
	"strconv"
	"strings"
)

type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	FloatLiteral
	BoolLiteral
	StringLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case IntLiteral:
		return "Int"
	case FloatLiteral:
		return "Float"
	case BoolLiteral:
		return "Bool"
	case StringLiteral:
		return "String"
	default:
		return "LiteralKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Literal is an immediate constant. Only the field selected by Kind is
// meaningful; the others stay at their zero value so that two literals can
// be compared with ==.
//
// String literals hold the raw text between the quotes. Escape sequences are
// kept verbatim.
type Literal struct {
	Kind   LiteralKind
	Int    int64
	Float  float64
	Bool   bool
	String string
}

func Int(v int64) Literal     { return Literal{Kind: IntLiteral, Int: v} }
func Float(v float64) Literal { return Literal{Kind: FloatLiteral, Float: v} }
func Bool(v bool) Literal     { return Literal{Kind: BoolLiteral, Bool: v} }
func String(v string) Literal { return Literal{Kind: StringLiteral, String: v} }

// Text returns the literal spelled the way the lexer accepts it.
func (l Literal) Text() string {
	switch l.Kind {
	case IntLiteral:
		return strconv.FormatInt(l.Int, 10)
	case FloatLiteral:
		text := strconv.FormatFloat(l.Float, 'f', -1, 64)
		if !strings.Contains(text, ".") {
			text += ".0"
		}
		return text
	case BoolLiteral:
		return strconv.FormatBool(l.Bool)
	case StringLiteral:
		return `"` + l.String + `"`
	default:
		return "<invalid literal>"
	}
}

// Value returns the payload as a plain Go value.
func (l Literal) Value() any {
	switch l.Kind {
	case IntLiteral:
		return l.Int
	case FloatLiteral:
		return l.Float
	case BoolLiteral:
		return l.Bool
	default:
		return l.String
	}
}
