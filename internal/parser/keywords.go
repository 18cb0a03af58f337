package parser

// Keywords are ordinary identifiers to the lexer. The parser gives them
// meaning only in the positions listed next to each one.
const (
	DEF     = "def"     // start of a definition
	DO      = "do"      // producer position
	THEN    = "then"    // consumer position
	MATCH   = "match"   // consumer position
	PRIM    = "prim"    // statement position
	SWITCH  = "switch"  // statement position
	INVOKE  = "invoke"  // statement position
	DEFAULT = "_"       // switch branch position
	COMATCH = "comatch" // reserved
)

var KEYWORDS = map[string]bool{
	DEF:     true,
	DO:      true,
	THEN:    true,
	MATCH:   true,
	PRIM:    true,
	SWITCH:  true,
	INVOKE:  true,
	COMATCH: true,
}

const (
	LEFT_PAREN    = "("
	RIGHT_PAREN   = ")"
	LEFT_BRACE    = "{"
	RIGHT_BRACE   = "}"
	LEFT_BRACKET  = "["
	RIGHT_BRACKET = "]"
	COMMA         = ","
	SEMICOLON     = ";"
	EQUAL         = "="
	PIPE          = "|"
	ARROW         = "->"
)
