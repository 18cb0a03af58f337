package ir

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Producers
	VAR
	LIT
	DO
	CONSTRUCT
	COMATCH

	// Consumers
	FINISH
	COVAR
	THEN
	DESTRUCT
	MATCH

	// Statements
	CUT
	PRIM
	SWITCH
	INVOKE

	// Branches
	LITERAL_BRANCH
	DEFAULT_BRANCH

	// Cases
	CLAUSE
	COCLAUSE

	DEFINITION
)

var nodeTypeNames = [...]string{
	ILLEGAL:        "ILLEGAL",
	VAR:            "VAR",
	LIT:            "LIT",
	DO:             "DO",
	CONSTRUCT:      "CONSTRUCT",
	COMATCH:        "COMATCH",
	FINISH:         "FINISH",
	COVAR:          "COVAR",
	THEN:           "THEN",
	DESTRUCT:       "DESTRUCT",
	MATCH:          "MATCH",
	CUT:            "CUT",
	PRIM:           "PRIM",
	SWITCH:         "SWITCH",
	INVOKE:         "INVOKE",
	LITERAL_BRANCH: "LITERAL_BRANCH",
	DEFAULT_BRANCH: "DEFAULT_BRANCH",
	CLAUSE:         "CLAUSE",
	COCLAUSE:       "COCLAUSE",
	DEFINITION:     "DEFINITION",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "ILLEGAL"
	}
	return nodeTypeNames[t]
}
