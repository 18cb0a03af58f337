// Package ir defines the core IR produced by the parser: producers, consumers
// and the statements that cut them together.
//
// Every node is generic over its name type N. The parser builds
// Program[string]; later passes can switch to another representation with
// MapProgram.
package ir

// Node is implemented by every IR node.
type Node interface {
	Location() Location
	NodeType() NodeType
	String() string
}

// Producer is a term that yields a value.
type Producer[N any] interface {
	Node
	producerNode()
}

// Consumer is a term that receives a value.
type Consumer[N any] interface {
	Node
	consumerNode()
}

// Statement is a command. It never yields a value on its own.
type Statement[N any] interface {
	Node
	statementNode()
}

// Branch is one arm of a Switch.
type Branch[N any] interface {
	Node
	branchNode()
}

// Producers

type Var[N any] struct {
	Loc  Location
	Name N
}

type Lit[N any] struct {
	Loc     Location
	Literal Literal
}

// Do binds Name as a consumer inside Body and produces whatever Body
// eventually feeds to it.
type Do[N any] struct {
	Loc  Location
	Name N
	Body Statement[N]
}

type Construct[N any] struct {
	Loc       Location
	Tag       string
	Producers []Producer[N]
	Consumers []Consumer[N]
}

type Comatch[N any] struct {
	Loc     Location
	Clauses []*Coclause[N]
}

// Consumers

// Finish is the terminal consumer.
type Finish[N any] struct {
	Loc Location
}

// Covar is a reference to a consumer-side name.
type Covar[N any] struct {
	Loc  Location
	Name N
}

// Then binds the received value to Name and runs Body.
type Then[N any] struct {
	Loc  Location
	Name N
	Body Statement[N]
}

type Destruct[N any] struct {
	Loc       Location
	Tag       string
	Producers []Producer[N]
	Consumers []Consumer[N]
}

type Match[N any] struct {
	Loc     Location
	Clauses []*Clause[N]
}

// Patterns and cases

// Pattern binds the producer fields of a matched value to Parameters and its
// consumer fields to Returns.
type Pattern[N any] struct {
	Tag        string
	Parameters []N
	Returns    []N
}

type Copattern[N any] struct {
	Tag        string
	Parameters []N
	Returns    []N
}

type Clause[N any] struct {
	Loc     Location
	Pattern Pattern[N]
	Body    Statement[N]
}

type Coclause[N any] struct {
	Loc       Location
	Copattern Copattern[N]
	Body      Statement[N]
}

// Statements

// Cut plugs Producer into Consumer.
type Cut[N any] struct {
	Loc      Location
	Producer Producer[N]
	Consumer Consumer[N]
}

type Prim[N any] struct {
	Loc       Location
	Name      string
	Producers []Producer[N]
	Consumers []Consumer[N]
}

type Switch[N any] struct {
	Loc       Location
	Scrutinee Producer[N]
	Branches  []Branch[N]
}

type Invoke[N any] struct {
	Loc       Location
	Name      N
	Producers []Producer[N]
	Consumers []Consumer[N]
}

// Branches

type LiteralBranch[N any] struct {
	Loc     Location
	Literal Literal
	Body    Statement[N]
}

type DefaultBranch[N any] struct {
	Loc  Location
	Body Statement[N]
}

// Definition is a named procedure taking producer parameters and consumer
// returns.
type Definition[N any] struct {
	Loc        Location
	Name       N
	Parameters []N
	Returns    []N
	Body       Statement[N]
}

// Program is the ordered list of definitions of one source file.
type Program[N any] []*Definition[N]
