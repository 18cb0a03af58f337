package ir

// Inspect traverses the tree rooted at node in depth-first order. It calls f
// for every node; if f returns false, the children of that node are skipped.
func Inspect[N any](node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, child := range Children[N](node) {
		Inspect[N](child, f)
	}
}

// InspectProgram runs Inspect over every definition in order.
func InspectProgram[N any](program Program[N], f func(Node) bool) {
	for _, def := range program {
		Inspect[N](def, f)
	}
}

// Children returns the direct children of node in source order.
func Children[N any](node Node) []Node {
	var children []Node
	add := func(n Node) {
		if n != nil {
			children = append(children, n)
		}
	}
	addArguments := func(producers []Producer[N], consumers []Consumer[N]) {
		for _, p := range producers {
			add(p)
		}
		for _, c := range consumers {
			add(c)
		}
	}

	switch n := node.(type) {
	case *Definition[N]:
		add(n.Body)
	case *Do[N]:
		add(n.Body)
	case *Construct[N]:
		addArguments(n.Producers, n.Consumers)
	case *Comatch[N]:
		for _, c := range n.Clauses {
			add(c)
		}
	case *Then[N]:
		add(n.Body)
	case *Destruct[N]:
		addArguments(n.Producers, n.Consumers)
	case *Match[N]:
		for _, c := range n.Clauses {
			add(c)
		}
	case *Clause[N]:
		add(n.Body)
	case *Coclause[N]:
		add(n.Body)
	case *Cut[N]:
		add(n.Producer)
		add(n.Consumer)
	case *Prim[N]:
		addArguments(n.Producers, n.Consumers)
	case *Invoke[N]:
		addArguments(n.Producers, n.Consumers)
	case *Switch[N]:
		add(n.Scrutinee)
		for _, b := range n.Branches {
			add(b)
		}
	case *LiteralBranch[N]:
		add(n.Body)
	case *DefaultBranch[N]:
		add(n.Body)
	}
	return children
}

// NodeCount returns the number of nodes in program, definitions included.
func NodeCount[N any](program Program[N]) int {
	count := 0
	InspectProgram(program, func(Node) bool {
		count++
		return true
	})
	return count
}
