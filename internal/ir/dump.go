package ir

import "fmt"

// Dump converts a program into plain maps and slices so that it can be fed to
// a JSON or YAML encoder. Every node becomes a map with a "node" key holding
// its NodeType and a "span" key holding "start..end".
func Dump[N any](program Program[N]) []map[string]any {
	out := make([]map[string]any, len(program))
	for i, def := range program {
		out[i] = dumpNode[N](def)
	}
	return out
}

func dumpNode[N any](node Node) map[string]any {
	if node == nil {
		return nil
	}
	loc := node.Location()
	m := map[string]any{
		"node": node.NodeType().String(),
		"span": fmt.Sprintf("%d..%d", loc.Start, loc.End),
	}

	switch n := node.(type) {
	case *Definition[N]:
		m["name"] = nameText(n.Name)
		m["parameters"] = dumpNames(n.Parameters)
		m["returns"] = dumpNames(n.Returns)
		m["body"] = dumpNode[N](n.Body)
	case *Var[N]:
		m["name"] = nameText(n.Name)
	case *Lit[N]:
		m["literal"] = n.Literal.Value()
		m["kind"] = n.Literal.Kind.String()
	case *Do[N]:
		m["name"] = nameText(n.Name)
		m["body"] = dumpNode[N](n.Body)
	case *Construct[N]:
		m["tag"] = n.Tag
		m["producers"] = dumpProducers(n.Producers)
		m["consumers"] = dumpConsumers(n.Consumers)
	case *Comatch[N]:
		clauses := make([]map[string]any, len(n.Clauses))
		for i, c := range n.Clauses {
			clauses[i] = dumpNode[N](c)
		}
		m["clauses"] = clauses
	case *Finish[N]:
	case *Covar[N]:
		m["name"] = nameText(n.Name)
	case *Then[N]:
		m["name"] = nameText(n.Name)
		m["body"] = dumpNode[N](n.Body)
	case *Destruct[N]:
		m["tag"] = n.Tag
		m["producers"] = dumpProducers(n.Producers)
		m["consumers"] = dumpConsumers(n.Consumers)
	case *Match[N]:
		clauses := make([]map[string]any, len(n.Clauses))
		for i, c := range n.Clauses {
			clauses[i] = dumpNode[N](c)
		}
		m["clauses"] = clauses
	case *Clause[N]:
		m["tag"] = n.Pattern.Tag
		m["parameters"] = dumpNames(n.Pattern.Parameters)
		m["returns"] = dumpNames(n.Pattern.Returns)
		m["body"] = dumpNode[N](n.Body)
	case *Coclause[N]:
		m["tag"] = n.Copattern.Tag
		m["parameters"] = dumpNames(n.Copattern.Parameters)
		m["returns"] = dumpNames(n.Copattern.Returns)
		m["body"] = dumpNode[N](n.Body)
	case *Cut[N]:
		m["producer"] = dumpNode[N](n.Producer)
		m["consumer"] = dumpNode[N](n.Consumer)
	case *Prim[N]:
		m["name"] = n.Name
		m["producers"] = dumpProducers(n.Producers)
		m["consumers"] = dumpConsumers(n.Consumers)
	case *Invoke[N]:
		m["name"] = nameText(n.Name)
		m["producers"] = dumpProducers(n.Producers)
		m["consumers"] = dumpConsumers(n.Consumers)
	case *Switch[N]:
		m["scrutinee"] = dumpNode[N](n.Scrutinee)
		branches := make([]map[string]any, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = dumpNode[N](b)
		}
		m["branches"] = branches
	case *LiteralBranch[N]:
		m["literal"] = n.Literal.Value()
		m["kind"] = n.Literal.Kind.String()
		m["body"] = dumpNode[N](n.Body)
	case *DefaultBranch[N]:
		m["body"] = dumpNode[N](n.Body)
	}
	return m
}

func dumpNames[N any](names []N) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = nameText(name)
	}
	return out
}

func dumpProducers[N any](producers []Producer[N]) []map[string]any {
	out := make([]map[string]any, len(producers))
	for i, p := range producers {
		out[i] = dumpNode[N](p)
	}
	return out
}

func dumpConsumers[N any](consumers []Consumer[N]) []map[string]any {
	out := make([]map[string]any, len(consumers))
	for i, c := range consumers {
		out[i] = dumpNode[N](c)
	}
	return out
}
