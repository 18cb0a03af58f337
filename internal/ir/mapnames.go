package ir

// MapProgram rebuilds program with every name passed through f. Tags and
// primitive names are plain strings and are copied unchanged. Locations are
// preserved.
func MapProgram[N, M any](program Program[N], f func(N) M) Program[M] {
	out := make(Program[M], len(program))
	for i, def := range program {
		out[i] = MapDefinition(def, f)
	}
	return out
}

func MapDefinition[N, M any](def *Definition[N], f func(N) M) *Definition[M] {
	return &Definition[M]{
		Loc:        def.Loc,
		Name:       f(def.Name),
		Parameters: mapNames(def.Parameters, f),
		Returns:    mapNames(def.Returns, f),
		Body:       MapStatement(def.Body, f),
	}
}

func MapStatement[N, M any](stmt Statement[N], f func(N) M) Statement[M] {
	switch s := stmt.(type) {
	case *Cut[N]:
		return &Cut[M]{
			Loc:      s.Loc,
			Producer: MapProducer(s.Producer, f),
			Consumer: MapConsumer(s.Consumer, f),
		}
	case *Prim[N]:
		return &Prim[M]{
			Loc:       s.Loc,
			Name:      s.Name,
			Producers: mapProducers(s.Producers, f),
			Consumers: mapConsumers(s.Consumers, f),
		}
	case *Switch[N]:
		scrutinee := MapProducer(s.Scrutinee, f)
		branches := make([]Branch[M], len(s.Branches))
		for i, b := range s.Branches {
			branches[i] = mapBranch(b, f)
		}
		return &Switch[M]{
			Loc:       s.Loc,
			Scrutinee: scrutinee,
			Branches:  branches,
		}
	case *Invoke[N]:
		return &Invoke[M]{
			Loc:       s.Loc,
			Name:      f(s.Name),
			Producers: mapProducers(s.Producers, f),
			Consumers: mapConsumers(s.Consumers, f),
		}
	}
	return nil
}

func MapProducer[N, M any](producer Producer[N], f func(N) M) Producer[M] {
	switch p := producer.(type) {
	case *Var[N]:
		return &Var[M]{Loc: p.Loc, Name: f(p.Name)}
	case *Lit[N]:
		return &Lit[M]{Loc: p.Loc, Literal: p.Literal}
	case *Do[N]:
		return &Do[M]{Loc: p.Loc, Name: f(p.Name), Body: MapStatement(p.Body, f)}
	case *Construct[N]:
		return &Construct[M]{
			Loc:       p.Loc,
			Tag:       p.Tag,
			Producers: mapProducers(p.Producers, f),
			Consumers: mapConsumers(p.Consumers, f),
		}
	case *Comatch[N]:
		clauses := make([]*Coclause[M], len(p.Clauses))
		for i, c := range p.Clauses {
			clauses[i] = &Coclause[M]{
				Loc: c.Loc,
				Copattern: Copattern[M]{
					Tag:        c.Copattern.Tag,
					Parameters: mapNames(c.Copattern.Parameters, f),
					Returns:    mapNames(c.Copattern.Returns, f),
				},
				Body: MapStatement(c.Body, f),
			}
		}
		return &Comatch[M]{Loc: p.Loc, Clauses: clauses}
	}
	return nil
}

func MapConsumer[N, M any](consumer Consumer[N], f func(N) M) Consumer[M] {
	switch c := consumer.(type) {
	case *Finish[N]:
		return &Finish[M]{Loc: c.Loc}
	case *Covar[N]:
		return &Covar[M]{Loc: c.Loc, Name: f(c.Name)}
	case *Then[N]:
		return &Then[M]{Loc: c.Loc, Name: f(c.Name), Body: MapStatement(c.Body, f)}
	case *Destruct[N]:
		return &Destruct[M]{
			Loc:       c.Loc,
			Tag:       c.Tag,
			Producers: mapProducers(c.Producers, f),
			Consumers: mapConsumers(c.Consumers, f),
		}
	case *Match[N]:
		clauses := make([]*Clause[M], len(c.Clauses))
		for i, cl := range c.Clauses {
			clauses[i] = &Clause[M]{
				Loc: cl.Loc,
				Pattern: Pattern[M]{
					Tag:        cl.Pattern.Tag,
					Parameters: mapNames(cl.Pattern.Parameters, f),
					Returns:    mapNames(cl.Pattern.Returns, f),
				},
				Body: MapStatement(cl.Body, f),
			}
		}
		return &Match[M]{Loc: c.Loc, Clauses: clauses}
	}
	return nil
}

func mapBranch[N, M any](branch Branch[N], f func(N) M) Branch[M] {
	switch b := branch.(type) {
	case *LiteralBranch[N]:
		return &LiteralBranch[M]{Loc: b.Loc, Literal: b.Literal, Body: MapStatement(b.Body, f)}
	case *DefaultBranch[N]:
		return &DefaultBranch[M]{Loc: b.Loc, Body: MapStatement(b.Body, f)}
	}
	return nil
}

func mapNames[N, M any](names []N, f func(N) M) []M {
	out := make([]M, len(names))
	for i, name := range names {
		out[i] = f(name)
	}
	return out
}

func mapProducers[N, M any](producers []Producer[N], f func(N) M) []Producer[M] {
	out := make([]Producer[M], len(producers))
	for i, p := range producers {
		out[i] = MapProducer(p, f)
	}
	return out
}

func mapConsumers[N, M any](consumers []Consumer[N], f func(N) M) []Consumer[M] {
	out := make([]Consumer[M], len(consumers))
	for i, c := range consumers {
		out[i] = MapConsumer(c, f)
	}
	return out
}
