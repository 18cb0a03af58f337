package ir

func at(start, end int) Location {
	return Location{File: "test.sq", Start: start, End: end}
}

// sampleProgram builds
//
//	def f(x; k) = switch x { 0 -> Nil(;) | k, _ -> do j x | j | then y invoke[f](y; k) }
func sampleProgram() Program[string] {
	return Program[string]{
		{
			Loc:        at(0, 84),
			Name:       "f",
			Parameters: []string{"x"},
			Returns:    []string{"k"},
			Body: &Switch[string]{
				Loc:       at(14, 84),
				Scrutinee: &Var[string]{Loc: at(21, 22), Name: "x"},
				Branches: []Branch[string]{
					&LiteralBranch[string]{
						Loc:     at(25, 40),
						Literal: Int(0),
						Body: &Cut[string]{
							Loc:      at(30, 40),
							Producer: &Construct[string]{Loc: at(30, 36), Tag: "Nil", Producers: []Producer[string]{}, Consumers: []Consumer[string]{}},
							Consumer: &Covar[string]{Loc: at(39, 40), Name: "k"},
						},
					},
					&DefaultBranch[string]{
						Loc: at(42, 82),
						Body: &Cut[string]{
							Loc: at(47, 82),
							Producer: &Do[string]{
								Loc:  at(47, 57),
								Name: "j",
								Body: &Cut[string]{
									Loc:      at(52, 57),
									Producer: &Var[string]{Loc: at(52, 53), Name: "x"},
									Consumer: &Covar[string]{Loc: at(56, 57), Name: "j"},
								},
							},
							Consumer: &Then[string]{
								Loc:  at(60, 82),
								Name: "y",
								Body: &Invoke[string]{
									Loc:       at(67, 82),
									Name:      "f",
									Producers: []Producer[string]{&Var[string]{Loc: at(77, 78), Name: "y"}},
									Consumers: []Consumer[string]{&Covar[string]{Loc: at(80, 81), Name: "k"}},
								},
							},
						},
					},
				},
			},
		},
	}
}

// coreOnlyProgram uses the nodes that have no surface syntax.
func coreOnlyProgram() Program[string] {
	return Program[string]{
		{
			Name:    "main",
			Returns: []string{},
			Body: &Cut[string]{
				Producer: &Comatch[string]{
					Clauses: []*Coclause[string]{
						{
							Copattern: Copattern[string]{Tag: "Apply", Parameters: []string{"a"}, Returns: []string{"r"}},
							Body: &Prim[string]{
								Name:      "add",
								Producers: []Producer[string]{&Var[string]{Name: "a"}, &Lit[string]{Literal: Int(1)}},
								Consumers: []Consumer[string]{&Covar[string]{Name: "r"}},
							},
						},
					},
				},
				Consumer: &Destruct[string]{
					Tag:       "Apply",
					Producers: []Producer[string]{&Lit[string]{Literal: Float(2)}},
					Consumers: []Consumer[string]{&Finish[string]{}},
				},
			},
		},
	}
}
