package ir

func (v *Var[N]) Location() Location { return v.Loc }
func (*Var[N]) NodeType() NodeType   { return VAR }
func (*Var[N]) producerNode()        {}

func (l *Lit[N]) Location() Location { return l.Loc }
func (*Lit[N]) NodeType() NodeType   { return LIT }
func (*Lit[N]) producerNode()        {}

func (d *Do[N]) Location() Location { return d.Loc }
func (*Do[N]) NodeType() NodeType   { return DO }
func (*Do[N]) producerNode()        {}

func (c *Construct[N]) Location() Location { return c.Loc }
func (*Construct[N]) NodeType() NodeType   { return CONSTRUCT }
func (*Construct[N]) producerNode()        {}

func (c *Comatch[N]) Location() Location { return c.Loc }
func (*Comatch[N]) NodeType() NodeType   { return COMATCH }
func (*Comatch[N]) producerNode()        {}

func (f *Finish[N]) Location() Location { return f.Loc }
func (*Finish[N]) NodeType() NodeType   { return FINISH }
func (*Finish[N]) consumerNode()        {}

func (c *Covar[N]) Location() Location { return c.Loc }
func (*Covar[N]) NodeType() NodeType   { return COVAR }
func (*Covar[N]) consumerNode()        {}

func (t *Then[N]) Location() Location { return t.Loc }
func (*Then[N]) NodeType() NodeType   { return THEN }
func (*Then[N]) consumerNode()        {}

func (d *Destruct[N]) Location() Location { return d.Loc }
func (*Destruct[N]) NodeType() NodeType   { return DESTRUCT }
func (*Destruct[N]) consumerNode()        {}

func (m *Match[N]) Location() Location { return m.Loc }
func (*Match[N]) NodeType() NodeType   { return MATCH }
func (*Match[N]) consumerNode()        {}

func (c *Cut[N]) Location() Location { return c.Loc }
func (*Cut[N]) NodeType() NodeType   { return CUT }
func (*Cut[N]) statementNode()       {}

func (p *Prim[N]) Location() Location { return p.Loc }
func (*Prim[N]) NodeType() NodeType   { return PRIM }
func (*Prim[N]) statementNode()       {}

func (s *Switch[N]) Location() Location { return s.Loc }
func (*Switch[N]) NodeType() NodeType   { return SWITCH }
func (*Switch[N]) statementNode()       {}

func (i *Invoke[N]) Location() Location { return i.Loc }
func (*Invoke[N]) NodeType() NodeType   { return INVOKE }
func (*Invoke[N]) statementNode()       {}

func (b *LiteralBranch[N]) Location() Location { return b.Loc }
func (*LiteralBranch[N]) NodeType() NodeType   { return LITERAL_BRANCH }
func (*LiteralBranch[N]) branchNode()          {}

func (b *DefaultBranch[N]) Location() Location { return b.Loc }
func (*DefaultBranch[N]) NodeType() NodeType   { return DEFAULT_BRANCH }
func (*DefaultBranch[N]) branchNode()          {}

func (c *Clause[N]) Location() Location { return c.Loc }
func (*Clause[N]) NodeType() NodeType   { return CLAUSE }

func (c *Coclause[N]) Location() Location { return c.Loc }
func (*Coclause[N]) NodeType() NodeType   { return COCLAUSE }

func (d *Definition[N]) Location() Location { return d.Loc }
func (*Definition[N]) NodeType() NodeType   { return DEFINITION }
