package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequent/internal/ir"
)

func TestParseMultExample(t *testing.T) {
	program, source, err := ParseFile(filepath.Join("testdata", "mult.sq"))
	require.NoError(t, err)
	require.Len(t, program, 3)

	mult, multAux, hello := program[0], program[1], program[2]

	assert.Equal(t, "mult", mult.Name)
	assert.Equal(t, []string{"l"}, mult.Parameters)
	assert.Equal(t, []string{"α"}, mult.Returns)
	invoke, ok := mult.Body.(*ir.Invoke[string])
	require.True(t, ok)
	assert.Equal(t, "multAux", invoke.Name)
	assert.Len(t, invoke.Producers, 1)
	assert.Len(t, invoke.Consumers, 2)

	assert.Equal(t, "multAux", multAux.Name)
	assert.Equal(t, []string{"α", "β"}, multAux.Returns)
	cut, ok := multAux.Body.(*ir.Cut[string])
	require.True(t, ok)
	match, ok := cut.Consumer.(*ir.Match[string])
	require.True(t, ok)
	require.Len(t, match.Clauses, 2)
	assert.Equal(t, "Nil", match.Clauses[0].Pattern.Tag)
	assert.Equal(t, "Cons", match.Clauses[1].Pattern.Tag)
	assert.Equal(t, []string{"x", "xs"}, match.Clauses[1].Pattern.Parameters)

	sw, ok := match.Clauses[1].Body.(*ir.Switch[string])
	require.True(t, ok)
	require.Len(t, sw.Branches, 2)
	assert.IsType(t, &ir.LiteralBranch[string]{}, sw.Branches[0])
	assert.IsType(t, &ir.DefaultBranch[string]{}, sw.Branches[1])

	prim, ok := hello.Body.(*ir.Prim[string])
	require.True(t, ok)
	assert.Equal(t, "print", prim.Name)
	assert.Equal(t, ir.String("こんにちは"), prim.Producers[0].(*ir.Lit[string]).Literal)

	// The last definition ends at the closing parenthesis of the prim.
	assert.Equal(t, len(source)-1, hello.Loc.End)
}

func TestPrintMultGolden(t *testing.T) {
	program, _, err := ParseFile(filepath.Join("testdata", "mult.sq"))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "mult", []byte(ir.Print(program)))
}

func TestChildLocationsNestInsideParents(t *testing.T) {
	for _, name := range []string{"mult.sq", "kitchen.sq"} {
		t.Run(name, func(t *testing.T) {
			program, _, err := ParseFile(filepath.Join("testdata", name))
			require.NoError(t, err)

			count := 0
			ir.InspectProgram(program, func(node ir.Node) bool {
				count++
				for _, child := range ir.Children[string](node) {
					assert.True(t, node.Location().Contains(child.Location()),
						"%s %s does not contain %s %s",
						node.NodeType(), node.Location(), child.NodeType(), child.Location())
				}
				return true
			})
			assert.Greater(t, count, len(program))
		})
	}
}

func TestPrintedProgramParsesBack(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.sq"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			program, _, err := ParseFile(file)
			require.NoError(t, err)

			printed := ir.Print(program)
			reparsed, err := ParseSource(file, printed)
			require.NoError(t, err, "printed program:\n%s", printed)

			assert.Equal(t, printed, ir.Print(reparsed))
			assert.Equal(t, ir.NodeCount(program), ir.NodeCount(reparsed))
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	_, _, err := ParseFile(filepath.Join(t.TempDir(), "missing.sq"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseKitchenSink(t *testing.T) {
	program, _, err := ParseFile(filepath.Join("testdata", "kitchen.sq"))
	require.NoError(t, err)
	require.Len(t, program, 1)

	cut := program[0].Body.(*ir.Cut[string])
	do := cut.Producer.(*ir.Do[string])
	construct := do.Body.(*ir.Cut[string]).Producer.(*ir.Construct[string])
	assert.Equal(t, "Pair", construct.Tag)
	assert.Equal(t, ir.Float(1.5), construct.Producers[1].(*ir.Lit[string]).Literal)
	assert.Equal(t, ir.Bool(true), construct.Producers[2].(*ir.Lit[string]).Literal)

	then := cut.Consumer.(*ir.Then[string])
	sw := then.Body.(*ir.Switch[string])
	require.Len(t, sw.Branches, 3)
	assert.Equal(t, ir.String(`a\"b`), sw.Branches[0].(*ir.LiteralBranch[string]).Literal)
	assert.Equal(t, ir.Bool(false), sw.Branches[1].(*ir.LiteralBranch[string]).Literal)

	exit := sw.Branches[2].(*ir.DefaultBranch[string]).Body.(*ir.Prim[string])
	assert.Empty(t, exit.Producers)
	assert.Empty(t, exit.Consumers)
}
