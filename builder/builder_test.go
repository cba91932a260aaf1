package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/builder"
	"github.com/katalvlaran/lvtrace/core"
)

func edgeCount(g *core.GraphData) int { return len(g.Edges) }

func degree(g *core.GraphData, id string) int { return len(g.Adj[id]) }

func TestShapes_Counts(t *testing.T) {
	tests := []struct {
		name  string
		con   builder.Constructor
		nodes int
		edges int
	}{
		{"Cycle", builder.Cycle(5), 5, 5},
		{"Path", builder.Path(4), 4, 3},
		{"Star", builder.Star(5), 5, 4},
		{"Wheel", builder.Wheel(6), 6, 10},
		{"Complete", builder.Complete(5), 5, 10},
		{"CompleteBipartite", builder.CompleteBipartite(2, 3), 5, 6},
		{"Grid", builder.Grid(3, 4), 12, 17},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.con)
			require.NoError(t, err)
			assert.Len(t, g.Nodes, tc.nodes)
			assert.Equal(t, tc.edges, edgeCount(g))
			assert.NoError(t, g.Validate())
		})
	}
}

func TestShapes_TooSmall(t *testing.T) {
	for _, con := range []builder.Constructor{
		builder.Cycle(2), builder.Path(1), builder.Star(1), builder.Wheel(3),
		builder.Complete(0), builder.CompleteBipartite(0, 2), builder.Grid(2, 0),
	} {
		_, err := builder.BuildGraph(nil, con)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
}

func TestShapes_TooLarge(t *testing.T) {
	for _, con := range []builder.Constructor{
		builder.Cycle(builder.MaxVertices + 1), builder.Complete(1 << 20),
		builder.CompleteBipartite(40, 40), builder.Grid(9, 9), builder.Grid(1, 1<<30),
	} {
		_, err := builder.BuildGraph(nil, con)
		assert.ErrorIs(t, err, builder.ErrTooManyVertices)
	}

	g, err := builder.BuildGraph(nil, builder.Grid(8, 8))
	require.NoError(t, err)
	assert.Len(t, g.Nodes, builder.MaxVertices)
}

func TestWheel_Degrees(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Wheel(6))
	require.NoError(t, err)
	assert.Equal(t, 5, degree(g, "A"))
	for _, id := range []string{"B", "C", "D", "E", "F"} {
		assert.Equal(t, 3, degree(g, id), id)
	}
}

func TestComplete_Directed(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.Complete(4))
	require.NoError(t, err)
	assert.True(t, g.Directed)
	assert.Equal(t, 12, edgeCount(g))
	assert.Len(t, g.Adj["A"], 3)
}

func TestGrid_Cells(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithIDScheme(builder.DefaultIDFn)}, builder.Grid(2, 3))
	require.NoError(t, err)
	last := g.Nodes[len(g.Nodes)-1]
	assert.Equal(t, "5", last.ID)
	require.NotNil(t, last.Row)
	require.NotNil(t, last.Col)
	assert.Equal(t, 1, *last.Row)
	assert.Equal(t, 2, *last.Col)
	assert.ElementsMatch(t, []string{"1", "3"}, g.Adj["0"])
}

func TestCompleteBipartite_Prefix(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithPartitionPrefix("u", "")},
		builder.CompleteBipartite(1, 2),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"R0", "R1"}, g.Adj["u0"])
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	a, err := builder.BuildGraph(opts, builder.RandomSparse(8, 0.4))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	b, err := builder.BuildGraph(opts, builder.RandomSparse(8, 0.4))
	require.NoError(t, err)
	assert.Equal(t, a.Edges, b.Edges, "same seed, same graph")
	for _, e := range a.Edges {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}

	full, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, edgeCount(full))
	none, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Zero(t, edgeCount(none))
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec  string
		nodes int
	}{
		{"cycle:6", 6},
		{"PATH:3", 3},
		{" star:4 ", 4},
		{"wheel:5", 5},
		{"complete:4", 4},
		{"bipartite:2x3", 5},
		{"grid:3x3", 9},
		{"random:6:0.5", 6},
	}
	for _, tc := range tests {
		g, err := builder.Parse(tc.spec, builder.WithSeed(1))
		require.NoError(t, err, tc.spec)
		assert.Len(t, g.Nodes, tc.nodes, tc.spec)
	}

	for _, spec := range []string{"", "cycle", "cycle:x", "grid:3", "grid:ax2", "random:5", "hexagon:6"} {
		_, err := builder.Parse(spec)
		assert.ErrorIs(t, err, builder.ErrUnknownShape, spec)
	}
	_, err := builder.Parse("cycle:2")
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Parse("complete:100")
	assert.ErrorIs(t, err, builder.ErrTooManyVertices)
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "123", builder.DefaultIDFn(123))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 2) })
	assert.Equal(t, int64(4), builder.ConstantWeightFn(4)(nil))
	assert.Equal(t, int64(2), builder.UniformWeightFn(2, 8)(nil))
}

func ExampleParse() {
	g, _ := builder.Parse("wheel:5")
	for _, n := range g.Nodes {
		fmt.Println(n.ID, g.Adj[n.ID])
	}
	// Output:
	// A [B C D E]
	// B [C E A]
	// C [B D A]
	// D [C E A]
	// E [D B A]
}
