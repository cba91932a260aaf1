package karger_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/karger"
	"github.com/katalvlaran/lvtrace/trace"
	"github.com/katalvlaran/lvtrace/trace/tracetest"
)

// twoTriangles joins triangles ABC and DEF by the single bridge C–D.
func twoTriangles() *core.GraphData {
	return core.NewBuilder().
		Node("A", 0, 0).Node("B", 0, 2).Node("C", 1, 1).
		Node("D", 3, 1).Node("E", 4, 0).Node("F", 4, 2).
		Edge("A", "B", 0).Edge("A", "C", 0).Edge("B", "C", 0).
		Edge("C", "D", 0).
		Edge("D", "E", 0).Edge("D", "F", 0).Edge("E", "F", 0).
		Build()
}

func TestMinCut_Errors(t *testing.T) {
	_, err := karger.MinCut(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
	_, err = karger.MinCut(core.NewBuilder(core.WithDirected()).Edge("A", "B", 0).Build())
	assert.ErrorIs(t, err, karger.ErrDirected)
	_, err = karger.MinCut(core.NewBuilder().Node("A", 0, 0).Build())
	assert.ErrorIs(t, err, karger.ErrTooSmall)
}

func TestMinCut_Contractions(t *testing.T) {
	g := twoTriangles()
	tr, err := karger.MinCut(g, karger.WithSeed(7))
	require.NoError(t, err)
	tracetest.AssertValid(t, tr)
	tracetest.AssertIndependent(t, tr)

	// framing step + |V|-2 contractions + result
	require.Len(t, tr, 1+4+1)
	for i, s := range tr[:5] {
		assert.Len(t, s.Supernodes, 6-i, "step %d", i)
		require.NotNil(t, s.Graph)
		assert.Len(t, s.Graph.Nodes, 6-i)
	}
	assert.Equal(t, map[string][]string{
		"A": {"A"}, "B": {"B"}, "C": {"C"}, "D": {"D"}, "E": {"E"}, "F": {"F"},
	}, tr[0].Supernodes)

	last := tr.Last()
	require.NotNil(t, last.Total)
	assert.Equal(t, int64(len(last.CutSet)), *last.Total)
	assert.Len(t, last.Supernodes, 2)
	side := make(map[string]string)
	for key, members := range last.Supernodes {
		for _, m := range members {
			side[m] = key
		}
	}
	for _, p := range last.CutSet {
		assert.NotEqual(t, side[p.From], side[p.To], "cut edge %s stays inside a supernode", p)
	}
	assert.Len(t, last.Graph.Edges, len(last.CutSet))
	assert.Equal(t, 6, len(g.Nodes), "input untouched")
}

func TestMinCut_SomeTrialFindsTheBridge(t *testing.T) {
	best := int64(-1)
	for seed := int64(1); seed <= 50; seed++ {
		tr, err := karger.MinCut(twoTriangles(), karger.WithSeed(seed))
		require.NoError(t, err)
		if v := *tr.Last().Total; best < 0 || v < best {
			best = v
		}
		assert.GreaterOrEqual(t, *tr.Last().Total, int64(1))
	}
	assert.Equal(t, int64(1), best)
}

func TestMinCut_SeedAndRandAgree(t *testing.T) {
	a, err := karger.MinCut(twoTriangles(), karger.WithSeed(42))
	require.NoError(t, err)
	b, err := karger.MinCut(twoTriangles(), karger.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	tracetest.AssertDeterministic(t, func() (trace.Trace, error) {
		return karger.MinCut(twoTriangles(), karger.WithSeed(3))
	})
}

func TestMinCut_Disconnected(t *testing.T) {
	g := core.NewBuilder().Edge("A", "B", 0).Node("C", 0, 0).Node("D", 1, 1).Build()
	tr, err := karger.MinCut(g, karger.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), *tr.Last().Total)
	assert.Contains(t, tr.Last().Description, "disconnected")
	assert.Len(t, tr, 3)
}
