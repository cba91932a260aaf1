package flow_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/flow"
	"github.com/katalvlaran/lvtrace/trace"
	"github.com/katalvlaran/lvtrace/trace/tracetest"
)

// network6 has maximum flow 14 and the unique minimum cut {A→C, D→T}.
func network6() *core.GraphData {
	return core.NewBuilder(core.WithDirected(), core.WithWeighted()).
		Edge("S", "A", 10).Edge("S", "B", 10).
		Edge("A", "D", 8).Edge("A", "C", 4).
		Edge("B", "D", 9).
		Edge("C", "T", 10).Edge("D", "T", 10).
		Build()
}

type generator func(*core.GraphData, string, string) (trace.Trace, error)

var maxFlows = map[string]generator{
	"EdmondsKarp":   flow.EdmondsKarp,
	"FordFulkerson": flow.FordFulkerson,
	"Dinic":         flow.Dinic,
	"PushRelabel":   flow.PushRelabel,
	"MinCut":        flow.MinCut,
}

func TestErrors(t *testing.T) {
	for name, gen := range maxFlows {
		t.Run(name, func(t *testing.T) {
			_, err := gen(nil, "S", "T")
			assert.ErrorIs(t, err, core.ErrNilGraph)
			_, err = gen(network6(), "X", "T")
			assert.ErrorIs(t, err, flow.ErrSourceNotFound)
			_, err = gen(network6(), "S", "X")
			assert.ErrorIs(t, err, flow.ErrSinkNotFound)
			_, err = gen(network6(), "S", "S")
			assert.ErrorIs(t, err, flow.ErrSameEndpoints)

			neg := core.NewBuilder(core.WithDirected(), core.WithWeighted()).Edge("S", "T", -2).Build()
			_, err = gen(neg, "S", "T")
			var ee flow.EdgeError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, int64(-2), ee.Cap)
		})
	}
}

func TestMaxFlowValue(t *testing.T) {
	for name, gen := range maxFlows {
		t.Run(name, func(t *testing.T) {
			tr, err := gen(network6(), "S", "T")
			require.NoError(t, err)
			tracetest.AssertValid(t, tr)
			tracetest.AssertIndependent(t, tr)

			last := tr.Last()
			require.NotNil(t, last.Total)
			assert.Equal(t, int64(14), *last.Total)

			// skew symmetry holds at every step
			for i, s := range tr {
				for p, f := range s.Flow {
					assert.Equal(t, -f, s.Flow[p.Reverse()], "step %d arc %s", i, p)
				}
			}
			assertConservation(t, last.Flow, "S", "T")
		})
	}
}

// assertConservation checks that every inner vertex has zero net flow.
func assertConservation(t *testing.T, f map[core.Pair]int64, source, sink string) {
	t.Helper()
	net := make(map[string]int64)
	for p, v := range f {
		net[p.From] += v
	}
	for id, v := range net {
		if id != source && id != sink {
			assert.Zero(t, v, id)
		}
	}
	assert.Equal(t, net[source], -net[sink])
}

func TestEdmondsKarp_Rounds(t *testing.T) {
	tr, err := flow.EdmondsKarp(network6(), "S", "T")
	require.NoError(t, err)
	// start + 4 rounds × (find, push) + done
	assert.Len(t, tr, 10)
	assert.Equal(t, []string{"S", "A", "D", "T"}, tr[1].Path)
	assert.Contains(t, tr[1].Description, "bottleneck 8")
	assert.Equal(t, []string{"S", "B", "D", "A", "C", "T"}, tr[7].Path)
	assert.Equal(t, int64(-8), tr[2].Flow[core.Pair{From: "D", To: "A"}])
}

func TestDinic_Phases(t *testing.T) {
	tr, err := flow.Dinic(network6(), "S", "T")
	require.NoError(t, err)
	assert.Len(t, tr, 11)
	assert.Equal(t, trace.Finite(3), tr[1].Distances["T"])
	assert.Equal(t, trace.Finite(2), tr[1].Distances["C"])
	assert.Contains(t, tr[5].Description, "blocking flow of 12")
	assert.Equal(t, trace.Finite(5), tr[6].Distances["T"])
	assert.True(t, tr.Last().Distances["T"].IsPosInf())
	assert.Contains(t, tr.Last().Description, "unreachable")
}

func TestPushRelabel_Labels(t *testing.T) {
	tr, err := flow.PushRelabel(network6(), "S", "T")
	require.NoError(t, err)
	assert.Equal(t, 6, tr[0].Height["S"])
	assert.Equal(t, int64(10), tr[2].Excess["B"])
	last := tr.Last()
	assert.Equal(t, int64(14), last.Excess["T"])
	assert.Empty(t, last.Frontier)
	for _, id := range []string{"A", "B", "C", "D"} {
		assert.Zero(t, last.Excess[id], id)
	}
	var relabeled bool
	for _, s := range tr {
		if strings.HasPrefix(s.Description, "Relabel") {
			relabeled = true
			assert.Greater(t, s.Height[s.CurrentNode], 0)
		}
	}
	assert.True(t, relabeled)
}

func TestMinCut(t *testing.T) {
	tr, err := flow.MinCut(network6(), "S", "T")
	require.NoError(t, err)
	last := tr.Last()
	assert.Equal(t, []core.Pair{{From: "A", To: "C"}, {From: "D", To: "T"}}, last.CutSet)
	assert.ElementsMatch(t, []string{"S", "A", "B", "D"}, last.Visited)
	assert.Equal(t, int64(14), *last.Total)
}

func TestUndirectedAndParallel(t *testing.T) {
	g := core.NewBuilder(core.WithWeighted()).
		Edge("S", "A", 3).Edge("A", "T", 2).Edge("A", "T", 2).Edge("T", "T", 9).
		Build()
	tr, err := flow.EdmondsKarp(g, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, int64(3), *tr.Last().Total)

	tr, err = flow.EdmondsKarp(g, "T", "S")
	require.NoError(t, err)
	assert.Equal(t, int64(3), *tr.Last().Total)
}

func TestBipartiteMatching(t *testing.T) {
	g := core.NewBuilder().
		Edge("A", "x", 0).Edge("A", "y", 0).
		Edge("B", "x", 0).
		Edge("C", "y", 0).Edge("C", "z", 0).
		Build()
	tr, err := flow.BipartiteMatching(g)
	require.NoError(t, err)
	tracetest.AssertValid(t, tr)

	last := tr.Last()
	assert.Equal(t, int64(3), *last.Total)
	require.Len(t, last.HighlightEdges, 3)
	right := make(map[string]bool)
	for _, p := range last.HighlightEdges {
		assert.Contains(t, []string{"A", "B", "C"}, p.From)
		assert.False(t, right[p.To], "right vertex %s matched twice", p.To)
		right[p.To] = true
	}
	require.NotNil(t, tr[0].Graph)
	assert.True(t, tr[0].Graph.HasNode("src"))
	assert.True(t, tr[0].Graph.HasNode("sink"))
	assert.False(t, g.HasNode("src"), "input untouched")

	odd := core.NewBuilder().Edge("A", "B", 0).Edge("B", "C", 0).Edge("C", "A", 0).Build()
	_, err = flow.BipartiteMatching(odd)
	assert.ErrorIs(t, err, flow.ErrNotBipartite)
}

func TestEdgeDisjointPaths(t *testing.T) {
	g := core.NewBuilder().
		Edge("S", "A", 0).Edge("S", "B", 0).
		Edge("A", "B", 0).
		Edge("A", "T", 0).Edge("B", "T", 0).
		Build()
	tr, err := flow.EdgeDisjointPaths(g, "S", "T")
	require.NoError(t, err)
	tracetest.AssertValid(t, tr)

	last := tr.Last()
	assert.Equal(t, int64(2), *last.Total)
	seen := make(map[core.Pair]bool)
	for _, p := range last.HighlightEdges {
		assert.False(t, seen[p], "arc %s reused", p)
		seen[p] = true
	}
	var paths int
	for _, s := range tr {
		if strings.HasPrefix(s.Description, "Path ") {
			assert.Equal(t, "S", s.Path[0])
			assert.Equal(t, "T", s.Path[len(s.Path)-1])
			paths++
		}
	}
	assert.Equal(t, 2, paths)
}

func TestDeterministic(t *testing.T) {
	for name, gen := range maxFlows {
		t.Run(name, func(t *testing.T) {
			tracetest.AssertDeterministic(t, func() (trace.Trace, error) { return gen(network6(), "S", "T") })
		})
	}
}
