package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/dfs"
	"github.com/katalvlaran/lvtrace/trace"
	"github.com/katalvlaran/lvtrace/trace/tracetest"
)

// diamond is A→B, A→C, B→D, C→D, D→E, D→F.
func diamond() *core.GraphData {
	return core.NewBuilder(core.WithDirected()).
		Edge("A", "B", 0).Edge("A", "C", 0).
		Edge("B", "D", 0).Edge("C", "D", 0).
		Edge("D", "E", 0).Edge("D", "F", 0).
		Build()
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, core.ErrNilGraph)
	_, err = dfs.DFS(diamond(), "X")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	bad := diamond()
	bad.Adj["A"] = append(bad.Adj["A"], "ghost")
	_, err = dfs.DFS(bad, "A")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestDFS_Orders(t *testing.T) {
	tr, err := dfs.DFS(diamond(), "A")
	require.NoError(t, err)
	tracetest.AssertValid(t, tr)
	tracetest.AssertIndependent(t, tr)

	last := tr.Last()
	assert.Equal(t, []string{"A", "B", "D", "E", "F", "C"}, last.Visited)
	assert.Equal(t, []string{"E", "F", "D", "B", "C", "A"}, last.Order)
	assert.Equal(t, map[string]string{"B": "A", "C": "A", "D": "B", "E": "D", "F": "D"}, last.Parents)
	assert.Empty(t, last.Frontier)

	// the stack is always a root-to-current path of the DFS tree
	for _, s := range tr {
		for i := 1; i < len(s.Frontier); i++ {
			assert.Equal(t, s.Frontier[i-1], s.Parents[s.Frontier[i]])
		}
	}
}

func TestDFS_TerminatesOnCycle(t *testing.T) {
	g := core.NewBuilder(core.WithDirected()).
		Edge("A", "B", 0).Edge("B", "C", 0).Edge("C", "A", 0).
		Build()
	tr, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	tracetest.AssertValid(t, tr)
	assert.Equal(t, []string{"C", "B", "A"}, tr.Last().Order)
	tracetest.AssertDeterministic(t, func() (trace.Trace, error) { return dfs.DFS(g, "A") })
}

func TestDFS_Undirected(t *testing.T) {
	g := core.NewBuilder().Edge("A", "B", 0).Edge("B", "C", 0).Edge("C", "A", 0).Build()
	tr, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, tr.Last().Visited)
}

func TestDetectCycle(t *testing.T) {
	_, err := dfs.DetectCycle(core.NewBuilder().Edge("A", "B", 0).Build())
	assert.ErrorIs(t, err, dfs.ErrUndirected)

	g := core.NewBuilder(core.WithDirected()).
		Edge("A", "B", 0).Edge("B", "C", 0).Edge("C", "A", 0).Edge("C", "D", 0).
		Build()
	tr, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	tracetest.AssertValid(t, tr)
	last := tr.Last()
	assert.Equal(t, []string{"A", "B", "C", "A"}, last.Cycle)
	assert.Equal(t, []core.Pair{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "A"}}, last.HighlightEdges)
}

func TestDetectCycle_RotatesToSmallest(t *testing.T) {
	g := core.NewBuilder(core.WithDirected()).
		Edge("X", "C", 0).Edge("C", "B", 0).Edge("B", "A", 0).Edge("A", "C", 0).
		Build()
	tr, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "A"}, tr.Last().Cycle)
}

func TestDetectCycle_Acyclic(t *testing.T) {
	tr, err := dfs.DetectCycle(diamond())
	require.NoError(t, err)
	last := tr.Last()
	assert.Nil(t, last.Cycle)
	assert.Contains(t, last.Description, "acyclic")
	assert.Len(t, last.Order, 6)
}

func TestDetectCycle_SecondComponent(t *testing.T) {
	g := core.NewBuilder(core.WithDirected()).
		Edge("A", "B", 0).
		Edge("C", "D", 0).Edge("D", "C", 0).
		Build()
	tr, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "C"}, tr.Last().Cycle)
}

func TestTopologicalSort(t *testing.T) {
	g := core.NewBuilder(core.WithDirected()).
		Edge("A", "B", 0).Edge("A", "C", 0).
		Edge("B", "D", 0).Edge("C", "D", 0).
		Edge("D", "E", 0).
		Build()
	tr, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	tracetest.AssertValid(t, tr)
	tracetest.AssertIndependent(t, tr)

	order := tr.Last().Order
	require.Equal(t, []string{"A", "B", "C", "D", "E"}, order)
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.EdgeList() {
		assert.Less(t, pos[e.From], pos[e.To], "%s→%s", e.From, e.To)
	}
	assert.Nil(t, tr.Last().Cycle)
	assert.Equal(t, []string{"A"}, tr[0].Frontier)
}

func TestTopologicalSort_ReportsCycle(t *testing.T) {
	g := core.NewBuilder(core.WithDirected()).
		Edge("A", "B", 0).Edge("B", "C", 0).Edge("C", "B", 0).Edge("C", "D", 0).
		Build()
	tr, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	last := tr.Last()
	assert.Equal(t, []string{"A"}, last.Order)
	assert.Equal(t, []string{"B", "C", "B"}, last.Cycle)
	assert.Equal(t, []string{"B", "C", "D"}, last.Frontier)
	assert.Contains(t, last.Description, "1 of 4")

	_, err = dfs.TopologicalSort(core.NewBuilder().Edge("A", "B", 0).Build())
	assert.ErrorIs(t, err, dfs.ErrUndirected)
}
