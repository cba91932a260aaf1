package matrix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/matrix"
	"github.com/katalvlaran/lvtrace/trace"
	"github.com/katalvlaran/lvtrace/trace/tracetest"
)

// weighted6 is the undirected weighted sample shared with the shortest-path tests.
func weighted6() *core.GraphData {
	return core.NewBuilder(core.WithWeighted()).
		Edge("A", "B", 4).Edge("A", "C", 2).Edge("B", "C", 1).
		Edge("B", "D", 5).Edge("C", "E", 3).Edge("D", "E", 3).
		Edge("D", "F", 1).
		Build()
}

func TestFloydWarshall_Distances(t *testing.T) {
	tr, err := matrix.FloydWarshall(weighted6())
	require.NoError(t, err)
	tracetest.AssertValid(t, tr)

	m := tr.Last().Matrix
	require.NotNil(t, m)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, m.Labels)
	want := []int64{0, 3, 2, 8, 5, 9}
	for j, w := range want {
		assert.Equal(t, trace.Finite(w), m.Cells[0][j], m.Labels[j])
	}
	// 1 init + 6 intermediates × 5 × 5 attempts + done
	assert.Len(t, tr, 1+6*25+1)
}

func TestFloydWarshall_TriangleInequality(t *testing.T) {
	tr, err := matrix.FloydWarshall(weighted6())
	require.NoError(t, err)
	d := tr.Last().Matrix.Cells
	n := len(d)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				via := d[i][k].Plus(d[k][j])
				assert.False(t, via.Less(d[i][j]), "d[%d][%d] > d[%d][%d] + d[%d][%d]", i, j, i, k, k, j)
			}
		}
	}
}

func TestFloydWarshall_StepPerAttempt(t *testing.T) {
	g := core.NewBuilder(core.WithDirected(), core.WithWeighted()).
		Edge("A", "B", 1).Edge("B", "C", 1).Edge("A", "C", 5).
		Build()
	tr, err := matrix.FloydWarshall(g)
	require.NoError(t, err)
	// k=A: pairs (B,B),(B,C),(C,B),(C,C); k=B: 4; k=C: 4
	assert.Len(t, tr, 1+12+1)
	assert.True(t, tr[0].Matrix.Cells[1][0].IsPosInf())

	var updated bool
	for _, s := range tr {
		if strings.Contains(s.Description, "update d[A][C]") {
			updated = true
			assert.Equal(t, "B", s.CurrentNode)
			assert.Equal(t, trace.Finite(2), s.Matrix.Cells[0][2])
			assert.Len(t, s.HighlightCells, 3)
		}
	}
	assert.True(t, updated)
	tracetest.AssertIndependent(t, tr)
}

func TestFloydWarshall_NegativeCycle(t *testing.T) {
	g := core.NewBuilder(core.WithDirected(), core.WithWeighted()).
		Edge("A", "B", 1).Edge("B", "A", -3).
		Build()
	tr, err := matrix.FloydWarshall(g)
	require.NoError(t, err)
	assert.Contains(t, tr.Last().Description, "negative cycle")
}

func TestTransitiveClosure(t *testing.T) {
	g := core.NewBuilder(core.WithDirected()).
		Edge("A", "B", 0).Edge("B", "C", 0).Node("D", 0, 0).
		Build()
	tr, err := matrix.TransitiveClosure(g)
	require.NoError(t, err)
	tracetest.AssertValid(t, tr)

	one, zero := trace.Finite(1), trace.Finite(0)
	assert.Equal(t, [][]trace.Dist{
		{one, one, one, zero},
		{zero, one, one, zero},
		{zero, zero, one, zero},
		{zero, zero, zero, one},
	}, tr.Last().Matrix.Cells)
	assert.Contains(t, tr.Last().Description, "3 ordered pairs")
	assert.Equal(t, zero, tr[0].Matrix.Cells[0][2])
}

func TestWalkCounts(t *testing.T) {
	// a directed triangle plus a chord: A→B, B→C, C→A, A→C
	g := core.NewBuilder(core.WithDirected()).
		Edge("A", "B", 0).Edge("B", "C", 0).Edge("C", "A", 0).Edge("A", "C", 0).
		Build()
	for _, k := range []int{1, 2, 3, 5} {
		tr, err := matrix.WalkCounts(g, k)
		require.NoError(t, err)
		tracetest.AssertValid(t, tr)
		assert.Equal(t, naivePower(g, k), tr.Last().Matrix.Cells, "k=%d", k)
	}

	tr, err := matrix.WalkCounts(g, 5)
	require.NoError(t, err)
	assert.Contains(t, tr[0].Description, "101b")
	tracetest.AssertIndependent(t, tr)

	_, err = matrix.WalkCounts(g, 0)
	assert.ErrorIs(t, err, matrix.ErrBadPower)
}

// naivePower multiplies the arc-count matrix k times.
func naivePower(g *core.GraphData, k int) [][]trace.Dist {
	ids := g.IDs()
	idx := make(map[string]int)
	for i, id := range ids {
		idx[id] = i
	}
	n := len(ids)
	a := make([][]int64, n)
	for i := range a {
		a[i] = make([]int64, n)
	}
	for i, u := range ids {
		for _, v := range g.Neighbors(u) {
			a[i][idx[v]]++
		}
	}
	p := a
	for step := 1; step < k; step++ {
		next := make([][]int64, n)
		for i := range next {
			next[i] = make([]int64, n)
			for j := 0; j < n; j++ {
				for l := 0; l < n; l++ {
					next[i][j] += p[i][l] * a[l][j]
				}
			}
		}
		p = next
	}
	out := make([][]trace.Dist, n)
	for i := range p {
		out[i] = make([]trace.Dist, n)
		for j := range p[i] {
			out[i][j] = trace.Finite(p[i][j])
		}
	}

	return out
}

func TestMultistage(t *testing.T) {
	g := core.NewBuilder(core.WithDirected(), core.WithWeighted()).
		Edge("S", "A", 1).Edge("S", "B", 2).
		Edge("A", "C", 6).Edge("A", "D", 2).
		Edge("B", "C", 1).Edge("B", "D", 5).
		Edge("C", "T", 1).Edge("D", "T", 3).
		Build()
	tr, err := matrix.Multistage(g, "S", "T")
	require.NoError(t, err)
	tracetest.AssertValid(t, tr)
	tracetest.AssertIndependent(t, tr)

	last := tr.Last()
	assert.Equal(t, []string{"S", "B", "C", "T"}, last.Path)
	assert.Equal(t, trace.Finite(4), last.Distances["S"])
	assert.Equal(t, [][]string{{"S"}, {"A", "B"}, {"C", "D"}, {"T"}}, last.Buckets)
	assert.Equal(t, "D", last.Parents["A"])
	// start + one step per arc + result
	assert.Len(t, tr, 1+8+1)
}

func TestMultistage_Errors(t *testing.T) {
	_, err := matrix.Multistage(weighted6(), "A", "F")
	assert.ErrorIs(t, err, matrix.ErrUndirected)

	cyc := core.NewBuilder(core.WithDirected()).Edge("A", "B", 0).Edge("B", "A", 0).Build()
	_, err = matrix.Multistage(cyc, "A", "B")
	assert.ErrorIs(t, err, matrix.ErrNotDAG)
	_, err = matrix.Multistage(cyc, "A", "Z")
	assert.ErrorIs(t, err, matrix.ErrVertexNotFound)
}

func TestMinMeanCycle(t *testing.T) {
	g := core.NewBuilder(core.WithDirected(), core.WithWeighted()).
		Edge("A", "B", 1).Edge("B", "C", 1).Edge("C", "A", 1).
		Edge("C", "D", 2).Edge("D", "C", 1).
		Build()
	tr, err := matrix.MinMeanCycle(g)
	require.NoError(t, err)
	tracetest.AssertValid(t, tr)

	last := tr.Last()
	assert.Contains(t, last.Description, "Minimum cycle mean is 1;")
	require.Len(t, last.Cycle, 4)
	assert.Equal(t, last.Cycle[0], last.Cycle[3])
	assert.ElementsMatch(t, []string{"A", "B", "C"}, last.Cycle[:3])

	m := tr[0].Matrix
	assert.Equal(t, []string{"k=0", "k=1", "k=2", "k=3", "k=4"}, m.RowLabels)
	assert.Len(t, m.Cells, 5)
}

func TestMinMeanCycle_FractionAndAcyclic(t *testing.T) {
	g := core.NewBuilder(core.WithDirected(), core.WithWeighted()).
		Edge("A", "B", 2).Edge("B", "A", 1).
		Build()
	tr, err := matrix.MinMeanCycle(g)
	require.NoError(t, err)
	assert.Contains(t, tr.Last().Description, "Minimum cycle mean is 3/2;")

	dag := core.NewBuilder(core.WithDirected()).Edge("A", "B", 0).Build()
	tr, err = matrix.MinMeanCycle(dag)
	require.NoError(t, err)
	assert.Nil(t, tr.Last().Cycle)
	assert.Contains(t, tr.Last().Description, "acyclic")

	_, err = matrix.MinMeanCycle(weighted6())
	assert.ErrorIs(t, err, matrix.ErrUndirected)
}
