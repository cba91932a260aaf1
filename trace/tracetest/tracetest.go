// Package tracetest holds assertions shared by the generator packages'
// tests: finiteness, determinism and snapshot independence.
package tracetest

import (
	"testing"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
	"github.com/stretchr/testify/require"
)

// fullScanLimit bounds the O(n²) independence scan; longer traces only
// compare each step against its neighbors.
const fullScanLimit = 300

// AssertValid requires a non-empty trace whose steps all carry a description.
func AssertValid(t testing.TB, tr trace.Trace) {
	t.Helper()
	require.NoError(t, tr.Validate())
	for i, s := range tr {
		require.NotEmptyf(t, s.Description, "step %d has no description", i)
	}
}

// AssertDeterministic runs gen twice and requires structurally identical traces.
func AssertDeterministic(t testing.TB, gen func() (trace.Trace, error)) {
	t.Helper()
	a, err := gen()
	require.NoError(t, err)
	b, err := gen()
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// AssertIndependent scribbles over every collection of each step in turn
// and requires every other step to be unaffected. A failure means a
// generator emitted a live reference into its working state.
func AssertIndependent(t testing.TB, tr trace.Trace) {
	t.Helper()
	snap := tr.Clone()
	for i := range tr {
		scribble(&tr[i])
		lo, hi := 0, len(tr)-1
		if len(tr) > fullScanLimit {
			lo, hi = max(0, i-1), min(len(tr)-1, i+1)
		}
		for j := lo; j <= hi; j++ {
			if j == i {
				continue
			}
			require.Equalf(t, snap[j], tr[j].Clone(), "mutating step %d changed step %d", i, j)
		}
		tr[i] = snap[i].Clone()
	}
}

const mark = "#scribble"

func scribble(s *trace.Step) {
	strs := [][]string{s.Frontier, s.Visited, s.Path, s.Cycle, s.Order, s.Articulation}
	for _, xs := range strs {
		for k := range xs {
			xs[k] = mark
		}
	}
	for _, grp := range [][][]string{s.Buckets, s.Components} {
		for _, xs := range grp {
			for k := range xs {
				xs[k] = mark
			}
		}
	}
	for _, ps := range [][]core.Pair{s.HighlightEdges, s.Bridges, s.CutSet} {
		for k := range ps {
			ps[k] = core.Pair{From: mark, To: mark}
		}
	}
	for k := range s.MSTEdges {
		s.MSTEdges[k].Weight = -1
	}
	for k := range s.HighlightCells {
		s.HighlightCells[k].Row = -1
	}
	for _, m := range []map[string]string{s.Parents, s.Roots} {
		if m != nil {
			m[mark] = mark
		}
	}
	if s.Distances != nil {
		s.Distances[mark] = trace.NegInf
	}
	for _, m := range []map[string]int{s.Disc, s.Low, s.Height} {
		if m != nil {
			m[mark] = -1
		}
	}
	if s.Excess != nil {
		s.Excess[mark] = -1
	}
	if s.Flow != nil {
		s.Flow[core.Pair{From: mark, To: mark}] = -1
	}
	for k, v := range s.Supernodes {
		for x := range v {
			v[x] = mark
		}
		s.Supernodes[k] = v
	}
	if s.Matrix != nil {
		for k := range s.Matrix.Labels {
			s.Matrix.Labels[k] = mark
		}
		for k := range s.Matrix.RowLabels {
			s.Matrix.RowLabels[k] = mark
		}
		for _, row := range s.Matrix.Cells {
			for k := range row {
				row[k] = trace.NegInf
			}
		}
	}
	if s.Total != nil {
		*s.Total = -1
	}
	if s.Graph != nil {
		for k := range s.Graph.Nodes {
			s.Graph.Nodes[k].ID = mark
		}
		for _, nbrs := range s.Graph.Adj {
			for k := range nbrs {
				nbrs[k] = mark
			}
		}
		for k := range s.Graph.Edges {
			s.Graph.Edges[k].Weight = -1
		}
	}
}
