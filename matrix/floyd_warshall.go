package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// FloydWarshall traces all-pairs shortest paths. The table starts as the
// weight matrix (0 on the diagonal, the lightest parallel edge, Inf
// elsewhere); then for every intermediate k, source i and target j with
// i, j ≠ k it emits one Step comparing d[i][j] with d[i][k] + d[k][j],
// whether or not it improves. A negative diagonal entry at the end means a
// negative cycle, reported in the final Step.
//
// Loop order is fixed (k → i → j) and ties keep the old value.
// Complexity: O(V³) time, one Step per attempt.
func FloydWarshall(g *core.GraphData) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	ids, _, arcs := arcsOf(g)
	n := len(ids)
	t := newTable(nil, ids, trace.Inf)
	for i := 0; i < n; i++ {
		t.cells[i][i] = trace.Finite(0)
	}
	for _, a := range arcs {
		if w := trace.Finite(a.w); w.Less(t.cells[a.from][a.to]) {
			t.cells[a.from][a.to] = w
		}
	}
	t.emit("", fmt.Sprintf("Initialize the %d×%d table from edge weights; ∞ where no edge.", n, n))

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			for j := 0; j < n; j++ {
				if j == k {
					continue
				}
				t.attempt(ids, i, j, k)
			}
		}
	}

	for i := 0; i < n; i++ {
		if t.cells[i][i].Less(trace.Finite(0)) {
			t.emit(ids[i], fmt.Sprintf("d[%s][%s] = %s < 0: %s lies on a negative cycle, so distances through it are meaningless.",
				ids[i], ids[i], t.cells[i][i], ids[i]), cell(i, i))
			return t.steps, nil
		}
	}
	t.emit("", "All intermediates considered: the table holds every shortest distance.")

	return t.steps, nil
}

func (t *table) attempt(ids []string, i, j, k int) {
	hl := []trace.Cell{cell(i, j), cell(i, k), cell(k, j)}
	ik, kj, ij := t.cells[i][k], t.cells[k][j], t.cells[i][j]
	if ik.IsPosInf() || kj.IsPosInf() {
		t.emit(ids[k], fmt.Sprintf("k=%s: no path %s→%s→%s, keep d[%s][%s] = %s.",
			ids[k], ids[i], ids[k], ids[j], ids[i], ids[j], ij), hl...)
		return
	}
	cand := ik.Plus(kj)
	if cand.Less(ij) {
		t.cells[i][j] = cand
		t.emit(ids[k], fmt.Sprintf("k=%s: d[%s][%s] + d[%s][%s] = %s + %s = %s < %s, update d[%s][%s].",
			ids[k], ids[i], ids[k], ids[k], ids[j], ik, kj, cand, ij, ids[i], ids[j]), hl...)
		return
	}
	t.emit(ids[k], fmt.Sprintf("k=%s: d[%s][%s] + d[%s][%s] = %s ≥ %s, keep d[%s][%s].",
		ids[k], ids[i], ids[k], ids[k], ids[j], cand, ij, ids[i], ids[j]), hl...)
}
