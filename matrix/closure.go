package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

var (
	reach   = trace.Finite(1)
	noReach = trace.Finite(0)
)

// TransitiveClosure traces Warshall's algorithm. The table holds 1 where j
// is reachable from i and 0 otherwise, starting from the adjacency relation
// plus the diagonal. For every intermediate k a row that cannot reach k is
// skipped in one Step; otherwise each j gets a Step testing i→k→j.
// Complexity: O(V³) time.
func TransitiveClosure(g *core.GraphData) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	ids, _, arcs := arcsOf(g)
	n := len(ids)
	t := newTable(nil, ids, noReach)
	for i := 0; i < n; i++ {
		t.cells[i][i] = reach
	}
	for _, a := range arcs {
		t.cells[a.from][a.to] = reach
	}
	t.emit("", "Start from the adjacency relation: every vertex reaches itself and its neighbors.")

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			if t.cells[i][k] != reach {
				t.emit(ids[k], fmt.Sprintf("k=%s: %s cannot reach %s, skip row %s.", ids[k], ids[i], ids[k], ids[i]), cell(i, k))
				continue
			}
			for j := 0; j < n; j++ {
				hl := []trace.Cell{cell(i, j), cell(i, k), cell(k, j)}
				switch {
				case t.cells[i][j] == reach:
					t.emit(ids[k], fmt.Sprintf("k=%s: %s already reaches %s.", ids[k], ids[i], ids[j]), hl...)
				case t.cells[k][j] == reach:
					t.cells[i][j] = reach
					t.emit(ids[k], fmt.Sprintf("k=%s: %s→%s and %s→%s, so %s reaches %s.",
						ids[k], ids[i], ids[k], ids[k], ids[j], ids[i], ids[j]), hl...)
				default:
					t.emit(ids[k], fmt.Sprintf("k=%s: %s does not reach %s, %s still cannot reach %s.",
						ids[k], ids[k], ids[j], ids[i], ids[j]), hl...)
				}
			}
		}
	}

	var pairs int
	for i := range t.cells {
		for j := range t.cells[i] {
			if i != j && t.cells[i][j] == reach {
				pairs++
			}
		}
	}
	t.emit("", fmt.Sprintf("Closure complete: %d ordered pairs (u, v) with u ≠ v and v reachable from u.", pairs))

	return t.steps, nil
}
