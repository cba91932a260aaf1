package matrix

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// ratio is an exact mean num/den with den > 0.
type ratio struct{ num, den int64 }

func (r ratio) less(o ratio) bool { return r.num*o.den < o.num*r.den }

func (r ratio) String() string {
	a, b := r.num, r.den
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		a = 1
	}
	num, den := r.num/a, r.den/a
	if den == 1 {
		return strconv.FormatInt(num, 10)
	}

	return fmt.Sprintf("%d/%d", num, den)
}

// MinMeanCycle traces Karp's algorithm for the minimum mean-weight cycle of
// a directed graph. Row k of the table holds D[k][v], the lightest walk of
// exactly k edges ending at v from any start (D[0][·] = 0); each arc tried
// for each k is one Step. Then every vertex v is scored by
// max_k (D[n][v] − D[k][v]) / (n − k), and the minimum score is the minimum
// cycle mean. The final Step carries a cycle achieving it, recovered from
// the lightest n-edge walk. An acyclic graph ends with no Cycle.
// Complexity: O(V·E) time, O(V²) table.
func MinMeanCycle(g *core.GraphData) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.Directed {
		return nil, ErrUndirected
	}
	ids, _, arcs := arcsOf(g)
	n := len(ids)
	rows := make([]string, n+1)
	for k := range rows {
		rows[k] = "k=" + strconv.Itoa(k)
	}
	t := newTable(rows, ids, trace.Inf)
	pred := make([][]int, n+1)
	for k := range pred {
		pred[k] = make([]int, n)
		for v := range pred[k] {
			pred[k][v] = -1
		}
	}
	for v := 0; v < n; v++ {
		t.cells[0][v] = trace.Finite(0)
	}
	t.emit("", "D[0][v] = 0 for every v: a walk may start anywhere.")

	for k := 1; k <= n; k++ {
		for _, a := range arcs {
			prev := t.cells[k-1][a.from]
			hl := []trace.Cell{cell(k, a.to), cell(k-1, a.from)}
			if prev.IsPosInf() {
				t.emit(ids[a.to], fmt.Sprintf("k=%d: no %d-edge walk ends at %s, skip %s→%s.", k, k-1, ids[a.from], ids[a.from], ids[a.to]), hl...)
				continue
			}
			cand := prev.Add(a.w)
			if cand.Less(t.cells[k][a.to]) {
				t.cells[k][a.to] = cand
				pred[k][a.to] = a.from
				t.emit(ids[a.to], fmt.Sprintf("k=%d: D[%d][%s] + %d = %s improves D[%d][%s].", k, k-1, ids[a.from], a.w, cand, k, ids[a.to]), hl...)
				continue
			}
			t.emit(ids[a.to], fmt.Sprintf("k=%d: D[%d][%s] + %d = %s, keep D[%d][%s] = %s.",
				k, k-1, ids[a.from], a.w, cand, k, ids[a.to], t.cells[k][a.to]), hl...)
		}
	}

	best, bestV := ratio{}, -1
	for v := 0; v < n; v++ {
		if t.cells[n][v].IsPosInf() {
			t.emit(ids[v], fmt.Sprintf("No %d-edge walk ends at %s, so it gets no score.", n, ids[v]), cell(n, v))
			continue
		}
		var worst ratio
		worstK := -1
		for k := 0; k < n; k++ {
			if t.cells[k][v].IsPosInf() {
				continue
			}
			r := ratio{t.cells[n][v].Value() - t.cells[k][v].Value(), int64(n - k)}
			if worstK < 0 || worst.less(r) {
				worst, worstK = r, k
			}
		}
		t.emit(ids[v], fmt.Sprintf("Score of %s: max over k of (D[%d][%s] − D[k][%s])/(%d − k) = %s at k=%d.",
			ids[v], n, ids[v], ids[v], n, worst, worstK), cell(n, v), cell(worstK, v))
		if bestV < 0 || worst.less(best) {
			best, bestV = worst, v
		}
	}
	if bestV < 0 {
		t.emit("", "The graph is acyclic: no cycle, no mean.")
		return t.steps, nil
	}

	cycle := walkCycle(pred, n, bestV)
	var weight int64
	var hl []core.Pair
	names := make([]string, len(cycle))
	for i, v := range cycle {
		names[i] = ids[v]
		if i+1 < len(cycle) {
			w := lightest(arcs, v, cycle[i+1])
			weight += w
			hl = append(hl, core.Pair{From: ids[v], To: ids[cycle[i+1]]})
		}
	}
	s := t.emit(ids[bestV], fmt.Sprintf("Minimum cycle mean is %s; cycle %v has weight %d over %d edges.",
		best, names, weight, len(cycle)-1))
	s.Cycle = names
	s.HighlightEdges = hl

	return t.steps, nil
}

// walkCycle follows pred back from (n, v) and returns the first cycle
// closed on that walk, in forward order, first vertex repeated at the end.
func walkCycle(pred [][]int, n, v int) []int {
	walk := make([]int, n+1)
	walk[n] = v
	for k := n; k > 0; k-- {
		walk[k-1] = pred[k][walk[k]]
	}
	last := make(map[int]int, n+1)
	for k := n; k >= 0; k-- {
		if j, ok := last[walk[k]]; ok {
			return append([]int(nil), walk[k:j+1]...)
		}
		last[walk[k]] = k
	}

	return nil
}

func lightest(arcs []arc, u, v int) int64 {
	first := true
	var w int64
	for _, a := range arcs {
		if a.from == u && a.to == v && (first || a.w < w) {
			w, first = a.w, false
		}
	}

	return w
}
