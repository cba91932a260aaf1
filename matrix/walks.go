package matrix

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// WalkCounts traces A^k by repeated squaring, where A counts the arcs u→v
// (parallel arcs count separately). Entry (i,j) of A^k is the number of
// walks of exactly k edges from i to j. Each product fills one cell per
// Step; the table shows the product under construction, zero where not yet
// computed. Counts too large for int64 saturate to ∞.
// Complexity: O(V³·log k) time.
func WalkCounts(g *core.GraphData, k int) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadPower, k)
	}
	ids := g.IDs()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	t := newTable(nil, ids, trace.Finite(0))
	for i, u := range ids {
		for _, v := range g.Neighbors(u) {
			t.cells[i][index[v]] = t.cells[i][index[v]].Add(1)
		}
	}
	t.emit("", fmt.Sprintf("A counts the arcs u→v. Compute A^%d by squaring: %d = %sb.", k, k, strconv.FormatInt(int64(k), 2)))

	base, basePow := copyCells(t.cells), 1
	var result [][]trace.Dist
	resPow := 0
	for e := k; e > 0; e >>= 1 {
		if e&1 == 1 {
			if result == nil {
				result, resPow = copyCells(base), basePow
				t.cells = copyCells(result)
				t.emit("", fmt.Sprintf("Bit %d is set: the result starts as A^%d.", bits.TrailingZeros(uint(basePow)), basePow))
			} else {
				result = t.multiply(ids, result, base, fmt.Sprintf("A^%d", resPow+basePow), fmt.Sprintf("A^%d", resPow), fmt.Sprintf("A^%d", basePow))
				resPow += basePow
			}
		}
		if e > 1 {
			base = t.multiply(ids, base, base, fmt.Sprintf("A^%d", 2*basePow), fmt.Sprintf("A^%d", basePow), fmt.Sprintf("A^%d", basePow))
			basePow *= 2
		}
	}
	t.cells = result
	total := trace.Finite(0)
	for i := range result {
		for j := range result[i] {
			total = addCount(total, result[i][j])
		}
	}
	t.emit("", fmt.Sprintf("A^%d complete: %s walks of length %d in total.", k, total, k))

	return t.steps, nil
}

// multiply computes a·b one cell per Step and returns the product.
func (t *table) multiply(ids []string, a, b [][]trace.Dist, name, an, bn string) [][]trace.Dist {
	n := len(ids)
	t.cells = newTable(nil, ids, trace.Finite(0)).cells
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := trace.Finite(0)
			for l := 0; l < n; l++ {
				sum = addCount(sum, mulCount(a[i][l], b[l][j]))
			}
			t.cells[i][j] = sum
			t.emit(ids[i], fmt.Sprintf("%s[%s][%s] = Σ %s[%s][·]·%s[·][%s] = %s.",
				name, ids[i], ids[j], an, ids[i], bn, ids[j], sum), cell(i, j))
		}
	}

	return copyCells(t.cells)
}

func mulCount(a, b trace.Dist) trace.Dist {
	if a == trace.Finite(0) || b == trace.Finite(0) {
		return trace.Finite(0)
	}
	if a.IsInf() || b.IsInf() || a.Value() > math.MaxInt64/b.Value() {
		return trace.Inf
	}

	return trace.Finite(a.Value() * b.Value())
}

func addCount(a, b trace.Dist) trace.Dist {
	if a.IsInf() || b.IsInf() || a.Value() > math.MaxInt64-b.Value() {
		return trace.Inf
	}

	return a.Plus(b)
}

func copyCells(c [][]trace.Dist) [][]trace.Dist {
	out := make([][]trace.Dist, len(c))
	for i, row := range c {
		out[i] = append([]trace.Dist(nil), row...)
	}

	return out
}
