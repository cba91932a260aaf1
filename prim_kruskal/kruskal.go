package prim_kruskal

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Kruskal traces Kruskal's algorithm: edges are considered in ascending
// weight (ties in declaration order) and accepted when their endpoints lie
// in different disjoint-set trees. Each Step carries the MST edges so far,
// the running Total and the Roots coloring from the union-find forest.
//
// Disconnected graphs yield a minimum spanning forest.
// Complexity: O(E log E + E·α(V)); O(E) steps.
func Kruskal(g *core.GraphData) (trace.Trace, error) {
	edges, err := edgesOf(g)
	if err != nil {
		return nil, err
	}
	sorted := sortedByWeight(edges)
	t := newTree(g)
	names := make([]string, len(sorted))
	for i, e := range sorted {
		names[i] = fmt.Sprintf("%s-%s(%d)", e.From, e.To, e.Weight)
	}
	t.emit("", "Sort edges by weight: "+strings.Join(names, ", ")+". Every vertex starts as its own set.")

	need := len(g.Nodes) - 1
	for _, e := range sorted {
		if len(t.mst) == need {
			break
		}
		ru, rv := t.forest.Find(e.From), t.forest.Find(e.To)
		if ru == rv {
			t.emit(e.To, fmt.Sprintf("Edge %s-%s (%d): both ends already in set %s, adding it would form a cycle; reject.",
				e.From, e.To, e.Weight, ru), pair(e))
			continue
		}
		t.forest.Union(e.From, e.To)
		t.add(e)
		t.emit(e.To, fmt.Sprintf("Edge %s-%s (%d): sets %s and %s differ; accept and union them. Total %d.",
			e.From, e.To, e.Weight, ru, rv, t.total), pair(e))
	}
	t.finish("Kruskal", len(g.Nodes))

	return t.steps, nil
}
