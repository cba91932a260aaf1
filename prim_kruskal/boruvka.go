package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Boruvka traces Borůvka's algorithm. Each round finds, for every
// component of the union-find forest, its cheapest outgoing edge (ties
// broken by declaration order, which keeps the choice acyclic), then adds
// all those edges, skipping any whose ends were merged earlier in the same
// round. Rounds stop when no component has an outgoing edge.
//
// Complexity: O(E log V); O(V + E·log V) steps.
func Boruvka(g *core.GraphData) (trace.Trace, error) {
	edges, err := edgesOf(g)
	if err != nil {
		return nil, err
	}
	t := newTree(g)
	t.emit("", fmt.Sprintf("Every vertex is its own component (%d). Each round picks the cheapest edge leaving each component.", len(g.Nodes)))

	better := func(a, b int) bool {
		return b < 0 || edges[a].Weight < edges[b].Weight || (edges[a].Weight == edges[b].Weight && a < b)
	}
	for round := 1; ; round++ {
		cheapest := make(map[string]int)
		var roots []string
		for i, e := range edges {
			ru, rv := t.forest.Find(e.From), t.forest.Find(e.To)
			if ru == rv {
				continue
			}
			for _, r := range []string{ru, rv} {
				cur, ok := cheapest[r]
				if !ok {
					roots = append(roots, r)
					cur = -1
				}
				if better(i, cur) {
					cheapest[r] = i
				}
			}
		}
		if len(roots) == 0 {
			break
		}
		for _, r := range roots {
			e := edges[cheapest[r]]
			t.emit(r, fmt.Sprintf("Round %d: cheapest edge leaving component %s is %s-%s (%d).", round, r, e.From, e.To, e.Weight), pair(e))
		}
		for _, r := range roots {
			e := edges[cheapest[r]]
			if !t.forest.Union(e.From, e.To) {
				continue
			}
			t.add(e)
			t.emit(e.To, fmt.Sprintf("Round %d: add %s-%s (%d) and merge; %d component(s) left. Total %d.",
				round, e.From, e.To, e.Weight, t.forest.Count(), t.total), pair(e))
		}
	}
	t.finish("Borůvka", len(g.Nodes))

	return t.steps, nil
}
