package matrix

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Multistage traces the backward dynamic program for the cheapest
// source→sink path in a DAG. Vertices are grouped into stages by their
// longest hop depth (Buckets); cost[v] is the cheapest cost from v to the
// sink, filled in reverse topological order with one Step per outgoing arc
// tried. Parents maps each vertex to its chosen successor, and the final
// Step carries the optimal Path.
// Complexity: O(V·E) time for the ordering, O(V+E) for the table.
func Multistage(g *core.GraphData, source, sink string) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.Directed {
		return nil, ErrUndirected
	}
	for _, id := range []string{source, sink} {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	ids, _, arcs := arcsOf(g)
	order, err := topoOrder(ids, arcs)
	if err != nil {
		return nil, err
	}

	out := make([][]arc, len(ids))
	for _, a := range arcs {
		out[a.from] = append(out[a.from], a)
	}
	depth := make([]int, len(ids))
	for _, u := range order {
		for _, a := range out[u] {
			if depth[a.to] < depth[u]+1 {
				depth[a.to] = depth[u] + 1
			}
		}
	}
	var stages [][]string
	for i, id := range ids {
		for len(stages) <= depth[i] {
			stages = append(stages, nil)
		}
		stages[depth[i]] = append(stages[depth[i]], id)
	}

	m := &stager{stages: stages, cost: make(map[string]trace.Dist, len(ids)), next: make(map[string]string)}
	for _, id := range ids {
		m.cost[id] = trace.Inf
	}
	m.cost[sink] = trace.Finite(0)
	m.emit(sink, fmt.Sprintf("%d stages by hop depth. cost[%s] = 0; solve backwards.", len(stages), sink))

	for x := len(order) - 1; x >= 0; x-- {
		u := order[x]
		if ids[u] == sink {
			continue
		}
		for _, a := range out[u] {
			v := ids[a.to]
			cand := m.cost[v].Add(a.w)
			hl := core.Pair{From: ids[u], To: v}
			switch {
			case m.cost[v].IsPosInf():
				m.emit(ids[u], fmt.Sprintf("%s→%s: %s cannot reach %s.", ids[u], v, v, sink), hl)
			case cand.Less(m.cost[ids[u]]):
				m.cost[ids[u]] = cand
				m.next[ids[u]] = v
				m.emit(ids[u], fmt.Sprintf("%s→%s: %d + cost[%s] = %s, best so far for %s.", ids[u], v, a.w, v, cand, ids[u]), hl)
			default:
				m.emit(ids[u], fmt.Sprintf("%s→%s: %d + cost[%s] = %s, no better than %s.", ids[u], v, a.w, v, cand, m.cost[ids[u]]), hl)
			}
		}
	}

	if m.cost[source].IsPosInf() {
		m.emit("", fmt.Sprintf("%s cannot reach %s.", source, sink))
		return m.steps, nil
	}
	path := []string{source}
	for cur := source; cur != sink; {
		cur = m.next[cur]
		path = append(path, cur)
	}
	var hl []core.Pair
	for i := 0; i+1 < len(path); i++ {
		hl = append(hl, core.Pair{From: path[i], To: path[i+1]})
	}
	s := m.emit("", fmt.Sprintf("Cheapest path %s costs %s.", strings.Join(path, " → "), m.cost[source]), hl...)
	s.Path = trace.Strings(path)

	return m.steps, nil
}

type stager struct {
	stages [][]string
	cost   map[string]trace.Dist
	next   map[string]string
	steps  trace.Trace
}

func (m *stager) emit(cur, desc string, hl ...core.Pair) *trace.Step {
	m.steps = append(m.steps, trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Buckets:        trace.Groups(m.stages),
		Distances:      trace.DistMap(m.cost),
		Parents:        trace.StringMap(m.next),
		HighlightEdges: trace.Pairs(hl),
	})

	return &m.steps[len(m.steps)-1]
}

// topoOrder is Kahn's algorithm over table indices, smallest index first.
func topoOrder(ids []string, arcs []arc) ([]int, error) {
	indeg := make([]int, len(ids))
	for _, a := range arcs {
		indeg[a.to]++
	}
	var ready []int
	for i := range ids {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}
	var order []int
	for len(ready) > 0 {
		sort.Ints(ready)
		u := ready[0]
		ready = ready[1:]
		order = append(order, u)
		for _, a := range arcs {
			if a.from == u {
				if indeg[a.to]--; indeg[a.to] == 0 {
					ready = append(ready, a.to)
				}
			}
		}
	}
	if len(order) < len(ids) {
		return nil, ErrNotDAG
	}

	return order, nil
}
