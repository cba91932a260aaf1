package dijkstra

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// BellmanFord traces up to V-1 rounds of relaxing every edge, one Step per
// attempt, stopping early after a round with no change. A V-th pass then
// looks for an edge that still relaxes: if one exists, the negative cycle
// behind it is reported in the last Step's Cycle and every vertex reachable
// from that cycle gets distance trace.NegInf.
//
// Negative weights are allowed. Complexity: O(V·E) steps.
func BellmanFord(g *core.GraphData, source string) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := checkVertex(g, source); err != nil {
		return nil, err
	}
	arcs, err := arcsOf(g)
	if err != nil {
		return nil, err
	}
	b := newBF(g, arcs, source, false)
	b.run()

	return b.steps, nil
}

// bf is the state of one Bellman-Ford run. With quiet set no Steps are
// recorded; Johnson and DEsopoPape use it that way.
type bf struct {
	g      *core.GraphData
	arcs   []arc
	source string
	dist   map[string]trace.Dist
	prev   map[string]string
	cycle  []string
	quiet  bool
	steps  trace.Trace
}

func newBF(g *core.GraphData, arcs []arc, source string, quiet bool) *bf {
	b := &bf{g: g, arcs: arcs, source: source, dist: infDist(g), prev: make(map[string]string), quiet: quiet}
	b.dist[source] = trace.Finite(0)

	return b
}

func (b *bf) emit(cur, desc string, hl ...core.Pair) {
	if b.quiet {
		return
	}
	b.steps = append(b.steps, trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Distances:      trace.DistMap(b.dist),
		Parents:        trace.StringMap(b.prev),
		HighlightEdges: trace.Pairs(hl),
	})
}

func (b *bf) run() {
	n := len(b.g.Nodes)
	b.emit(b.source, fmt.Sprintf("Set dist[%s] = 0, all others ∞. Relax all %d edges up to %d times.", b.source, len(b.arcs), max(n-1, 0)))
	for round := 1; round < n; round++ {
		changed := false
		for _, a := range b.arcs {
			edge := core.Pair{From: a.from, To: a.to}
			du := b.dist[a.from]
			if du.IsInf() {
				b.emit(a.to, fmt.Sprintf("Round %d, %s→%s: dist[%s] is ∞; nothing to relax.", round, a.from, a.to, a.from), edge)
				continue
			}
			nd := du.Add(a.w)
			if !nd.Less(b.dist[a.to]) {
				b.emit(a.to, fmt.Sprintf("Round %d, %s→%s: %s + %d = %s is not better than %s.", round, a.from, a.to, du, a.w, nd, b.dist[a.to]), edge)
				continue
			}
			b.dist[a.to] = nd
			b.prev[a.to] = a.from
			changed = true
			b.emit(a.to, fmt.Sprintf("Round %d, %s→%s: %s + %d = %s, update dist[%s].", round, a.from, a.to, du, a.w, nd, a.to), edge)
		}
		if !changed {
			b.emit("", fmt.Sprintf("Round %d changed nothing: distances are final.", round))
			break
		}
	}

	for _, a := range b.arcs {
		du := b.dist[a.from]
		if du.IsInf() || !du.Add(a.w).Less(b.dist[a.to]) {
			continue
		}
		b.prev[a.to] = a.from
		b.cycle = b.traceCycle(a.to)
		b.poison()
		b.emit(a.to, fmt.Sprintf("%s→%s still relaxes after V-1 rounds: negative cycle %s.", a.from, a.to, strings.Join(b.cycle, " → ")),
			pathEdges(b.cycle)...)
		if !b.quiet {
			b.steps[len(b.steps)-1].Cycle = trace.Strings(b.cycle)
		}
		return
	}
	b.emit("", "No edge relaxes in a final pass: no negative cycle is reachable.")
}

// traceCycle steps back V times through prev to land inside the cycle,
// then collects it in forward order, closed.
func (b *bf) traceCycle(from string) []string {
	x := from
	for range b.g.Nodes {
		x = b.prev[x]
	}
	rev := []string{x}
	for cur := b.prev[x]; cur != x; cur = b.prev[cur] {
		rev = append(rev, cur)
	}
	cyc := make([]string, 0, len(rev)+1)
	for i := len(rev) - 1; i >= 0; i-- {
		cyc = append(cyc, rev[i])
	}

	return append(cyc, cyc[0])
}

// poison sets dist to trace.NegInf for every vertex reachable from the cycle.
func (b *bf) poison() {
	queue := append([]string(nil), b.cycle[:len(b.cycle)-1]...)
	for _, id := range queue {
		b.dist[id] = trace.NegInf
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range b.g.Neighbors(u) {
			if !b.dist[v].IsNegInf() {
				b.dist[v] = trace.NegInf
				queue = append(queue, v)
			}
		}
	}
}
