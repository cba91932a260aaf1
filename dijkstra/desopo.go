package dijkstra

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Queue states for D'Esopo-Pape.
const (
	neverQueued = iota
	inQueue
	wasQueued
)

// DEsopoPape traces the D'Esopo-Pape label-correcting algorithm. A vertex
// whose distance improves is pushed to the back of the deque the first
// time it is queued and to the front if it was queued and removed before;
// a vertex still in the deque only has its distance updated.
//
// Negative weights are allowed. A negative cycle reachable from source
// would make the deque cycle forever, so it is rejected up front with
// ErrNegativeCycle.
func DEsopoPape(g *core.GraphData, source string) (trace.Trace, error) {
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
	pre := newBF(g, arcs, source, true)
	pre.run()
	if pre.cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrNegativeCycle, strings.Join(pre.cycle, " → "))
	}
	out := outArcs(arcs)

	p := &pape{
		g:     g,
		dist:  infDist(g),
		prev:  make(map[string]string, len(g.Nodes)),
		state: make(map[string]int, len(g.Nodes)),
	}
	p.dist[source] = trace.Finite(0)
	p.deque = []string{source}
	p.state[source] = inQueue
	p.emit(source, fmt.Sprintf("Set dist[%s] = 0 and put it in the deque.", source))

	for len(p.deque) > 0 {
		u := p.deque[0]
		p.deque = p.deque[1:]
		p.state[u] = wasQueued
		p.emit(u, fmt.Sprintf("Take %s from the front (dist %s).", u, p.dist[u]))
		for _, a := range out[u] {
			v, w := a.to, a.w
			edge := core.Pair{From: u, To: v}
			nd := p.dist[u].Add(w)
			if !nd.Less(p.dist[v]) {
				p.emit(v, fmt.Sprintf("Try %s→%s: %s is not better than %s.", u, v, nd, p.dist[v]), edge)
				continue
			}
			p.dist[v] = nd
			p.prev[v] = u
			switch p.state[v] {
			case neverQueued:
				p.deque = append(p.deque, v)
				p.emit(v, fmt.Sprintf("Relax %s→%s to %s: %s was never queued, push to the BACK.", u, v, nd, v), edge)
			case wasQueued:
				p.deque = append([]string{v}, p.deque...)
				p.emit(v, fmt.Sprintf("Relax %s→%s to %s: %s was queued before, push to the FRONT.", u, v, nd, v), edge)
			default:
				p.emit(v, fmt.Sprintf("Relax %s→%s to %s: %s is already in the deque.", u, v, nd, v), edge)
			}
			p.state[v] = inQueue
		}
	}
	p.emit("", "Deque empty: distances are final.")

	return p.steps, nil
}

type pape struct {
	g     *core.GraphData
	dist  map[string]trace.Dist
	prev  map[string]string
	state map[string]int
	deque []string
	steps trace.Trace
}

func (p *pape) emit(cur, desc string, hl ...core.Pair) {
	p.steps = append(p.steps, trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Frontier:       trace.Strings(p.deque),
		Distances:      trace.DistMap(p.dist),
		Parents:        trace.StringMap(p.prev),
		HighlightEdges: trace.Pairs(hl),
	})
}
