package dijkstra

import (
	"container/heap"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Dijkstra traces single-source shortest paths on a graph with non-negative
// weights, using a binary heap with lazy deletion. Steps are emitted for
// every pop (including stale entries that are skipped) and every
// relaxation attempt, successful or not.
//
// The final Step's Distances hold the shortest distances (trace.Inf for
// unreachable vertices) and Parents the shortest-path tree. With a Target
// the walk stops once it is finalized and the last Step carries Path.
//
// Complexity: O((V + E) log V) heap work, O(V + E) steps.
func Dijkstra(g *core.GraphData, opts ...Option) (trace.Trace, error) {
	o := DefaultOptions("")
	for _, opt := range opts {
		opt(&o)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := checkVertex(g, o.Source); err != nil {
		return nil, err
	}
	if o.Target != "" && !g.HasNode(o.Target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, o.Target)
	}
	arcs, err := arcsOf(g)
	if err != nil {
		return nil, err
	}
	for _, a := range arcs {
		if a.w < 0 {
			return nil, fmt.Errorf("%w: %s→%s has weight %d", ErrNegativeWeight, a.from, a.to, a.w)
		}
	}
	r := newRunner(g, arcs, o)
	r.init()
	r.process()

	return r.steps, nil
}

// runner holds the state of one Dijkstra execution.
type runner struct {
	g       *core.GraphData
	opts    Options
	out     map[string][]arc
	dist    map[string]trace.Dist
	prev    map[string]string
	visited map[string]bool
	order   []string
	pq      nodePQ
	seq     int
	quiet   bool
	steps   trace.Trace
}

func newRunner(g *core.GraphData, arcs []arc, o Options) *runner {
	return &runner{
		g:       g,
		opts:    o,
		out:     outArcs(arcs),
		dist:    infDist(g),
		prev:    make(map[string]string, len(g.Nodes)),
		visited: make(map[string]bool, len(g.Nodes)),
	}
}

func (r *runner) emit(cur, desc string, hl ...core.Pair) {
	if r.quiet {
		return
	}
	r.steps = append(r.steps, trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Frontier:       r.pq.labels(),
		Visited:        trace.Strings(r.order),
		Distances:      trace.DistMap(r.dist),
		Parents:        trace.StringMap(r.prev),
		HighlightEdges: trace.Pairs(hl),
	})
}

// init sets the source distance to zero and pushes it.
func (r *runner) init() {
	src := r.opts.Source
	r.dist[src] = trace.Finite(0)
	heap.Init(&r.pq)
	r.push(src, 0)
	r.emit(src, fmt.Sprintf("Set dist[%s] = 0 and push (%s, 0); every other vertex starts at ∞.", src, src))
}

func (r *runner) push(id string, d int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process pops until the heap is empty, the target is finalized, or the
// smallest distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			r.emit(u, fmt.Sprintf("Pop (%s, %d): stale entry, %s is already final at %s; skip.", u, item.dist, u, r.dist[u]))
			continue
		}
		if item.dist > r.opts.MaxDistance {
			r.emit(u, fmt.Sprintf("Pop (%s, %d): beyond the distance cap %d; stop.", u, item.dist, r.opts.MaxDistance))
			return
		}
		r.visited[u] = true
		r.order = append(r.order, u)
		r.emit(u, fmt.Sprintf("Pop (%s, %d): smallest tentative distance, %s is final.", u, item.dist, u))
		if u == r.opts.Target {
			path := pathTo(r.prev, u)
			r.emit(u, fmt.Sprintf("Reached %s at distance %d: %s.", u, item.dist, strings.Join(path, " → ")), pathEdges(path)...)
			if !r.quiet {
				r.steps[len(r.steps)-1].Path = path
			}
			return
		}
		r.relax(u)
	}
	if r.opts.Target != "" {
		r.emit("", fmt.Sprintf("Heap empty: %s is unreachable.", r.opts.Target))
		return
	}
	r.emit("", fmt.Sprintf("Heap empty: %d vertices finalized.", len(r.order)))
}

// relax attempts every arc out of u, parallel arcs separately.
func (r *runner) relax(u string) {
	for _, a := range r.out[u] {
		v, w := a.to, a.w
		edge := core.Pair{From: u, To: v}
		if w >= r.opts.InfEdgeThreshold {
			r.emit(u, fmt.Sprintf("Edge %s→%s (weight %d) is impassable; skip.", u, v, w), edge)
			continue
		}
		if r.visited[v] {
			r.emit(v, fmt.Sprintf("Edge %s→%s: %s is already final; nothing to relax.", u, v, v), edge)
			continue
		}
		nd := r.dist[u].Add(w)
		if !nd.Less(r.dist[v]) {
			r.emit(v, fmt.Sprintf("Try %s→%s: %s + %d = %s is not better than %s; keep.", u, v, r.dist[u], w, nd, r.dist[v]), edge)
			continue
		}
		old := r.dist[v]
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd.Value())
		r.emit(v, fmt.Sprintf("Relax %s→%s: %s + %d = %s < %s; update and push (%s, %s).", u, v, r.dist[u], w, nd, old, v, nd), edge)
	}
}
