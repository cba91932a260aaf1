package dijkstra

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Johnson traces all-pairs shortest paths by Johnson's reweighting, stage
// by stage:
//
//  1. add a virtual source q with a 0-weight edge to every vertex
//     (Step.Graph shows the augmented graph);
//  2. run Bellman-Ford from q for potentials h (Step.Distances); a
//     negative cycle ends the trace with Step.Cycle set;
//  3. reweight each edge to w'(u,v) = w(u,v) + h(u) − h(v) ≥ 0, one Step
//     per edge;
//  4. run Dijkstra from every vertex on the reweighted graph, one Step per
//     source;
//  5. fill the distance matrix D[u][v] = d'(u,v) − h(u) + h(v), one Step
//     per row with its cells highlighted.
//
// The final Step's Matrix holds all-pairs distances (trace.Inf when
// unreachable).
func Johnson(g *core.GraphData) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	arcs, err := arcsOf(g)
	if err != nil {
		return nil, err
	}
	j := &johnson{g: g, ids: g.IDs(), arcs: arcs}
	j.virtual = virtualName(g)

	// stage 1
	aug := &core.GraphData{Directed: true, Adj: make(map[string][]string), Layout: g.Layout}
	aug.Nodes = append(aug.Nodes, g.Nodes...)
	aug.Nodes = append(aug.Nodes, core.Node{ID: j.virtual})
	augArcs := append([]arc(nil), j.arcs...)
	for _, a := range j.arcs {
		aug.Adj[a.from] = append(aug.Adj[a.from], a.to)
		aug.Edges = append(aug.Edges, core.Edge{From: a.from, To: a.to, Weight: a.w})
	}
	for _, id := range j.ids {
		aug.Adj[j.virtual] = append(aug.Adj[j.virtual], id)
		aug.Edges = append(aug.Edges, core.Edge{From: j.virtual, To: id})
		augArcs = append(augArcs, arc{from: j.virtual, to: id})
	}
	aug.Normalize()
	j.emit(j.virtual, fmt.Sprintf("Stage 1: add virtual source %s with a 0-weight edge to each of the %d vertices.", j.virtual, len(j.ids)))
	j.steps[0].Graph = aug.Clone()

	// stage 2
	b := newBF(aug, augArcs, j.virtual, true)
	b.run()
	if b.cycle != nil {
		j.emit("", fmt.Sprintf("Stage 2: Bellman-Ford from %s finds negative cycle %s; no shortest paths exist.",
			j.virtual, strings.Join(b.cycle, " → ")), pathEdges(b.cycle)...)
		j.steps[len(j.steps)-1].Cycle = trace.Strings(b.cycle)
		return j.steps, nil
	}
	j.h = make(map[string]int64, len(j.ids))
	pot := make(map[string]trace.Dist, len(j.ids))
	var parts []string
	for _, id := range j.ids {
		j.h[id] = b.dist[id].Value()
		pot[id] = b.dist[id]
		parts = append(parts, fmt.Sprintf("h(%s)=%d", id, j.h[id]))
	}
	j.emit("", "Stage 2: Bellman-Ford from "+j.virtual+" gives potentials "+strings.Join(parts, ", ")+".")
	j.steps[len(j.steps)-1].Distances = pot

	// stage 3
	rw := &core.GraphData{Nodes: g.Nodes, Directed: true, Adj: make(map[string][]string), Layout: g.Layout}
	reweighted := make([]arc, 0, len(j.arcs))
	for _, a := range j.arcs {
		w := a.w + j.h[a.from] - j.h[a.to]
		reweighted = append(reweighted, arc{from: a.from, to: a.to, w: w})
		rw.Adj[a.from] = append(rw.Adj[a.from], a.to)
		rw.Edges = append(rw.Edges, core.Edge{From: a.from, To: a.to, Weight: w})
		j.emit(a.to, fmt.Sprintf("Stage 3: w'(%s,%s) = %d + %d − %d = %d.", a.from, a.to, a.w, j.h[a.from], j.h[a.to], w),
			core.Pair{From: a.from, To: a.to})
	}
	rw.Normalize()
	rw = rw.Clone()

	// stage 4
	reduced := make(map[string]map[string]trace.Dist, len(j.ids))
	for _, src := range j.ids {
		r := newRunner(rw, reweighted, DefaultOptions(src))
		r.quiet = true
		r.init()
		r.process()
		reduced[src] = r.dist
		j.emit(src, fmt.Sprintf("Stage 4: Dijkstra from %s on the reweighted graph.", src))
		j.steps[len(j.steps)-1].Distances = trace.DistMap(r.dist)
	}

	// stage 5
	j.cells = make([][]trace.Dist, len(j.ids))
	for i := range j.cells {
		j.cells[i] = make([]trace.Dist, len(j.ids))
		for k := range j.cells[i] {
			j.cells[i][k] = trace.Inf
		}
	}
	for i, u := range j.ids {
		hl := make([]trace.Cell, 0, len(j.ids))
		for k, v := range j.ids {
			d := reduced[u][v]
			if !d.IsInf() {
				d = trace.Finite(d.Value() - j.h[u] + j.h[v])
			}
			j.cells[i][k] = d
			hl = append(hl, trace.Cell{Row: i, Col: k})
		}
		j.emit(u, fmt.Sprintf("Stage 5: row %s, D[%s][v] = d'(%s,v) − h(%s) + h(v).", u, u, u, u))
		j.steps[len(j.steps)-1].HighlightCells = hl
	}
	j.emit("", "All-pairs distances complete.")

	return j.steps, nil
}

type johnson struct {
	g       *core.GraphData
	ids     []string
	arcs    []arc
	virtual string
	h       map[string]int64
	cells   [][]trace.Dist
	steps   trace.Trace
}

func (j *johnson) emit(cur, desc string, hl ...core.Pair) {
	s := trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		HighlightEdges: trace.Pairs(hl),
	}
	if j.cells != nil {
		s.Matrix = trace.NewMatrix(j.ids, j.cells)
	}
	j.steps = append(j.steps, s)
}

// virtualName picks an ID for the virtual source that no vertex uses.
func virtualName(g *core.GraphData) string {
	name := "q"
	for g.HasNode(name) {
		name += "'"
	}

	return name
}
