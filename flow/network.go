package flow

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// network is a residual flow network. cap aggregates parallel edges and
// drops self-loops; flow is kept skew-symmetric, flow[u,v] == -flow[v,u],
// so residual(u,v) = cap[u,v] - flow[u,v] covers reverse arcs too.
type network struct {
	nodes        []string
	source, sink string
	cap          map[core.Pair]int64
	flow         map[core.Pair]int64
	adj          map[string][]string

	// overlay, when set, is attached to every Step as the graph to draw.
	overlay *core.GraphData
	steps   trace.Trace
}

// newNetwork validates g and the endpoints and builds the residual
// network. Edge weights are capacities; with unit set every edge has
// capacity 1.
func newNetwork(g *core.GraphData, source, sink string, unit bool) (*network, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if !g.HasNode(sink) {
		return nil, fmt.Errorf("%w: %q", ErrSinkNotFound, sink)
	}
	if source == sink {
		return nil, ErrSameEndpoints
	}
	n := &network{
		nodes:  g.IDs(),
		source: source,
		sink:   sink,
		cap:    make(map[core.Pair]int64),
		flow:   make(map[core.Pair]int64),
		adj:    make(map[string][]string, len(g.Nodes)),
	}
	add := func(u, v string, c int64) error {
		if u == v {
			return nil
		}
		if c < 0 {
			return EdgeError{From: u, To: v, Cap: c}
		}
		n.cap[core.Pair{From: u, To: v}] += c
		return nil
	}
	if len(g.Edges) > 0 && !unit {
		// parallel edges add up
		for _, e := range g.Edges {
			if err := add(e.From, e.To, e.Weight); err != nil {
				return nil, err
			}
			if !g.Directed {
				_ = add(e.To, e.From, e.Weight)
			}
		}
	} else {
		for _, u := range n.nodes {
			for _, v := range g.Neighbors(u) {
				_ = add(u, v, 1)
			}
		}
	}
	n.buildAdj(g)

	return n, nil
}

// buildAdj lists, per vertex, forward neighbors in adjacency order and
// then vertices that only reach it (reverse arcs) in node order.
func (n *network) buildAdj(g *core.GraphData) {
	seen := make(map[core.Pair]bool)
	add := func(u, v string) {
		p := core.Pair{From: u, To: v}
		if u == v || seen[p] {
			return
		}
		seen[p] = true
		n.adj[u] = append(n.adj[u], v)
	}
	for _, u := range n.nodes {
		for _, v := range g.Neighbors(u) {
			add(u, v)
		}
	}
	for _, u := range n.nodes {
		for _, v := range g.Neighbors(u) {
			add(v, u)
		}
	}
}

func (n *network) residual(u, v string) int64 {
	p := core.Pair{From: u, To: v}
	return n.cap[p] - n.flow[p]
}

func (n *network) push(u, v string, d int64) {
	n.flow[core.Pair{From: u, To: v}] += d
	n.flow[core.Pair{From: v, To: u}] -= d
}

// value is the net flow leaving the source.
func (n *network) value() int64 {
	var sum int64
	for _, v := range n.adj[n.source] {
		sum += n.flow[core.Pair{From: n.source, To: v}]
	}

	return sum
}

func (n *network) emit(cur, desc string, hl ...core.Pair) *trace.Step {
	s := trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Flow:           trace.FlowMap(n.flow),
		Total:          trace.Int64(n.value()),
		HighlightEdges: trace.Pairs(hl),
	}
	if n.overlay != nil {
		s.Graph = n.overlay.Clone()
	}
	n.steps = append(n.steps, s)

	return &n.steps[len(n.steps)-1]
}

// bfsPath finds a shortest source→sink path in the residual graph, or nil.
func (n *network) bfsPath() []string {
	parent := map[string]string{n.source: ""}
	queue := []string{n.source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.adj[u] {
			if _, ok := parent[v]; ok || n.residual(u, v) <= 0 {
				continue
			}
			parent[v] = u
			if v == n.sink {
				var path []string
				for cur := v; cur != ""; cur = parent[cur] {
					path = append(path, cur)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			queue = append(queue, v)
		}
	}

	return nil
}

// reachable lists vertices reachable from the source in the residual
// graph, in BFS order.
func (n *network) reachable() []string {
	seen := map[string]bool{n.source: true}
	order := []string{n.source}
	for i := 0; i < len(order); i++ {
		u := order[i]
		for _, v := range n.adj[u] {
			if !seen[v] && n.residual(u, v) > 0 {
				seen[v] = true
				order = append(order, v)
			}
		}
	}

	return order
}

func (n *network) bottleneck(path []string) int64 {
	b := n.residual(path[0], path[1])
	for i := 1; i+1 < len(path); i++ {
		b = min(b, n.residual(path[i], path[i+1]))
	}

	return b
}

func (n *network) augment(path []string, d int64) {
	for i := 0; i+1 < len(path); i++ {
		n.push(path[i], path[i+1], d)
	}
}

func pathEdges(path []string) []core.Pair {
	var out []core.Pair
	for i := 0; i+1 < len(path); i++ {
		out = append(out, core.Pair{From: path[i], To: path[i+1]})
	}

	return out
}
