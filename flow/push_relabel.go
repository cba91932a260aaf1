package flow

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// preflow holds the push–relabel labels on top of a residual network.
type preflow struct {
	*network
	height map[string]int
	excess map[string]int64
	active []string
	queued map[string]bool
}

func (p *preflow) emit(cur, desc string, hl ...core.Pair) {
	s := p.network.emit(cur, desc, hl...)
	s.Height = trace.IntMap(p.height)
	s.Excess = trace.Int64Map(p.excess)
	s.Frontier = trace.Strings(p.active)
	s.Total = trace.Int64(p.excess[p.sink])
}

func (p *preflow) enqueue(v string) {
	if v == p.source || v == p.sink || p.queued[v] || p.excess[v] <= 0 {
		return
	}
	p.queued[v] = true
	p.active = append(p.active, v)
}

func (p *preflow) push(u, v string, d int64) {
	p.network.push(u, v, d)
	p.excess[u] -= d
	p.excess[v] += d
}

// PushRelabel traces the FIFO push–relabel algorithm. The source starts at
// height |V| and saturates its outgoing arcs; then each active vertex
// (positive excess, not source or sink) pushes excess to a residual
// neighbor of lower height, or is relabeled to one above its lowest
// residual neighbor when none exists. Steps carry Height and Excess;
// Frontier is the active queue and Total the excess at the sink.
// Complexity: O(V³) time.
func PushRelabel(g *core.GraphData, source, sink string) (trace.Trace, error) {
	n, err := newNetwork(g, source, sink, false)
	if err != nil {
		return nil, err
	}
	p := &preflow{
		network: n,
		height:  make(map[string]int, len(n.nodes)),
		excess:  make(map[string]int64, len(n.nodes)),
		queued:  make(map[string]bool),
	}
	for _, id := range n.nodes {
		p.height[id] = 0
		p.excess[id] = 0
	}
	p.height[source] = len(n.nodes)
	p.emit(source, fmt.Sprintf("Lift the source %s to height %d.", source, len(n.nodes)))

	for _, v := range n.adj[source] {
		if d := n.residual(source, v); d > 0 {
			p.push(source, v, d)
			p.enqueue(v)
			p.emit(source, fmt.Sprintf("Saturate %s→%s with %d.", source, v, d), core.Pair{From: source, To: v})
		}
	}

	for len(p.active) > 0 {
		u := p.active[0]
		p.active = p.active[1:]
		p.queued[u] = false
		p.discharge(u)
	}
	p.emit("", fmt.Sprintf("No active vertex remains: maximum flow is %d.", p.excess[sink]))

	return p.steps, nil
}

// discharge pushes or relabels u until its excess is gone.
func (p *preflow) discharge(u string) {
	for p.excess[u] > 0 {
		target := ""
		for _, v := range p.adj[u] {
			if p.residual(u, v) > 0 && p.height[v] < p.height[u] {
				target = v
				break
			}
		}
		if target == "" {
			p.relabel(u)
			continue
		}
		d := min(p.excess[u], p.residual(u, target))
		p.push(u, target, d)
		p.enqueue(target)
		p.emit(u, fmt.Sprintf("Push %d from %s (height %d) to %s (height %d).",
			d, u, p.height[u], target, p.height[target]), core.Pair{From: u, To: target})
	}
}

func (p *preflow) relabel(u string) {
	lowest := -1
	for _, v := range p.adj[u] {
		if p.residual(u, v) > 0 && (lowest < 0 || p.height[v] < lowest) {
			lowest = p.height[v]
		}
	}
	old := p.height[u]
	p.height[u] = lowest + 1
	p.emit(u, fmt.Sprintf("Relabel %s from height %d to %d, one above its lowest residual neighbor.", u, old, p.height[u]))
}
