package flow

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// MinCut traces Edmonds–Karp to a maximum flow and then reads off the
// minimum s–t cut: the source side is everything still reachable in the
// residual graph, and the cut is every original arc leaving it. The final
// Step carries CutSet, and Total equals both the cut capacity and the flow
// value.
func MinCut(g *core.GraphData, source, sink string) (trace.Trace, error) {
	n, err := newNetwork(g, source, sink, false)
	if err != nil {
		return nil, err
	}
	n.edmondsKarp()

	side := n.reachable()
	in := make(map[string]bool, len(side))
	for _, id := range side {
		in[id] = true
	}
	s := n.emit(source, fmt.Sprintf("Source side (reachable in the residual graph): {%s}.", strings.Join(side, ", ")))
	s.Visited = trace.Strings(side)

	var cut []core.Pair
	var capacity int64
	for _, u := range n.nodes {
		if !in[u] {
			continue
		}
		for _, v := range n.adj[u] {
			p := core.Pair{From: u, To: v}
			if in[v] || n.cap[p] <= 0 {
				continue
			}
			cut = append(cut, p)
			capacity += n.cap[p]
			s = n.emit(u, fmt.Sprintf("Cut arc %s with capacity %d; cut capacity so far %d.", p, n.cap[p], capacity), p)
			s.Visited = trace.Strings(side)
			s.CutSet = trace.Pairs(cut)
		}
	}
	s = n.emit("", fmt.Sprintf("Minimum cut has %d arc(s) with capacity %d, equal to the maximum flow.", len(cut), capacity), cut...)
	s.Visited = trace.Strings(side)
	s.CutSet = trace.Pairs(cut)
	s.Total = trace.Int64(capacity)

	return n.steps, nil
}
