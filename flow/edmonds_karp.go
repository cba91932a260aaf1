package flow

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// EdmondsKarp traces the Ford–Fulkerson method with BFS path selection:
// each round finds a shortest augmenting path in the residual graph, emits
// it with its bottleneck, then pushes that much flow along it. The trace
// ends when the sink is no longer reachable; Total is the flow value.
//
// Edge weights are capacities; parallel edges are summed and self-loops
// ignored. Undirected edges carry their capacity both ways.
// Complexity: O(V·E²) time, one Step per path plus two.
func EdmondsKarp(g *core.GraphData, source, sink string) (trace.Trace, error) {
	n, err := newNetwork(g, source, sink, false)
	if err != nil {
		return nil, err
	}
	n.edmondsKarp()

	return n.steps, nil
}

// FordFulkerson is EdmondsKarp: augmenting paths are always chosen by BFS so
// the trace terminates in polynomially many rounds.
func FordFulkerson(g *core.GraphData, source, sink string) (trace.Trace, error) {
	return EdmondsKarp(g, source, sink)
}

func (n *network) edmondsKarp() {
	n.emit(n.source, fmt.Sprintf("Start with zero flow from %s to %s.", n.source, n.sink))
	for round := 1; ; round++ {
		path := n.bfsPath()
		if path == nil {
			break
		}
		b := n.bottleneck(path)
		s := n.emit(n.sink, fmt.Sprintf("Round %d: BFS finds augmenting path %s with bottleneck %d.",
			round, strings.Join(path, "→"), b), pathEdges(path)...)
		s.Path = trace.Strings(path)

		n.augment(path, b)
		s = n.emit(n.sink, fmt.Sprintf("Push %d along the path; flow value is now %d.", b, n.value()), pathEdges(path)...)
		s.Path = trace.Strings(path)
	}
	n.emit("", fmt.Sprintf("No augmenting path remains: maximum flow is %d.", n.value()))
}
