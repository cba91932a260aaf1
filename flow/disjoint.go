package flow

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// EdgeDisjointPaths traces unit-capacity max flow from source to sink and
// then peels the flow apart into edge-disjoint paths, one Step each. Total
// is the number of paths, which equals the minimum number of edges whose
// removal separates sink from source. Weights are ignored.
func EdgeDisjointPaths(g *core.GraphData, source, sink string) (trace.Trace, error) {
	n, err := newNetwork(g, source, sink, true)
	if err != nil {
		return nil, err
	}
	n.edmondsKarp()

	left := make(map[core.Pair]int64)
	for p, f := range n.flow {
		if f > 0 {
			left[p] = f
		}
	}
	var paths [][]string
	var used []core.Pair
	for {
		path := peel(n, left)
		if path == nil {
			break
		}
		paths = append(paths, path)
		used = append(used, pathEdges(path)...)
		s := n.emit(sink, fmt.Sprintf("Path %d: %s.", len(paths), strings.Join(path, "→")), used...)
		s.Path = trace.Strings(path)
		s.Total = trace.Int64(int64(len(paths)))
	}
	s := n.emit("", fmt.Sprintf("%d edge-disjoint path(s) from %s to %s.", len(paths), source, sink), used...)
	s.Total = trace.Int64(int64(len(paths)))

	return n.steps, nil
}

// peel follows remaining positive flow from the source to the sink,
// consuming one unit per arc, or returns nil when none leaves the source.
func peel(n *network, left map[core.Pair]int64) []string {
	path := []string{n.source}
	for u := n.source; u != n.sink; {
		next := ""
		for _, v := range n.adj[u] {
			if left[core.Pair{From: u, To: v}] > 0 {
				next = v
				break
			}
		}
		if next == "" {
			return nil
		}
		left[core.Pair{From: u, To: next}]--
		path = append(path, next)
		u = next
	}

	return path
}
