package flow

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Dinic traces Dinic's algorithm. Each phase builds a BFS level graph over
// the residual network (shown as Distances) and then saturates it with a
// blocking flow, one Step per augmenting path. The trace stops when the sink
// falls out of the level graph.
// Complexity: O(V²·E) time.
func Dinic(g *core.GraphData, source, sink string) (trace.Trace, error) {
	n, err := newNetwork(g, source, sink, false)
	if err != nil {
		return nil, err
	}
	n.emit(source, fmt.Sprintf("Start with zero flow from %s to %s.", source, sink))
	for phase := 1; ; phase++ {
		level := n.levels()
		s := n.emit(source, fmt.Sprintf("Phase %d: BFS assigns levels over the residual graph.", phase))
		s.Distances = levelDists(n.nodes, level)
		if _, ok := level[sink]; !ok {
			s = n.emit("", fmt.Sprintf("Sink %s is unreachable in the level graph: maximum flow is %d.", sink, n.value()))
			s.Distances = levelDists(n.nodes, level)
			break
		}

		iter := make(map[string]int, len(n.nodes))
		var pushed int64
		for {
			path := n.levelPath(level, iter)
			if path == nil {
				break
			}
			b := n.bottleneck(path)
			n.augment(path, b)
			pushed += b
			s = n.emit(sink, fmt.Sprintf("Phase %d: push %d along %s in the level graph.", phase, b, strings.Join(path, "→")),
				pathEdges(path)...)
			s.Path = trace.Strings(path)
			s.Distances = levelDists(n.nodes, level)
		}
		s = n.emit("", fmt.Sprintf("Phase %d: blocking flow of %d found; flow value is now %d.", phase, pushed, n.value()))
		s.Distances = levelDists(n.nodes, level)
	}

	return n.steps, nil
}

// levels runs BFS from the source over arcs with residual capacity.
// Unreached vertices are absent.
func (n *network) levels() map[string]int {
	level := map[string]int{n.source: 0}
	queue := []string{n.source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.adj[u] {
			if _, ok := level[v]; ok || n.residual(u, v) <= 0 {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level
}

// levelPath finds the next source→sink path that climbs one level per arc.
// iter[u] indexes the next arc of u to try; dead ends advance their
// parent's pointer so no arc is retried within a phase.
func (n *network) levelPath(level map[string]int, iter map[string]int) []string {
	path := []string{n.source}
	for len(path) > 0 {
		u := path[len(path)-1]
		if u == n.sink {
			return path
		}
		advanced := false
		for iter[u] < len(n.adj[u]) {
			v := n.adj[u][iter[u]]
			if lv, ok := level[v]; ok && lv == level[u]+1 && n.residual(u, v) > 0 {
				path = append(path, v)
				advanced = true
				break
			}
			iter[u]++
		}
		if !advanced {
			path = path[:len(path)-1]
			if len(path) > 0 {
				iter[path[len(path)-1]]++
			}
		}
	}

	return nil
}

func levelDists(nodes []string, level map[string]int) map[string]trace.Dist {
	out := make(map[string]trace.Dist, len(nodes))
	for _, id := range nodes {
		if l, ok := level[id]; ok {
			out[id] = trace.Finite(int64(l))
		} else {
			out[id] = trace.Inf
		}
	}

	return out
}
