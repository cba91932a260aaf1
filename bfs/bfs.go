package bfs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// BFS traces breadth-first search from start. A Step is emitted when a
// vertex is discovered (marked visited and enqueued together) and when it
// is dequeued. With a non-empty end the search stops once end is dequeued
// and the last Step carries the shortest path.
//
// Vertices are marked in non-decreasing distance order; the final Step's
// Distances hold hop counts, with trace.Inf for unreachable vertices.
// Complexity: O(V + E) steps, each snapshot O(V).
func BFS(g *core.GraphData, start, end string) (trace.Trace, error) {
	if err := checkEndpoints(g, start, end); err != nil {
		return nil, err
	}
	w := newWalker(g)
	w.mark(start, 0, "")
	w.queue = append(w.queue, start)
	w.emit(start, fmt.Sprintf("Enqueue start %s at distance 0 and mark it visited.", start))
	w.run(end)

	return w.steps, nil
}

// MultiSource traces BFS seeded with every source at distance 0. The final
// distances are hop counts to the nearest source.
func MultiSource(g *core.GraphData, sources []string) (trace.Trace, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, s := range sources {
		if err := checkEndpoints(g, s, ""); err != nil {
			return nil, err
		}
	}
	w := newWalker(g)
	for _, s := range sources {
		if w.visited[s] {
			continue
		}
		w.mark(s, 0, "")
		w.queue = append(w.queue, s)
	}
	w.emit("", fmt.Sprintf("Seed the queue with all sources {%s} at distance 0.", strings.Join(sources, ", ")))
	w.run("")

	return w.steps, nil
}

// run drains the FIFO queue.
func (w *walker) run(end string) {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		d := w.dist[cur].Value()
		w.emit(cur, fmt.Sprintf("Dequeue %s (distance %d) and scan its neighbors.", cur, d))
		if cur == end {
			path := w.pathTo(end)
			w.emit(end, fmt.Sprintf("Reached %s in %d hop(s): %s.", end, d, strings.Join(path, " → ")), pathEdges(path)...)
			w.steps[len(w.steps)-1].Path = path
			return
		}
		for _, nbr := range w.g.Neighbors(cur) {
			if w.visited[nbr] {
				continue
			}
			w.mark(nbr, d+1, cur)
			w.queue = append(w.queue, nbr)
			desc := fmt.Sprintf("Discover %s from %s: mark visited and enqueue at distance %d.", nbr, cur, d+1)
			if w.onDiscover != nil {
				desc = w.onDiscover(cur, nbr, d+1)
			}
			w.emit(nbr, desc, core.Pair{From: cur, To: nbr})
		}
	}
	if end != "" {
		w.emit("", fmt.Sprintf("Queue empty: %s is unreachable.", end))
		return
	}
	w.emit("", fmt.Sprintf("Queue empty: BFS complete, %d vertices reached.", len(w.order)))
}
