package dfs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// TopologicalSort traces Kahn's algorithm on a directed graph. In-degrees
// are counted first; sources enter a FIFO queue in node order. Each dequeue
// appends to Order and removes the vertex's outgoing edges; a vertex whose
// in-degree drops to zero is enqueued.
//
// If the queue drains before every vertex is ordered, the leftover vertices
// contain a cycle: the final Step reports one in Cycle and lists the
// unordered vertices in Frontier.
func TopologicalSort(g *core.GraphData) (trace.Trace, error) {
	if err := checkDirected(g); err != nil {
		return nil, err
	}
	k := &kahn{g: g, indeg: make(map[string]int, len(g.Nodes))}
	for _, id := range g.IDs() {
		for _, v := range g.Neighbors(id) {
			k.indeg[v]++
		}
	}
	for _, id := range g.IDs() {
		if k.indeg[id] == 0 {
			k.queue = append(k.queue, id)
		}
	}
	k.emit("", fmt.Sprintf("Count in-degrees; enqueue the sources {%s}.", strings.Join(k.queue, ", ")))

	for len(k.queue) > 0 {
		u := k.queue[0]
		k.queue = k.queue[1:]
		k.order = append(k.order, u)
		k.emit(u, fmt.Sprintf("Dequeue %s and append it to the order (position %d).", u, len(k.order)))
		for _, v := range g.Neighbors(u) {
			k.indeg[v]--
			edge := core.Pair{From: u, To: v}
			if k.indeg[v] == 0 {
				k.queue = append(k.queue, v)
				k.emit(v, fmt.Sprintf("Remove %s→%s: in-degree of %s drops to 0, enqueue it.", u, v, v), edge)
			} else {
				k.emit(v, fmt.Sprintf("Remove %s→%s: in-degree of %s is now %d.", u, v, v, k.indeg[v]), edge)
			}
		}
	}

	if len(k.order) == len(g.Nodes) {
		k.emit("", fmt.Sprintf("Queue empty, all %d vertices ordered: %s.", len(k.order), strings.Join(k.order, " ")))
		return k.steps, nil
	}
	var rest []string
	for _, id := range g.IDs() {
		if k.indeg[id] > 0 {
			rest = append(rest, id)
		}
	}
	cyc := k.findCycle(rest)
	k.queue = rest
	k.emit("", fmt.Sprintf("Queue empty with %d of %d vertices ordered: cycle %s blocks the rest.",
		len(k.order), len(g.Nodes), strings.Join(cyc, " → ")), cycleEdges(cyc)...)
	k.steps[len(k.steps)-1].Cycle = cyc

	return k.steps, nil
}

type kahn struct {
	g     *core.GraphData
	indeg map[string]int
	queue []string
	order []string
	steps trace.Trace
}

func (k *kahn) emit(cur, desc string, hl ...core.Pair) {
	k.steps = append(k.steps, trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Frontier:       trace.Strings(k.queue),
		Visited:        trace.Strings(k.order),
		Order:          trace.Strings(k.order),
		HighlightEdges: trace.Pairs(hl),
	})
}

// findCycle walks predecessors among the unordered vertices until one
// repeats. Every unordered vertex keeps a positive in-degree, so each has an
// unordered predecessor and the walk must close.
func (k *kahn) findCycle(rest []string) []string {
	in := make(map[string]bool, len(rest))
	for _, id := range rest {
		in[id] = true
	}
	pred := make(map[string]string, len(rest))
	for _, u := range rest {
		for _, v := range k.g.Neighbors(u) {
			if _, ok := pred[v]; !ok && in[v] {
				pred[v] = u
			}
		}
	}
	seen := make(map[string]int, len(rest))
	var walk []string
	for cur := rest[0]; ; cur = pred[cur] {
		if at, ok := seen[cur]; ok {
			walk = walk[at:]
			break
		}
		seen[cur] = len(walk)
		walk = append(walk, cur)
	}
	// walk follows edges backwards; reverse it and close the loop
	cyc := make([]string, 0, len(walk)+1)
	for i := len(walk) - 1; i >= 0; i-- {
		cyc = append(cyc, walk[i])
	}

	return canonical(append(cyc, cyc[0]))
}
