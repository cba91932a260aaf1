package dfs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// DFS traces depth-first search from start using an explicit stack of
// frames. Steps are emitted when a vertex is pushed, when an edge to a
// non-white vertex is skipped and when a vertex is popped. Vertices not
// reachable from start are never visited.
//
// The final Step's Order is the post-order and Parents the DFS tree.
func DFS(g *core.GraphData, start string) (trace.Trace, error) {
	if err := checkStart(g, start); err != nil {
		return nil, err
	}
	w := newWalker(g)
	w.discover(start, "")
	w.emit(start, fmt.Sprintf("Push %s and mark it gray (discovered).", start))
	w.run()
	w.emit("", fmt.Sprintf("Stack empty: DFS complete. Post-order: %s.", strings.Join(w.order, " ")))

	return w.steps, nil
}

// run advances the top frame one neighbor at a time until the stack is
// empty, or until a back edge is found when w.detect is set.
func (w *walker) run() {
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		u := top.id
		nbrs := w.g.Neighbors(u)
		if top.next >= len(nbrs) {
			w.stack = w.stack[:len(w.stack)-1]
			w.color[u] = Black
			w.order = append(w.order, u)
			w.emit(u, fmt.Sprintf("All neighbors of %s explored: pop it and mark it black (finished).", u))
			continue
		}
		v := nbrs[top.next]
		top.next++
		edge := core.Pair{From: u, To: v}
		switch w.color[v] {
		case White:
			w.discover(v, u)
			w.emit(v, fmt.Sprintf("Tree edge %s→%s: push %s and mark it gray.", u, v, v), edge)
		case Gray:
			if w.detect {
				w.closeCycle(u, v)
				return
			}
			w.emit(u, fmt.Sprintf("%s is on the stack (gray): skip edge %s→%s.", v, u, v), edge)
		default:
			w.emit(u, fmt.Sprintf("%s is already finished (black): skip edge %s→%s.", v, u, v), edge)
		}
	}
}
