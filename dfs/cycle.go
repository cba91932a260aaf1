package dfs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// DetectCycle traces three-color cycle detection on a directed graph. A DFS
// is started from every vertex still White, in node order. An edge into a
// Gray vertex is a back edge: the stack segment from that vertex to the
// current one is a cycle, reported in the last Step's Cycle (closed, rotated
// to start at its smallest ID). Otherwise the last Step declares the graph
// acyclic.
func DetectCycle(g *core.GraphData) (trace.Trace, error) {
	if err := checkDirected(g); err != nil {
		return nil, err
	}
	w := newWalker(g)
	w.detect = true
	w.emit("", "Color every vertex white. A gray neighbor means a back edge, which closes a cycle.")
	for _, root := range g.IDs() {
		if w.color[root] != White {
			continue
		}
		w.discover(root, "")
		w.emit(root, fmt.Sprintf("%s is still white: start a DFS here and mark it gray.", root))
		w.run()
		if w.cycle != nil {
			return w.steps, nil
		}
	}
	w.emit("", "Every vertex is black and no back edge was found: the graph is acyclic.")

	return w.steps, nil
}

// closeCycle records the cycle closed by the back edge u→v and emits it.
func (w *walker) closeCycle(u, v string) {
	ids := w.stackIDs()
	at := 0
	for i, id := range ids {
		if id == v {
			at = i
			break
		}
	}
	w.cycle = canonical(append(ids[at:len(ids):len(ids)], v))
	w.emit(u, fmt.Sprintf("Back edge %s→%s reaches gray %s: cycle %s.", u, v, v, strings.Join(w.cycle, " → ")),
		cycleEdges(w.cycle)...)
	w.steps[len(w.steps)-1].Cycle = trace.Strings(w.cycle)
}

func cycleEdges(c []string) []core.Pair {
	var out []core.Pair
	for i := 0; i+1 < len(c); i++ {
		out = append(out, core.Pair{From: c[i], To: c[i+1]})
	}

	return out
}

// canonical rotates the closed directed cycle [v0 … vk v0] so it starts at
// its lexicographically minimal rotation, and closes it again. Direction is
// preserved.
func canonical(closed []string) []string {
	base := minimalRotation(closed[:len(closed)-1])

	return append(base, base[0])
}

// minimalRotation implements Booth's algorithm: the lexicographically
// least rotation of s in O(n).
func minimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]string, n)
	copy(res, doubled[k:k+n])

	return res
}
