// Package euler traces Fleury's algorithm for Eulerian paths and circuits
// in undirected multigraphs.
package euler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

var (
	// ErrDirected indicates a directed input.
	ErrDirected = errors.New("euler: graph must be undirected")

	// ErrNoEdges indicates a graph without edges, which has no trail to trace.
	ErrNoEdges = errors.New("euler: graph has no edges")

	// ErrNotEulerian indicates the degree or connectivity conditions fail.
	ErrNotEulerian = errors.New("euler: graph has no Eulerian path")

	// ErrBadStart indicates a start vertex that cannot begin an Eulerian path.
	ErrBadStart = errors.New("euler: start vertex cannot begin an Eulerian path")
)

// fleury is the walk state: the edge multiset, which edges are spent,
// and the trail so far.
type fleury struct {
	ids   []string
	edges []core.Edge
	used  []bool
	trail []string
	spent []core.Pair
	steps trace.Trace
}

// Fleury traces an Eulerian trail. From the current vertex it considers
// the unused incident edges in edge order and crosses the first one that
// is not a bridge of the remaining graph, taking a bridge only when it is
// the last option. The bridge test recounts the vertices reachable from
// the current vertex with and without the edge, one Step per test.
//
// start may be empty: the walk then begins at the first odd-degree vertex,
// or the first vertex with an edge when every degree is even. A given start
// must be odd when two odd vertices exist.
// Complexity: O(E·(V+E)) time.
func Fleury(g *core.GraphData, start string) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Directed {
		return nil, ErrDirected
	}
	f := &fleury{ids: g.IDs(), edges: g.EdgeList()}
	if len(f.edges) == 0 {
		return nil, ErrNoEdges
	}
	f.used = make([]bool, len(f.edges))
	start, err := f.pickStart(start)
	if err != nil {
		return nil, err
	}

	f.trail = []string{start}
	f.emit(start, fmt.Sprintf("Start at %s with %d edges to cross.", start, len(f.edges)))
	for cur := start; len(f.spent) < len(f.edges); {
		cand := f.incident(cur)
		next := -1
		for n, i := range cand {
			if n == len(cand)-1 {
				next = i
				break
			}
			e := f.edges[i]
			if f.isBridge(cur, i) {
				f.emit(cur, fmt.Sprintf("%s–%s is a bridge of the remaining graph: removing it strands part of it, so skip.",
					e.From, e.To), pair(e))
				continue
			}
			f.emit(cur, fmt.Sprintf("%s–%s is not a bridge: every remaining vertex stays reachable without it.", e.From, e.To), pair(e))
			next = i
			break
		}

		e := f.edges[next]
		to := e.To
		if to == cur {
			to = e.From
		}
		f.used[next] = true
		f.spent = append(f.spent, core.Pair{From: cur, To: to})
		f.trail = append(f.trail, to)
		f.emit(to, fmt.Sprintf("Cross %s→%s (%d of %d).", cur, to, len(f.spent), len(f.edges)))
		cur = to
	}

	kind := "path"
	if f.trail[0] == f.trail[len(f.trail)-1] {
		kind = "circuit"
	}
	s := f.emit("", fmt.Sprintf("Eulerian %s: %s.", kind, strings.Join(f.trail, " → ")))
	if kind == "circuit" {
		s.Cycle = trace.Strings(f.trail)
	}

	return f.steps, nil
}

// pickStart checks the degree and connectivity conditions and resolves the
// start vertex.
func (f *fleury) pickStart(start string) (string, error) {
	deg := make(map[string]int, len(f.ids))
	for _, e := range f.edges {
		deg[e.From]++
		deg[e.To]++
	}
	var odd []string
	first := ""
	for _, id := range f.ids {
		if deg[id]%2 == 1 {
			odd = append(odd, id)
		}
		if first == "" && deg[id] > 0 {
			first = id
		}
	}
	if len(odd) != 0 && len(odd) != 2 {
		return "", fmt.Errorf("%w: %d odd-degree vertices", ErrNotEulerian, len(odd))
	}
	if reach := f.reachable(first, -1); len(reach) < countPositive(deg) {
		return "", fmt.Errorf("%w: edges lie in more than one component", ErrNotEulerian)
	}

	switch {
	case start == "" && len(odd) == 2:
		return odd[0], nil
	case start == "":
		return first, nil
	case deg[start] == 0:
		return "", fmt.Errorf("%w: %q has no edges", ErrBadStart, start)
	case len(odd) == 2 && deg[start]%2 == 0:
		return "", fmt.Errorf("%w: %q has even degree but %s and %s are odd", ErrBadStart, start, odd[0], odd[1])
	}

	return start, nil
}

func countPositive(deg map[string]int) int {
	var n int
	for _, d := range deg {
		if d > 0 {
			n++
		}
	}

	return n
}

// incident lists the unused edges touching v, in edge order.
func (f *fleury) incident(v string) []int {
	var out []int
	for i, e := range f.edges {
		if !f.used[i] && (e.From == v || e.To == v) {
			out = append(out, i)
		}
	}

	return out
}

// isBridge reports whether crossing edge i from v would shrink the part
// of the remaining graph reachable from v.
func (f *fleury) isBridge(v string, i int) bool {
	e := f.edges[i]
	if e.From == e.To {
		return false
	}

	return len(f.reachable(v, i)) < len(f.reachable(v, -1))
}

// reachable walks the unused edges from v, pretending edge skip is gone.
func (f *fleury) reachable(v string, skip int) map[string]bool {
	seen := map[string]bool{v: true}
	stack := []string{v}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, e := range f.edges {
			if i == skip || f.used[i] {
				continue
			}
			w := ""
			switch u {
			case e.From:
				w = e.To
			case e.To:
				w = e.From
			}
			if w != "" && !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}

	return seen
}

func (f *fleury) emit(cur, desc string, hl ...core.Pair) *trace.Step {
	f.steps = append(f.steps, trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Path:           trace.Strings(f.trail),
		Visited:        visitedOrder(f.trail),
		HighlightEdges: trace.Pairs(append(append([]core.Pair(nil), f.spent...), hl...)),
	})

	return &f.steps[len(f.steps)-1]
}

func visitedOrder(trail []string) []string {
	seen := make(map[string]bool, len(trail))
	var out []string
	for _, id := range trail {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}

func pair(e core.Edge) core.Pair { return core.Pair{From: e.From, To: e.To} }
