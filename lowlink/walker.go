package lowlink

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

var (
	// ErrUndirected is returned by SCC for an undirected graph.
	ErrUndirected = errors.New("lowlink: directed graph required")

	// ErrDirected is returned by the cut-vertex and cut-edge generators for
	// a directed graph.
	ErrDirected = errors.New("lowlink: undirected graph required")
)

type mode int

const (
	modeSCC mode = iota
	modeArticulation
	modeBridges
	modeBiconnected
)

type frame struct {
	id, parent    string
	next          int
	children      int
	parentSkipped bool
}

// walker is the explicit-stack context shared by every low-link generator.
type walker struct {
	g     *core.GraphData
	mode  mode
	clock int
	disc  map[string]int
	low   map[string]int
	order []string
	stack []frame

	// Tarjan vertex stack
	vstack  []string
	onStack map[string]bool

	// Biconnected edge stack
	estack []core.Pair

	comps   [][]string
	art     map[string]bool
	bridges []core.Pair
	steps   trace.Trace
}

func newWalker(g *core.GraphData, m mode) (*walker, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if m == modeSCC && !g.Directed {
		return nil, ErrUndirected
	}
	if m != modeSCC && g.Directed {
		return nil, ErrDirected
	}

	return &walker{
		g:       g,
		mode:    m,
		disc:    make(map[string]int, len(g.Nodes)),
		low:     make(map[string]int, len(g.Nodes)),
		onStack: make(map[string]bool),
		art:     make(map[string]bool),
	}, nil
}

func (w *walker) emit(cur, desc string, hl ...core.Pair) {
	var frames []string
	for _, f := range w.stack {
		frames = append(frames, f.id)
	}
	s := trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Frontier:       frames,
		Visited:        trace.Strings(w.order),
		Disc:           trace.IntMap(w.disc),
		Low:            trace.IntMap(w.low),
		HighlightEdges: trace.Pairs(hl),
		Components:     trace.Groups(w.comps),
	}
	switch w.mode {
	case modeSCC:
		s.Order = trace.Strings(w.vstack)
	case modeArticulation:
		s.Articulation = trace.Set(w.art)
	case modeBridges:
		s.Bridges = trace.Pairs(w.bridges)
	case modeBiconnected:
		s.Articulation = trace.Set(w.art)
	}
	w.steps = append(w.steps, s)
}

func (w *walker) visit(id, parent string) {
	w.disc[id] = w.clock
	w.low[id] = w.clock
	w.clock++
	w.order = append(w.order, id)
	w.stack = append(w.stack, frame{id: id, parent: parent})
	if w.mode == modeSCC {
		w.vstack = append(w.vstack, id)
		w.onStack[id] = true
	}
}

// run starts a DFS from every undiscovered vertex in node order.
func (w *walker) run() {
	for _, root := range w.g.IDs() {
		if _, seen := w.disc[root]; seen {
			continue
		}
		w.visit(root, "")
		w.emit(root, fmt.Sprintf("Start a DFS at %s: disc = low = %d.", root, w.disc[root]))
		for len(w.stack) > 0 {
			w.advance()
		}
	}
}

// advance performs one unit of work on the top frame: examine its next
// neighbor, or finish it when none remain.
func (w *walker) advance() {
	top := &w.stack[len(w.stack)-1]
	u := top.id
	nbrs := w.g.Neighbors(u)
	if top.next >= len(nbrs) {
		w.finish()
		return
	}
	v := nbrs[top.next]
	top.next++
	edge := core.Pair{From: u, To: v}

	if !w.g.Directed && v == top.parent && !top.parentSkipped {
		top.parentSkipped = true
		return
	}
	if _, seen := w.disc[v]; !seen {
		top.children++
		if w.mode == modeBiconnected {
			w.estack = append(w.estack, edge)
		}
		w.visit(v, u)
		w.emit(v, fmt.Sprintf("Tree edge %s→%s: disc[%s] = low[%s] = %d.", u, v, v, v, w.disc[v]), edge)
		return
	}

	switch {
	case w.mode == modeSCC && w.onStack[v]:
		w.low[u] = min(w.low[u], w.disc[v])
		w.emit(u, fmt.Sprintf("%s is on the stack: low[%s] = min(low[%s], disc[%s]) = %d.", v, u, u, v, w.low[u]), edge)
	case w.mode == modeSCC:
		w.emit(u, fmt.Sprintf("%s already belongs to a finished component: ignore %s→%s.", v, u, v), edge)
	case w.disc[v] < w.disc[u]:
		w.low[u] = min(w.low[u], w.disc[v])
		if w.mode == modeBiconnected {
			w.estack = append(w.estack, edge)
		}
		w.emit(u, fmt.Sprintf("Back edge %s→%s: low[%s] = min(low[%s], disc[%s]) = %d.", u, v, u, u, v, w.low[u]), edge)
	default:
		// descendant already seen through its own back edge to u
	}
}

// finish pops the top frame and applies the low-link rules to its parent.
func (w *walker) finish() {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	u, p := top.id, top.parent

	if w.mode == modeSCC && w.low[u] == w.disc[u] {
		var comp []string
		for {
			x := w.vstack[len(w.vstack)-1]
			w.vstack = w.vstack[:len(w.vstack)-1]
			w.onStack[x] = false
			comp = append(comp, x)
			if x == u {
				break
			}
		}
		slices.Sort(comp)
		w.comps = append(w.comps, comp)
		w.emit(u, fmt.Sprintf("low[%s] == disc[%s] = %d: %s roots a component, pop %v.", u, u, w.disc[u], u, comp))
	}

	if p == "" {
		if (w.mode == modeArticulation || w.mode == modeBiconnected) && top.children > 1 {
			w.art[u] = true
			w.emit(u, fmt.Sprintf("Root %s has %d DFS children: it is an articulation point.", u, top.children))
			return
		}
		w.emit(u, fmt.Sprintf("Root %s finished.", u))
		return
	}

	w.low[p] = min(w.low[p], w.low[u])
	edge := core.Pair{From: p, To: u}
	switch w.mode {
	case modeSCC:
		w.emit(p, fmt.Sprintf("Return from %s: low[%s] = %d.", u, p, w.low[p]), edge)
	case modeBridges:
		if w.low[u] > w.disc[p] {
			w.bridges = append(w.bridges, edge)
			w.emit(p, fmt.Sprintf("Return from %s: low[%s] = %d > disc[%s] = %d, so %s–%s is a bridge.",
				u, u, w.low[u], p, w.disc[p], p, u), edge)
			return
		}
		w.emit(p, fmt.Sprintf("Return from %s: low[%s] = %d ≤ disc[%s], not a bridge; low[%s] = %d.",
			u, u, w.low[u], p, p, w.low[p]), edge)
	case modeArticulation, modeBiconnected:
		if w.low[u] < w.disc[p] {
			w.emit(p, fmt.Sprintf("Return from %s: low[%s] = %d < disc[%s] = %d; low[%s] = %d.",
				u, u, w.low[u], p, w.disc[p], p, w.low[p]), edge)
			return
		}
		isRoot := w.stack[len(w.stack)-1].parent == ""
		if !isRoot {
			w.art[p] = true
		}
		if w.mode == modeArticulation {
			w.emit(p, fmt.Sprintf("Return from %s: low[%s] = %d ≥ disc[%s] = %d%s.",
				u, u, w.low[u], p, w.disc[p], articulationNote(p, isRoot)), edge)
			return
		}
		comp := w.popComponent(edge)
		w.emit(p, fmt.Sprintf("Return from %s: low[%s] ≥ disc[%s], pop edges down to %s–%s: component %v.",
			u, u, p, p, u, comp), edge)
	}
}

func articulationNote(p string, isRoot bool) string {
	if isRoot {
		return ", but the root is judged by its child count"
	}

	return fmt.Sprintf(", so %s is an articulation point", p)
}

// popComponent pops the edge stack down to and including stop and records
// the vertex set of the popped edges.
func (w *walker) popComponent(stop core.Pair) []string {
	seen := make(map[string]bool)
	for len(w.estack) > 0 {
		e := w.estack[len(w.estack)-1]
		w.estack = w.estack[:len(w.estack)-1]
		seen[e.From], seen[e.To] = true, true
		if e == stop {
			break
		}
	}
	comp := trace.Set(seen)
	w.comps = append(w.comps, comp)

	return comp
}
