package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Vertex colors during a depth-first walk.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the stack (visiting).
	Black        // Black: the vertex and all its descendants are finished.
)

var (
	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrUndirected indicates DetectCycle or TopologicalSort was given an
	// undirected graph.
	ErrUndirected = errors.New("dfs: directed graph required")
)

// frame is one entry of the explicit call stack: the vertex and the index
// of the next neighbor to examine.
type frame struct {
	id   string
	next int
}

// walker holds the mutable state of one depth-first walk.
type walker struct {
	g       *core.GraphData
	color   map[string]int
	stack   []frame
	visited []string // discovery (pre-order)
	order   []string // finish (post-order)
	parent  map[string]string
	steps   trace.Trace

	// detect stops the walk at the first back edge and records it.
	detect bool
	cycle  []string
}

func newWalker(g *core.GraphData) *walker {
	return &walker{
		g:      g,
		color:  make(map[string]int, len(g.Nodes)),
		parent: make(map[string]string, len(g.Nodes)),
	}
}

// discover colors id Gray and pushes its frame.
func (w *walker) discover(id, parent string) {
	w.color[id] = Gray
	w.visited = append(w.visited, id)
	if parent != "" {
		w.parent[id] = parent
	}
	w.stack = append(w.stack, frame{id: id})
}

func (w *walker) stackIDs() []string {
	if len(w.stack) == 0 {
		return nil
	}
	ids := make([]string, len(w.stack))
	for i, f := range w.stack {
		ids[i] = f.id
	}

	return ids
}

func (w *walker) emit(cur, desc string, hl ...core.Pair) {
	w.steps = append(w.steps, trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Frontier:       w.stackIDs(),
		Visited:        trace.Strings(w.visited),
		Order:          trace.Strings(w.order),
		Parents:        trace.StringMap(w.parent),
		HighlightEdges: trace.Pairs(hl),
	})
}

func checkStart(g *core.GraphData, start string) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if !g.HasNode(start) {
		return fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	return nil
}

func checkDirected(g *core.GraphData) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if !g.Directed {
		return ErrUndirected
	}

	return nil
}
