package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Sentinel errors for frontier traversals.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrEndVertexNotFound is returned when a non-empty end ID is absent.
	ErrEndVertexNotFound = errors.New("bfs: end vertex not found")

	// ErrNoSources is returned by MultiSource when no source is given.
	ErrNoSources = errors.New("bfs: no source vertices")

	// ErrBadWeight is returned by ZeroOne for an edge weight other than 0 or 1.
	ErrBadWeight = errors.New("bfs: 0-1 BFS requires weights 0 or 1")

	// ErrNegativeWeight is returned by Dial for a negative edge weight.
	ErrNegativeWeight = errors.New("bfs: negative edge weight")

	// ErrNotGrid is returned by FloodFill when the graph has no grid.
	ErrNotGrid = errors.New("bfs: graph has no grid layout")

	// ErrTooManyBuckets indicates Dial would need more than MaxDialBuckets
	// buckets for the graph's largest edge weight.
	ErrTooManyBuckets = errors.New("bfs: edge weight too large for Dial's buckets")
)

// walker is the mutable state shared by the queue-driven traversals.
// Every emit copies it into a fresh Step.
type walker struct {
	g       *core.GraphData
	queue   []string
	visited map[string]bool
	order   []string // visit-marking order
	dist    map[string]trace.Dist
	parent  map[string]string
	steps   trace.Trace

	// onDiscover, when set, narrates the discovery of to from from.
	onDiscover func(from, to string, d int64) string
}

func newWalker(g *core.GraphData) *walker {
	w := &walker{
		g:       g,
		queue:   make([]string, 0, len(g.Nodes)),
		visited: make(map[string]bool, len(g.Nodes)),
		dist:    make(map[string]trace.Dist, len(g.Nodes)),
		parent:  make(map[string]string, len(g.Nodes)),
	}
	for _, n := range g.Nodes {
		w.dist[n.ID] = trace.Inf
	}

	return w
}

// mark records id as visited at distance d via parent p ("" for roots).
func (w *walker) mark(id string, d int64, p string) {
	w.visited[id] = true
	w.order = append(w.order, id)
	w.dist[id] = trace.Finite(d)
	if p != "" {
		w.parent[id] = p
	}
}

func (w *walker) emit(cur, desc string, hl ...core.Pair) {
	w.steps = append(w.steps, trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Frontier:       trace.Strings(w.queue),
		Visited:        trace.Strings(w.order),
		Distances:      trace.DistMap(w.dist),
		Parents:        trace.StringMap(w.parent),
		HighlightEdges: trace.Pairs(hl),
	})
}

// pathTo walks parent links back from dest.
func (w *walker) pathTo(dest string) []string {
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func pathEdges(path []string) []core.Pair {
	var out []core.Pair
	for i := 0; i+1 < len(path); i++ {
		out = append(out, core.Pair{From: path[i], To: path[i+1]})
	}

	return out
}

func checkEndpoints(g *core.GraphData, start, end string) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if !g.HasNode(start) {
		return fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if end != "" && !g.HasNode(end) {
		return fmt.Errorf("%w: %q", ErrEndVertexNotFound, end)
	}

	return nil
}
