package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Sentinel errors returned by the shortest-path generators.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that Dijkstra met a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNegativeCycle indicates DEsopoPape was given a graph with a negative
	// cycle reachable from the source, on which it would not terminate.
	ErrNegativeCycle = errors.New("dijkstra: negative cycle reachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures Dijkstra.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// Target           – optional vertex; the search stops once it is finalized and
//
//	the last Step carries the path.
//
// MaxDistance      – vertices popped beyond this distance end the search.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
type Options struct {
	Source           string
	Target           string
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithTarget stops the search when id is finalized.
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithMaxDistance sets a maximum distance threshold. Negative values panic
// with ErrBadMaxDistance.
func WithMaxDistance(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Non-positive values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for source with no distance cap and no
// impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// arc is one directed, weighted adjacency entry.
type arc struct {
	from, to string
	w        int64
}

// arcsOf lists every adjacency entry with its own weight, in node then
// adjacency order. Undirected graphs therefore yield both directions and
// parallel edges yield one arc each.
func arcsOf(g *core.GraphData) ([]arc, error) {
	var out []arc
	for _, n := range g.Nodes {
		as, err := g.Arcs(n.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range as {
			out = append(out, arc{from: n.ID, to: a.To, w: a.Weight})
		}
	}

	return out, nil
}

// outArcs groups arcs by tail, keeping order.
func outArcs(arcs []arc) map[string][]arc {
	out := make(map[string][]arc)
	for _, a := range arcs {
		out[a.from] = append(out[a.from], a)
	}

	return out
}

func checkVertex(g *core.GraphData, id string) error {
	if id == "" {
		return ErrEmptySource
	}
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return nil
}

func infDist(g *core.GraphData) map[string]trace.Dist {
	d := make(map[string]trace.Dist, len(g.Nodes))
	for _, n := range g.Nodes {
		d[n.ID] = trace.Inf
	}

	return d
}

// pathTo walks prev links back from dest.
func pathTo(prev map[string]string, dest string) []string {
	path := []string{dest}
	seen := map[string]bool{dest: true}
	for cur := dest; ; {
		p, ok := prev[cur]
		if !ok || seen[p] {
			break
		}
		seen[p] = true
		path = append(path, p)
		cur = p
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

// nodeItem is one heap entry: a vertex and the tentative distance it was
// pushed with. seq breaks ties in push order.
type nodeItem struct {
	id   string
	dist int64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq). Decrease-key is
// lazy: a better distance pushes a new entry and the outdated one is
// skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// labels renders the heap contents in pop order as "id:dist".
func (pq nodePQ) labels() []string {
	if len(pq) == 0 {
		return nil
	}
	items := make(nodePQ, len(pq))
	copy(items, pq)
	sort.Slice(items, func(i, j int) bool { return items.Less(i, j) })
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = fmt.Sprintf("%s:%d", it.id, it.dist)
	}

	return out
}
