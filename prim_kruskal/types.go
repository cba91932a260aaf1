package prim_kruskal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/dsu"
	"github.com/katalvlaran/lvtrace/trace"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires an undirected graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrRootNotFound indicates that Prim's root is not a vertex of the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrUnknownMethod is returned by Compute for an unrecognized method name.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodBoruvka selects Borůvka's algorithm (cheapest edge per component, in rounds).
const MethodBoruvka = "boruvka"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim, MethodKruskal or MethodBoruvka.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused otherwise.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST generator named by the options.
func Compute(g *core.GraphData, opts ...Option) (trace.Trace, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	case MethodBoruvka:
		return Boruvka(g)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// edgesOf validates g and lists its undirected edges without self-loops,
// in declaration order.
func edgesOf(g *core.GraphData) ([]core.Edge, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Directed {
		return nil, ErrInvalidGraph
	}
	var out []core.Edge
	for _, e := range g.EdgeList() {
		if e.From != e.To {
			out = append(out, e)
		}
	}

	return out, nil
}

// sortedByWeight returns a copy of edges sorted by ascending weight;
// stable, so ties keep declaration order.
func sortedByWeight(edges []core.Edge) []core.Edge {
	out := append([]core.Edge(nil), edges...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight < out[j].Weight })

	return out
}

// tree accumulates the spanning forest shared by the three generators.
type tree struct {
	forest *dsu.Forest
	mst    []core.Edge
	total  int64
	steps  trace.Trace
}

func newTree(g *core.GraphData) *tree {
	return &tree{forest: dsu.NewForest(g.IDs())}
}

func (t *tree) add(e core.Edge) {
	t.mst = append(t.mst, e)
	t.total += e.Weight
}

func (t *tree) emit(cur, desc string, hl ...core.Pair) *trace.Step {
	t.steps = append(t.steps, trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		MSTEdges:       trace.Edges(t.mst),
		Roots:          t.forest.Roots(),
		Total:          trace.Int64(t.total),
		HighlightEdges: trace.Pairs(hl),
	})

	return &t.steps[len(t.steps)-1]
}

// finish emits the closing Step, noting a spanning forest when the graph
// is disconnected.
func (t *tree) finish(name string, vertices int) {
	if trees := t.forest.Count(); trees > 1 {
		t.emit("", fmt.Sprintf("%s done: the graph is disconnected, minimum spanning forest of %d trees with total weight %d.",
			name, trees, t.total))
		return
	}
	t.emit("", fmt.Sprintf("%s done: %d edges span all %d vertices, total weight %d.", name, len(t.mst), vertices, t.total))
}

func pair(e core.Edge) core.Pair { return core.Pair{From: e.From, To: e.To} }
