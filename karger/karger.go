// Package karger traces Karger's randomized contraction algorithm for the
// global minimum cut of an undirected multigraph.
//
// Entropy is injected: WithSeed fixes the sequence so a trace can be
// replayed, and WithRand hands in a caller-owned source. Each contraction
// Step carries the contracted multigraph as Step.Graph and the vertex
// groups as Step.Supernodes, keyed by each group's first vertex.
package karger

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/dsu"
	"github.com/katalvlaran/lvtrace/trace"
)

var (
	// ErrDirected indicates a directed input; the cut is defined on undirected graphs.
	ErrDirected = errors.New("karger: graph must be undirected")

	// ErrTooSmall indicates fewer than two vertices, which have no cut.
	ErrTooSmall = errors.New("karger: graph needs at least two vertices")
)

// Options configures MinCut.
type Options struct {
	// Rand supplies the random choices. When nil, Seed builds one.
	Rand *rand.Rand
	// Seed seeds a fresh source; 0 seeds from the clock.
	Seed int64
}

// Option configures Options.
type Option func(*Options)

// WithSeed fixes the random sequence.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithRand uses r for every random choice.
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// contraction is the working state: the original edges, the supernode
// forest, and the layout of the original vertices.
type contraction struct {
	g      *core.GraphData
	edges  []core.Edge
	forest *dsu.Forest
	steps  trace.Trace
}

// MinCut runs one Karger trial. Starting from one supernode per vertex it
// picks a uniformly random edge whose endpoints lie in different
// supernodes and merges them, one Step per contraction, until two
// supernodes remain: exactly |V|−2 contractions on a connected graph. The
// final Step's CutSet lists the original edges between the two supernodes
// and Total is their number. Weights are ignored; parallel edges count
// separately, self-loops never.
//
// A disconnected graph stops early with a cut of 0. One trial finds a
// minimum cut with probability at least 2/(V(V−1)).
// Complexity: O(V·E) time.
func MinCut(g *core.GraphData, opts ...Option) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Directed {
		return nil, ErrDirected
	}
	if len(g.Nodes) < 2 {
		return nil, fmt.Errorf("%w: %d vertex(es)", ErrTooSmall, len(g.Nodes))
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.rng()

	c := &contraction{g: g, forest: dsu.NewForest(g.IDs())}
	for _, e := range g.EdgeList() {
		if e.From != e.To {
			c.edges = append(c.edges, e)
		}
	}
	c.emit("", fmt.Sprintf("Every vertex is its own supernode: %d supernodes, %d edges.", len(g.Nodes), len(c.edges)))

	for round := 1; c.forest.Count() > 2; round++ {
		crossing := c.crossing()
		if len(crossing) == 0 {
			s := c.emit("", "No edge joins two supernodes: the graph is disconnected, so the minimum cut is 0.")
			s.Total = trace.Int64(0)
			return c.steps, nil
		}
		e := crossing[rng.Intn(len(crossing))]
		a, b := c.key(e.From), c.key(e.To)
		c.forest.Union(e.From, e.To)
		c.emit(c.key(e.From), fmt.Sprintf("Contraction %d: pick edge %s–%s at random (1 of %d) and merge supernodes %s and %s.",
			round, e.From, e.To, len(crossing), a, b), core.Pair{From: e.From, To: e.To})
	}

	cut := c.crossing()
	pairs := make([]core.Pair, len(cut))
	for i, e := range cut {
		pairs[i] = core.Pair{From: e.From, To: e.To}
	}
	groups := c.forest.Components()
	s := c.emit("", fmt.Sprintf("Two supernodes remain, {%s} and {%s}: the cut has %d edge(s).",
		strings.Join(groups[0], ", "), strings.Join(groups[1], ", "), len(cut)), pairs...)
	s.CutSet = trace.Pairs(pairs)
	s.Total = trace.Int64(int64(len(cut)))

	return c.steps, nil
}

// crossing lists the edges whose endpoints lie in different supernodes.
func (c *contraction) crossing() []core.Edge {
	var out []core.Edge
	for _, e := range c.edges {
		if !c.forest.Connected(e.From, e.To) {
			out = append(out, e)
		}
	}

	return out
}

// key names a supernode by its first member in vertex order.
func (c *contraction) key(id string) string {
	root := c.forest.Find(id)
	for _, n := range c.g.Nodes {
		if c.forest.Find(n.ID) == root {
			return n.ID
		}
	}

	return id
}

func (c *contraction) emit(cur, desc string, hl ...core.Pair) *trace.Step {
	c.steps = append(c.steps, trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Supernodes:     c.supernodes(),
		HighlightEdges: trace.Pairs(hl),
		Graph:          c.contracted(),
	})

	return &c.steps[len(c.steps)-1]
}

func (c *contraction) supernodes() map[string][]string {
	out := make(map[string][]string)
	for _, grp := range c.forest.Components() {
		out[grp[0]] = grp
	}

	return out
}

// contracted builds the current multigraph: one node per supernode at the
// centroid of its members, one unit edge per crossing original edge.
func (c *contraction) contracted() *core.GraphData {
	b := core.NewBuilder(core.WithWeighted())
	for _, grp := range c.forest.Components() {
		var x, y float64
		for _, id := range grp {
			n, _ := c.g.NodeByID(id)
			x += n.X
			y += n.Y
		}
		b.Node(grp[0], x/float64(len(grp)), y/float64(len(grp)))
	}
	for _, e := range c.crossing() {
		b.Edge(c.key(e.From), c.key(e.To), 1)
	}

	return b.Build()
}
