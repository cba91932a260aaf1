package core

// BuilderOption configures a Builder before nodes and edges are added.
type BuilderOption func(b *Builder)

// WithDirected makes every Edge call one-way.
func WithDirected() BuilderOption {
	return func(b *Builder) { b.g.Directed = true }
}

// WithWeighted records Edge weights in GraphData.Edges. Without it only
// adjacency is recorded.
func WithWeighted() BuilderOption {
	return func(b *Builder) { b.weighted = true }
}

// WithLayout sets the layout discriminator.
func WithLayout(l Layout) BuilderOption {
	return func(b *Builder) { b.g.Layout = l }
}

// Builder assembles a GraphData preserving insertion order.
// Unknown endpoints passed to Edge are added as nodes at the origin.
type Builder struct {
	g        GraphData
	weighted bool
	index    map[string]int
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		g:     GraphData{Adj: make(map[string][]string), Layout: LayoutForce},
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Node adds a node at (x, y). Re-adding an existing ID updates its position.
func (b *Builder) Node(id string, x, y float64) *Builder {
	if i, ok := b.index[id]; ok {
		b.g.Nodes[i].X, b.g.Nodes[i].Y = x, y
		return b
	}
	b.index[id] = len(b.g.Nodes)
	b.g.Nodes = append(b.g.Nodes, Node{ID: id, X: x, Y: y})
	if _, ok := b.g.Adj[id]; !ok {
		b.g.Adj[id] = []string{}
	}

	return b
}

// Cell adds a grid node at (row, col), using col/row as layout coordinates.
func (b *Builder) Cell(id string, row, col int) *Builder {
	b.Node(id, float64(col), float64(row))
	r, c := row, col
	i := b.index[id]
	b.g.Nodes[i].Row, b.g.Nodes[i].Col = &r, &c

	return b
}

// Edge connects from and to. Undirected builders append both directions.
func (b *Builder) Edge(from, to string, weight int64) *Builder {
	return b.TypedEdge(from, to, weight, "")
}

// TypedEdge is Edge with a type tag such as EdgeSnake or EdgeLadder.
func (b *Builder) TypedEdge(from, to string, weight int64, typ string) *Builder {
	b.ensure(from)
	b.ensure(to)
	b.g.Adj[from] = append(b.g.Adj[from], to)
	if !b.g.Directed && from != to {
		b.g.Adj[to] = append(b.g.Adj[to], from)
	}
	if b.weighted || typ != "" {
		b.g.Edges = append(b.g.Edges, Edge{From: from, To: to, Weight: weight, Type: typ})
	}

	return b
}

// Grid attaches a cell-value matrix and switches the layout to grid.
func (b *Builder) Grid(cells [][]int) *Builder {
	b.g.Grid = cells
	b.g.Layout = LayoutGrid

	return b
}

// Build returns a deep copy of the assembled graph so the builder can be
// reused without aliasing.
func (b *Builder) Build() *GraphData {
	return b.g.Clone()
}

func (b *Builder) ensure(id string) {
	if _, ok := b.index[id]; !ok {
		b.Node(id, 0, 0)
	}
}

// Normalize fills Adj from Edges when Adj is empty, mirroring undirected
// edges, and fills missing Adj keys with empty lists. Loaders call it on
// authored YAML/JSON where only edges are spelled out.
func (g *GraphData) Normalize() {
	if g.Adj == nil {
		g.Adj = make(map[string][]string, len(g.Nodes))
	}
	if len(g.Adj) == 0 || allEmpty(g.Adj) {
		for _, e := range g.Edges {
			g.Adj[e.From] = append(g.Adj[e.From], e.To)
			if !g.Directed && e.From != e.To {
				g.Adj[e.To] = append(g.Adj[e.To], e.From)
			}
		}
	}
	for _, n := range g.Nodes {
		if _, ok := g.Adj[n.ID]; !ok {
			g.Adj[n.ID] = []string{}
		}
	}
	if g.Layout == "" {
		g.Layout = LayoutForce
	}
}

func allEmpty(adj map[string][]string) bool {
	for _, v := range adj {
		if len(v) > 0 {
			return false
		}
	}

	return true
}
