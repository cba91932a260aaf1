package flow

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// BipartiteMatching traces a maximum bipartite matching as unit-capacity
// max flow. The vertices are 2-colored by BFS in ID order (the first color
// is the left side); a virtual source feeds every left vertex, every
// left–right edge becomes an arc of capacity 1, and every right vertex
// drains into a virtual sink. Every Step carries that network as its Graph.
// The final Step highlights the matched pairs and Total is their count.
//
// Edge direction and weight are ignored. ErrNotBipartite is returned when
// an odd cycle prevents a 2-coloring.
func BipartiteMatching(g *core.GraphData) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	color, err := twoColor(g)
	if err != nil {
		return nil, err
	}
	src, snk := uniqueName(g, "src"), uniqueName(g, "sink")
	overlay := matchingNetwork(g, color, src, snk)
	n, err := newNetwork(overlay, src, snk, true)
	if err != nil {
		return nil, err
	}
	n.overlay = overlay
	n.edmondsKarp()

	var matched []core.Pair
	var names []string
	for _, u := range g.IDs() {
		if color[u] != 0 {
			continue
		}
		for _, v := range n.adj[u] {
			if v != snk && v != src && n.flow[core.Pair{From: u, To: v}] > 0 {
				matched = append(matched, core.Pair{From: u, To: v})
				names = append(names, u+"–"+v)
			}
		}
	}
	s := n.emit("", fmt.Sprintf("Maximum matching of size %d: %s.", len(matched), strings.Join(names, ", ")), matched...)
	s.Total = trace.Int64(int64(len(matched)))

	return n.steps, nil
}

// twoColor assigns 0 or 1 to every vertex so that no edge joins equal
// colors, treating edges as undirected.
func twoColor(g *core.GraphData) (map[string]int, error) {
	und := make(map[string][]string, len(g.Nodes))
	for _, u := range g.IDs() {
		for _, v := range g.Neighbors(u) {
			und[u] = append(und[u], v)
			und[v] = append(und[v], u)
		}
	}
	color := make(map[string]int, len(g.Nodes))
	for _, root := range g.IDs() {
		if _, ok := color[root]; ok {
			continue
		}
		color[root] = 0
		queue := []string{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range und[u] {
				c, ok := color[v]
				if !ok {
					color[v] = 1 - color[u]
					queue = append(queue, v)
					continue
				}
				if c == color[u] {
					return nil, fmt.Errorf("%w: %q and %q share a side", ErrNotBipartite, u, v)
				}
			}
		}
	}

	return color, nil
}

// matchingNetwork lays out the unit network: the virtual source left of
// the drawing, the virtual sink right of it, both at mid height.
func matchingNetwork(g *core.GraphData, color map[string]int, src, snk string) *core.GraphData {
	minX, maxX, sumY := 0.0, 0.0, 0.0
	for i, nd := range g.Nodes {
		if i == 0 || nd.X < minX {
			minX = nd.X
		}
		if i == 0 || nd.X > maxX {
			maxX = nd.X
		}
		sumY += nd.Y
	}
	midY := 0.0
	if len(g.Nodes) > 0 {
		midY = sumY / float64(len(g.Nodes))
	}

	b := core.NewBuilder(core.WithDirected(), core.WithWeighted())
	b.Node(src, minX-1, midY)
	for _, nd := range g.Nodes {
		b.Node(nd.ID, nd.X, nd.Y)
	}
	b.Node(snk, maxX+1, midY)
	ids := g.IDs()
	for _, u := range ids {
		if color[u] == 0 {
			b.Edge(src, u, 1)
		}
	}
	seen := make(map[core.Pair]bool)
	for _, u := range ids {
		for _, v := range g.Neighbors(u) {
			l, r := u, v
			if color[u] != 0 {
				l, r = v, u
			}
			p := core.Pair{From: l, To: r}
			if seen[p] {
				continue
			}
			seen[p] = true
			b.Edge(l, r, 1)
		}
	}
	for _, v := range ids {
		if color[v] == 1 {
			b.Edge(v, snk, 1)
		}
	}

	return b.Build()
}

// uniqueName returns base, primed until it is not a vertex of g.
func uniqueName(g *core.GraphData, base string) string {
	name := base
	for g.HasNode(name) {
		name += "'"
	}

	return name
}
