package core

import (
	"fmt"
	"strings"
)

// Validate checks the node-reference invariant: every ID referenced in Adj
// or Edges must exist in Nodes, and node IDs must be unique and non-empty.
// Complexity: O(V + E).
func (g *GraphData) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	seen := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return &NodeError{ID: n.ID, Where: "node", Err: ErrEmptyNodeID}
		}
		if _, dup := seen[n.ID]; dup {
			return &NodeError{ID: n.ID, Where: "node", Err: ErrDuplicateNode}
		}
		seen[n.ID] = struct{}{}
	}
	for from, nbrs := range g.Adj {
		if _, ok := seen[from]; !ok {
			return &NodeError{ID: from, Where: "adj", Err: ErrUnknownNode}
		}
		for _, to := range nbrs {
			if _, ok := seen[to]; !ok {
				return &NodeError{ID: to, Where: "adj[" + from + "]", Err: ErrUnknownNode}
			}
		}
	}
	for _, e := range g.Edges {
		where := "edge " + e.From + "->" + e.To
		if _, ok := seen[e.From]; !ok {
			return &NodeError{ID: e.From, Where: where, Err: ErrUnknownNode}
		}
		if _, ok := seen[e.To]; !ok {
			return &NodeError{ID: e.To, Where: where, Err: ErrUnknownNode}
		}
	}

	return nil
}

// HasNode reports whether id is one of g's nodes.
func (g *GraphData) HasNode(id string) bool {
	return g.IndexOf(id) >= 0
}

// IndexOf returns the position of id in Nodes, or -1.
func (g *GraphData) IndexOf(id string) int {
	for i, n := range g.Nodes {
		if n.ID == id {
			return i
		}
	}

	return -1
}

// IDs returns node IDs in declaration order.
func (g *GraphData) IDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}

	return ids
}

// Neighbors returns the ordered neighbor list of id. The returned slice
// aliases g.Adj; callers must not modify it.
func (g *GraphData) Neighbors(id string) []string {
	return g.Adj[id]
}

// Weight returns the weight of the edge u→v, the lightest one when parallel
// edges join them. For undirected graphs the edge v→u matches as well.
// Without an Edges list every adjacency has weight 1.
func (g *GraphData) Weight(u, v string) (int64, bool) {
	if len(g.Edges) == 0 {
		for _, n := range g.Adj[u] {
			if n == v {
				return 1, true
			}
		}
		return 0, false
	}
	var best int64
	found := false
	for _, e := range g.Edges {
		if !joins(g, e, u, v) {
			continue
		}
		if !found || e.Weight < best {
			best, found = e.Weight, true
		}
	}

	return best, found
}

// Arc is one weighted adjacency entry leaving a vertex.
type Arc struct {
	To     string
	Weight int64
}

// Arcs returns u's adjacency in Adj order with weights. The k-th
// occurrence of v in Adj[u] takes the weight of the k-th Edge joining u and
// v, so parallel edges keep their own weights. Without an Edges list every
// arc weighs 1; an entry with no matching Edge returns ErrMissingWeight.
func (g *GraphData) Arcs(u string) ([]Arc, error) {
	nbrs := g.Adj[u]
	out := make([]Arc, 0, len(nbrs))
	if len(g.Edges) == 0 {
		for _, v := range nbrs {
			out = append(out, Arc{To: v, Weight: 1})
		}
		return out, nil
	}
	seen := make(map[string]int, len(nbrs))
	for _, v := range nbrs {
		k := seen[v]
		seen[v]++
		w, ok := g.kthWeight(u, v, k)
		if !ok {
			return nil, &NodeError{ID: v, Where: "adj[" + u + "]", Err: ErrMissingWeight}
		}
		out = append(out, Arc{To: v, Weight: w})
	}

	return out, nil
}

func (g *GraphData) kthWeight(u, v string, k int) (int64, bool) {
	for _, e := range g.Edges {
		if !joins(g, e, u, v) {
			continue
		}
		if k == 0 {
			return e.Weight, true
		}
		k--
	}

	return 0, false
}

func joins(g *GraphData, e Edge, u, v string) bool {
	return (e.From == u && e.To == v) || (!g.Directed && e.From == v && e.To == u)
}

// EdgeBetween returns the Edge record joining u and v (in either direction
// for undirected graphs).
func (g *GraphData) EdgeBetween(u, v string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.From == u && e.To == v {
			return e, true
		}
		if !g.Directed && e.From == v && e.To == u {
			return e, true
		}
	}

	return Edge{}, false
}

// EdgeList returns every edge once. When Edges is empty it is derived from
// Adj in node order, skipping the mirrored half of undirected adjacencies;
// derived edges have weight 1.
func (g *GraphData) EdgeList() []Edge {
	if len(g.Edges) > 0 {
		out := make([]Edge, len(g.Edges))
		copy(out, g.Edges)
		return out
	}
	var out []Edge
	seen := make(map[Pair]struct{})
	for _, n := range g.Nodes {
		for _, to := range g.Adj[n.ID] {
			p := Pair{From: n.ID, To: to}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			if !g.Directed {
				seen[p.Reverse()] = struct{}{}
			}
			out = append(out, Edge{From: n.ID, To: to, Weight: 1})
		}
	}

	return out
}

// NodeByID returns the node with the given ID.
func (g *GraphData) NodeByID(id string) (Node, bool) {
	if i := g.IndexOf(id); i >= 0 {
		return g.Nodes[i], true
	}

	return Node{}, false
}

// MarshalText encodes the pair as "From->To" so it can key JSON maps.
func (p Pair) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses "From->To".
func (p *Pair) UnmarshalText(b []byte) error {
	from, to, ok := strings.Cut(string(b), "->")
	if !ok {
		return fmt.Errorf("core: malformed pair %q", b)
	}
	p.From, p.To = from, to

	return nil
}
