package core

// Clone returns a deep copy of g: nodes (including Row/Col pointers),
// adjacency lists, edges and grid rows are all freshly allocated.
// Complexity: O(V + E + cells).
func (g *GraphData) Clone() *GraphData {
	if g == nil {
		return nil
	}
	out := &GraphData{
		Directed: g.Directed,
		Layout:   g.Layout,
	}
	if g.Nodes != nil {
		out.Nodes = make([]Node, len(g.Nodes))
		for i, n := range g.Nodes {
			out.Nodes[i] = n
			if n.Row != nil {
				r := *n.Row
				out.Nodes[i].Row = &r
			}
			if n.Col != nil {
				c := *n.Col
				out.Nodes[i].Col = &c
			}
		}
	}
	if g.Adj != nil {
		out.Adj = make(map[string][]string, len(g.Adj))
		for id, nbrs := range g.Adj {
			cp := make([]string, len(nbrs))
			copy(cp, nbrs)
			out.Adj[id] = cp
		}
	}
	if g.Edges != nil {
		out.Edges = make([]Edge, len(g.Edges))
		copy(out.Edges, g.Edges)
	}
	if g.Grid != nil {
		out.Grid = make([][]int, len(g.Grid))
		for i, row := range g.Grid {
			cp := make([]int, len(row))
			copy(cp, row)
			out.Grid[i] = cp
		}
	}

	return out
}
