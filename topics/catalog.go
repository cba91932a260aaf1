package topics

import (
	"github.com/katalvlaran/lvtrace/bfs"
	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/dfs"
	"github.com/katalvlaran/lvtrace/dijkstra"
	"github.com/katalvlaran/lvtrace/dsu"
	"github.com/katalvlaran/lvtrace/euler"
	"github.com/katalvlaran/lvtrace/flow"
	"github.com/katalvlaran/lvtrace/karger"
	"github.com/katalvlaran/lvtrace/lowlink"
	"github.com/katalvlaran/lvtrace/matrix"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
	"github.com/katalvlaran/lvtrace/samples"
	"github.com/katalvlaran/lvtrace/trace"
)

// Families group topics in listings.
const (
	FamilyTraversal  = "traversal"
	FamilyShortest   = "shortest-paths"
	FamilyUnionFind  = "union-find"
	FamilyLowLink    = "low-link"
	FamilyFlow       = "flow"
	FamilyAllPairs   = "all-pairs"
	FamilyRandomized = "randomized"
	FamilyEulerian   = "eulerian"
)

// whole adapts a generator that takes only the graph.
func whole(gen func(*core.GraphData) (trace.Trace, error)) trace.Generator {
	return func(g *core.GraphData, _ trace.Params) (trace.Trace, error) { return gen(g) }
}

// fromStart adapts a generator that takes a start vertex.
func fromStart(gen func(*core.GraphData, string) (trace.Trace, error)) trace.Generator {
	return func(g *core.GraphData, p trace.Params) (trace.Trace, error) { return gen(g, p.Start) }
}

// between adapts a generator that takes start and end vertices.
func between(gen func(*core.GraphData, string, string) (trace.Trace, error)) trace.Generator {
	return func(g *core.GraphData, p trace.Params) (trace.Trace, error) { return gen(g, p.Start, p.End) }
}

func wordGraph() (*core.GraphData, error) { return bfs.WordGraph(samples.Words()), nil }

// Default returns the registry of every built-in topic and comparison.
func Default() *Registry {
	r := NewRegistry()
	for _, t := range catalog() {
		if err := r.Add(t); err != nil {
			panic(err)
		}
	}
	for _, c := range []Comparison{
		{ID: "bfs-vs-dfs", Title: "BFS vs DFS", Left: "bfs", Right: "dfs"},
		{ID: "prim-vs-kruskal", Title: "Prim vs Kruskal", Left: "prim", Right: "kruskal"},
		{ID: "dijkstra-vs-bellman-ford", Title: "Dijkstra vs Bellman-Ford", Left: "dijkstra", Right: "bellman-ford-weighted"},
		{ID: "edmonds-karp-vs-dinic", Title: "Edmonds-Karp vs Dinic", Left: "edmonds-karp", Right: "dinic"},
	} {
		if err := r.AddComparison(c); err != nil {
			panic(err)
		}
	}

	return r
}

func catalog() []Topic {
	return []Topic{
		// traversal
		{ID: "bfs", Title: "Breadth-first search", Family: FamilyTraversal, Sample: "hex",
			Params: trace.Params{Start: "A", End: "F"}, Gen: between(bfs.BFS)},
		{ID: "bfs-multi", Title: "Multi-source BFS", Family: FamilyTraversal, Sample: "hex",
			Params: trace.Params{Sources: []string{"A", "F"}},
			Gen: func(g *core.GraphData, p trace.Params) (trace.Trace, error) { return bfs.MultiSource(g, p.Sources) }},
		{ID: "bfs-maze", Title: "BFS through a maze", Family: FamilyTraversal, Sample: "maze",
			Params: trace.Params{Start: "r0c0", End: "r4c4"}, Gen: between(bfs.BFS)},
		{ID: "bfs-01", Title: "0-1 BFS", Family: FamilyTraversal, Sample: "zeroone",
			Params: trace.Params{Start: "S"}, Gen: fromStart(bfs.ZeroOne)},
		{ID: "dial", Title: "Dial's bucket BFS", Family: FamilyTraversal, Sample: "weighted",
			Params: trace.Params{Start: "A"}, Gen: fromStart(bfs.Dial)},
		{ID: "flood-fill", Title: "Flood fill", Family: FamilyTraversal, Sample: "flood",
			Params: trace.Params{Start: "r0c0", K: 3},
			Gen: func(g *core.GraphData, p trace.Params) (trace.Trace, error) { return bfs.FloodFill(g, p.Start, p.K) }},
		{ID: "word-ladder", Title: "Word ladder", Family: FamilyTraversal, Sample: "words",
			Params: trace.Params{Start: "hit", End: "cog"}, Gen: between(bfs.WordLadder), Base: wordGraph},
		{ID: "snakes-ladders", Title: "Snakes and ladders", Family: FamilyTraversal, Sample: "board",
			Params: trace.Params{Start: "1", End: "30"}, Gen: between(bfs.SnakesLadders)},
		{ID: "dfs", Title: "Depth-first search", Family: FamilyTraversal, Sample: "hex",
			Params: trace.Params{Start: "A"}, Gen: fromStart(dfs.DFS)},
		{ID: "cycle-detection", Title: "Directed cycle detection", Family: FamilyTraversal, Sample: "cyclic",
			Gen: whole(dfs.DetectCycle)},
		{ID: "topological-sort", Title: "Topological sort (Kahn)", Family: FamilyTraversal, Sample: "build",
			Gen: whole(dfs.TopologicalSort)},

		// shortest paths
		{ID: "dijkstra", Title: "Dijkstra", Family: FamilyShortest, Sample: "weighted",
			Params: trace.Params{Start: "A", End: "F"},
			Gen: func(g *core.GraphData, p trace.Params) (trace.Trace, error) {
				return dijkstra.Dijkstra(g, dijkstra.Source(p.Start), dijkstra.WithTarget(p.End))
			}},
		{ID: "bellman-ford", Title: "Bellman-Ford", Family: FamilyShortest, Sample: "negative",
			Params: trace.Params{Start: "S"}, Gen: fromStart(dijkstra.BellmanFord)},
		{ID: "bellman-ford-weighted", Title: "Bellman-Ford on the Dijkstra sample", Family: FamilyShortest, Sample: "weighted",
			Params: trace.Params{Start: "A"}, Gen: fromStart(dijkstra.BellmanFord)},
		{ID: "bellman-ford-negative-cycle", Title: "Bellman-Ford with a negative cycle", Family: FamilyShortest, Sample: "negcycle",
			Params: trace.Params{Start: "S"}, Gen: fromStart(dijkstra.BellmanFord)},
		{ID: "desopo-pape", Title: "D'Esopo-Pape", Family: FamilyShortest, Sample: "negative",
			Params: trace.Params{Start: "S"}, Gen: fromStart(dijkstra.DEsopoPape)},
		{ID: "johnson", Title: "Johnson's all-pairs", Family: FamilyShortest, Sample: "negative",
			Gen: whole(dijkstra.Johnson)},

		// union-find and spanning trees
		{ID: "dsu", Title: "Disjoint-set forest", Family: FamilyUnionFind, Sample: "triangles",
			Gen: whole(dsu.Demo)},
		{ID: "connectivity", Title: "Dynamic connectivity", Family: FamilyUnionFind, Sample: "triangles",
			Params: trace.Params{Start: "A", End: "F"}, Gen: dsu.Connectivity},
		{ID: "kruskal", Title: "Kruskal", Family: FamilyUnionFind, Sample: "weighted", Gen: whole(prim_kruskal.Kruskal)},
		{ID: "prim", Title: "Prim", Family: FamilyUnionFind, Sample: "weighted",
			Params: trace.Params{Start: "A"}, Gen: fromStart(prim_kruskal.Prim)},
		{ID: "boruvka", Title: "Borůvka", Family: FamilyUnionFind, Sample: "weighted", Gen: whole(prim_kruskal.Boruvka)},

		// low-link
		{ID: "scc", Title: "Tarjan's strongly connected components", Family: FamilyLowLink, Sample: "scc",
			Gen: whole(lowlink.SCC)},
		{ID: "articulation-points", Title: "Articulation points", Family: FamilyLowLink, Sample: "triangles",
			Gen: whole(lowlink.ArticulationPoints)},
		{ID: "bridges", Title: "Bridges", Family: FamilyLowLink, Sample: "triangles", Gen: whole(lowlink.Bridges)},
		{ID: "biconnected", Title: "Biconnected components", Family: FamilyLowLink, Sample: "triangles",
			Gen: whole(lowlink.Biconnected)},

		// flow
		{ID: "edmonds-karp", Title: "Edmonds-Karp", Family: FamilyFlow, Sample: "network",
			Params: trace.Params{Start: "S", End: "T"}, Gen: between(flow.EdmondsKarp)},
		{ID: "dinic", Title: "Dinic", Family: FamilyFlow, Sample: "network",
			Params: trace.Params{Start: "S", End: "T"}, Gen: between(flow.Dinic)},
		{ID: "push-relabel", Title: "Push-relabel", Family: FamilyFlow, Sample: "network",
			Params: trace.Params{Start: "S", End: "T"}, Gen: between(flow.PushRelabel)},
		{ID: "min-cut", Title: "Minimum s-t cut", Family: FamilyFlow, Sample: "network",
			Params: trace.Params{Start: "S", End: "T"}, Gen: between(flow.MinCut)},
		{ID: "bipartite-matching", Title: "Bipartite matching", Family: FamilyFlow, Sample: "bipartite",
			Gen: whole(flow.BipartiteMatching)},
		{ID: "edge-disjoint-paths", Title: "Edge-disjoint paths", Family: FamilyFlow, Sample: "triangles",
			Params: trace.Params{Start: "A", End: "F"}, Gen: between(flow.EdgeDisjointPaths)},

		// all-pairs and dynamic programming
		{ID: "floyd-warshall", Title: "Floyd-Warshall", Family: FamilyAllPairs, Sample: "weighted",
			Gen: whole(matrix.FloydWarshall)},
		{ID: "transitive-closure", Title: "Transitive closure", Family: FamilyAllPairs, Sample: "build",
			Gen: whole(matrix.TransitiveClosure)},
		{ID: "walk-counts", Title: "Counting walks by matrix powers", Family: FamilyAllPairs, Sample: "walks",
			Params: trace.Params{K: 5},
			Gen: func(g *core.GraphData, p trace.Params) (trace.Trace, error) { return matrix.WalkCounts(g, p.K) }},
		{ID: "multistage", Title: "Multistage shortest path", Family: FamilyAllPairs, Sample: "stages",
			Params: trace.Params{Start: "S", End: "T"}, Gen: between(matrix.Multistage)},
		{ID: "min-mean-cycle", Title: "Karp's minimum mean cycle", Family: FamilyAllPairs, Sample: "meancycle",
			Gen: whole(matrix.MinMeanCycle)},

		// randomized and eulerian
		{ID: "karger", Title: "Karger's minimum cut", Family: FamilyRandomized, Sample: "triangles",
			Params: trace.Params{Seed: 1},
			Gen: func(g *core.GraphData, p trace.Params) (trace.Trace, error) {
				return karger.MinCut(g, karger.WithSeed(p.Seed))
			}},
		{ID: "fleury", Title: "Fleury's Eulerian path", Family: FamilyEulerian, Sample: "envelope",
			Gen: fromStart(euler.Fleury)},
	}
}
