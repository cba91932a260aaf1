// Package flow traces maximum-flow algorithms over *core.GraphData.
//
// Edge weights are capacities. Parallel edges are aggregated, self-loops
// are ignored, and undirected edges carry their capacity in both
// directions. Flow is kept skew-symmetric: every Step's Flow map holds
// f(u,v) and f(v,u) = -f(u,v) for each arc with nonzero flow, and Total is
// the current flow value.
//
// Generators:
//
//   - EdmondsKarp (and its alias FordFulkerson): BFS augmenting paths.
//     O(V·E²).
//   - Dinic: BFS level graph plus blocking flow per phase; levels are shown
//     as Distances. O(V²·E).
//   - PushRelabel: FIFO push–relabel with Height and Excess facets. O(V³).
//   - MinCut: Edmonds–Karp followed by the residual-reachability cut, with
//     CutSet on the final Step.
//   - BipartiteMatching: unit-capacity flow over a 2-coloring, drawn on an
//     augmented network with virtual source and sink.
//   - EdgeDisjointPaths: unit-capacity flow peeled into paths.
//
// # Errors
//
//	ErrSourceNotFound - the source vertex is missing.
//	ErrSinkNotFound   - the sink vertex is missing.
//	ErrSameEndpoints  - source and sink are the same vertex.
//	ErrNotBipartite   - BipartiteMatching found an odd cycle.
//	EdgeError         - an edge has a negative capacity.
package flow
