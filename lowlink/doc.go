// Package lowlink generates step traces for the discovery-time / low-link
// family of depth-first algorithms:
//
//   - SCC: Tarjan's strongly connected components of a directed graph.
//   - ArticulationPoints: cut vertices of an undirected graph.
//   - Bridges: cut edges of an undirected graph.
//   - Biconnected: biconnected components, via an explicit edge stack.
//
// All four share one iterative walker: a stack of frames (vertex, parent,
// next-neighbor index) replaces recursion, and disc/low live in maps on
// the walker. Each Step snapshots Disc, Low, the frame stack (as Frontier)
// and whatever results are known so far.
//
// Rules applied when a child v of u finishes:
//
//	low[u] = min(low[u], low[v])
//	u→v is a bridge        iff low[v] >  disc[u]
//	u is an articulation   iff low[v] >= disc[u] (u not a root), or
//	                           u is a root with more than one DFS child
//
// Complexity: O(V + E) steps; each snapshot copies O(V + E).
package lowlink
