// Package dijkstra generates step traces for the priority-relaxation family
// of shortest-path algorithms.
//
// Overview:
//
//   - Dijkstra: binary heap with lazy deletion on non-negative weights. A
//     Step per pop (stale entries included) and per relaxation attempt.
//   - BellmanFord: V−1 rounds over every edge plus a detection pass; a
//     negative cycle is reported and its reachable vertices set to −∞.
//   - DEsopoPape: label correcting with a deque; improved vertices go to
//     the front if they were queued before and to the back otherwise.
//   - Johnson: virtual source, Bellman-Ford potentials, reweighting,
//     Dijkstra per source, then the all-pairs matrix.
//
// Distances are trace.Dist values: trace.Inf for unreachable vertices and
// trace.NegInf behind a negative cycle, never an overflow sentinel.
//
// Options (Dijkstra only):
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– WithTarget:       stop once the target is final and report the path.
//	– WithMaxDistance:  stop once the smallest heap entry exceeds the cap.
//	– WithInfEdgeThreshold: treat edges with weight ≥ threshold as impassable.
//
// Complexity:
//
//   - Dijkstra:   O((V + E) log V) time, O(V + E) steps
//   - BellmanFord: O(V·E) steps
//   - DEsopoPape: exponential worst case, usually near O(E)
//   - Johnson:    O(V·E + V·(V + E) log V) time, O(V + E) steps
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrVertexNotFound  if the source or target vertex does not exist.
//	– ErrNegativeWeight  if Dijkstra meets a negative edge weight.
//	– ErrNegativeCycle   if DEsopoPape's source reaches a negative cycle.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics from the option).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panics from the option).
package dijkstra
