// Package matrix traces the all-pairs and dynamic-programming family over
// *core.GraphData: every generator keeps a table of tentative values,
// updates it in fixed nested-loop order, and emits one Step per update
// attempt with the table as Step.Matrix and the cells involved as
// HighlightCells.
//
//   - FloydWarshall: all-pairs shortest paths, k → i → j order. O(V³).
//   - TransitiveClosure: Warshall's reachability closure. O(V³).
//   - WalkCounts: A^k by repeated squaring, entry (i,j) counting walks of
//     exactly k edges. O(V³·log k).
//   - Multistage: cost-to-sink DP over a DAG, stages from longest hop depth.
//     O(V·E).
//   - MinMeanCycle: Karp's minimum mean-weight cycle. O(V·E).
//
// Missing entries are trace.Inf; arithmetic on trace.Dist never overflows.
package matrix
