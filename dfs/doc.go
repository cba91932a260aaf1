// Package dfs generates step traces for depth-first search, directed cycle
// detection and topological sort.
//
// What:
//
//   - DFS: explicit-stack depth-first traversal from a start vertex. Every
//     push (discovery), skipped edge and pop (finish) is a Step; the final
//     Step carries the post-order.
//   - DetectCycle: three-color (White, Gray, Black) DFS over every white
//     vertex of a directed graph; the first back edge to a Gray vertex
//     closes a cycle, reported in Step.Cycle.
//   - TopologicalSort: Kahn's algorithm. Vertices of in-degree zero enter a
//     FIFO queue; when the queue drains early the leftover vertices contain
//     a cycle, which the final Step reports.
//
// Termination:
//
//	The walker never re-enters a Gray vertex, so cyclic input is safe. The
//	stack holds (vertex, next-neighbor) frames instead of recursing, so depth
//	is bounded by memory, not the goroutine stack.
//
// Complexity:
//
//   - DFS, DetectCycle, TopologicalSort: Time O(V+E) steps, each snapshot O(V).
//
// Errors:
//
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrUndirected           cycle detection or ordering asked of an undirected graph
//   - core validation errors  for malformed GraphData
package dfs
