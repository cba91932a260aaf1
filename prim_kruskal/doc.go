// Package prim_kruskal traces minimum spanning tree construction on an
// undirected, weighted *core.GraphData with three algorithms:
//
//   - Kruskal(g): sort every edge by weight, then accept or reject each one
//     with a union-find forest. Rejections name the cycle the edge would
//     close, so the trace shows the cycle property at work.
//   - Prim(g, root): grow one tree from root using a min-heap of edges that
//     leave it. Each step carries the heap contents as the frontier.
//   - Boruvka(g): in rounds, every component picks its cheapest outgoing
//     edge and all picks are merged at once.
//
// Compute dispatches on MSTOptions.Method (Kruskal by default).
//
// Disconnected input yields a minimum spanning forest rather than an error;
// the final step reports the tree count alongside the total weight.
//
// Determinism: the edge sort is stable, so equal weights keep declaration
// order and two runs over the same graph produce the same trace.
//
// Errors:
//   - ErrInvalidGraph for directed input.
//   - ErrEmptyRoot, ErrRootNotFound for a bad Prim root.
//   - ErrUnknownMethod from Compute.
package prim_kruskal
