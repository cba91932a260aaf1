// Package bfs generates step traces for frontier-driven traversals: plain
// breadth-first search, multi-source BFS, 0-1 BFS with a deque, Dial's
// bucketed shortest paths, grid flood fill, word ladders and
// snakes-and-ladders.
//
// Every generator validates its input first and returns a non-empty
// trace.Trace whose Steps are independent snapshots. The shared walker
// keeps the queue, visited order, distances and parent links; each emit
// copies them.
//
// Determinism
//
//	Neighbors are scanned in GraphData.Adj order and the queue is FIFO, so
//	the same graph and start always yield the same trace.
//
// Complexity (V = |Nodes|, E = |adjacency entries|)
//
//   - BFS, MultiSource, FloodFill, WordLadder, SnakesLadders: O(V + E) steps.
//   - ZeroOne: O(V + E) steps, a vertex may be popped more than once.
//   - Dial: O(V + E + W·V) where W is the largest edge weight.
//
// Each Step snapshot costs O(V) to copy.
//
// Usage
//
//	tr, err := bfs.BFS(g, "A", "F")
//	if err != nil {
//		// ErrStartVertexNotFound, ErrEndVertexNotFound or a core validation error
//	}
//	last := tr.Last()
//	fmt.Println(last.Path)
package bfs
