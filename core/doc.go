// Package core defines GraphData, the value type every trace generator
// consumes and every renderer draws.
//
// A GraphData is plain data: an ordered list of nodes with layout
// coordinates, an ordered adjacency mapping, an optional weighted edge list,
// and for grid-modeled problems a grid of cell values. It carries no locks
// and no behavior beyond lookup helpers, so it can be shared freely between
// goroutines as long as nobody mutates it.
//
// Determinism
//
//	Adj[id] order is iteration order. Generators never range over maps to
//	decide visit order; they walk Nodes and Adj slices. Two calls on the same
//	GraphData therefore explore vertices in the same sequence.
//
// Construction
//
//	g := core.NewBuilder(core.WithWeighted()).
//	    Node("A", 0, 0).Node("B", 1, 0).
//	    Edge("A", "B", 4).
//	    Build()
//
//	Builders keep insertion order for nodes and neighbors. For undirected
//	graphs every Edge call appends to both adjacency lists.
//
// Validation
//
//	Validate reports ErrEmptyNodeID, ErrDuplicateNode or ErrUnknownNode
//	(wrapped in a *NodeError naming the offending reference). Authored sample
//	data that fails validation is a programmer error; generators call
//	Validate and fail fast.
//
// Errors:
//
//	ErrNilGraph        - graph pointer is nil.
//	ErrEmptyNodeID     - a node has an empty ID.
//	ErrDuplicateNode   - two nodes share an ID.
//	ErrUnknownNode     - adjacency or edge references a missing node.
package core
