package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for GraphData validation and lookup.
var (
	// ErrNilGraph indicates a nil *GraphData was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyNodeID indicates a node with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates two nodes with the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrUnknownNode indicates an adjacency list or edge referencing a node
	// that is not present in Nodes.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrMissingWeight indicates an adjacency entry with no matching Edge in
	// a graph that does list Edges.
	ErrMissingWeight = errors.New("core: adjacency has no weighted edge")
)

// NodeError carries the offending reference for validation failures.
type NodeError struct {
	ID    string // the referenced node ID
	Where string // "adj", "adj[X]", "edge X->Y", "node"
	Err   error  // one of the sentinel errors above
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%v: %q in %s", e.Err, e.ID, e.Where)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *NodeError) Unwrap() error { return e.Err }

// Layout discriminates how a renderer should place nodes.
type Layout string

const (
	// LayoutForce positions nodes by their X/Y coordinates.
	LayoutForce Layout = "force"
	// LayoutGrid positions nodes by Row/Col; Grid holds cell values.
	LayoutGrid Layout = "grid"
	// LayoutTree positions nodes as a rooted tree.
	LayoutTree Layout = "tree"
)

// Edge type tags for special edges.
const (
	EdgeSnake  = "snake"
	EdgeLadder = "ladder"
)

// Node is a vertex with 2D layout coordinates and optional grid position.
type Node struct {
	ID  string  `json:"id" yaml:"id"`
	X   float64 `json:"x" yaml:"x"`
	Y   float64 `json:"y" yaml:"y"`
	Row *int    `json:"row,omitempty" yaml:"row,omitempty"`
	Col *int    `json:"col,omitempty" yaml:"col,omitempty"`
}

// Edge is a weighted connection. Type tags special edges (snake, ladder).
type Edge struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
}

// GraphData is the wire contract between generators and renderers.
//
// Adj order matters: it is the neighbor iteration order of every generator.
// Edges is optional; unweighted algorithms rely on Adj alone.
type GraphData struct {
	Nodes    []Node              `json:"nodes" yaml:"nodes"`
	Adj      map[string][]string `json:"adj" yaml:"adj"`
	Edges    []Edge              `json:"edges,omitempty" yaml:"edges,omitempty"`
	Directed bool                `json:"directed,omitempty" yaml:"directed,omitempty"`
	Layout   Layout              `json:"layout,omitempty" yaml:"layout,omitempty"`
	Grid     [][]int             `json:"grid,omitempty" yaml:"grid,omitempty"`
}

// Pair is an ordered (From, To) node pair used as a map key.
type Pair struct {
	From string
	To   string
}

// Reverse returns (To, From).
func (p Pair) Reverse() Pair { return Pair{From: p.To, To: p.From} }

// String renders the pair as "From->To".
func (p Pair) String() string { return p.From + "->" + p.To }
