package trace

import (
	"errors"

	"github.com/katalvlaran/lvtrace/core"
)

// ErrEmptyTrace is returned by Trace.Validate for a zero-length trace.
var ErrEmptyTrace = errors.New("trace: trace is empty")

// Cell addresses one matrix entry.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Matrix is a labeled table of distances, reachability flags or walk
// counts. Labels[j] names column j, and row i as well unless RowLabels is
// set (dynamic-programming tables whose rows are stages or walk lengths).
type Matrix struct {
	Labels    []string `json:"labels"`
	RowLabels []string `json:"rowLabels,omitempty"`
	Cells     [][]Dist `json:"cells"`
}

// Step is one immutable snapshot of an algorithm's execution.
//
// Description and CurrentNode are always present (CurrentNode == "" means no
// node is under examination). Every other field is an optional facet set
// only by the families that need it. Every collection is owned by this Step
// alone: generators build facets with the copy helpers in this package.
type Step struct {
	Description string `json:"description"`
	CurrentNode string `json:"currentNode"`

	// frontier traversal
	Frontier []string          `json:"frontier,omitempty"`
	Visited  []string          `json:"visited,omitempty"`
	Buckets  [][]string        `json:"buckets,omitempty"`
	Parents  map[string]string `json:"parents,omitempty"`

	// distances and paths
	Distances      map[string]Dist `json:"distances,omitempty"`
	HighlightEdges []core.Pair     `json:"highlightEdges,omitempty"`
	Path           []string        `json:"path,omitempty"`
	Cycle          []string        `json:"cycle,omitempty"`
	Order          []string        `json:"order,omitempty"`

	// spanning trees and disjoint sets
	MSTEdges []core.Edge      `json:"mstEdges,omitempty"`
	Roots    map[string]string `json:"roots,omitempty"`

	// all-pairs and dynamic programming
	Matrix         *Matrix `json:"matrix,omitempty"`
	HighlightCells []Cell  `json:"highlightCells,omitempty"`

	// low-link DFS
	Disc         map[string]int `json:"disc,omitempty"`
	Low          map[string]int `json:"low,omitempty"`
	Components   [][]string     `json:"components,omitempty"`
	Articulation []string       `json:"articulation,omitempty"`
	Bridges      []core.Pair    `json:"bridges,omitempty"`

	// flow networks
	Flow   map[core.Pair]int64 `json:"flow,omitempty"`
	Height map[string]int      `json:"height,omitempty"`
	Excess map[string]int64    `json:"excess,omitempty"`
	CutSet []core.Pair         `json:"cutSet,omitempty"`

	// contraction
	Supernodes map[string][]string `json:"supernodes,omitempty"`

	// Total is a running aggregate (MST weight, flow value, cut size).
	Total *int64 `json:"total,omitempty"`

	// Graph overrides the base graph when topology changes step to step.
	Graph *core.GraphData `json:"graphData,omitempty"`
}

// Trace is the ordered, finite sequence of Steps from one generator call.
type Trace []Step

// Len returns the number of steps.
func (t Trace) Len() int { return len(t) }

// Clamp maps i into [0, Len()-1]. It returns 0 for an empty trace.
func (t Trace) Clamp(i int) int {
	if len(t) == 0 || i < 0 {
		return 0
	}
	if i >= len(t) {
		return len(t) - 1
	}

	return i
}

// At returns the step at Clamp(i). It panics on an empty trace.
func (t Trace) At(i int) Step { return t[t.Clamp(i)] }

// Last returns the final step.
func (t Trace) Last() Step { return t[len(t)-1] }

// Validate reports ErrEmptyTrace for a zero-length trace.
func (t Trace) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTrace
	}

	return nil
}

// Params are the cross-family generator parameters. Generators ignore
// fields they do not need.
type Params struct {
	Start   string   `json:"start,omitempty" yaml:"start,omitempty"`
	End     string   `json:"end,omitempty" yaml:"end,omitempty"`
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty"`
	Seed    int64    `json:"seed,omitempty" yaml:"seed,omitempty"`
	K       int      `json:"k,omitempty" yaml:"k,omitempty"`
}

// Generator is the single cross-family contract: pure, deterministic for
// deterministic inputs, and terminating on finite graphs with cycles.
type Generator func(g *core.GraphData, p Params) (Trace, error)

// Int64 returns a pointer to v, for Step.Total.
func Int64(v int64) *int64 { return &v }
