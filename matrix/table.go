package matrix

import (
	"errors"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

var (
	// ErrUndirected is returned by generators that need a directed graph.
	ErrUndirected = errors.New("matrix: graph must be directed")

	// ErrNotDAG indicates Multistage was given a graph with a cycle.
	ErrNotDAG = errors.New("matrix: graph has a cycle")

	// ErrVertexNotFound indicates a source or sink missing from the graph.
	ErrVertexNotFound = errors.New("matrix: vertex not found")

	// ErrBadPower indicates a walk length below 1.
	ErrBadPower = errors.New("matrix: walk length must be at least 1")
)

// arc is an edge between table indices.
type arc struct {
	from, to int
	w        int64
}

// arcsOf lists g's arcs by vertex index: from Edges when present (undirected
// edges both ways), otherwise from Adj with weight 1.
func arcsOf(g *core.GraphData) ([]string, map[string]int, []arc) {
	ids := g.IDs()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	var arcs []arc
	if len(g.Edges) > 0 {
		for _, e := range g.Edges {
			arcs = append(arcs, arc{index[e.From], index[e.To], e.Weight})
			if !g.Directed && e.From != e.To {
				arcs = append(arcs, arc{index[e.To], index[e.From], e.Weight})
			}
		}
		return ids, index, arcs
	}
	for _, u := range ids {
		for _, v := range g.Neighbors(u) {
			arcs = append(arcs, arc{index[u], index[v], 1})
		}
	}

	return ids, index, arcs
}

// table is the working state every generator snapshots.
type table struct {
	cols  []string
	rows  []string
	cells [][]trace.Dist
	steps trace.Trace
}

func newTable(rows, cols []string, fill trace.Dist) *table {
	n := len(cols)
	if rows != nil {
		n = len(rows)
	}
	t := &table{cols: cols, rows: rows, cells: make([][]trace.Dist, n)}
	for i := range t.cells {
		t.cells[i] = make([]trace.Dist, len(cols))
		for j := range t.cells[i] {
			t.cells[i][j] = fill
		}
	}

	return t
}

func (t *table) emit(cur, desc string, hl ...trace.Cell) *trace.Step {
	t.steps = append(t.steps, trace.Step{
		Description:    desc,
		CurrentNode:    cur,
		Matrix:         trace.NewTable(t.rows, t.cols, t.cells),
		HighlightCells: trace.Cells(hl...),
	})

	return &t.steps[len(t.steps)-1]
}

func cell(i, j int) trace.Cell { return trace.Cell{Row: i, Col: j} }
