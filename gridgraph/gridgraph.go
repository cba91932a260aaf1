// Package gridgraph turns grid-modeled problems into core.GraphData: a 2D
// matrix of cell values becomes one node per cell with row/col layout, and
// a snakes-and-ladders board becomes a graph whose adjacency folds each
// jump into the six dice moves.
package gridgraph

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvtrace/core"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadBoard indicates an invalid board size or jump.
	ErrBadBoard = errors.New("gridgraph: invalid board")
)

// Connectivity selects orthogonal (Conn4) or diagonal-inclusive (Conn8) neighbors.
type Connectivity int

const (
	// Conn4 uses N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// GridOptions tunes FromGrid.
type GridOptions struct {
	Conn Connectivity
	// Wall, when HasWall is set, is a cell value that gets no edges.
	Wall    int
	HasWall bool
}

// Option configures GridOptions.
type Option func(*GridOptions)

// WithConn8 enables diagonal neighbors.
func WithConn8() Option { return func(o *GridOptions) { o.Conn = Conn8 } }

// WithWall makes cells holding v impassable.
func WithWall(v int) Option {
	return func(o *GridOptions) { o.Wall, o.HasWall = v, true }
}

// CellID names the node for (row, col).
func CellID(row, col int) string { return fmt.Sprintf("r%dc%d", row, col) }

// FromGrid builds a grid-layout graph: nodes in row-major order, neighbors
// in N, E, S, W (then NE, SE, SW, NW) order. The input is deep-copied into
// GraphData.Grid.
// Complexity: O(W×H).
func FromGrid(values [][]int, opts ...Option) (*core.GraphData, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	o := GridOptions{Conn: Conn4}
	for _, opt := range opts {
		opt(&o)
	}
	offsets := [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	if o.Conn == Conn8 {
		offsets = append(offsets, [2]int{-1, 1}, [2]int{1, 1}, [2]int{1, -1}, [2]int{-1, -1})
	}
	blocked := func(r, c int) bool { return o.HasWall && values[r][c] == o.Wall }

	b := core.NewBuilder(core.WithDirected())
	for r := range values {
		for c := range values[r] {
			b.Cell(CellID(r, c), r, c)
		}
	}
	for r := range values {
		for c := range values[r] {
			if blocked(r, c) {
				continue
			}
			for _, off := range offsets {
				nr, nc := r+off[0], c+off[1]
				if nr < 0 || nr >= len(values) || nc < 0 || nc >= w || blocked(nr, nc) {
					continue
				}
				// directed builder: each cell lists its own neighbors once
				b.Edge(CellID(r, c), CellID(nr, nc), 0)
			}
		}
	}
	g := b.Grid(values).Build()
	g.Directed = false

	return g, nil
}

// SnakesBoard builds a board of size squares ("1".."size") laid out
// boustrophedon in rows of width. jumps maps a landing square to its
// destination: lower for a snake, higher for a ladder. Adjacency from square
// i lists the distinct destinations of rolling 1..6 after applying jumps;
// Edges holds only the typed snake and ladder edges.
func SnakesBoard(size, width int, jumps map[int]int) (*core.GraphData, error) {
	if size < 2 || width < 1 {
		return nil, fmt.Errorf("%w: size %d width %d", ErrBadBoard, size, width)
	}
	for from, to := range jumps {
		if from <= 1 || from >= size || to < 1 || to > size || from == to {
			return nil, fmt.Errorf("%w: jump %d→%d", ErrBadBoard, from, to)
		}
	}
	b := core.NewBuilder(core.WithDirected(), core.WithLayout(core.LayoutGrid))
	for sq := 1; sq <= size; sq++ {
		row := (sq - 1) / width
		col := (sq - 1) % width
		if row%2 == 1 {
			col = width - 1 - col
		}
		b.Cell(strconv.Itoa(sq), row, col)
	}
	g := b.Build()
	for sq := 1; sq < size; sq++ {
		id := strconv.Itoa(sq)
		seen := make(map[string]bool, 6)
		for roll := 1; roll <= 6 && sq+roll <= size; roll++ {
			dest := sq + roll
			if to, ok := jumps[dest]; ok {
				dest = to
			}
			d := strconv.Itoa(dest)
			if !seen[d] {
				seen[d] = true
				g.Adj[id] = append(g.Adj[id], d)
			}
		}
	}
	for sq := 2; sq < size; sq++ {
		to, ok := jumps[sq]
		if !ok {
			continue
		}
		typ := core.EdgeLadder
		if to < sq {
			typ = core.EdgeSnake
		}
		g.Edges = append(g.Edges, core.Edge{From: strconv.Itoa(sq), To: strconv.Itoa(to), Weight: 0, Type: typ})
	}

	return g, nil
}
