package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// FloodFill traces a BFS flood fill on a grid-layout graph: starting at
// start, every 4-connected cell holding the same value is repainted with
// color. Each Step carries a Graph override whose Grid shows the paint so
// far. If color equals the start value, color+1 is used so the fill is
// visible.
func FloodFill(g *core.GraphData, start string, color int) (trace.Trace, error) {
	if err := checkEndpoints(g, start, ""); err != nil {
		return nil, err
	}
	if len(g.Grid) == 0 {
		return nil, ErrNotGrid
	}
	cell := func(id string) (int, int, bool) {
		n, _ := g.NodeByID(id)
		if n.Row == nil || n.Col == nil || *n.Row < 0 || *n.Col < 0 ||
			*n.Row >= len(g.Grid) || *n.Col >= len(g.Grid[*n.Row]) {
			return 0, 0, false
		}
		return *n.Row, *n.Col, true
	}
	sr, sc, ok := cell(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no grid position", ErrNotGrid, start)
	}
	target := g.Grid[sr][sc]
	if color == target {
		color = target + 1
	}

	f := &flood{walker: newWalker(g), canvas: g.Clone()}
	f.paint(sr, sc, color)
	f.mark(start, 0, "")
	f.queue = append(f.queue, start)
	f.emitGrid(start, fmt.Sprintf("Start at %s (value %d): paint it %d and enqueue.", start, target, color))

	for len(f.queue) > 0 {
		u := f.queue[0]
		f.queue = f.queue[1:]
		f.emitGrid(u, fmt.Sprintf("Dequeue %s and look at its four neighbors.", u))
		for _, v := range g.Neighbors(u) {
			if f.visited[v] {
				continue
			}
			r, c, ok := cell(v)
			if !ok || g.Grid[r][c] != target {
				continue
			}
			f.paint(r, c, color)
			f.mark(v, f.dist[u].Value()+1, u)
			f.queue = append(f.queue, v)
			f.emitGrid(v, fmt.Sprintf("%s also holds %d: paint it and enqueue.", v, target), core.Pair{From: u, To: v})
		}
	}
	f.emitGrid("", fmt.Sprintf("Fill complete: %d cells repainted.", len(f.order)))

	return f.steps, nil
}

type flood struct {
	*walker
	canvas *core.GraphData
}

func (f *flood) paint(r, c, color int) {
	f.canvas.Grid[r][c] = color
}

func (f *flood) emitGrid(cur, desc string, hl ...core.Pair) {
	f.emit(cur, desc, hl...)
	f.steps[len(f.steps)-1].Graph = f.canvas.Clone()
}
