package dsu

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// ErrNodeNotFound is returned when a query endpoint is not in the graph.
var ErrNodeNotFound = errors.New("dsu: node not found")

// Demo replays every edge of g as a union operation and draws the
// disjoint-set forest itself: each Step's Graph holds one directed edge per
// non-root element pointing at its parent, so path compression is visible
// as edges jumping straight to the root.
func Demo(g *core.GraphData) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	f := NewForest(g.IDs())
	d := &demo{base: g, f: f}
	d.emit("", fmt.Sprintf("Start with %d singleton sets, every node is its own root.", f.Count()))
	for _, e := range g.EdgeList() {
		ru := f.Find(e.From)
		d.emit(e.From, fmt.Sprintf("find(%s) = %s", e.From, ru))
		rv := f.Find(e.To)
		d.emit(e.To, fmt.Sprintf("find(%s) = %s", e.To, rv))
		if ru == rv {
			d.emit(e.To, fmt.Sprintf("%s and %s already share root %s; union is a no-op.", e.From, e.To, ru))
			continue
		}
		f.Union(e.From, e.To)
		d.emit(e.To, fmt.Sprintf("union(%s, %s): root %s now hangs under %s. %d sets remain.",
			e.From, e.To, other(f.Find(ru), ru, rv), f.Find(ru), f.Count()))
	}
	d.emit("", fmt.Sprintf("Done: %d disjoint set(s).", f.Count()))

	return d.steps, nil
}

func other(root, a, b string) string {
	if root == a {
		return b
	}
	return a
}

type demo struct {
	base  *core.GraphData
	f     *Forest
	steps trace.Trace
}

func (d *demo) emit(cur, desc string) {
	parents := d.f.Parents()
	b := core.NewBuilder(core.WithDirected(), core.WithLayout(core.LayoutTree))
	for _, n := range d.base.Nodes {
		b.Node(n.ID, n.X, n.Y)
	}
	for _, n := range d.base.Nodes {
		if p := parents[n.ID]; p != n.ID {
			b.Edge(n.ID, p, 0)
		}
	}
	groups := make(map[string][]string)
	for _, c := range d.f.Components() {
		groups[d.f.peek(c[0])] = c
	}
	d.steps = append(d.steps, trace.Step{
		Description: desc,
		CurrentNode: cur,
		Roots:       d.f.Roots(),
		Parents:     parents,
		Supernodes:  trace.GroupMap(groups),
		Graph:       b.Build(),
	})
}

// Connectivity inserts g's edges one at a time and, after each insertion,
// answers "are p.Start and p.End connected?" alongside the component count.
// Without Start/End it only tracks the count.
func Connectivity(g *core.GraphData, p trace.Params) (trace.Trace, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	query := p.Start != "" && p.End != ""
	if query && (!g.HasNode(p.Start) || !g.HasNode(p.End)) {
		return nil, fmt.Errorf("%w: %q or %q", ErrNodeNotFound, p.Start, p.End)
	}
	f := NewForest(g.IDs())
	var (
		steps trace.Trace
		added []core.Pair
	)
	emit := func(cur, desc string) {
		steps = append(steps, trace.Step{
			Description:    desc,
			CurrentNode:    cur,
			Roots:          f.Roots(),
			Components:     f.Components(),
			HighlightEdges: trace.Pairs(added),
			Total:          trace.Int64(int64(f.Count())),
		})
	}
	ask := func() string {
		if !query {
			return ""
		}
		if f.Connected(p.Start, p.End) {
			return fmt.Sprintf(" Query: %s and %s are connected.", p.Start, p.End)
		}
		return fmt.Sprintf(" Query: %s and %s are not connected.", p.Start, p.End)
	}
	emit("", fmt.Sprintf("No edges yet: %d components.%s", f.Count(), ask()))
	for _, e := range g.EdgeList() {
		added = append(added, core.Pair{From: e.From, To: e.To})
		if f.Union(e.From, e.To) {
			emit(e.To, fmt.Sprintf("Insert %s-%s: merges two components, %d remain.%s", e.From, e.To, f.Count(), ask()))
		} else {
			emit(e.To, fmt.Sprintf("Insert %s-%s: endpoints already connected, still %d.%s", e.From, e.To, f.Count(), ask()))
		}
	}

	return steps, nil
}
