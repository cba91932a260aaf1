package lowlink

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// SCC traces Tarjan's algorithm on a directed graph. Vertices are pushed on
// a component stack when discovered; a vertex whose low equals its disc
// pops its strongly connected component. Components appear in the order
// they complete (reverse topological order of the condensation), each
// sorted by ID. Step.Order shows the component stack.
func SCC(g *core.GraphData) (trace.Trace, error) {
	w, err := newWalker(g, modeSCC)
	if err != nil {
		return nil, err
	}
	w.emit("", "Every vertex is unvisited; the component stack is empty.")
	w.run()
	w.emit("", fmt.Sprintf("Done: %d strongly connected component(s).", len(w.comps)))

	return w.steps, nil
}

// ArticulationPoints traces the cut-vertex search on an undirected graph.
// The final Step's Articulation lists the cut vertices sorted by ID.
func ArticulationPoints(g *core.GraphData) (trace.Trace, error) {
	w, err := newWalker(g, modeArticulation)
	if err != nil {
		return nil, err
	}
	w.emit("", "Every vertex is unvisited.")
	w.run()
	w.emit("", fmt.Sprintf("Done: articulation points {%s}.", strings.Join(trace.Set(w.art), ", ")))

	return w.steps, nil
}

// Bridges traces the cut-edge search on an undirected graph. The final
// Step's Bridges lists each bridge as (parent, child) in the order found.
func Bridges(g *core.GraphData) (trace.Trace, error) {
	w, err := newWalker(g, modeBridges)
	if err != nil {
		return nil, err
	}
	w.emit("", "Every vertex is unvisited.")
	w.run()
	names := make([]string, len(w.bridges))
	for i, b := range w.bridges {
		names[i] = b.String()
	}
	w.emit("", fmt.Sprintf("Done: %d bridge(s) {%s}.", len(w.bridges), strings.Join(names, ", ")), w.bridges...)

	return w.steps, nil
}

// Biconnected traces biconnected components of an undirected graph. Tree
// and back edges are pushed on an edge stack; when a child's low reaches
// the parent's disc, edges are popped down to the tree edge and their
// endpoints form one component. Articulation points fall out as well.
func Biconnected(g *core.GraphData) (trace.Trace, error) {
	w, err := newWalker(g, modeBiconnected)
	if err != nil {
		return nil, err
	}
	w.emit("", "Every vertex is unvisited; the edge stack is empty.")
	w.run()
	w.emit("", fmt.Sprintf("Done: %d biconnected component(s).", len(w.comps)))

	return w.steps, nil
}
