package prim_kruskal

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Prim traces Prim's algorithm with a lazy min-heap of crossing edges.
// Starting at root, the lightest heap edge leading outside the tree is
// accepted and the new vertex's edges are pushed; edges whose far end is
// already in the tree are skipped when popped. Ties pop in push order.
//
// For a disconnected graph the walk restarts at the next vertex (in node
// order) outside the tree, so the result is a spanning forest.
// Complexity: O(E log E); O(E) steps.
func Prim(g *core.GraphData, root string) (trace.Trace, error) {
	edges, err := edgesOf(g)
	if err != nil {
		return nil, err
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: %q", ErrRootNotFound, root)
	}
	incident := make(map[string][]core.Edge, len(g.Nodes))
	for _, e := range edges {
		incident[e.From] = append(incident[e.From], e)
		incident[e.To] = append(incident[e.To], core.Edge{From: e.To, To: e.From, Weight: e.Weight, Type: e.Type})
	}

	p := &prim{tree: newTree(g), incident: incident, inTree: make(map[string]bool, len(g.Nodes))}
	starts := append([]string{root}, g.IDs()...)
	for _, start := range starts {
		if p.inTree[start] {
			continue
		}
		p.grow(start)
	}
	p.finish("Prim", len(g.Nodes))

	return p.steps, nil
}

type prim struct {
	*tree
	incident map[string][]core.Edge
	inTree   map[string]bool
	order    []string
	pq       edgePQ
	seq      int
}

func (p *prim) emitHeap(cur, desc string, hl ...core.Pair) {
	s := p.emit(cur, desc, hl...)
	s.Frontier = p.pq.labels()
	s.Visited = trace.Strings(p.order)
}

// grow runs Prim from start until no crossing edge remains.
func (p *prim) grow(start string) {
	p.take(start)
	p.emitHeap(start, fmt.Sprintf("Add %s to the tree and push its %d edge(s).", start, len(p.incident[start])))
	for p.pq.Len() > 0 {
		it := heap.Pop(&p.pq).(*edgeItem)
		e := it.edge
		if p.inTree[e.To] {
			p.emitHeap(e.To, fmt.Sprintf("Pop %s-%s (%d): %s is already in the tree; skip.", e.From, e.To, e.Weight, e.To), pair(e))
			continue
		}
		p.forest.Union(e.From, e.To)
		p.add(e)
		p.take(e.To)
		p.emitHeap(e.To, fmt.Sprintf("Pop %s-%s (%d): lightest edge leaving the tree; add %s. Total %d.",
			e.From, e.To, e.Weight, e.To, p.total), pair(e))
	}
}

// take marks id as in the tree and pushes its edges to vertices outside.
func (p *prim) take(id string) {
	p.inTree[id] = true
	p.order = append(p.order, id)
	for _, e := range p.incident[id] {
		if !p.inTree[e.To] {
			heap.Push(&p.pq, &edgeItem{edge: e, seq: p.seq})
			p.seq++
		}
	}
}

type edgeItem struct {
	edge core.Edge
	seq  int
}

// edgePQ implements heap.Interface as a min-heap of edges ordered by
// weight, then push order.
type edgePQ []*edgeItem

// Len returns the number of items in the heap.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then by push order.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be an *edgeItem.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }

// Pop removes the last item.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// labels renders the heap in pop order as "u-v:w".
func (pq edgePQ) labels() []string {
	if len(pq) == 0 {
		return nil
	}
	items := append(edgePQ(nil), pq...)
	sort.Slice(items, items.Less)
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = fmt.Sprintf("%s-%s:%d", it.edge.From, it.edge.To, it.edge.Weight)
	}

	return out
}
