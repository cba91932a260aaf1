package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// ZeroOne traces 0-1 BFS: a deque replaces the queue, a relaxed vertex
// reached over a 0-weight edge is pushed to the front and one reached over
// a 1-weight edge to the back. That ordering rule keeps the deque sorted by
// tentative distance, so the first pop of a vertex is final.
func ZeroOne(g *core.GraphData, start string) (trace.Trace, error) {
	if err := checkEndpoints(g, start, ""); err != nil {
		return nil, err
	}
	out, err := arcsByVertex(g)
	if err != nil {
		return nil, err
	}
	for _, n := range g.Nodes {
		for _, a := range out[n.ID] {
			if a.Weight != 0 && a.Weight != 1 {
				return nil, fmt.Errorf("%w: %s→%s has weight %d", ErrBadWeight, n.ID, a.To, a.Weight)
			}
		}
	}
	w := newWalker(g)
	w.dist[start] = trace.Finite(0)
	w.queue = append(w.queue, start)
	w.emit(start, fmt.Sprintf("Push %s with distance 0.", start))

	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		if w.visited[u] {
			w.emit(u, fmt.Sprintf("Pop %s again: already finalized, skip.", u))
			continue
		}
		w.visited[u] = true
		w.order = append(w.order, u)
		du := w.dist[u]
		w.emit(u, fmt.Sprintf("Pop %s from the front: distance %s is final.", u, du))
		for _, a := range out[u] {
			v, wt := a.To, a.Weight
			nd := du.Add(wt)
			if !nd.Less(w.dist[v]) {
				continue
			}
			w.dist[v] = nd
			w.parent[v] = u
			edge := core.Pair{From: u, To: v}
			if wt == 0 {
				w.queue = append([]string{v}, w.queue...)
				w.emit(v, fmt.Sprintf("Edge %s→%s costs 0: distance(%s) = %s, push to the FRONT.", u, v, v, nd), edge)
			} else {
				w.queue = append(w.queue, v)
				w.emit(v, fmt.Sprintf("Edge %s→%s costs 1: distance(%s) = %s, push to the BACK.", u, v, v, nd), edge)
			}
		}
	}
	w.emit("", fmt.Sprintf("Deque empty: %d vertices finalized.", len(w.order)))

	return w.steps, nil
}

// MaxDialBuckets caps the circular bucket array Dial allocates, so the
// largest edge weight it accepts is MaxDialBuckets-1.
const MaxDialBuckets = 1 << 12

// Dial traces Dial's algorithm: Dijkstra with buckets indexed by tentative
// distance instead of a heap. Every tentative distance lies within maxW of
// the one being scanned, so maxW+1 buckets used circularly suffice: bucket
// i holds the vertices whose distance is i modulo maxW+1. A relaxed vertex
// moves from its old bucket to the bucket of its new distance; the scan
// pointer only moves forward.
func Dial(g *core.GraphData, start string) (trace.Trace, error) {
	if err := checkEndpoints(g, start, ""); err != nil {
		return nil, err
	}
	out, err := arcsByVertex(g)
	if err != nil {
		return nil, err
	}
	var maxW int64
	for _, n := range g.Nodes {
		for _, a := range out[n.ID] {
			if a.Weight < 0 {
				return nil, fmt.Errorf("%w: %s→%s has weight %d", ErrNegativeWeight, n.ID, a.To, a.Weight)
			}
			maxW = max(maxW, a.Weight)
		}
	}
	if maxW >= MaxDialBuckets {
		return nil, fmt.Errorf("%w: max weight %d needs more than %d buckets", ErrTooManyBuckets, maxW, MaxDialBuckets)
	}
	size := maxW + 1
	slot := func(d trace.Dist) int { return int(d.Value() % size) }
	d := &dial{walker: newWalker(g), buckets: make([][]string, size)}
	d.dist[start] = trace.Finite(0)
	d.buckets[0] = []string{start}
	pending := 1
	d.emitBuckets(start, fmt.Sprintf("Place %s in bucket 0; %d buckets are reused in a circle.", start, size))

	for cur := int64(0); pending > 0; cur++ {
		idx := int(cur % size)
		d.cur = idx
		for len(d.buckets[idx]) > 0 {
			u := d.buckets[idx][0]
			d.buckets[idx] = d.buckets[idx][1:]
			pending--
			d.visited[u] = true
			d.order = append(d.order, u)
			d.emitBuckets(u, fmt.Sprintf("Take %s from bucket %d: its distance %d is final.", u, idx, cur))
			for _, a := range out[u] {
				v := a.To
				if d.visited[v] {
					continue
				}
				nd := d.dist[u].Add(a.Weight)
				if !nd.Less(d.dist[v]) {
					continue
				}
				from := "∞"
				if !d.dist[v].IsInf() {
					from = fmt.Sprint(slot(d.dist[v]))
					d.remove(slot(d.dist[v]), v)
					pending--
				}
				d.dist[v] = nd
				d.parent[v] = u
				d.buckets[slot(nd)] = append(d.buckets[slot(nd)], v)
				pending++
				d.emitBuckets(v, fmt.Sprintf("Relax %s→%s to %d: move %s from bucket %s to bucket %d.", u, v, nd.Value(), v, from, slot(nd)),
					core.Pair{From: u, To: v})
			}
		}
	}
	d.queue = nil
	d.emitBuckets("", fmt.Sprintf("All buckets empty: %d vertices finalized.", len(d.order)))

	return d.steps, nil
}

// arcsByVertex collects every vertex's weighted arcs, one per parallel edge.
func arcsByVertex(g *core.GraphData) (map[string][]core.Arc, error) {
	out := make(map[string][]core.Arc, len(g.Nodes))
	for _, n := range g.Nodes {
		as, err := g.Arcs(n.ID)
		if err != nil {
			return nil, err
		}
		out[n.ID] = as
	}

	return out, nil
}

type dial struct {
	*walker
	buckets [][]string
	cur     int
}

func (d *dial) remove(b int, id string) {
	for i, x := range d.buckets[b] {
		if x == id {
			d.buckets[b] = append(d.buckets[b][:i:i], d.buckets[b][i+1:]...)
			return
		}
	}
}

// emitBuckets snapshots the buckets up to the highest non-empty one; the
// frontier is the non-empty buckets read circularly from the scan pointer,
// which is ascending distance order.
func (d *dial) emitBuckets(cur, desc string, hl ...core.Pair) {
	last := -1
	d.queue = d.queue[:0]
	for i, b := range d.buckets {
		if len(b) > 0 {
			last = i
		}
	}
	for k := range d.buckets {
		d.queue = append(d.queue, d.buckets[(d.cur+k)%len(d.buckets)]...)
	}
	d.emit(cur, desc, hl...)
	d.steps[len(d.steps)-1].Buckets = trace.Groups(d.buckets[:last+1])
}
