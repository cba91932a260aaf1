// Package dsu implements a disjoint-set forest and the union-find trace
// generators built directly on it.
package dsu

import "fmt"

// Forest is a disjoint-set union over string elements with path
// compression in Find and union by rank.
//
// Elements keep their insertion order, so Roots, Components and Parents are
// deterministic.
type Forest struct {
	parent map[string]string
	rank   map[string]int
	order  []string
	count  int
}

// NewForest creates a forest where every element is its own singleton set.
func NewForest(elems []string) *Forest {
	f := &Forest{
		parent: make(map[string]string, len(elems)),
		rank:   make(map[string]int, len(elems)),
		order:  make([]string, 0, len(elems)),
	}
	for _, e := range elems {
		f.Add(e)
	}

	return f
}

// Add inserts e as a singleton; re-adding is a no-op.
func (f *Forest) Add(e string) {
	if f.Has(e) {
		return
	}
	f.parent[e] = e
	f.rank[e] = 0
	f.order = append(f.order, e)
	f.count++
}

// Has reports whether e belongs to the forest.
func (f *Forest) Has(e string) bool {
	_, ok := f.parent[e]
	return ok
}

// Find returns the root of e's set, compressing the path it walks.
// It panics on an unknown element: callers add elements up front.
func (f *Forest) Find(e string) string {
	if !f.Has(e) {
		panic(fmt.Sprintf("dsu: unknown element %q", e))
	}
	root := e
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for e != root {
		next := f.parent[e]
		f.parent[e] = root
		e = next
	}

	return root
}

// Union merges the sets of a and b, attaching the lower-rank root under the
// higher-rank one (b's root under a's on ties). It reports whether a merge
// happened.
func (f *Forest) Union(a, b string) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	if f.rank[ra] < f.rank[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	if f.rank[ra] == f.rank[rb] {
		f.rank[ra]++
	}
	f.count--

	return true
}

// Connected reports whether a and b share a root.
func (f *Forest) Connected(a, b string) bool { return f.Find(a) == f.Find(b) }

// Count returns the number of disjoint sets.
func (f *Forest) Count() int { return f.count }

// Roots returns a fresh element→root mapping. Unlike Find it leaves the
// parent pointers untouched, so snapshots never alter the forest they draw.
func (f *Forest) Roots() map[string]string {
	out := make(map[string]string, len(f.order))
	for _, e := range f.order {
		out[e] = f.peek(e)
	}

	return out
}

func (f *Forest) peek(e string) string {
	for f.parent[e] != e {
		e = f.parent[e]
	}

	return e
}

// Parents returns a fresh copy of the raw parent pointers without
// compressing anything, for drawing the forest as it is.
func (f *Forest) Parents() map[string]string {
	out := make(map[string]string, len(f.parent))
	for k, v := range f.parent {
		out[k] = v
	}

	return out
}

// Components groups elements by root, groups ordered by first member and
// members in insertion order.
func (f *Forest) Components() [][]string {
	idx := make(map[string]int)
	var out [][]string
	for _, e := range f.order {
		r := f.peek(e)
		i, ok := idx[r]
		if !ok {
			i = len(out)
			idx[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], e)
	}

	return out
}
