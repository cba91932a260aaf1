package trace

import (
	"sort"

	"github.com/katalvlaran/lvtrace/core"
)

// The helpers below produce point-in-time copies of a generator's working
// structures. A nil or empty input yields nil so omitted facets stay
// omitted in JSON.

// Strings copies s.
func Strings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)

	return out
}

// Set returns the keys of m whose value is true, sorted.
func Set(m map[string]bool) []string {
	var out []string
	for k, ok := range m {
		if ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}

// Groups copies a slice of string slices.
func Groups(g [][]string) [][]string {
	if len(g) == 0 {
		return nil
	}
	out := make([][]string, len(g))
	for i, grp := range g {
		out[i] = make([]string, len(grp))
		copy(out[i], grp)
	}

	return out
}

// DistMap copies m.
func DistMap(m map[string]Dist) map[string]Dist { return copyMap(m) }

// IntMap copies m.
func IntMap(m map[string]int) map[string]int { return copyMap(m) }

// Int64Map copies m.
func Int64Map(m map[string]int64) map[string]int64 { return copyMap(m) }

// StringMap copies m.
func StringMap(m map[string]string) map[string]string { return copyMap(m) }

// FlowMap copies m, dropping zero entries.
func FlowMap(m map[core.Pair]int64) map[core.Pair]int64 {
	if len(m) == 0 {
		return nil
	}
	out := make(map[core.Pair]int64, len(m))
	for k, v := range m {
		if v != 0 {
			out[k] = v
		}
	}

	return out
}

// GroupMap copies a map of string slices.
func GroupMap(m map[string][]string) map[string][]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}

	return out
}

// Pairs copies p.
func Pairs(p []core.Pair) []core.Pair {
	if len(p) == 0 {
		return nil
	}
	out := make([]core.Pair, len(p))
	copy(out, p)

	return out
}

// Edges copies e.
func Edges(e []core.Edge) []core.Edge {
	if len(e) == 0 {
		return nil
	}
	out := make([]core.Edge, len(e))
	copy(out, e)

	return out
}

// Cells copies c.
func Cells(c ...Cell) []Cell {
	if len(c) == 0 {
		return nil
	}
	out := make([]Cell, len(c))
	copy(out, c)

	return out
}

// NewMatrix snapshots a label list and a table of distances.
func NewMatrix(labels []string, cells [][]Dist) *Matrix {
	m := &Matrix{Labels: make([]string, len(labels)), Cells: make([][]Dist, len(cells))}
	copy(m.Labels, labels)
	for i, row := range cells {
		m.Cells[i] = make([]Dist, len(row))
		copy(m.Cells[i], row)
	}

	return m
}

// NewTable is NewMatrix with separate row labels.
func NewTable(rowLabels, labels []string, cells [][]Dist) *Matrix {
	m := NewMatrix(labels, cells)
	m.RowLabels = Strings(rowLabels)

	return m
}

// Clone deep-copies m.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}

	return NewTable(m.RowLabels, m.Labels, m.Cells)
}

// Clone returns a deep copy of s.
func (s Step) Clone() Step {
	out := s
	out.Frontier = Strings(s.Frontier)
	out.Visited = Strings(s.Visited)
	out.Buckets = Groups(s.Buckets)
	out.Parents = StringMap(s.Parents)
	out.Distances = DistMap(s.Distances)
	out.HighlightEdges = Pairs(s.HighlightEdges)
	out.Path = Strings(s.Path)
	out.Cycle = Strings(s.Cycle)
	out.Order = Strings(s.Order)
	out.MSTEdges = Edges(s.MSTEdges)
	out.Roots = StringMap(s.Roots)
	out.Matrix = s.Matrix.Clone()
	out.HighlightCells = Cells(s.HighlightCells...)
	out.Disc = IntMap(s.Disc)
	out.Low = IntMap(s.Low)
	out.Components = Groups(s.Components)
	out.Articulation = Strings(s.Articulation)
	out.Bridges = Pairs(s.Bridges)
	out.Flow = copyMap(s.Flow)
	out.Height = IntMap(s.Height)
	out.Excess = Int64Map(s.Excess)
	out.CutSet = Pairs(s.CutSet)
	out.Supernodes = GroupMap(s.Supernodes)
	if s.Total != nil {
		out.Total = Int64(*s.Total)
	}
	out.Graph = s.Graph.Clone()

	return out
}

// Clone deep-copies every step.
func (t Trace) Clone() Trace {
	out := make(Trace, len(t))
	for i, s := range t {
		out[i] = s.Clone()
	}

	return out
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	if len(m) == 0 {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
