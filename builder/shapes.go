package builder

import (
	"math"

	"github.com/katalvlaran/lvtrace/core"
)

const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"

	minCycleNodes  = 3
	minPathNodes   = 2
	minStarNodes   = 2
	minWheelNodes  = 4
	minGridDim     = 1
	minAnyVertices = 1
)

// MaxVertices bounds the vertex count of any generated shape. Traces hold
// a full snapshot per step, so their size grows with the square of it.
const MaxVertices = 64

func validateSize(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "%d < min=%d: %w", got, min, ErrTooFewVertices)
	}

	return validateMax(method, got)
}

func validateMax(method string, total int) error {
	if total > MaxVertices {
		return builderErrorf(method, "%d > max=%d: %w", total, MaxVertices, ErrTooManyVertices)
	}

	return nil
}

// ring places n vertices on a circle of radius n/2 centred at (cx, cy),
// starting at the top and going clockwise.
func ring(b *core.Builder, cfg builderConfig, from, n int, cx, cy float64) {
	r := float64(n) / 2
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		b.Node(cfg.idFn(from+i), round2(cx+r*math.Sin(a)), round2(cy-r*math.Cos(a)))
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Cycle builds C_n: edges i→(i+1) mod n. n ≥ 3.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateSize(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ring(b, cfg, 0, n, 0, 0)
		for i := 0; i < n; i++ {
			b.Edge(cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weight())
		}

		return nil
	}
}

// Path builds P_n laid out left to right: edges i→i+1. n ≥ 2.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateSize(methodPath, n, minPathNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			b.Node(cfg.idFn(i), float64(i), 0)
		}
		for i := 0; i+1 < n; i++ {
			b.Edge(cfg.idFn(i), cfg.idFn(i+1), cfg.weight())
		}

		return nil
	}
}

// Star builds a hub (index 0) joined to n-1 leaves. n ≥ 2.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateSize(methodStar, n, minStarNodes); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		b.Node(hub, 0, 0)
		ring(b, cfg, 1, n-1, 0, 0)
		for i := 1; i < n; i++ {
			b.Edge(hub, cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}

// Wheel builds W_n: a hub (index 0) joined to every vertex of an (n-1)-cycle.
// Rim edges come first, then spokes. n ≥ 4.
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateSize(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		b.Node(hub, 0, 0)
		rim := n - 1
		ring(b, cfg, 1, rim, 0, 0)
		for i := 0; i < rim; i++ {
			b.Edge(cfg.idFn(1+i), cfg.idFn(1+(i+1)%rim), cfg.weight())
		}
		for i := 1; i < n; i++ {
			b.Edge(hub, cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}

// Complete builds K_n. Undirected builds emit i<j pairs; directed builds
// emit every ordered pair i≠j. n ≥ 1.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateSize(methodComplete, n, minAnyVertices); err != nil {
			return err
		}
		ring(b, cfg, 0, n, 0, 0)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				b.Edge(cfg.idFn(i), cfg.idFn(j), cfg.weight())
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} with sides labelled by the partition
// prefixes, left column at x=0 and right column at x=2. Edges run left to
// right. n1, n2 ≥ 1.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateSize(methodCompleteBipartite, n1, minAnyVertices); err != nil {
			return err
		}
		if err := validateSize(methodCompleteBipartite, n2, minAnyVertices); err != nil {
			return err
		}
		if err := validateMax(methodCompleteBipartite, n1+n2); err != nil {
			return err
		}
		left := SymbolNumberIDFn(cfg.leftPrefix)
		right := SymbolNumberIDFn(cfg.rightPrefix)
		for i := 0; i < n1; i++ {
			b.Node(left(i), 0, float64(i))
		}
		for j := 0; j < n2; j++ {
			b.Node(right(j), 2, float64(j))
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				b.Edge(left(i), right(j), cfg.weight())
			}
		}

		return nil
	}
}

// Grid builds a rows×cols lattice. Vertex r*cols+c sits at cell (r, c);
// each cell links right then down. rows, cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateSize(methodGrid, rows, minGridDim); err != nil {
			return err
		}
		if err := validateSize(methodGrid, cols, minGridDim); err != nil {
			return err
		}
		if err := validateMax(methodGrid, rows*cols); err != nil {
			return err
		}
		id := func(r, c int) string { return cfg.idFn(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				b.Cell(id(r, c), r, c)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					b.Edge(id(r, c), id(r, c+1), cfg.weight())
				}
				if r+1 < rows {
					b.Edge(id(r, c), id(r+1, c), cfg.weight())
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n, p) graph. Trials run i ascending,
// then j ascending (j > i when undirected), so a fixed seed always yields
// the same graph. Requires WithSeed or WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateSize(methodRandomSparse, n, minAnyVertices); err != nil {
			return err
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return builderErrorf(methodRandomSparse, "p=%g: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomSparse, "%w", ErrNeedRandSource)
		}
		ring(b, cfg, 0, n, 0, 0)
		for i := 0; i < n; i++ {
			start := 0
			if !cfg.directed {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < p {
					b.Edge(cfg.idFn(i), cfg.idFn(j), cfg.weight())
				}
			}
		}

		return nil
	}
}
