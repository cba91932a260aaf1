package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
)

// ExampleKruskal builds the minimum spanning tree of a six-town road network.
func ExampleKruskal() {
	g := core.NewBuilder(core.WithWeighted()).
		Edge("A", "B", 4).Edge("A", "C", 2).Edge("B", "C", 1).
		Edge("B", "D", 5).Edge("C", "E", 3).Edge("D", "E", 3).
		Edge("D", "F", 1).
		Build()

	tr, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range tr.Last().MSTEdges {
		fmt.Printf("%s-%s %d\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total", *tr.Last().Total)
	// Output:
	// B-C 1
	// D-F 1
	// A-C 2
	// C-E 3
	// D-E 3
	// total 10
}

// ExamplePrim grows the same tree from A.
func ExamplePrim() {
	g := core.NewBuilder(core.WithWeighted()).
		Edge("A", "B", 4).Edge("A", "C", 2).Edge("B", "C", 1).
		Edge("B", "D", 5).Edge("C", "E", 3).Edge("D", "E", 3).
		Edge("D", "F", 1).
		Build()

	tr, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("total", *tr.Last().Total)
	// Output:
	// total 10
}
