package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/dfs"
)

// ExampleDFS demonstrates a depth-first traversal (post-order) on a diamond-shaped graph.
// Graph structure:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// Starting at "A", expected post-order: E F D B C A
func ExampleDFS() {
	g := core.NewBuilder(core.WithDirected()).
		Edge("A", "B", 0).Edge("A", "C", 0).
		Edge("B", "D", 0).Edge("C", "D", 0).
		Edge("D", "E", 0).Edge("D", "F", 0).
		Build()

	tr, err := dfs.DFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(tr.Last().Order, " "))
	// Output:
	// E F D B C A
}

// ExampleTopologicalSort orders a small build graph with Kahn's algorithm.
func ExampleTopologicalSort() {
	g := core.NewBuilder(core.WithDirected()).
		Edge("fetch", "compile", 0).
		Edge("compile", "test", 0).
		Edge("compile", "package", 0).
		Edge("test", "package", 0).
		Build()

	tr, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(tr.Last().Order, " "))
	// Output:
	// fetch compile test package
}
