package flow_test

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/flow"
)

// ExampleMinCut shows the cut read off the residual graph after max flow.
func ExampleMinCut() {
	g := core.NewBuilder(core.WithDirected(), core.WithWeighted()).
		Edge("S", "A", 10).Edge("S", "B", 10).
		Edge("A", "D", 8).Edge("A", "C", 4).
		Edge("B", "D", 9).
		Edge("C", "T", 10).Edge("D", "T", 10).
		Build()
	tr, err := flow.MinCut(g, "S", "T")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	last := tr.Last()
	fmt.Println(*last.Total, last.CutSet)
	// Output: 14 [A->C D->T]
}
