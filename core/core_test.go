package core_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare constructs A–B–D–C–A with weights 1..4.
func buildSquare() *core.GraphData {
	return core.NewBuilder(core.WithWeighted()).
		Node("A", 0, 0).Node("B", 1, 0).Node("C", 0, 1).Node("D", 1, 1).
		Edge("A", "B", 1).
		Edge("B", "D", 2).
		Edge("D", "C", 3).
		Edge("C", "A", 4).
		Build()
}

func TestBuilder_OrderAndMirroring(t *testing.T) {
	g := buildSquare()
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.IDs())
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.Equal(t, []string{"A", "D"}, g.Neighbors("B"))
	assert.Len(t, g.Edges, 4)
	require.NoError(t, g.Validate())
}

func TestBuilder_Directed(t *testing.T) {
	g := core.NewBuilder(core.WithDirected()).Edge("X", "Y", 0).Build()
	assert.Equal(t, []string{"Y"}, g.Neighbors("X"))
	assert.Empty(t, g.Neighbors("Y"))
	assert.True(t, g.Directed)
	assert.Empty(t, g.Edges, "unweighted builder keeps adjacency only")
}

func TestWeight(t *testing.T) {
	g := buildSquare()
	w, ok := g.Weight("D", "B")
	assert.True(t, ok)
	assert.Equal(t, int64(2), w)
	_, ok = g.Weight("A", "D")
	assert.False(t, ok)

	u := core.NewBuilder().Edge("P", "Q", 0).Build()
	w, ok = u.Weight("Q", "P")
	assert.True(t, ok)
	assert.Equal(t, int64(1), w, "unweighted adjacency counts as 1")
}

func TestValidate_Errors(t *testing.T) {
	var nilGraph *core.GraphData
	assert.ErrorIs(t, nilGraph.Validate(), core.ErrNilGraph)

	g := buildSquare()
	g.Adj["A"] = append(g.Adj["A"], "Z")
	err := g.Validate()
	require.ErrorIs(t, err, core.ErrUnknownNode)
	var ne *core.NodeError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, "Z", ne.ID)

	g = buildSquare()
	g.Edges = append(g.Edges, core.Edge{From: "A", To: "Q", Weight: 1})
	assert.ErrorIs(t, g.Validate(), core.ErrUnknownNode)

	g = buildSquare()
	g.Nodes = append(g.Nodes, core.Node{ID: "A"})
	assert.ErrorIs(t, g.Validate(), core.ErrDuplicateNode)

	g = buildSquare()
	g.Nodes = append(g.Nodes, core.Node{})
	assert.ErrorIs(t, g.Validate(), core.ErrEmptyNodeID)
}

func TestClone_IsDeep(t *testing.T) {
	g := core.NewBuilder().Cell("r0c0", 0, 0).Cell("r0c1", 0, 1).Edge("r0c0", "r0c1", 0).
		Grid([][]int{{1, 2}}).Build()
	c := g.Clone()
	require.Equal(t, g, c)

	c.Adj["r0c0"][0] = "mutated"
	*c.Nodes[0].Row = 9
	c.Grid[0][0] = 7
	assert.Equal(t, "r0c1", g.Adj["r0c0"][0])
	assert.Equal(t, 0, *g.Nodes[0].Row)
	assert.Equal(t, 1, g.Grid[0][0])
}

func TestEdgeList_DerivedFromAdj(t *testing.T) {
	g := core.NewBuilder().Edge("A", "B", 0).Edge("B", "C", 0).Build()
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
	}, g.EdgeList())
}

func TestPair_TextRoundTrip(t *testing.T) {
	m := map[core.Pair]int64{{From: "S", To: "A"}: 3}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"S->A":3}`, string(data))

	var back map[core.Pair]int64
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)

	var p core.Pair
	assert.Error(t, p.UnmarshalText([]byte("nope")))
}

func TestDecode_YAMLEdgesOnly(t *testing.T) {
	src := []byte(`
nodes:
  - {id: A, x: 0, y: 0}
  - {id: B, x: 1, y: 0}
  - {id: C, x: 2, y: 0}
edges:
  - {from: A, to: B, weight: 2}
  - {from: B, to: C, weight: 5}
`)
	g, err := core.Decode(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, g.Neighbors("B"))
	assert.Equal(t, core.LayoutForce, g.Layout)

	_, err = core.Decode([]byte("nodes: [{id: A}]\nedges: [{from: A, to: B}]\n"))
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestLoadFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"nodes":[{"id":"A"},{"id":"B"}],"adj":{"A":["B"]},"directed":true}`), 0o600))
	g, err := core.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, g.Directed)
	assert.Equal(t, []string{"B"}, g.Neighbors("A"))
	assert.Equal(t, []string{}, g.Neighbors("B"))
}

func TestArcs_ParallelEdges(t *testing.T) {
	g := core.NewBuilder(core.WithDirected(), core.WithWeighted()).
		Edge("A", "B", 5).Edge("A", "B", 1).Edge("A", "C", 2).
		Build()
	arcs, err := g.Arcs("A")
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{To: "B", Weight: 5}, {To: "B", Weight: 1}, {To: "C", Weight: 2}}, arcs)

	w, ok := g.Weight("A", "B")
	assert.True(t, ok)
	assert.Equal(t, int64(1), w, "lightest parallel edge")

	u := core.NewBuilder().Edge("P", "Q", 0).Build()
	arcs, err = u.Arcs("Q")
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{To: "P", Weight: 1}}, arcs)

	broken := g.Clone()
	broken.Adj["C"] = []string{"A"}
	_, err = broken.Arcs("C")
	assert.ErrorIs(t, err, core.ErrMissingWeight)
}
