package topics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/topics"
	"github.com/katalvlaran/lvtrace/trace"
	"github.com/katalvlaran/lvtrace/trace/tracetest"
)

func TestDefault_EveryTopicGenerates(t *testing.T) {
	r := topics.Default()
	require.GreaterOrEqual(t, len(r.Topics()), 30)
	for _, tp := range r.Topics() {
		t.Run(tp.ID, func(t *testing.T) {
			g, tr, err := r.Generate(tp.ID, nil, trace.Params{})
			require.NoError(t, err)
			require.NoError(t, g.Validate())
			tracetest.AssertValid(t, tr)
			tracetest.AssertDeterministic(t, func() (trace.Trace, error) {
				_, tr, err := r.Generate(tp.ID, nil, trace.Params{})
				return tr, err
			})
		})
	}
}

func TestGenerate_OverrideAndParams(t *testing.T) {
	r := topics.Default()
	g := core.NewBuilder().Edge("X", "Y", 0).Edge("Y", "Z", 0).Build()

	_, tr, err := r.Generate("bfs", g, trace.Params{Start: "X", End: "Z"})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, tr.Last().Path)

	// defaults no longer fit the override
	_, _, err = r.Generate("bfs", g, trace.Params{})
	assert.Error(t, err)

	_, tr, err = r.Generate("bfs", nil, trace.Params{End: "D"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, tr.Last().Path)
}

func TestLookups(t *testing.T) {
	r := topics.Default()
	_, err := r.Topic("nope")
	assert.ErrorIs(t, err, topics.ErrUnknownTopic)
	_, _, err = r.Generate("nope", nil, trace.Params{})
	assert.ErrorIs(t, err, topics.ErrUnknownTopic)
	_, _, err = r.Compare("nope", trace.Params{})
	assert.ErrorIs(t, err, topics.ErrUnknownComparison)

	tp, err := r.Topic("word-ladder")
	require.NoError(t, err)
	g, err := tp.BaseGraph()
	require.NoError(t, err)
	assert.True(t, g.HasNode("cog"))
}

func TestCompare(t *testing.T) {
	r := topics.Default()
	ids := make([]string, 0)
	for _, c := range r.Comparisons() {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "bfs-vs-dfs")
	assert.Contains(t, ids, "prim-vs-kruskal")

	prim, kruskal, err := r.Compare("prim-vs-kruskal", trace.Params{})
	require.NoError(t, err)
	assert.Equal(t, *prim.Last().Total, *kruskal.Last().Total)

	left, right, err := r.Compare("bfs-vs-dfs", trace.Params{})
	require.NoError(t, err)
	assert.NotEqual(t, left.Len(), 0)
	assert.NotEqual(t, right.Len(), 0)
}

func TestRegistry_Duplicates(t *testing.T) {
	r := topics.NewRegistry()
	gen := func(*core.GraphData, trace.Params) (trace.Trace, error) { return nil, nil }
	require.NoError(t, r.Add(topics.Topic{ID: "a", Gen: gen}))
	assert.ErrorIs(t, r.Add(topics.Topic{ID: "a", Gen: gen}), topics.ErrDuplicate)
	assert.ErrorIs(t, r.AddComparison(topics.Comparison{ID: "c", Left: "a", Right: "b"}), topics.ErrUnknownTopic)
	require.NoError(t, r.AddComparison(topics.Comparison{ID: "c", Left: "a", Right: "a"}))
	assert.ErrorIs(t, r.AddComparison(topics.Comparison{ID: "c", Left: "a", Right: "a"}), topics.ErrDuplicate)
}
