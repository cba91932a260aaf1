package compare_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/bfs"
	"github.com/katalvlaran/lvtrace/compare"
	"github.com/katalvlaran/lvtrace/dfs"
	"github.com/katalvlaran/lvtrace/playback"
	"github.com/katalvlaran/lvtrace/samples"
	"github.com/katalvlaran/lvtrace/trace"
)

func steps(prefix string, n int) trace.Trace {
	tr := make(trace.Trace, n)
	for i := range tr {
		tr[i] = trace.Step{Description: fmt.Sprintf("%s%d", prefix, i)}
	}

	return tr
}

func TestFrameAt_Clamping(t *testing.T) {
	a, b := steps("a", 10), steps("b", 6)
	tests := []struct {
		shared, index, left, right int
		leftDone, rightDone        bool
	}{
		{shared: -4, index: 0, left: 0, right: 0},
		{shared: 3, index: 3, left: 3, right: 3},
		{shared: 5, index: 5, left: 5, right: 5, rightDone: true},
		{shared: 7, index: 7, left: 7, right: 5, rightDone: true},
		{shared: 9, index: 9, left: 9, right: 5, leftDone: true, rightDone: true},
		{shared: 40, index: 9, left: 9, right: 5, leftDone: true, rightDone: true},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.shared), func(t *testing.T) {
			f, err := compare.FrameAt(a, b, tc.shared)
			require.NoError(t, err)
			assert.Equal(t, tc.index, f.Index)
			assert.Equal(t, 10, f.Length)
			assert.Equal(t, tc.left, f.LeftIndex)
			assert.Equal(t, tc.right, f.RightIndex)
			assert.Equal(t, fmt.Sprintf("a%d", tc.left), f.Left.Description)
			assert.Equal(t, fmt.Sprintf("b%d", tc.right), f.Right.Description)
			assert.Equal(t, tc.leftDone, f.LeftDone)
			assert.Equal(t, tc.rightDone, f.RightDone)
		})
	}

	_, err := compare.FrameAt(a, nil, 0)
	assert.ErrorIs(t, err, compare.ErrEmptySide)
}

func TestPair_SharedClock(t *testing.T) {
	clock := playback.NewManualClock()
	p, err := compare.New(steps("a", 3), steps("b", 5),
		playback.WithScheduler(clock), playback.WithSpeed(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 5, p.Len())

	p.Play()
	assert.Equal(t, 1, clock.Pending(), "one task drives both sides")
	clock.Advance(3 * time.Second)

	f := p.Current()
	assert.Equal(t, 3, f.Index)
	assert.Equal(t, 2, f.LeftIndex)
	assert.Equal(t, 3, f.RightIndex)
	assert.True(t, p.State().Playing)

	clock.Advance(time.Second)
	assert.Equal(t, 4, p.Index())
	assert.False(t, p.State().Playing, "stops at the end of the longer trace")
	assert.Zero(t, clock.Pending())

	p.Prev()
	assert.Equal(t, 3, p.Index())
	p.Seek(100)
	assert.Equal(t, 4, p.Index())
	p.Reset()
	assert.Equal(t, 0, p.Current().RightIndex)

	p.Play()
	p.SetSpeed(2 * time.Second)
	assert.Equal(t, 1, clock.Pending())
	p.Pause()
	assert.Zero(t, clock.Pending())
	p.Next()
	assert.Equal(t, 1, p.Index())
}

func TestPair_Load(t *testing.T) {
	clock := playback.NewManualClock()
	p, err := compare.New(steps("a", 4), steps("b", 4), playback.WithScheduler(clock))
	require.NoError(t, err)
	p.Seek(3)
	p.Play()

	require.NoError(t, p.Load(steps("c", 2), steps("d", 7)))
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, 7, p.Len())
	assert.Equal(t, "c0", p.Current().Left.Description)
	assert.False(t, p.State().Playing)

	assert.ErrorIs(t, p.Load(nil, steps("e", 1)), compare.ErrEmptySide)
	_, err = compare.New(steps("a", 1), nil)
	assert.ErrorIs(t, err, compare.ErrEmptySide)
}

func TestPair_BFSvsDFS(t *testing.T) {
	g := samples.MustGraph("hex")
	left, err := bfs.BFS(g, "A", "")
	require.NoError(t, err)
	right, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	p, err := compare.New(left, right, playback.WithScheduler(playback.NewManualClock()))
	require.NoError(t, err)
	p.Seek(p.Len() - 1)
	f := p.Current()
	assert.True(t, f.LeftDone)
	assert.True(t, f.RightDone)
	assert.ElementsMatch(t, f.Left.Visited, f.Right.Visited)
}
