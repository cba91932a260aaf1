package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/explain"
	"github.com/katalvlaran/lvtrace/playback"
	"github.com/katalvlaran/lvtrace/trace"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "disable"}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func TestTopics(t *testing.T) {
	out, err := execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "bfs")
	assert.Contains(t, out, "prim-vs-kruskal")

	out, err = execute(t, "topics", "--family", "flow", "--json")
	require.NoError(t, err)
	var body struct {
		Topics []struct {
			ID     string `json:"id"`
			Family string `json:"family"`
		} `json:"topics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	require.NotEmpty(t, body.Topics)
	for _, tp := range body.Topics {
		assert.Equal(t, "flow", tp.Family, tp.ID)
	}
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "  0  ")
	assert.Contains(t, out, "Reached F")

	out, err = execute(t, "run", "bfs", "--step", "999")
	require.NoError(t, err)
	assert.Contains(t, out, "path:  A → B → D → F")

	out, err = execute(t, "run", "bfs", "--json", "--end", "D")
	require.NoError(t, err)
	var body struct {
		Steps trace.Trace `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, []string{"A", "B", "D"}, body.Steps[len(body.Steps)-1].Path)

	_, err = execute(t, "run", "nope")
	assert.Error(t, err)
}

func TestRun_GraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nodes: [{id: A}, {id: X}]
edges: [{from: A, to: X, weight: 1}]
`), 0o600))
	out, err := execute(t, "run", "bfs", "--graph", path, "--end", "X")
	require.NoError(t, err)
	assert.Contains(t, out, "Reached X")

	_, err = execute(t, "run", "bfs", "--graph", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPlay(t *testing.T) {
	out, err := execute(t, "play", "bfs", "--speed", "1", "--brief")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "[1/"), lines[0])
	assert.Contains(t, lines[len(lines)-1], "Reached F")

	// every step is drawn exactly once, in order
	n := len(lines)
	for i, l := range lines {
		assert.True(t, strings.HasPrefix(l, fmt.Sprintf("[%d/%d]", i+1, n)), l)
	}
}

func TestFollow_CancelStopsController(t *testing.T) {
	clock := playback.NewManualClock()
	c := playback.New(5, playback.WithScheduler(clock), playback.WithSpeed(time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var drawn []int
	err := follow(ctx, c, c.Play, func(i int) { drawn = append(drawn, i) })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{0}, drawn)
	assert.False(t, c.State().Playing)
	assert.Zero(t, clock.Pending())
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "prim-vs-kruskal", "--speed", "1", "--brief")
	require.NoError(t, err)
	assert.Contains(t, out, "prim: ")
	assert.Contains(t, out, "kruskal: ")

	_, err = execute(t, "compare", "nope")
	assert.Error(t, err)
}

func TestFeedback_SQLite(t *testing.T) {
	t.Setenv("LVTRACE_FEEDBACK", "sqlite")
	t.Setenv("LVTRACE_SQLITE_PATH", filepath.Join(t.TempDir(), "fb.db"))

	out, err := execute(t, "feedback", "dijkstra")
	require.NoError(t, err)
	assert.Equal(t, "dijkstra: none\n", out)

	out, err = execute(t, "feedback", "dijkstra", "like")
	require.NoError(t, err)
	assert.Equal(t, "dijkstra: like\n", out)

	out, err = execute(t, "feedback", "dijkstra")
	require.NoError(t, err)
	assert.Equal(t, "dijkstra: like\n", out)

	_, err = execute(t, "feedback", "dijkstra", "love")
	assert.Error(t, err)
}

func TestExplain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"finish_reason":"stop",` +
			`"message":{"role":"assistant","content":"# Dijkstra\nGreedy."}}]}`))
	}))
	defer srv.Close()
	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("OPENAI_BASE_URL", srv.URL+"/v1")

	out, err := execute(t, "explain", "dijkstra")
	require.NoError(t, err)
	assert.Contains(t, out, "# Dijkstra")

	out, err = execute(t, "explain", "dijkstra", "--html")
	require.NoError(t, err)
	assert.Contains(t, out, "Dijkstra</h1>")
}

func TestExplain_NoKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	_, err := execute(t, "explain", "bfs")
	assert.ErrorIs(t, err, explain.ErrNoAPIKey)
}

func TestBadConfig(t *testing.T) {
	_, err := execute(t, "--log-level", "shout", "topics")
	assert.Error(t, err)

	t.Setenv("LVTRACE_SPEED_MS", "-3")
	_, err = execute(t, "topics")
	assert.Error(t, err)
}

func TestRun_Shape(t *testing.T) {
	out, err := execute(t, "run", "bfs", "--shape", "path:6")
	require.NoError(t, err)
	assert.Contains(t, out, "Reached F in 5 hop(s)")

	_, err = execute(t, "run", "bfs", "--shape", "hexagon:6")
	assert.Error(t, err)

	_, err = execute(t, "run", "bfs", "--shape", "cycle:4", "--graph", "g.yaml")
	assert.Error(t, err)
}
