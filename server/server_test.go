package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/explain"
	"github.com/katalvlaran/lvtrace/feedback"
	"github.com/katalvlaran/lvtrace/server"
	"github.com/katalvlaran/lvtrace/topics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *golog.Logger {
	l := golog.New()
	l.SetLevel("disable")

	return l
}

type failing struct{}

func (failing) Explain(context.Context, string) (string, error) {
	return "", &explain.ServiceError{Op: "chat completion", Err: errors.New("upstream 500")}
}

func newServer(opts ...server.Option) http.Handler {
	opts = append([]server.Option{server.WithLogger(quietLogger())}, opts...)

	return server.New(topics.Default(), opts...).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func TestHealthAndRequestID(t *testing.T) {
	h := newServer()
	w := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])
	assert.Len(t, w.Header().Get(server.RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(server.RequestIDHeader))
}

func TestListTopics(t *testing.T) {
	w := do(t, newServer(), http.MethodGet, "/v1/topics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Topics      []topics.Topic      `json:"topics"`
		Comparisons []topics.Comparison `json:"comparisons"`
	}](t, w)
	assert.Len(t, body.Topics, len(topics.Default().Topics()))
	assert.Equal(t, "bfs", body.Topics[0].ID)
	assert.NotEmpty(t, body.Comparisons)
}

func TestTrace(t *testing.T) {
	h := newServer()
	w := do(t, h, http.MethodGet, "/v1/topics/bfs/trace", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[server.TraceResponse](t, w)
	assert.Equal(t, "bfs", body.Topic)
	assert.NotEmpty(t, body.Steps)
	assert.True(t, body.Graph.HasNode("A"))

	w = do(t, h, http.MethodGet, "/v1/topics/bfs/trace?end=F", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode[server.TraceResponse](t, w)
	assert.Equal(t, []string{"A", "B", "D", "F"}, body.Steps[len(body.Steps)-1].Path)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/v1/topics/nope/trace", "").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, do(t, h, http.MethodGet, "/v1/topics/bfs/trace?start=Q", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/v1/topics/bfs/trace?k=many", "").Code)
}

func TestTrace_Shape(t *testing.T) {
	h := newServer()
	w := do(t, h, http.MethodGet, "/v1/topics/bfs/trace?shape=path:6", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode[server.TraceResponse](t, w)
	assert.Len(t, body.Graph.Nodes, 6)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, body.Steps[len(body.Steps)-1].Path)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/v1/topics/bfs/trace?shape=blob:3", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/v1/topics/bfs/trace?shape=cycle:2", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/v1/topics/bfs/trace?shape=complete:500", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/v1/topics/bfs/trace?shape=grid:100x100", "").Code)
}

func TestPostTrace_Limits(t *testing.T) {
	h := newServer()

	var nodes []string
	for i := 0; i <= server.MaxNodes; i++ {
		nodes = append(nodes, fmt.Sprintf(`{"id":"v%d"}`, i))
	}
	graph := `{"nodes":[` + strings.Join(nodes, ",") + `],"adj":{}}`
	w := do(t, h, http.MethodPost, "/v1/topics/bfs/trace?start=v0", graph)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "too many vertices")

	huge := `{"nodes":[{"id":"A"}],"pad":"` + strings.Repeat("x", server.MaxBodyBytes) + `"}`
	assert.Equal(t, http.StatusRequestEntityTooLarge, do(t, h, http.MethodPost, "/v1/topics/bfs/trace", huge).Code)
}

func TestPostTrace_CustomGraph(t *testing.T) {
	h := newServer()
	graph := `{"nodes":[{"id":"A"},{"id":"X"},{"id":"Y"}],"adj":{"A":["X"],"X":["A","Y"],"Y":["X"]}}`
	w := do(t, h, http.MethodPost, "/v1/topics/bfs/trace?end=Y", graph)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode[server.TraceResponse](t, w)
	assert.Equal(t, []string{"A", "X", "Y"}, body.Steps[len(body.Steps)-1].Path)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/v1/topics/bfs/trace", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		do(t, h, http.MethodPost, "/v1/topics/bfs/trace", `{"nodes":[{"id":"A"}],"adj":{"A":["Z"]}}`).Code)
}

func TestStep_Clamped(t *testing.T) {
	h := newServer()
	w := do(t, h, http.MethodGet, "/v1/topics/bfs/steps/100000", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[server.StepResponse](t, w)
	assert.Equal(t, body.Length-1, body.Index)
	assert.Contains(t, body.Step.Description, "Reached F")

	w = do(t, h, http.MethodGet, "/v1/topics/bfs/steps/-5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[server.StepResponse](t, w).Index)

	w = do(t, h, http.MethodGet, "/v1/topics/bfs/steps/0?format=text", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "frontier")

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/v1/topics/bfs/steps/x", "").Code)
}

func TestCompareStep(t *testing.T) {
	h := newServer()
	w := do(t, h, http.MethodGet, "/v1/compare/bfs-vs-dfs/steps/1000", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[server.CompareResponse](t, w)
	assert.Equal(t, "bfs", body.Comparison.Left)
	assert.Equal(t, body.Length-1, body.Index)
	assert.True(t, body.LeftDone)
	assert.True(t, body.RightDone)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/v1/compare/nope/steps/0", "").Code)
}

func TestExplain(t *testing.T) {
	h := newServer(server.WithExplainer(explain.Static{"bfs": "# BFS\nLayers."}))
	w := do(t, h, http.MethodGet, "/v1/explain/bfs", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[server.ExplainResponse](t, w)
	assert.Equal(t, "bfs", body.Topic)
	assert.Equal(t, "# BFS\nLayers.", body.Markdown)
	assert.Contains(t, body.HTML, "BFS</h1>")

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/v1/explain/nope", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, newServer(), http.MethodGet, "/v1/explain/bfs", "").Code)
}

func TestExplain_CachedByTopicID(t *testing.T) {
	st := feedback.NewMemoryStore()
	reg := topics.Default()
	ex := explain.Cached{
		Next: explain.Titled{Next: explain.Static{"Breadth-first search": "# BFS"}, Title: func(id string) (string, error) {
			topic, err := reg.Topic(id)
			return topic.Title, err
		}},
		Cache: st,
	}
	h := newServer(server.WithExplainer(ex))
	require.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/v1/explain/bfs", "").Code)

	text, err := st.Load(context.Background(), "explain:bfs")
	require.NoError(t, err)
	assert.Equal(t, "# BFS", text)
	_, err = st.Load(context.Background(), "explain:Breadth-first search")
	assert.ErrorIs(t, err, feedback.ErrNotFound)
}

func TestExplain_UpstreamFailureIs502(t *testing.T) {
	h := newServer(server.WithExplainer(failing{}))
	w := do(t, h, http.MethodGet, "/v1/explain/dijkstra", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "upstream 500")
}

func TestExplain_RateLimited(t *testing.T) {
	h := newServer(server.WithExplainer(failing{}), server.WithExplainRate(0.001, 1))
	assert.Equal(t, http.StatusBadGateway, do(t, h, http.MethodGet, "/v1/explain/bfs", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodGet, "/v1/explain/bfs", "").Code)
}

func TestFeedback(t *testing.T) {
	h := newServer(server.WithStore(feedback.NewMemoryStore()))

	w := do(t, h, http.MethodGet, "/v1/feedback/bfs", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, feedback.VoteNone, decode[server.VoteBody](t, w).Vote)

	w = do(t, h, http.MethodPut, "/v1/feedback/bfs", `{"vote":"like"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, h, http.MethodGet, "/v1/feedback/bfs", "")
	assert.Equal(t, server.VoteBody{Topic: "bfs", Vote: feedback.VoteLike}, decode[server.VoteBody](t, w))

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPut, "/v1/feedback/bfs", `{"vote":"meh"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPut, "/v1/feedback/bfs", `not json`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPut, "/v1/feedback/nope", `{"vote":"like"}`).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, newServer(), http.MethodGet, "/v1/feedback/bfs", "").Code)
}

func TestMetrics(t *testing.T) {
	h := newServer()
	do(t, h, http.MethodGet, "/v1/topics/bfs/steps/0", "")
	w := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	out := w.Body.String()
	assert.Contains(t, out, `lvtrace_http_requests_total{method="GET",route="/v1/topics/:id/steps/:index",status="200"} 1`)
	assert.Contains(t, out, `lvtrace_trace_steps_count{topic="bfs"} 1`)
	assert.Contains(t, out, "go_goroutines")
}
