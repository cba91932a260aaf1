package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvtrace/builder"
	"github.com/katalvlaran/lvtrace/compare"
	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/explain"
	"github.com/katalvlaran/lvtrace/feedback"
	"github.com/katalvlaran/lvtrace/render"
	"github.com/katalvlaran/lvtrace/topics"
	"github.com/katalvlaran/lvtrace/trace"
)

var (
	errBadIndex      = errors.New("server: step index must be an integer")
	errBadParam      = errors.New("server: bad query parameter")
	errNoExplainer   = errors.New("server: explanations are not configured")
	errNoStore       = errors.New("server: feedback is not configured")
	errRateLimited   = errors.New("server: too many explanation requests")
	errBadGraphInput = errors.New("server: request body is not a graph")
	errGraphTooLarge = errors.New("server: graph has too many vertices")
)

// TraceResponse is the body of the trace endpoints.
type TraceResponse struct {
	Topic string          `json:"topic"`
	Graph *core.GraphData `json:"graph"`
	Steps trace.Trace     `json:"steps"`
}

// StepResponse is the body of the step endpoint.
type StepResponse struct {
	Topic  string          `json:"topic"`
	Index  int             `json:"index"`
	Length int             `json:"length"`
	Step   trace.Step      `json:"step"`
	Graph  *core.GraphData `json:"graph"`
}

// CompareResponse is the body of the compare endpoint.
type CompareResponse struct {
	Comparison topics.Comparison `json:"comparison"`
	compare.Frame
}

// ExplainResponse is the body of the explain endpoint.
type ExplainResponse struct {
	Topic    string `json:"topic"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// VoteBody is the body of PUT /v1/feedback/:topic and the reply of both
// feedback endpoints.
type VoteBody struct {
	Topic string        `json:"topic,omitempty"`
	Vote  feedback.Vote `json:"vote"`
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "requestId": c.GetString(requestIDKey)})
}

// generationStatus maps a Generate error to 404 for unknown ids and 422 otherwise.
func generationStatus(err error) int {
	if errors.Is(err, topics.ErrUnknownTopic) || errors.Is(err, topics.ErrUnknownComparison) {
		return http.StatusNotFound
	}

	return http.StatusUnprocessableEntity
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"topics":      s.topics.Topics(),
		"comparisons": s.topics.Comparisons(),
	})
}

// params reads start, end, sources, k and seed from the query string.
func params(c *gin.Context) (trace.Params, error) {
	p := trace.Params{Start: c.Query("start"), End: c.Query("end")}
	if v := c.Query("sources"); v != "" {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				p.Sources = append(p.Sources, id)
			}
		}
	}
	if v := c.Query("k"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return trace.Params{}, errBadParam
		}
		p.K = k
	}
	if v := c.Query("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return trace.Params{}, errBadParam
		}
		p.Seed = seed
	}

	return p, nil
}

func (s *Server) getTrace(c *gin.Context) {
	id := c.Param("id")
	p, err := params(c)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	var g *core.GraphData
	var tr trace.Trace
	if shape := c.Query("shape"); shape != "" {
		opts := []builder.BuilderOption{builder.WithSeed(p.Seed)}
		if c.Query("directed") == "true" {
			opts = append(opts, builder.WithDirected())
		}
		if g, err = builder.Parse(shape, opts...); err != nil {
			s.fail(c, http.StatusBadRequest, err)
			return
		}
		g, tr, err = s.topics.Generate(id, g, p)
	} else if p.Start == "" && p.End == "" && len(p.Sources) == 0 && p.K == 0 && p.Seed == 0 {
		var hit cached
		hit, err = s.defaultTrace(id)
		g, tr = hit.graph, hit.steps
	} else {
		g, tr, err = s.topics.Generate(id, nil, p)
	}
	if err != nil {
		s.fail(c, generationStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, TraceResponse{Topic: id, Graph: g, Steps: tr})
}

func (s *Server) postTrace(c *gin.Context) {
	id := c.Param("id")
	p, err := params(c)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	body, err := c.GetRawData()
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		s.fail(c, http.StatusRequestEntityTooLarge, err)
		return
	}
	if err != nil || len(body) == 0 {
		s.fail(c, http.StatusBadRequest, errBadGraphInput)
		return
	}
	g, err := core.Decode(body)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	if len(g.Nodes) > MaxNodes {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("%w: %d > %d", errGraphTooLarge, len(g.Nodes), MaxNodes))
		return
	}
	g, tr, err := s.topics.Generate(id, g, p)
	if err != nil {
		s.fail(c, generationStatus(err), err)
		return
	}
	c.JSON(http.StatusOK, TraceResponse{Topic: id, Graph: g, Steps: tr})
}

func (s *Server) getStep(c *gin.Context) {
	id := c.Param("id")
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		s.fail(c, http.StatusBadRequest, errBadIndex)
		return
	}
	hit, err := s.defaultTrace(id)
	if err != nil {
		s.fail(c, generationStatus(err), err)
		return
	}
	i = hit.steps.Clamp(i)
	step := hit.steps[i]
	if c.Query("format") == "text" {
		c.String(http.StatusOK, render.Text(step, hit.graph))
		return
	}
	c.JSON(http.StatusOK, StepResponse{Topic: id, Index: i, Length: len(hit.steps), Step: step, Graph: hit.graph})
}

func (s *Server) getCompareStep(c *gin.Context) {
	id := c.Param("id")
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		s.fail(c, http.StatusBadRequest, errBadIndex)
		return
	}
	cmp, err := s.topics.Comparison(id)
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}
	left, err := s.defaultTrace(cmp.Left)
	if err != nil {
		s.fail(c, generationStatus(err), err)
		return
	}
	right, err := s.defaultTrace(cmp.Right)
	if err != nil {
		s.fail(c, generationStatus(err), err)
		return
	}
	f, err := compare.FrameAt(left.steps, right.steps, i)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, CompareResponse{Comparison: cmp, Frame: f})
}

func (s *Server) getExplain(c *gin.Context) {
	t, err := s.topics.Topic(c.Param("topic"))
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}
	if s.explainer == nil {
		s.fail(c, http.StatusServiceUnavailable, errNoExplainer)
		return
	}
	if !s.limiter.Allow() {
		s.metrics.explainDenied.Inc()
		s.fail(c, http.StatusTooManyRequests, errRateLimited)
		return
	}

	text, err := s.explainer.Explain(c.Request.Context(), t.ID)
	switch {
	case errors.Is(err, explain.ErrUnavailable):
		s.metrics.explainFailure.Inc()
		s.log.Warnf("explain %s: %v", t.ID, err)
		s.fail(c, http.StatusBadGateway, err)
		return
	case err != nil:
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, ExplainResponse{Topic: t.ID, Markdown: text, HTML: string(explain.RenderMarkdown(text))})
}

func (s *Server) getFeedback(c *gin.Context) {
	t, ok := s.feedbackTopic(c)
	if !ok {
		return
	}
	v, err := feedback.LoadVote(c.Request.Context(), s.store, t)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, VoteBody{Topic: t, Vote: v})
}

func (s *Server) putFeedback(c *gin.Context) {
	t, ok := s.feedbackTopic(c)
	if !ok {
		return
	}
	var body VoteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	v, err := feedback.ParseVote(string(body.Vote))
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	if err := feedback.SaveVote(c.Request.Context(), s.store, t, v); err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, VoteBody{Topic: t, Vote: v})
}

// feedbackTopic validates the topic and store, writing the error response
// itself when it reports false.
func (s *Server) feedbackTopic(c *gin.Context) (string, bool) {
	t, err := s.topics.Topic(c.Param("topic"))
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return "", false
	}
	if s.store == nil {
		s.fail(c, http.StatusServiceUnavailable, errNoStore)
		return "", false
	}

	return t.ID, true
}
