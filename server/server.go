// Package server exposes topics, traces, comparisons, explanations and
// feedback over HTTP.
//
// Routes:
//
//	GET  /healthz                          liveness
//	GET  /metrics                          Prometheus metrics
//	GET  /v1/topics                        topic and comparison listing
//	GET  /v1/topics/:id/trace              full trace on the default graph or ?shape=
//	POST /v1/topics/:id/trace              full trace on a graph in the body
//	GET  /v1/topics/:id/steps/:index       one step, index clamped
//	GET  /v1/compare/:id/steps/:index      both sides at a shared index
//	GET  /v1/explain/:topic                explanation as markdown and HTML
//	GET  /v1/feedback/:topic               current vote
//	PUT  /v1/feedback/:topic               record a vote
//
// Steps are JSON by default; ?format=text renders them as terminal text.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kataras/golog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/lvtrace/builder"
	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/explain"
	"github.com/katalvlaran/lvtrace/feedback"
	"github.com/katalvlaran/lvtrace/topics"
	"github.com/katalvlaran/lvtrace/trace"
)

// ShutdownTimeout bounds graceful shutdown in Run.
const ShutdownTimeout = 5 * time.Second

// Request size limits for user-supplied graphs.
const (
	MaxBodyBytes = 1 << 20
	MaxNodes     = builder.MaxVertices
)

// Server is the HTTP front end. Build it with New.
type Server struct {
	topics    *topics.Registry
	explainer explain.Explainer
	store     feedback.Store
	limiter   *rate.Limiter
	log       *golog.Logger
	registry  *prometheus.Registry
	metrics   *metrics
	engine    *gin.Engine

	mu     sync.Mutex
	traces map[string]cached
}

type cached struct {
	graph *core.GraphData
	steps trace.Trace
}

// Option configures a Server.
type Option func(*Server)

// WithExplainer sets the explanation backend, which is asked by topic ID.
// Without one, /v1/explain answers 503.
func WithExplainer(e explain.Explainer) Option { return func(s *Server) { s.explainer = e } }

// WithStore sets the feedback store. Without one, /v1/feedback answers 503.
func WithStore(st feedback.Store) Option { return func(s *Server) { s.store = st } }

// WithExplainRate limits explanation requests to rps with the given burst.
func WithExplainRate(rps float64, burst int) Option {
	return func(s *Server) { s.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithLogger sets the request logger.
func WithLogger(l *golog.Logger) Option { return func(s *Server) { s.log = l } }

// New builds a Server over reg.
func New(reg *topics.Registry, opts ...Option) *Server {
	s := &Server{
		topics:   reg,
		limiter:  rate.NewLimiter(rate.Limit(1), 3),
		log:      golog.New(),
		registry: prometheus.NewRegistry(),
		traces:   make(map[string]cached),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registry.MustRegister(collectors.NewGoCollector())
	s.metrics = newMetrics(s.registry)
	s.engine = s.routes()

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Infof("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		s.log.Infof("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.observe())

	r.GET("/healthz", s.health)
	r.GET("/metrics", s.metricsHandler())

	v1 := r.Group("/v1")
	v1.GET("/topics", s.listTopics)
	v1.GET("/topics/:id/trace", s.getTrace)
	v1.POST("/topics/:id/trace", s.postTrace)
	v1.GET("/topics/:id/steps/:index", s.getStep)
	v1.GET("/compare/:id/steps/:index", s.getCompareStep)
	v1.GET("/explain/:topic", s.getExplain)
	v1.GET("/feedback/:topic", s.getFeedback)
	v1.PUT("/feedback/:topic", s.putFeedback)

	return r
}

// defaultTrace generates topic id on its default input once and serves the
// memoized result afterwards; generators are deterministic.
func (s *Server) defaultTrace(id string) (cached, error) {
	s.mu.Lock()
	c, ok := s.traces[id]
	s.mu.Unlock()
	if ok {
		return c, nil
	}
	g, tr, err := s.topics.Generate(id, nil, trace.Params{})
	if err != nil {
		return cached{}, err
	}
	c = cached{graph: g, steps: tr}
	s.mu.Lock()
	s.traces[id] = c
	s.mu.Unlock()
	s.metrics.traceSteps.WithLabelValues(id).Observe(float64(len(tr)))

	return c, nil
}
