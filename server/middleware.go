package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

type metrics struct {
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	traceSteps     *prometheus.HistogramVec
	explainDenied  prometheus.Counter
	explainFailure prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvtrace",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvtrace",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		traceSteps: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvtrace",
			Name:      "trace_steps",
			Help:      "Length of generated default traces by topic.",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 10),
		}, []string{"topic"}),
		explainDenied: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lvtrace",
			Name:      "explain_rate_limited_total",
			Help:      "Explanation requests rejected by the rate limiter.",
		}),
		explainFailure: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lvtrace",
			Name:      "explain_failures_total",
			Help:      "Explanation requests that failed upstream.",
		}),
	}
}

func (s *Server) metricsHandler() gin.HandlerFunc {
	h := promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})

	return func(c *gin.Context) { h.ServeHTTP(c.Writer, c.Request) }
}

// requestID echoes a caller's request id or assigns a new UUID.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// observe records metrics and logs one line per request.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		s.metrics.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()
		s.metrics.duration.WithLabelValues(route).Observe(elapsed.Seconds())
		s.log.Debugf("%s %s %d %s rid=%s", c.Request.Method, c.Request.URL.Path, status, elapsed, c.GetString(requestIDKey))
	}
}
