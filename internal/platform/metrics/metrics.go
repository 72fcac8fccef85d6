// Package metrics exposes Prometheus instruments for the gateway: one counter
// and one latency histogram per upstream operation, and a counter of HTTP
// responses per route.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ceron-eng/autores-gateway/internal/domain"
)

const namespace = "autores_gateway"

// Outcome labels for upstream calls.
const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeRejected    = "rejected"
	OutcomeError       = "error"
)

// UpstreamObserver records the result of a single upstream call.
type UpstreamObserver interface {
	ObserveUpstream(upstream, op string, err error, elapsed time.Duration)
}

// Metrics owns a private registry so independent instances never collide.
type Metrics struct {
	registry         *prometheus.Registry
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	httpResponses    *prometheus.CounterVec
}

// New creates and registers the gateway instruments.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "calls_total",
			Help:      "Upstream calls by upstream, operation and outcome",
		}, []string{"upstream", "op", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "call_duration_seconds",
			Help:      "Upstream call latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"upstream", "op"}),
		httpResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "responses_total",
			Help:      "HTTP responses by method, route pattern and status code",
		}, []string{"method", "route", "code"}),
	}
	m.registry.MustRegister(m.upstreamCalls, m.upstreamDuration, m.httpResponses)
	return m
}

// ObserveUpstream implements UpstreamObserver.
func (m *Metrics) ObserveUpstream(upstream, op string, err error, elapsed time.Duration) {
	m.upstreamCalls.WithLabelValues(upstream, op, outcome(err)).Inc()
	m.upstreamDuration.WithLabelValues(upstream, op).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware counts responses per chi route pattern. Unmatched requests are
// labelled with the route "unmatched" to keep cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpResponses.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return OutcomeUnavailable
	case errors.Is(err, domain.ErrUpstreamRejected):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}

// Nop discards every observation.
type Nop struct{}

// ObserveUpstream implements UpstreamObserver.
func (Nop) ObserveUpstream(string, string, error, time.Duration) {}
