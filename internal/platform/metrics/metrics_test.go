package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceron-eng/autores-gateway/internal/domain"
)

func TestObserveUpstreamOutcomes(t *testing.T) {
	m := New()

	m.ObserveUpstream(domain.UpstreamAuthors, "list", nil, 10*time.Millisecond)
	m.ObserveUpstream(domain.UpstreamAuthors, "get", domain.NewRejectedError(domain.UpstreamAuthors, "get", 500, errors.New("boom")), time.Millisecond)
	m.ObserveUpstream(domain.UpstreamImages, "SaveImage", domain.NewUnavailableError(domain.UpstreamImages, "SaveImage", errors.New("refused")), time.Millisecond)
	m.ObserveUpstream(domain.UpstreamImages, "SaveImage", errors.New("other"), time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues(domain.UpstreamAuthors, "list", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues(domain.UpstreamAuthors, "get", OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues(domain.UpstreamImages, "SaveImage", OutcomeUnavailable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues(domain.UpstreamImages, "SaveImage", OutcomeError)))
}

func TestMiddlewareCountsRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/autores/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/autores/7", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpResponses.WithLabelValues(http.MethodGet, "/autores/{id}", "404")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.ObserveUpstream(domain.UpstreamAuthors, "list", nil, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "autores_gateway_upstream_calls_total"))
}
