package autorapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceron-eng/autores-gateway/internal/config"
	"github.com/ceron-eng/autores-gateway/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
	errs  []error
}

func (o *recordingObserver) ObserveUpstream(upstream, op string, err error, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, upstream+"/"+op)
	o.errs = append(o.errs, err)
}

func newTestAuthors(t *testing.T, handler http.HandlerFunc, opts ...Option) *Authors {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.UpstreamConfig{BaseURL: srv.URL + "/api/Autor"}, testLogger(), opts...)
	require.NoError(t, err)
	return NewAuthors(client)
}

func TestAuthors_List(t *testing.T) {
	body := `[{"autorLibroId":"a"},{"autorLibroId":"b"}]`
	authors := newTestAuthors(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/Autor/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	got, err := authors.List(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, body, string(got))
}

func TestAuthors_ListRejectsOversizedBody(t *testing.T) {
	body := `[{"autorLibroId":"a"},{"autorLibroId":"b"},{"autorLibroId":"c"}]`
	observer := &recordingObserver{}
	authors := newTestAuthors(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}, WithObserver(observer), func(c *Client) { c.maxBody = int64(len(body)) - 1 })

	got, err := authors.List(context.Background())
	require.Error(t, err)
	assert.Nil(t, got, "a truncated body must never be returned")
	assert.ErrorIs(t, err, ErrResponseTooLarge)
	assert.ErrorIs(t, err, domain.ErrUpstreamRejected)
	require.Len(t, observer.errs, 1)
	assert.ErrorIs(t, observer.errs[0], domain.ErrUpstreamRejected)
}

func TestAuthors_ListAcceptsBodyAtLimit(t *testing.T) {
	body := `[{"autorLibroId":"a"}]`
	authors := newTestAuthors(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}, func(c *Client) { c.maxBody = int64(len(body)) })

	got, err := authors.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestAuthors_GetEscapesID(t *testing.T) {
	authors := newTestAuthors(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Autor/a%2Fb", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"autorLibroId":"g"}`))
	})

	got, err := authors.Get(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "g", got.ImageGUID())
}

func TestAuthors_GetEmptyBodyIsAbsent(t *testing.T) {
	authors := newTestAuthors(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	got, err := authors.Get(context.Background(), "42")
	require.NoError(t, err)
	assert.True(t, got.IsAbsent())
}

func TestAuthors_CreateForwardsBody(t *testing.T) {
	payload := `{"nombre":"Isabel","apellido":"Allende"}`
	authors := newTestAuthors(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/Autor/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		received, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, payload, string(received))

		var in map[string]interface{}
		require.NoError(t, json.Unmarshal(received, &in))
		in["autorLibroId"] = "new-guid"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	})

	got, err := authors.Create(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Contains(t, string(got), `"autorLibroId":"new-guid"`)
}

func TestClient_NonSuccessStatusIsRejected(t *testing.T) {
	observer := &recordingObserver{}
	authors := newTestAuthors(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}, WithObserver(observer))

	_, err := authors.Get(context.Background(), "404")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamRejected)
	assert.Equal(t, "Request failed with status code 404", err.Error())

	var upstreamErr *domain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
	assert.Equal(t, OpGet, upstreamErr.Op)

	require.Len(t, observer.calls, 1)
	assert.Equal(t, "authors/get", observer.calls[0])
	assert.ErrorIs(t, observer.errs[0], domain.ErrUpstreamRejected)
}

func TestClient_UnreachableIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewClient(config.UpstreamConfig{BaseURL: url}, testLogger())
	require.NoError(t, err)

	_, err = NewAuthors(client).List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "connect")
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	client, err := NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, testLogger())
	require.NoError(t, err)

	_, err = NewAuthors(client).List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(config.UpstreamConfig{}, nil)
	assert.Error(t, err)
}
