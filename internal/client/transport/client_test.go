package transport

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/memberdesk/internal/common"
	"github.com/dmitrijs2005/memberdesk/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records the headers of the last request it served.
type fakeBackend struct {
	mu   sync.Mutex
	last http.Header
	hits int
}

func (b *fakeBackend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = r.Header.Clone()
	b.hits++
}

func (b *fakeBackend) lastHeader() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

func newBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	b := &fakeBackend{}
	r := chi.NewRouter()
	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	})
	r.Get("/api/forbidden", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	})
	r.Get("/api/broken", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	})
	r.Get("/api/missing", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`not json`))
	})
	r.Post("/api/echo", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		w.Header().Set("Content-Type", "application/json")
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		_, _ = w.Write(buf.Bytes())
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return b, srv
}

func newTestClient(t *testing.T, baseURL string, tokens TokenSource) (*Client, *bytes.Buffer, *prometheus.Registry) {
	t.Helper()
	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	c, err := New(Config{
		BaseURL:    baseURL,
		Tokens:     tokens,
		Logger:     logging.New(&logs, "debug"),
		Registerer: reg,
	})
	require.NoError(t, err)
	return c, &logs, reg
}

func TestNew_ValidatesBaseURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)

	_, err = New(Config{BaseURL: "localhost"})
	require.Error(t, err)

	c, err := New(Config{BaseURL: "http://localhost:3001/"})
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestDo_NoToken_SendsNoAuthorizationAndRecordsDiagnostic(t *testing.T) {
	b, srv := newBackend(t)
	c, logs, _ := newTestClient(t, srv.URL, StaticToken(""))

	require.NoError(t, c.Get(context.Background(), "/api/ping", nil, nil))

	assert.Empty(t, b.lastHeader().Get(common.AuthorizationHeaderName))
	assert.Contains(t, logs.String(), "no token found, request might be unauthenticated")
	assert.Equal(t, 1.0, testutil.ToFloat64(c.auth.metrics.unauthenticated))
}

func TestDo_NilTokenSource_IsUnauthenticated(t *testing.T) {
	b, srv := newBackend(t)
	c, _, _ := newTestClient(t, srv.URL, nil)

	require.NoError(t, c.Get(context.Background(), "api/ping", nil, nil))
	assert.Empty(t, b.lastHeader().Get(common.AuthorizationHeaderName))
}

func TestDo_StoredToken_SetsBearerHeaderExactly(t *testing.T) {
	b, srv := newBackend(t)
	c, logs, _ := newTestClient(t, srv.URL, StaticToken("T1"))

	require.NoError(t, c.Get(context.Background(), "/api/ping", nil, nil))

	assert.Equal(t, "Bearer T1", b.lastHeader().Get(common.AuthorizationHeaderName))
	assert.NotContains(t, logs.String(), "no token found")
	assert.Equal(t, 0.0, testutil.ToFloat64(c.auth.metrics.unauthenticated))
}

func TestDo_StoredToken_IsReadFreshOnEveryRequest(t *testing.T) {
	b, srv := newBackend(t)
	var current atomic.Value
	current.Store("T1")
	c, _, _ := newTestClient(t, srv.URL, TokenSourceFunc(func(context.Context) (string, error) {
		return current.Load().(string), nil
	}))

	require.NoError(t, c.Get(context.Background(), "/api/ping", nil, nil))
	assert.Equal(t, "Bearer T1", b.lastHeader().Get(common.AuthorizationHeaderName))

	current.Store("T2")
	require.NoError(t, c.Get(context.Background(), "/api/ping", nil, nil))
	assert.Equal(t, "Bearer T2", b.lastHeader().Get(common.AuthorizationHeaderName))
}

func TestDo_TokenSourceError_FallsBackToUnauthenticated(t *testing.T) {
	b, srv := newBackend(t)
	c, logs, _ := newTestClient(t, srv.URL, TokenSourceFunc(func(context.Context) (string, error) {
		return "", errors.New("disk gone")
	}))

	require.NoError(t, c.Get(context.Background(), "/api/ping", nil, nil))
	assert.Empty(t, b.lastHeader().Get(common.AuthorizationHeaderName))
	assert.Contains(t, logs.String(), "failed to read stored token")
}

func TestDo_OverrideToken_WinsAndIsStripped(t *testing.T) {
	b, srv := newBackend(t)
	c, _, _ := newTestClient(t, srv.URL, StaticToken("ambient"))

	err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/api/ping",
		Header: WithToken("override"),
	}, nil)
	require.NoError(t, err)

	h := b.lastHeader()
	assert.Equal(t, "Bearer override", h.Get(common.AuthorizationHeaderName))
	_, present := h[http.CanonicalHeaderKey(common.TokenOverrideHeaderName)]
	assert.False(t, present)
}

func TestDo_OverrideToken_WithoutAmbientToken(t *testing.T) {
	b, srv := newBackend(t)
	c, logs, _ := newTestClient(t, srv.URL, StaticToken(""))

	err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/ping", Header: WithToken("U-T")}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer U-T", b.lastHeader().Get(common.AuthorizationHeaderName))
	assert.Empty(t, b.lastHeader().Get(common.TokenOverrideHeaderName))
	assert.NotContains(t, logs.String(), "no token found")
}

func TestDo_Override_DoesNotMutateCallerRequest(t *testing.T) {
	_, srv := newBackend(t)
	c, _, _ := newTestClient(t, srv.URL, nil)

	req, err := c.newHTTPRequest(context.Background(), Request{Method: http.MethodGet, Path: "/api/ping", Header: WithToken("X")})
	require.NoError(t, err)
	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "X", req.Header.Get(common.TokenOverrideHeaderName))
	assert.Empty(t, req.Header.Get(common.AuthorizationHeaderName))
}

func TestDo_SetsRequestID(t *testing.T) {
	b, srv := newBackend(t)
	c, _, _ := newTestClient(t, srv.URL, StaticToken("T"))

	require.NoError(t, c.Get(context.Background(), "/api/ping", nil, nil))

	_, err := uuid.Parse(b.lastHeader().Get(common.RequestIDHeaderName))
	require.NoError(t, err)
}

func TestDo_Forbidden_FiresCallbackOnceAndReturnsError(t *testing.T) {
	_, srv := newBackend(t)
	c, _, _ := newTestClient(t, srv.URL, StaticToken("T"))

	var calls int32
	c.OnForbidden(func(context.Context) { atomic.AddInt32(&calls, 1) })

	err := c.Get(context.Background(), "/api/forbidden", nil, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrForbidden)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "token expired", apiErr.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.auth.metrics.forbidden))
}

func TestDo_Forbidden_WithoutCallback(t *testing.T) {
	_, srv := newBackend(t)
	c, _, _ := newTestClient(t, srv.URL, StaticToken("T"))

	err := c.Get(context.Background(), "/api/forbidden", nil, nil)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestDo_OtherErrorStatus_NoCallback_LoggedAndReturned(t *testing.T) {
	_, srv := newBackend(t)
	c, logs, _ := newTestClient(t, srv.URL, StaticToken("T"))

	var calls int32
	c.OnForbidden(func(context.Context) { atomic.AddInt32(&calls, 1) })

	err := c.Get(context.Background(), "/api/broken", nil, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
	assert.Zero(t, atomic.LoadInt32(&calls))
	assert.Contains(t, logs.String(), "API error")
	assert.False(t, errors.Is(err, ErrForbidden))
}

func TestDo_NotFound_MatchesCommonSentinel(t *testing.T) {
	_, srv := newBackend(t)
	c, _, _ := newTestClient(t, srv.URL, StaticToken("T"))

	err := c.Get(context.Background(), "/api/missing", nil, nil)
	require.ErrorIs(t, err, common.ErrorNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, []byte("not json"), apiErr.Body)
}

func TestDo_NetworkFailure_WrapsUnavailable(t *testing.T) {
	_, srv := newBackend(t)
	url := srv.URL
	srv.Close()

	c, _, _ := newTestClient(t, url, StaticToken("T"))
	err := c.Get(context.Background(), "/api/ping", nil, nil)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsNetworkError(err))
}

func TestDo_CancelledContext_ReturnsContextError(t *testing.T) {
	_, srv := newBackend(t)
	c, _, _ := newTestClient(t, srv.URL, StaticToken("T"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Get(ctx, "/api/ping", nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPost_EncodesAndDecodesJSON(t *testing.T) {
	b, srv := newBackend(t)
	c, _, _ := newTestClient(t, srv.URL, StaticToken("T"))

	var out struct {
		Email string `json:"email"`
	}
	require.NoError(t, c.Post(context.Background(), "/api/echo", map[string]string{"email": "a@b.com"}, &out))

	assert.Equal(t, "a@b.com", out.Email)
	assert.Equal(t, "application/json", b.lastHeader().Get("Content-Type"))
}

func TestDo_RecordsRequestMetrics(t *testing.T) {
	_, srv := newBackend(t)
	c, _, reg := newTestClient(t, srv.URL, StaticToken("T"))

	require.NoError(t, c.Get(context.Background(), "/api/ping", nil, nil))
	_ = c.Get(context.Background(), "/api/broken", nil, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.auth.metrics.requests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.auth.metrics.requests.WithLabelValues("GET", "500")))

	n, err := testutil.GatherAndCount(reg, "memberdesk_http_client_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDo_ExpiredJWT_LogsWarning(t *testing.T) {
	_, srv := newBackend(t)
	token := signedToken(t, time.Now().Add(-time.Hour))
	c, logs, _ := newTestClient(t, srv.URL, StaticToken(token))

	require.NoError(t, c.Get(context.Background(), "/api/ping", nil, nil))
	assert.Contains(t, logs.String(), "bearer token appears expired")
}
