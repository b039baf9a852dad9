package transport

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/memberdesk/internal/common"
	"github.com/dmitrijs2005/memberdesk/internal/logging"
	"github.com/google/uuid"
)

// ForbiddenFunc is invoked once for every 403 response.
type ForbiddenFunc func(ctx context.Context)

// authTransport injects the bearer token into outgoing requests and reacts
// to 403 responses.
type authTransport struct {
	next    http.RoundTripper
	tokens  TokenSource
	log     logging.Logger
	metrics *metrics
	now     func() time.Time

	mu          sync.RWMutex
	onForbidden ForbiddenFunc
}

func (t *authTransport) setOnForbidden(fn ForbiddenFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onForbidden = fn
}

func (t *authTransport) forbiddenHandler() ForbiddenFunc {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.onForbidden
}

// resolveToken picks the override header over the ambient token.
func (t *authTransport) resolveToken(req *http.Request) string {
	if override := req.Header.Get(common.TokenOverrideHeaderName); override != "" {
		return override
	}
	if t.tokens == nil {
		return ""
	}
	token, err := t.tokens.Token(req.Context())
	if err != nil {
		t.log.Warn(req.Context(), "failed to read stored token", "error", err)
		return ""
	}
	return token
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// RoundTrippers must not mutate the caller's request.
	out := req.Clone(ctx)

	token := t.resolveToken(out)
	out.Header.Del(common.TokenOverrideHeaderName)

	if out.Header.Get(common.RequestIDHeaderName) == "" {
		out.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}
	if out.Header.Get("Content-Type") == "" && out.Body != nil {
		out.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		out.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
		if claims, err := InspectToken(token); err == nil && claims.Expired(t.now()) {
			t.log.Warn(ctx, "bearer token appears expired", "expired_at", claims.ExpiresAt)
		}
	} else {
		out.Header.Del(common.AuthorizationHeaderName)
		t.metrics.unauthenticated.Inc()
		t.log.Warn(ctx, "no token found, request might be unauthenticated",
			"method", out.Method, "path", out.URL.Path)
	}

	started := t.now()
	resp, err := t.next.RoundTrip(out)
	t.metrics.duration.WithLabelValues(out.Method).Observe(t.now().Sub(started).Seconds())
	if err != nil {
		t.metrics.requests.WithLabelValues(out.Method, statusLabel(0)).Inc()
		return nil, err
	}
	t.metrics.requests.WithLabelValues(out.Method, statusLabel(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusForbidden {
		t.metrics.forbidden.Inc()
		t.log.Warn(ctx, "forbidden response, invalidating session", "method", out.Method, "path", out.URL.Path)
		if fn := t.forbiddenHandler(); fn != nil {
			fn(ctx)
		}
	}
	return resp, nil
}
