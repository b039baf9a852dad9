package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/memberdesk/internal/common"
	"github.com/dmitrijs2005/memberdesk/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Tokens supplies the ambient token; it is consulted on every request.
	Tokens TokenSource
	Logger logging.Logger
	// Registerer receives the client metrics. Nil keeps them private.
	Registerer prometheus.Registerer
	// Base is the underlying round tripper, http.DefaultTransport if nil.
	Base http.RoundTripper
}

// Client is the configured request client shared by all resource clients.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	auth       *authTransport
	log        logging.Logger
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", cfg.BaseURL)
	}

	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	next := cfg.Base
	if next == nil {
		next = http.DefaultTransport
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	auth := &authTransport{
		next:    next,
		tokens:  cfg.Tokens,
		log:     log,
		metrics: newMetrics(cfg.Registerer),
		now:     time.Now,
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Transport: auth, Timeout: timeout},
		auth:       auth,
		log:        log,
	}, nil
}

// OnForbidden registers the callback fired on every 403 response. The
// session store registers its invalidation here; nil unregisters.
func (c *Client) OnForbidden(fn ForbiddenFunc) {
	c.auth.setOnForbidden(fn)
}

// Request describes one backend call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON-encoded unless RawBody is set.
	Body        any
	RawBody     io.Reader
	ContentType string
	Header      http.Header
}

// WithToken returns a header that forces token for a single request.
func WithToken(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set(common.TokenOverrideHeaderName, token)
	}
	return h
}

func (c *Client) newHTTPRequest(ctx context.Context, r Request) (*http.Request, error) {
	u := c.baseURL.JoinPath(strings.TrimPrefix(r.Path, "/"))
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}

	var body io.Reader
	switch {
	case r.RawBody != nil:
		body = r.RawBody
	case r.Body != nil:
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Do sends r and decodes a JSON response into out (when out is non-nil).
// Non-2xx responses are logged and returned as *APIError.
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	req, err := c.newHTTPRequest(ctx, r)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.log.Error(ctx, "API request failed", "method", r.Method, "path", r.Path, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := newAPIError(r.Method, r.Path, resp.StatusCode, data)
		c.log.Error(ctx, "API error", "method", r.Method, "path", r.Path,
			"status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", r.Method, r.Path, err)
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

// IsNetworkError reports whether err is a transport-level failure rather
// than a response from the backend.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
