package fetch

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Default client settings.
const (
	// DefaultTimeout is the per-request timeout. 10 seconds matches what a
	// human waiting on a page load will tolerate; slower pages are treated
	// as failed rather than holding the caller.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBodySize limits the response body size to bound memory use
	// against adversarial or oversized pages.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// DefaultUserAgent mimics Chrome on macOS. News sites commonly serve
	// reduced or blocked content to unknown user agents, so we blend in
	// rather than identify as a tool.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/128.0.0.0 Safari/537.36"
)

// Response is the result of a successful fetch. It is ephemeral: created
// per request, handed to a parser, and discarded.
type Response struct {
	// URL is the requested URL.
	URL string

	// StatusCode is the HTTP status code (always 2xx on success).
	StatusCode int

	// ContentType is the value of the Content-Type response header.
	// It is recorded for logging but never enforced: non-HTML bodies are
	// parsed best-effort and typically yield empty extraction.
	ContentType string

	// Body is the raw response body, at most the configured size ceiling.
	Body []byte
}

// Client fetches remote documents over HTTP(S).
//
// Design decision: We use a struct with a shared http.Client rather than
// creating a client per request because:
//  1. Connection pooling works better with a shared client
//  2. Timeout and header configuration stays consistent
//  3. Tests can inject a client pointed at httptest servers
type Client struct {
	// httpClient performs the actual requests.
	httpClient *http.Client

	// userAgent is sent with every request.
	userAgent string

	// extraHeaders are additional headers merged into every request,
	// typically site-specific headers from the config file.
	extraHeaders map[string]string

	// maxBodySize is the response body ceiling in bytes.
	maxBodySize int64

	// timeout is the default per-request timeout.
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxBodySize sets the maximum response body size in bytes.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		if size > 0 {
			c.maxBodySize = size
		}
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithExtraHeaders sets additional headers sent with every request.
// These override the browser header set on key conflicts.
func WithExtraHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.extraHeaders = headers
	}
}

// WithHTTPClient replaces the underlying http.Client.
// Mainly useful in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a Client with browser-like defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{},
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
		timeout:     DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch retrieves the document at rawURL using the client's default timeout.
// On failure the returned error is always a *Error.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	return c.FetchWithTimeout(ctx, rawURL, c.timeout)
}

// FetchWithTimeout retrieves the document at rawURL with an explicit timeout.
// The timeout bounds the whole request including body read.
func (c *Client) FetchWithTimeout(ctx context.Context, rawURL string, timeout time.Duration) (*Response, error) {
	return c.FetchWithHeaders(ctx, rawURL, timeout, nil)
}

// FetchWithHeaders retrieves the document at rawURL with an explicit timeout
// and additional per-request headers, typically site-specific headers from
// the config file. Per-request headers win over the client's header set.
func (c *Client) FetchWithHeaders(ctx context.Context, rawURL string, timeout time.Duration, headers map[string]string) (*Response, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, &Error{Kind: KindNetwork, URL: rawURL, Err: err}
	}

	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, URL: rawURL, Err: err}
	}
	c.setHeaders(req)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: classifyTransportError(err), URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Kind: KindHTTPStatus, URL: rawURL, StatusCode: resp.StatusCode}
	}

	// Read one byte past the ceiling so we can tell "exactly at the limit"
	// apart from "over the limit".
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, &Error{Kind: classifyTransportError(err), URL: rawURL, Err: err}
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, &Error{Kind: KindSizeExceeded, URL: rawURL}
	}

	return &Response{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// setHeaders applies the browser-identifying header set.
// This exact set is what the upstream sites expect from a real browser
// navigation; stripping any of them increases bot-block rates.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7")
	req.Header.Set("Accept-Language", "ja,en-US;q=0.9,en;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
	req.Header.Set("Sec-Fetch-User", "?1")

	for k, v := range c.extraHeaders {
		req.Header.Set(k, v)
	}
}

// classifyTransportError distinguishes timeouts from other network failures.
func classifyTransportError(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindNetwork
}
