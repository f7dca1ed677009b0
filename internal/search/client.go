package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/nao1215/webharvest/internal/config"
	"github.com/nao1215/webharvest/internal/model"
)

// DefaultEndpoint is the Brave Search API base URL.
const DefaultEndpoint = "https://api.search.brave.com/res/v1"

// maxErrorBodySize bounds how much of an upstream error body is read for
// the failure message.
const maxErrorBodySize = 4 * 1024

// Kind classifies a failed search outcome.
// The zero value KindNone on a failed outcome means the search ran but
// produced no results, which callers must distinguish from a search that
// could not run at all.
type Kind string

const (
	// KindNone indicates no execution failure. A failed outcome with
	// KindNone is a zero-result search.
	KindNone Kind = ""

	// KindMissingCredential indicates no API credential is configured.
	// No network call was attempted.
	KindMissingCredential Kind = "missing_credential"

	// KindSearchError indicates a transport or upstream HTTP failure.
	KindSearchError Kind = "search_error"
)

// Request describes one search invocation. Zero values fall back to the
// documented defaults at execution time.
type Request struct {
	// Query is the search query string.
	Query string

	// Type selects the vertical. Defaults to web.
	Type model.SearchType

	// NumResults is the requested result count. Defaults to 30 and is
	// always clamped into [1, 20] before reaching upstream.
	NumResults int

	// Language is the result language code (e.g. "ja", "en").
	// Defaults to "ja".
	Language string

	// Country is the result country code (e.g. "JP", "US"). When empty it
	// is derived from Language.
	Country string

	// SafeSearch is the adult-content filter level. Defaults to moderate.
	SafeSearch model.SafeSearch

	// TimeRange restricts results to a recent time span. Defaults to all.
	TimeRange model.TimeRange
}

// Outcome is the envelope returned by Search. It is always non-nil;
// failures are reported through it rather than as an error return, because
// callers render a user-facing explanation rather than crash.
type Outcome struct {
	// Success reports whether at least one normalized result was produced.
	Success bool `json:"success"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`

	// Kind classifies execution failures. See the Kind constants.
	Kind Kind `json:"errorKind,omitempty"`

	// SearchType is the vertical that was queried, carried even on
	// failure for diagnostics.
	SearchType model.SearchType `json:"searchType"`

	// Results are the normalized results in upstream order. Nil when the
	// search failed or produced nothing.
	Results []model.SearchResult `json:"results,omitempty"`

	// RelatedQueries are upstream query suggestions, carried through
	// unmodified.
	RelatedQueries []string `json:"relatedQueries,omitempty"`
}

// Client executes queries against the Brave Search API.
//
// Design decision: The credential is stored on the client rather than
// passed per call so that its absence can be checked before any request
// is built, and so the token only ever appears in one header assignment.
type Client struct {
	// httpClient performs the requests.
	httpClient *http.Client

	// apiKey is the subscription token. Empty means unconfigured.
	apiKey string

	// endpoint is the API base URL, overridable in tests.
	endpoint string

	// timeout is the per-request timeout.
	timeout time.Duration

	// logger records request diagnostics.
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint overrides the API base URL. Mainly useful in tests.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = strings.TrimSuffix(endpoint, "/")
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a search client with the given subscription token.
// An empty token is allowed: every Search call will then fail fast with
// KindMissingCredential without touching the network.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		apiKey:     apiKey,
		endpoint:   DefaultEndpoint,
		timeout:    config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// NewClientFromEnv creates a search client with the credential read from
// the BRAVE_SEARCH_API_KEY environment variable.
func NewClientFromEnv(opts ...ClientOption) *Client {
	return NewClient(config.SearchAPIKey(), opts...)
}

// Search executes the request against the vertical's endpoint and
// normalizes the response. The returned Outcome is always non-nil.
func (c *Client) Search(ctx context.Context, req Request) *Outcome {
	vertical := req.Type
	if vertical == "" {
		vertical = model.SearchTypeWeb
	}

	if c.apiKey == "" {
		return &Outcome{
			Success:    false,
			Kind:       KindMissingCredential,
			SearchType: vertical,
			Message:    "search API key is not configured: set the " + config.SearchAPIKeyEnv + " environment variable",
		}
	}

	endpoint := c.endpoint + "/" + string(vertical) + "/search"
	params := buildParams(req, vertical)

	c.logger.Debug("search request",
		"vertical", vertical,
		"endpoint", endpoint,
		"params", params.Encode(),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return c.searchError(vertical, err.Error())
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.searchError(vertical, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return c.searchError(vertical, fmt.Sprintf("upstream status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.searchError(vertical, err.Error())
	}

	response := Normalize(vertical, body)

	if len(response.Results) == 0 {
		// Zero results and an unrecognized payload shape are reported the
		// same way: a non-error failed outcome with KindNone. Callers
		// depend on this conflation, so it is preserved.
		return &Outcome{
			Success:        false,
			SearchType:     vertical,
			Message:        fmt.Sprintf("no %s results found", vertical),
			RelatedQueries: response.RelatedQueries,
		}
	}

	return &Outcome{
		Success:        true,
		SearchType:     vertical,
		Message:        fmt.Sprintf("retrieved %d %s results", len(response.Results), vertical),
		Results:        response.Results,
		RelatedQueries: response.RelatedQueries,
	}
}

// searchError builds a transport-level failure outcome. The vertical name
// is carried in the message for diagnostics.
func (c *Client) searchError(vertical model.SearchType, detail string) *Outcome {
	c.logger.Warn("search failed", "vertical", vertical, "detail", detail)
	return &Outcome{
		Success:    false,
		Kind:       KindSearchError,
		SearchType: vertical,
		Message:    fmt.Sprintf("%s search failed: %s", vertical, detail),
	}
}

// buildParams assembles the vertical-appropriate query parameters.
func buildParams(req Request, vertical model.SearchType) url.Values {
	count := req.NumResults
	if count == 0 {
		count = config.DefaultNumResults
	}
	count = min(max(count, 1), config.MaxNumResults)

	lang := req.Language
	if lang == "" {
		lang = config.DefaultLanguage
	}

	safeSearch := req.SafeSearch
	if safeSearch == "" {
		safeSearch = model.SafeSearchModerate
	}

	timeRange := req.TimeRange
	if timeRange == "" {
		timeRange = model.TimeRangeAll
	}

	params := url.Values{}
	params.Set("q", req.Query)
	params.Set("count", strconv.Itoa(count))

	// The search_lang parameter is only honored by the web vertical.
	if vertical == model.SearchTypeWeb && validLanguage(lang) {
		params.Set("search_lang", strings.ToLower(lang))
	}

	if country, ok := countryCode(req.Country, lang); ok {
		params.Set("country", country)
	}

	params.Set("safesearch", string(safeSearch))

	if freshness := timeRange.Freshness(); freshness != "" {
		params.Set("freshness", freshness)
	}

	// Spellcheck improves recall on typo-laden queries.
	params.Set("spellcheck", "1")

	return params
}

// validLanguage reports whether s is a well-formed two-letter language code.
func validLanguage(s string) bool {
	if len(s) != 2 {
		return false
	}
	_, err := language.ParseBase(strings.ToLower(s))
	return err == nil
}

// countryCode picks the country parameter: an explicit two-letter country
// code wins; otherwise the most likely region for the language is derived
// (e.g. "ja" yields "jp"). Reports false when neither produces a code.
func countryCode(country, lang string) (string, bool) {
	if len(country) == 2 {
		if _, err := language.ParseRegion(strings.ToUpper(country)); err == nil {
			return strings.ToLower(country), true
		}
	}

	if validLanguage(lang) {
		tag := language.Make(strings.ToLower(lang))
		if region, conf := tag.Region(); conf > language.No {
			return strings.ToLower(region.String()), true
		}
	}

	return "", false
}
