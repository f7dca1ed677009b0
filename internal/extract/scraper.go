package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/nao1215/webharvest/internal/fetch"
	"github.com/nao1215/webharvest/internal/htmldoc"
	"github.com/nao1215/webharvest/internal/model"
)

// PageResult is the envelope returned by page scraping.
type PageResult struct {
	// Success reports whether the page was fetched and parsed.
	// An empty page is still a success; only fetch failures fail.
	Success bool `json:"success"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`

	// Kind classifies the failure. Empty on success.
	Kind FailureKind `json:"errorKind,omitempty"`

	// Page is the scraped content. Nil unless Success is true.
	Page *model.PageContent `json:"page,omitempty"`
}

// Scraper fetches a page and returns its content, title, meta tags, and
// optionally its links, without any article-specific interpretation.
type Scraper struct {
	// fetcher retrieves the page body.
	fetcher *fetch.Client

	// logger records fetch diagnostics.
	logger *slog.Logger
}

// NewScraper creates a Scraper using the given fetch client.
func NewScraper(fetcher *fetch.Client, opts ...ScraperOption) *Scraper {
	s := &Scraper{fetcher: fetcher}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithScraperLogger sets a custom logger.
func WithScraperLogger(logger *slog.Logger) ScraperOption {
	return func(s *Scraper) {
		s.logger = logger
	}
}

// Scrape fetches the page at rawURL and returns its content.
//
// When selector is non-empty, the content is the trimmed text of every
// matching node joined by newlines. Otherwise it is the <body> text with
// script, style, meta, link, and noscript content removed.
//
// When extractLinks is true every anchor with a resolvable href is
// collected, resolved to absolute form. A zero timeout falls back to the
// fetch client's default.
func (s *Scraper) Scrape(ctx context.Context, rawURL, selector string, extractLinks bool, timeout time.Duration) *PageResult {
	resp, err := s.fetcher.FetchWithTimeout(ctx, rawURL, timeout)
	if err != nil {
		s.logger.Warn("page fetch failed", "url", rawURL, "error", err)
		return &PageResult{
			Success: false,
			Kind:    FailureFetch,
			Message: fmt.Sprintf("failed to scrape page: %v", err),
		}
	}

	s.logger.Debug("page fetched",
		"url", rawURL,
		"status", resp.StatusCode,
		"content_type", resp.ContentType,
		"bytes", len(resp.Body),
	)

	doc, err := htmldoc.Parse(resp.URL, resp.Body)
	if err != nil {
		return &PageResult{
			Success: false,
			Kind:    FailureFetch,
			Message: fmt.Sprintf("failed to parse page: %v", err),
		}
	}

	page := &model.PageContent{
		Title:    doc.Title(),
		Metadata: doc.MetaTags(),
	}

	if selector != "" {
		var parts []string
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			parts = append(parts, strings.TrimSpace(sel.Text()))
		})
		page.Content = strings.Join(parts, "\n")
	} else {
		page.Content = doc.BodyText()
	}

	if extractLinks {
		page.Links = doc.Links()
	}

	return &PageResult{
		Success: true,
		Message: "page scraped successfully",
		Page:    page,
	}
}
