package extract

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/nao1215/webharvest/internal/config"
	"github.com/nao1215/webharvest/internal/fetch"
	"github.com/nao1215/webharvest/internal/htmldoc"
	"github.com/nao1215/webharvest/internal/model"
)

// FailureKind classifies a failed extraction or scrape.
// The zero value FailureNone marks a successful envelope.
type FailureKind string

const (
	// FailureNone indicates no failure.
	FailureNone FailureKind = ""

	// FailureFetch indicates the page could not be fetched or parsed.
	FailureFetch FailureKind = "fetch_failed"

	// FailureInsufficientContent indicates the page was fetched but the
	// cascades produced no title or no body content.
	FailureInsufficientContent FailureKind = "insufficient_content"
)

// Selector cascades for the semantic article fields.
// The candidate order is the extraction behavior: each list is tried top
// to bottom and the first non-empty match wins. Changing the order changes
// which markup wins on real pages, so treat these lists as fixed.
var (
	// titleCascade: visible headline first, then OpenGraph, then <title>.
	titleCascade = htmldoc.Cascade{
		{Selector: "h1"},
		{Selector: `meta[property="og:title"]`, Attr: "content"},
		{Selector: "title"},
	}

	// authorCascade: semantic rel=author first, then meta, then the common
	// class conventions.
	authorCascade = htmldoc.Cascade{
		{Selector: `[rel="author"]`},
		{Selector: `meta[name="author"]`, Attr: "content"},
		{Selector: ".author"},
		{Selector: ".byline"},
	}

	// dateCascade: machine-readable sources first, visible date text last.
	dateCascade = htmldoc.Cascade{
		{Selector: `meta[property="article:published_time"]`, Attr: "content"},
		{Selector: "time[datetime]", Attr: "datetime"},
		{Selector: `[itemprop="datePublished"]`, Attr: "content"},
		{Selector: ".date"},
	}

	// sourceCascade: og:site_name; the extractor falls back to the URL
	// hostname when it yields nothing.
	sourceCascade = htmldoc.Cascade{
		{Selector: `meta[property="og:site_name"]`, Attr: "content"},
	}

	// bodySelectors are the structural selectors for the article body,
	// from the semantic <article> element through the common CMS class
	// and id conventions.
	bodySelectors = []string{
		"article",
		`[itemprop="articleBody"]`,
		".article-body",
		".entry-content",
		".post-content",
		".story-body",
		"#article-body",
		".article__body",
	}

	// fallbackImageScope is searched for images when no body selector
	// matched but image extraction was still requested.
	fallbackImageScope = "article img, .article img, .entry-content img"
)

// ArticleResult is the envelope returned by article extraction.
type ArticleResult struct {
	// Success reports whether a complete article was extracted.
	Success bool `json:"success"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`

	// Kind classifies the failure. Empty on success.
	Kind FailureKind `json:"errorKind,omitempty"`

	// Article is the extracted article. Nil unless Success is true.
	Article *model.Article `json:"article,omitempty"`
}

// Extractor extracts structured articles from news pages.
type Extractor struct {
	// fetcher retrieves the page body.
	fetcher *fetch.Client

	// rules holds optional per-hostname selector overrides.
	rules *config.File

	// logger records fetch and cascade diagnostics.
	logger *slog.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithSiteRules supplies per-hostname extraction rules. Extra selectors
// from the rules are tried before the built-in cascades; the built-in
// cascades themselves are never modified.
func WithSiteRules(rules *config.File) ExtractorOption {
	return func(e *Extractor) {
		e.rules = rules
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor using the given fetch client.
//
// Design decision: We require an external fetch.Client rather than
// creating one internally because the scraper and the batch layer share
// the same client, and tests inject clients pointed at httptest servers.
func NewExtractor(fetcher *fetch.Client, opts ...ExtractorOption) *Extractor {
	e := &Extractor{fetcher: fetcher}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Extract fetches the page at rawURL and extracts a structured article.
// When extractImages is true, images found inside the article body are
// resolved to absolute URLs and carried along with their alt text.
//
// The result is always a non-nil envelope; fetch and content failures are
// reported through it rather than as an error return.
func (e *Extractor) Extract(ctx context.Context, rawURL string, extractImages bool) *ArticleResult {
	rule := e.ruleFor(rawURL)

	resp, err := e.fetcher.FetchWithHeaders(ctx, rawURL, 0, rule.Headers)
	if err != nil {
		e.logger.Warn("article fetch failed", "url", rawURL, "error", err)
		return &ArticleResult{
			Success: false,
			Kind:    FailureFetch,
			Message: fmt.Sprintf("failed to extract article: %v", err),
		}
	}

	e.logger.Debug("article fetched",
		"url", rawURL,
		"status", resp.StatusCode,
		"content_type", resp.ContentType,
		"bytes", len(resp.Body),
	)

	doc, err := htmldoc.Parse(resp.URL, resp.Body)
	if err != nil {
		return &ArticleResult{
			Success: false,
			Kind:    FailureFetch,
			Message: fmt.Sprintf("failed to parse page: %v", err),
		}
	}

	title := prepend(titleCascade, rule.TitleSelectors).Resolve(doc)
	author := authorCascade.Resolve(doc)
	published := dateCascade.Resolve(doc)

	source := sourceCascade.Resolve(doc)
	if source == "" {
		source = doc.Hostname()
	}

	bodyCascade := append(append([]string{}, rule.ContentSelectors...), bodySelectors...)
	bodyNode, bodySelector, matched := htmldoc.FirstMatch(doc, bodyCascade)

	var content string
	if matched {
		content = htmldoc.Text(bodyNode)
		e.logger.Debug("article body matched", "url", rawURL, "selector", bodySelector)
	} else {
		// Last resort: the page may keep its content in a bare <main>.
		content = htmldoc.Text(doc.Find("main"))
	}

	if title == "" || content == "" {
		return &ArticleResult{
			Success: false,
			Kind:    FailureInsufficientContent,
			Message: "failed to extract article: the page did not yield a title and body; the site layout may be unsupported",
		}
	}

	article := &model.Article{
		Title:         title,
		Content:       content,
		Author:        author,
		PublishedDate: published,
		Source:        source,
	}

	if extractImages {
		article.Images = e.extractImages(doc, bodyNode)
	}

	return &ArticleResult{
		Success: true,
		Message: "article extracted successfully",
		Article: article,
	}
}

// extractImages collects images scoped to the article body node, or to a
// broad fallback scope when no body selector matched. Images whose URL
// cannot be resolved are skipped; a bad image never fails the article.
func (e *Extractor) extractImages(doc *htmldoc.Document, bodyNode *goquery.Selection) []model.ArticleImage {
	var scope *goquery.Selection
	if bodyNode != nil {
		scope = bodyNode.Find("img")
	} else {
		scope = doc.Find(fallbackImageScope)
	}

	var images []model.ArticleImage
	scope.Each(func(_ int, s *goquery.Selection) {
		// Lazy-loading sites keep the real URL in data-src and a
		// placeholder in src, so data-src is preferred.
		src, ok := s.Attr("data-src")
		if !ok || src == "" {
			src, _ = s.Attr("src")
		}
		if src == "" {
			return
		}

		resolved, ok := doc.Resolve(src)
		if !ok {
			return
		}

		alt, _ := s.Attr("alt")
		images = append(images, model.ArticleImage{URL: resolved, Alt: alt})
	})
	return images
}

// ruleFor returns the site rule for the URL's hostname.
func (e *Extractor) ruleFor(rawURL string) config.SiteRule {
	if e.rules == nil {
		return config.SiteRule{}
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return config.SiteRule{}
	}
	return e.rules.RuleFor(u.Hostname())
}

// prepend builds a cascade with extra text selectors tried before the
// built-in candidates. The built-in cascade is copied, never mutated.
func prepend(base htmldoc.Cascade, selectors []string) htmldoc.Cascade {
	if len(selectors) == 0 {
		return base
	}
	cascade := make(htmldoc.Cascade, 0, len(selectors)+len(base))
	for _, s := range selectors {
		cascade = append(cascade, htmldoc.Candidate{Selector: s})
	}
	return append(cascade, base...)
}
