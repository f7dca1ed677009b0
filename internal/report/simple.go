package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nao1215/webharvest/internal/extract"
	"github.com/nao1215/webharvest/internal/model"
	"github.com/nao1215/webharvest/internal/search"
)

// SimpleWriter outputs human-readable text results.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail in the output, such as page
	// metadata and full link lists.
	verbose bool

	// maxContentLen truncates rendered content bodies.
	// Zero means no truncation.
	maxContentLen int
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithMaxContentLen limits how many characters of extracted content are
// printed. Zero disables truncation.
func WithMaxContentLen(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.maxContentLen = n
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter:    newBaseWriter(output),
		verbose:       false,
		maxContentLen: 0,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteArticle outputs a single article extraction result as text.
func (w *SimpleWriter) WriteArticle(result *extract.ArticleResult) (int, error) {
	var sb strings.Builder

	if !result.Success || result.Article == nil {
		sb.WriteString("EXTRACTION FAILED\n")
		fmt.Fprintf(&sb, "  Reason: %s\n", result.Message)
		return io.WriteString(w.output, sb.String())
	}

	w.writeArticleBody(&sb, result.Article)
	return io.WriteString(w.output, sb.String())
}

// WriteArticles outputs a batch of article extraction results as text,
// separated by rules, with a summary footer.
func (w *SimpleWriter) WriteArticles(results []*extract.ArticleResult) (int, error) {
	var sb strings.Builder

	succeeded := 0
	for i, result := range results {
		if i > 0 {
			sb.WriteString(strings.Repeat("-", 60) + "\n")
		}
		if !result.Success || result.Article == nil {
			sb.WriteString("EXTRACTION FAILED\n")
			fmt.Fprintf(&sb, "  Reason: %s\n", result.Message)
			continue
		}
		succeeded++
		w.writeArticleBody(&sb, result.Article)
	}

	sb.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&sb, "Extracted %d of %d articles\n", succeeded, len(results))

	return io.WriteString(w.output, sb.String())
}

// writeArticleBody renders one article's fields.
func (w *SimpleWriter) writeArticleBody(sb *strings.Builder, article *model.Article) {
	fmt.Fprintf(sb, "Title:     %s\n", article.Title)
	if article.Author != "" {
		fmt.Fprintf(sb, "Author:    %s\n", article.Author)
	}
	if article.PublishedDate != "" {
		fmt.Fprintf(sb, "Published: %s\n", article.PublishedDate)
	}
	if article.Source != "" {
		fmt.Fprintf(sb, "Source:    %s\n", article.Source)
	}
	sb.WriteString("\n")
	sb.WriteString(w.truncate(article.Content))
	sb.WriteString("\n")

	if len(article.Images) > 0 {
		sb.WriteString("\nImages:\n")
		for _, img := range article.Images {
			if img.Alt != "" {
				fmt.Fprintf(sb, "  - %s (%s)\n", img.URL, img.Alt)
			} else {
				fmt.Fprintf(sb, "  - %s\n", img.URL)
			}
		}
	}
}

// WritePage outputs a page scraping result as text.
func (w *SimpleWriter) WritePage(result *extract.PageResult) (int, error) {
	var sb strings.Builder

	if !result.Success || result.Page == nil {
		sb.WriteString("SCRAPE FAILED\n")
		fmt.Fprintf(&sb, "  Reason: %s\n", result.Message)
		return io.WriteString(w.output, sb.String())
	}

	page := result.Page
	fmt.Fprintf(&sb, "Title: %s\n\n", page.Title)
	sb.WriteString(w.truncate(page.Content))
	sb.WriteString("\n")

	if len(page.Links) > 0 {
		fmt.Fprintf(&sb, "\nLinks (%d):\n", len(page.Links))
		for _, link := range page.Links {
			fmt.Fprintf(&sb, "  - %s: %s\n", link.Text, link.Href)
		}
	}

	if w.verbose && len(page.Metadata) > 0 {
		sb.WriteString("\nMetadata:\n")
		keys := make([]string, 0, len(page.Metadata))
		for k := range page.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "  %s: %s\n", k, page.Metadata[k])
		}
	}

	return io.WriteString(w.output, sb.String())
}

// WriteSearch outputs a search outcome as text.
func (w *SimpleWriter) WriteSearch(outcome *search.Outcome) (int, error) {
	var sb strings.Builder

	if !outcome.Success {
		sb.WriteString("SEARCH FAILED\n")
		fmt.Fprintf(&sb, "  Reason: %s\n", outcome.Message)
		return io.WriteString(w.output, sb.String())
	}

	fmt.Fprintf(&sb, "%s\n\n", outcome.Message)
	for i, result := range outcome.Results {
		base := result.Base()
		fmt.Fprintf(&sb, "%d. %s\n   %s\n", i+1, base.Title, base.URL)
		w.writeResultDetail(&sb, result)
	}

	if len(outcome.RelatedQueries) > 0 {
		sb.WriteString("\nRelated queries:\n")
		for _, q := range outcome.RelatedQueries {
			fmt.Fprintf(&sb, "  - %s\n", q)
		}
	}

	return io.WriteString(w.output, sb.String())
}

// writeResultDetail renders vertical-specific fields for a search result.
func (w *SimpleWriter) writeResultDetail(sb *strings.Builder, result model.SearchResult) {
	switch r := result.(type) {
	case model.WebResult:
		if r.Description != "" {
			fmt.Fprintf(sb, "   %s\n", r.Description)
		}
	case model.NewsResult:
		if r.Source != "" {
			fmt.Fprintf(sb, "   Source: %s", r.Source)
			if r.PublishDate != "" {
				fmt.Fprintf(sb, " (%s)", r.PublishDate)
			}
			sb.WriteString("\n")
		}
		if r.Description != "" {
			fmt.Fprintf(sb, "   %s\n", r.Description)
		}
	case model.VideoResult:
		if r.Provider != "" {
			fmt.Fprintf(sb, "   Provider: %s", r.Provider)
			if r.Duration != "" {
				fmt.Fprintf(sb, " [%s]", r.Duration)
			}
			sb.WriteString("\n")
		}
	case model.ImageResult:
		if r.Width > 0 && r.Height > 0 {
			fmt.Fprintf(sb, "   %dx%d\n", r.Width, r.Height)
		}
	}
}

// truncate shortens content to maxContentLen when configured.
func (w *SimpleWriter) truncate(s string) string {
	if w.maxContentLen <= 0 || len(s) <= w.maxContentLen {
		return s
	}
	return s[:w.maxContentLen] + "...(truncated)"
}
