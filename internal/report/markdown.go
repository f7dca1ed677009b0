package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
	"github.com/nao1215/webharvest/internal/extract"
	"github.com/nao1215/webharvest/internal/model"
	"github.com/nao1215/webharvest/internal/search"
)

// MarkdownWriter outputs results as Markdown documents.
// This format is suitable for sharing extracted content in issues,
// wikis, and chat tools that render Markdown.
//
// Design decision: We use github.com/nao1215/markdown rather than
// hand-building Markdown strings because it handles table alignment
// and escaping consistently.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteArticle outputs a single article extraction result as Markdown.
func (w *MarkdownWriter) WriteArticle(result *extract.ArticleResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	if !result.Success || result.Article == nil {
		md.H1("Extraction Failed")
		md.PlainText("")
		md.Warningf("%s", result.Message)
		return len(md.String()), md.Build()
	}

	w.writeArticleSection(md, result.Article, true)
	return len(md.String()), md.Build()
}

// WriteArticles outputs a batch of article extraction results as a single
// Markdown document, one section per article.
func (w *MarkdownWriter) WriteArticles(results []*extract.ArticleResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Extracted Articles")
	md.PlainText("")

	succeeded := 0
	for _, result := range results {
		if !result.Success || result.Article == nil {
			md.Warningf("%s", result.Message)
			md.PlainText("")
			continue
		}
		succeeded++
		w.writeArticleSection(md, result.Article, false)
	}

	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("Extracted %d of %d articles.", succeeded, len(results))

	return len(md.String()), md.Build()
}

// writeArticleSection renders one article. When topLevel is true the title
// becomes an H1, otherwise an H2 under a shared document header.
func (w *MarkdownWriter) writeArticleSection(md *markdown.Markdown, article *model.Article, topLevel bool) {
	if topLevel {
		md.H1(article.Title)
	} else {
		md.H2(article.Title)
	}
	md.PlainText("")

	rows := make([][]string, 0, 3)
	if article.Author != "" {
		rows = append(rows, []string{"Author", article.Author})
	}
	if article.PublishedDate != "" {
		rows = append(rows, []string{"Published", article.PublishedDate})
	}
	if article.Source != "" {
		rows = append(rows, []string{"Source", article.Source})
	}
	if len(rows) > 0 {
		md.Table(markdown.TableSet{
			Header: []string{"Property", "Value"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	md.PlainText(article.Content)
	md.PlainText("")

	if len(article.Images) > 0 {
		if topLevel {
			md.H2("Images")
		} else {
			md.H3("Images")
		}
		md.PlainText("")
		for _, img := range article.Images {
			alt := img.Alt
			if alt == "" {
				alt = "image"
			}
			md.PlainTextf("![%s](%s)", alt, img.URL)
		}
		md.PlainText("")
	}
}

// WritePage outputs a page scraping result as Markdown.
func (w *MarkdownWriter) WritePage(result *extract.PageResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	if !result.Success || result.Page == nil {
		md.H1("Scrape Failed")
		md.PlainText("")
		md.Warningf("%s", result.Message)
		return len(md.String()), md.Build()
	}

	page := result.Page
	md.H1(page.Title)
	md.PlainText("")
	md.PlainText(page.Content)
	md.PlainText("")

	if len(page.Links) > 0 {
		md.H2("Links")
		md.PlainText("")
		items := make([]string, 0, len(page.Links))
		for _, link := range page.Links {
			items = append(items, fmt.Sprintf("[%s](%s)", link.Text, link.Href))
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteSearch outputs a search outcome as Markdown.
func (w *MarkdownWriter) WriteSearch(outcome *search.Outcome) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(fmt.Sprintf("Search Results (%s)", outcome.SearchType))
	md.PlainText("")

	if !outcome.Success {
		md.Warningf("%s", outcome.Message)
		return len(md.String()), md.Build()
	}

	md.PlainText(outcome.Message)
	md.PlainText("")

	rows := make([][]string, 0, len(outcome.Results))
	for _, result := range outcome.Results {
		base := result.Base()
		rows = append(rows, []string{
			fmt.Sprintf("[%s](%s)", base.Title, base.URL),
			resultDetail(result),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Result", "Detail"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(outcome.RelatedQueries) > 0 {
		md.H2("Related Queries")
		md.PlainText("")
		md.BulletList(outcome.RelatedQueries...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// resultDetail summarizes vertical-specific fields in one table cell.
func resultDetail(result model.SearchResult) string {
	switch r := result.(type) {
	case model.WebResult:
		return r.Description
	case model.NewsResult:
		if r.Source != "" && r.PublishDate != "" {
			return fmt.Sprintf("%s, %s", r.Source, r.PublishDate)
		}
		if r.Source != "" {
			return r.Source
		}
		return r.Description
	case model.VideoResult:
		if r.Provider != "" && r.Duration != "" {
			return fmt.Sprintf("%s [%s]", r.Provider, r.Duration)
		}
		return r.Provider
	case model.ImageResult:
		if r.Width > 0 && r.Height > 0 {
			return fmt.Sprintf("%dx%d", r.Width, r.Height)
		}
		return ""
	default:
		return ""
	}
}
