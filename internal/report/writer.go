package report

import (
	"io"

	"github.com/nao1215/webharvest/internal/extract"
	"github.com/nao1215/webharvest/internal/search"
)

// Writer defines the interface for result output.
// Implementations render results in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// WriteArticle outputs a single article extraction result.
	// Returns the number of bytes written and any error encountered.
	WriteArticle(result *extract.ArticleResult) (int, error)

	// WriteArticles outputs a batch of article extraction results.
	WriteArticles(results []*extract.ArticleResult) (int, error)

	// WritePage outputs a page scraping result.
	WritePage(result *extract.PageResult) (int, error)

	// WriteSearch outputs a search outcome.
	WriteSearch(outcome *search.Outcome) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer. We write structured results, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteArticle outputs the result to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteArticle(result *extract.ArticleResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteArticle(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteArticles outputs the results to all configured Writers.
func (m *MultiWriter) WriteArticles(results []*extract.ArticleResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteArticles(results)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WritePage outputs the result to all configured Writers.
func (m *MultiWriter) WritePage(result *extract.PageResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WritePage(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteSearch outputs the outcome to all configured Writers.
func (m *MultiWriter) WriteSearch(outcome *search.Outcome) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteSearch(outcome)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for result writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
