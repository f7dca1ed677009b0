package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/webharvest/internal/extract"
)

// Processor extracts articles from multiple URLs concurrently.
// It uses errgroup to manage goroutines and respect the concurrency limit.
//
// Design decision: We use errgroup.SetLimit rather than a hand-rolled
// worker pool because it is simpler and handles the concurrency limit
// correctly. Each URL gets its own goroutine, but only 'concurrency'
// goroutines run simultaneously.
type Processor struct {
	// extractor performs the per-URL extraction.
	extractor *extract.Extractor

	// concurrency is the maximum number of concurrent extractions.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed envelopes in input order.
	// Access is synchronized via mutex.
	results []*extract.ArticleResult
	mu      sync.Mutex
}

// Option configures a Processor.
type Option func(*Processor)

// WithConcurrency sets the maximum number of concurrent extractions.
// Default is 5 if not specified.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for batch processing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a Processor around the given extractor.
func NewProcessor(extractor *extract.Extractor, opts ...Option) *Processor {
	p := &Processor{
		extractor:   extractor,
		concurrency: 5,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Process extracts articles from every URL concurrently and returns the
// envelopes in input order. Per-URL failures are recorded in their
// envelope; the only error returned is batch-level cancellation.
func (p *Processor) Process(ctx context.Context, urls []string, extractImages bool) ([]*extract.ArticleResult, error) {
	p.logger.Info("starting batch extraction",
		"total_urls", len(urls),
		"concurrency", p.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate to keep results aligned with input order.
	p.results = make([]*extract.ArticleResult, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, url := range urls {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result := p.extractor.Extract(ctx, url, extractImages)

			p.mu.Lock()
			p.results[i] = result
			p.mu.Unlock()

			if !result.Success {
				// Failure lives in the envelope; returning an error here
				// would cancel the sibling extractions.
				p.logger.Warn("extraction failed", "url", url, "message", result.Message)
			}
			return nil
		})
	}

	err := g.Wait()

	p.logger.Info("batch extraction complete",
		"total_urls", len(urls),
		"elapsed", time.Since(startTime),
	)

	return p.results, err
}
