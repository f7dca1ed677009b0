package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nao1215/webharvest/internal/config"
	"github.com/nao1215/webharvest/internal/extract"
	"github.com/nao1215/webharvest/internal/fetch"
	"github.com/spf13/cobra"
)

// NewScrapeCmd creates the scrape command.
func NewScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape [url]",
		Short: "Scrape raw content, links, and metadata from a web page",
		Long: `Scrape fetches a single page and returns its title, text content,
meta tags, and optionally every hyperlink on the page.

A CSS selector narrows the extracted content to matching elements. Without
a selector the visible body text is returned.

Examples:
  # Scrape the full page body
  webharvest scrape https://example.com

  # Scrape only elements matching a CSS selector
  webharvest scrape --selector ".product-price" https://example.com/item

  # Include all hyperlinks in the result
  webharvest scrape --links https://example.com

  # Output JSON
  webharvest scrape --json https://example.com`,
		Args: cobra.ExactArgs(1),
		RunE: runScrapeCmd,
	}

	cmd.Flags().StringP("selector", "s", "",
		"CSS selector that narrows the extracted content")
	cmd.Flags().BoolP("links", "l", false,
		"Include all hyperlinks found on the page")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for the HTTP request")
	cmd.Flags().Int64P("max-body-size", "S", config.DefaultMaxBodySize,
		"Maximum response body size in bytes")
	cmd.Flags().StringP("user-agent", "u", "",
		"Override the User-Agent header")

	return cmd
}

// runScrapeCmd executes the scrape command.
func runScrapeCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()

	var err error

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}

	cfg.MaxBodySize, err = cmd.Flags().GetInt64("max-body-size")
	if err != nil {
		return err
	}

	cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
	if err != nil {
		return err
	}

	if err := outputFormat(cmd, cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	selector, err := cmd.Flags().GetString("selector")
	if err != nil {
		return err
	}

	extractLinks, err := cmd.Flags().GetBool("links")
	if err != nil {
		return err
	}

	verbose := getVerboseFlag(cmd)
	cfg.Verbose = verbose
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScrape(ctx, cfg, args[0], selector, extractLinks, cfg.Timeout, logger)
}

// runScrape executes the scrape.
func runScrape(ctx context.Context, cfg *config.Config, rawURL, selector string, extractLinks bool, timeout time.Duration, logger *slog.Logger) error {
	fetchOpts := []fetch.Option{
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	}
	if cfg.UserAgent != "" {
		fetchOpts = append(fetchOpts, fetch.WithUserAgent(cfg.UserAgent))
	}

	scraper := extract.NewScraper(
		fetch.NewClient(fetchOpts...),
		extract.WithScraperLogger(logger),
	)

	result := scraper.Scrape(ctx, rawURL, selector, extractLinks, timeout)

	output, closeOutput, err := openOutput(cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Best effort close

	_, err = newWriter(cfg, output).WritePage(result)
	return err
}
