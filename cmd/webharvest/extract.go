package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/webharvest/internal/archive"
	"github.com/nao1215/webharvest/internal/batch"
	"github.com/nao1215/webharvest/internal/config"
	"github.com/nao1215/webharvest/internal/extract"
	"github.com/nao1215/webharvest/internal/fetch"
	"github.com/spf13/cobra"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [url...]",
		Short: "Extract article content from web pages",
		Long: `Extract pulls structured article fields out of news and blog pages:
title, body text, author, publication date, source name, and optionally
the images inside the article body.

Multiple URLs are processed concurrently. Per-site selector overrides and
request headers can be supplied through a configuration file.

Examples:
  # Extract a single article
  webharvest extract https://example.com/news/article

  # Extract several articles with image collection
  webharvest extract --images https://example.com/a https://example.com/b

  # Save extracted articles to the local archive database
  webharvest extract --save https://example.com/news/article

  # Output JSON
  webharvest extract --json https://example.com/news/article

Configuration file (.webharvest.yml) example:
  sites:
    example.com:
      contentSelectors:
        - ".custom-article-body"
      headers:
        Authorization: "Bearer token"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExtractCmd,
	}

	// Extraction behavior flags
	cmd.Flags().BoolP("images", "i", false,
		"Collect images found inside the article body")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each HTTP request")
	cmd.Flags().Int64P("max-body-size", "s", config.DefaultMaxBodySize,
		"Maximum response body size in bytes")
	cmd.Flags().StringP("user-agent", "u", "",
		"Override the User-Agent header")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent extractions")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .webharvest.yml in current directory)")

	// Archive flags
	cmd.Flags().Bool("save", false,
		"Save extracted articles to the local archive database")
	cmd.Flags().String("db-dir", "",
		"Archive database directory (default: XDG data directory)")

	return cmd
}

// runExtractCmd executes the extract command.
func runExtractCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildExtractConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
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

	extractImages, err := cmd.Flags().GetBool("images")
	if err != nil {
		return err
	}

	return runExtract(ctx, cfg, args, extractImages, logger)
}

// buildExtractConfig creates a Config from cobra command flags.
func buildExtractConfig(cmd *cobra.Command, _ []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.MaxBodySize, err = cmd.Flags().GetInt64("max-body-size")
	if err != nil {
		return nil, err
	}

	cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load site rules from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty rules if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.SiteRules, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.SiteRules = &config.File{
			Sites: make(map[string]config.SiteRule),
		}
	}

	if err := outputFormat(cmd, cfg); err != nil {
		return nil, err
	}

	cfg.SaveToDB, err = cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}

	cfg.DBDir, err = cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if cfg.DBDir == "" {
		cfg.DBDir = config.XDGDataDir()
	}

	return cfg, nil
}

// runExtract executes the extraction.
func runExtract(ctx context.Context, cfg *config.Config, urls []string, extractImages bool, logger *slog.Logger) error {
	if len(urls) == 0 {
		return errors.New("no URLs provided (specify one or more URLs as arguments)")
	}

	logger.Info("starting extraction",
		"urls", len(urls),
		"extractImages", extractImages,
		"batchSize", cfg.BatchSize,
		"saveToDB", cfg.SaveToDB,
	)

	fetchOpts := []fetch.Option{
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	}
	if cfg.UserAgent != "" {
		fetchOpts = append(fetchOpts, fetch.WithUserAgent(cfg.UserAgent))
	}

	extractor := extract.NewExtractor(
		fetch.NewClient(fetchOpts...),
		extract.WithSiteRules(cfg.SiteRules),
		extract.WithLogger(logger),
	)

	var results []*extract.ArticleResult
	if len(urls) > 1 && cfg.BatchSize > 1 {
		processor := batch.NewProcessor(extractor,
			batch.WithConcurrency(cfg.BatchSize),
			batch.WithLogger(logger),
		)
		var err error
		results, err = processor.Process(ctx, urls, extractImages)
		if err != nil {
			return err
		}
	} else {
		for _, u := range urls {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results = append(results, extractor.Extract(ctx, u, extractImages))
		}
	}

	if cfg.SaveToDB {
		if err := saveArticles(ctx, cfg, urls, results, logger); err != nil {
			logger.Error("failed to save articles", "error", err)
		}
	}

	output, closeOutput, err := openOutput(cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Best effort close

	writer := newWriter(cfg, output)
	if len(results) == 1 {
		_, err = writer.WriteArticle(results[0])
		return err
	}
	_, err = writer.WriteArticles(results)
	return err
}

// saveArticles stores successful extractions in the archive database.
// Failed extractions are skipped.
func saveArticles(ctx context.Context, cfg *config.Config, urls []string, results []*extract.ArticleResult, logger *slog.Logger) error {
	db, err := archive.Open(cfg.DBDir, archive.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open archive database: %w", err)
	}
	defer db.Close()

	saved := 0
	for i, result := range results {
		if !result.Success || result.Article == nil {
			continue
		}
		if _, err := db.SaveArticle(ctx, urls[i], result.Article); err != nil {
			logger.Error("failed to save article", "url", urls[i], "error", err)
			continue
		}
		saved++
	}

	logger.Info("articles saved to archive", "saved", saved, "dir", cfg.DBDir)
	return nil
}
