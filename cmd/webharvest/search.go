package main

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/webharvest/internal/config"
	"github.com/nao1215/webharvest/internal/model"
	"github.com/nao1215/webharvest/internal/search"
	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the web through the Brave Search API",
		Long: `Search runs a query against the Brave Search API and normalizes the
results into a uniform shape. Four verticals are supported: web, news,
videos, and images.

The API key is read from the ` + config.SearchAPIKeyEnv + ` environment
variable. No network request is made when the key is missing.

Examples:
  # Web search (default vertical)
  webharvest search "golang html parser"

  # News from the past week
  webharvest search --type news --time-range week "semiconductor exports"

  # Image search with strict safe search
  webharvest search --type images --safesearch strict "mount fuji"

  # English results from the US
  webharvest search --lang en --country US "election results"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearchCmd,
	}

	cmd.Flags().StringP("type", "t", string(model.SearchTypeWeb),
		"Search vertical: web, news, videos, or images")
	cmd.Flags().IntP("count", "n", config.DefaultNumResults,
		"Number of results to request (clamped to the API maximum)")
	cmd.Flags().StringP("lang", "l", config.DefaultLanguage,
		"Result language code (e.g. ja, en)")
	cmd.Flags().String("country", "",
		"Result country code (e.g. JP, US); derived from --lang when empty")
	cmd.Flags().String("safesearch", string(model.SafeSearchModerate),
		"Adult content filter: off, moderate, or strict")
	cmd.Flags().String("time-range", string(model.TimeRangeAll),
		"Restrict results by recency: day, week, month, year, or all")

	return cmd
}

// runSearchCmd executes the search command.
func runSearchCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()

	if err := outputFormat(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	req, err := buildSearchRequest(cmd, args[0])
	if err != nil {
		return err
	}

	verbose := getVerboseFlag(cmd)
	cfg.Verbose = verbose
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	client := search.NewClientFromEnv(search.WithLogger(logger))
	outcome := client.Search(cmd.Context(), req)

	output, closeOutput, err := openOutput(cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Best effort close

	_, err = newWriter(cfg, output).WriteSearch(outcome)
	return err
}

// buildSearchRequest validates flag values and assembles the request.
// Enum flags are validated here so bad input fails before any network call.
func buildSearchRequest(cmd *cobra.Command, query string) (search.Request, error) {
	var req search.Request
	req.Query = query

	rawType, err := cmd.Flags().GetString("type")
	if err != nil {
		return req, err
	}
	req.Type, err = model.ParseSearchType(rawType)
	if err != nil {
		return req, err
	}

	req.NumResults, err = cmd.Flags().GetInt("count")
	if err != nil {
		return req, err
	}

	req.Language, err = cmd.Flags().GetString("lang")
	if err != nil {
		return req, err
	}

	req.Country, err = cmd.Flags().GetString("country")
	if err != nil {
		return req, err
	}

	rawSafe, err := cmd.Flags().GetString("safesearch")
	if err != nil {
		return req, err
	}
	req.SafeSearch, err = model.ParseSafeSearch(rawSafe)
	if err != nil {
		return req, err
	}

	rawRange, err := cmd.Flags().GetString("time-range")
	if err != nil {
		return req, err
	}
	req.TimeRange, err = model.ParseTimeRange(rawRange)
	if err != nil {
		return req, err
	}

	return req, nil
}
