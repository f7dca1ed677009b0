package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nao1215/webharvest/internal/archive"
	"github.com/nao1215/webharvest/internal/config"
	"github.com/spf13/cobra"
)

// NewArchiveCmd creates the archive command.
// This command inspects articles previously saved with 'extract --save'.
func NewArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect the local article archive",
		Long: `Archive lists and shows articles previously saved with 'extract --save'.

Examples:
  # List the most recently archived articles
  webharvest archive

  # List up to 50 archived articles
  webharvest archive --limit 50

  # Show a single archived article by URL
  webharvest archive --url https://example.com/news/article

  # Print how many articles are archived
  webharvest archive --count`,
		Args: cobra.NoArgs,
		RunE: runArchiveCmd,
	}

	cmd.Flags().IntP("limit", "n", 20,
		"Maximum number of articles to list (0 = no limit)")
	cmd.Flags().StringP("url", "u", "",
		"Show the archived article for this URL")
	cmd.Flags().Bool("count", false,
		"Print the number of archived articles")
	cmd.Flags().String("db-dir", "",
		"Archive database directory (default: XDG data directory)")

	return cmd
}

// runArchiveCmd executes the archive command.
func runArchiveCmd(cmd *cobra.Command, _ []string) error {
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	opts := archive.DefaultOptions()
	opts.CreateIfNotExists = false
	db, err := archive.Open(dbDir, opts)
	if err != nil {
		return fmt.Errorf("failed to open archive database (run 'extract --save' first): %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	countOnly, err := cmd.Flags().GetBool("count")
	if err != nil {
		return err
	}
	if countOnly {
		n, err := db.Count(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d articles archived\n", n)
		return nil
	}

	rawURL, err := cmd.Flags().GetString("url")
	if err != nil {
		return err
	}
	if rawURL != "" {
		return showArchivedArticle(ctx, cmd, db, rawURL)
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	return listArchivedArticles(ctx, cmd, db, limit)
}

// showArchivedArticle prints one archived article as indented JSON.
func showArchivedArticle(ctx context.Context, cmd *cobra.Command, db *archive.DB, rawURL string) error {
	record, err := db.GetByURL(ctx, rawURL)
	if err != nil {
		return err
	}
	if record == nil {
		fmt.Fprintf(os.Stderr, "no archived article for %s\n", rawURL)
		return nil
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(record)
}

// listArchivedArticles prints a one-line summary per archived article,
// newest first.
func listArchivedArticles(ctx context.Context, cmd *cobra.Command, db *archive.DB, limit int) error {
	records, err := db.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "archive is empty")
		return nil
	}

	for _, record := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
			record.ExtractedAt.Format("2006-01-02 15:04"), record.URL, record.Article.Title)
	}
	return nil
}
