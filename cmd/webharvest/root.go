// Package main provides the entry point for the webharvest CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for webharvest.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webharvest",
		Short: "Extract structured content from web pages and search the web",
		Long: `webharvest extracts structured content from web pages and queries the
Brave Search API across its web, news, videos, and images verticals.

The extract command pulls article fields (title, body, author, date,
images) out of news and blog pages. The scrape command returns raw page
content, links, and metadata, optionally narrowed by a CSS selector.
The search command runs a Brave Search query and normalizes the results.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.PersistentFlags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.PersistentFlags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")

	// Add subcommands
	cmd.AddCommand(NewExtractCmd())
	cmd.AddCommand(NewScrapeCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewArchiveCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
