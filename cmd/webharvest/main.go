// Package main provides the entry point for the webharvest CLI.
//
// webharvest extracts structured content from web pages and queries the
// Brave Search API across its web, news, videos, and images verticals.
//
// Usage:
//
//	webharvest extract <url> [<url>...]
//	webharvest scrape <url>
//	webharvest search <query>
//
// See --help for all available options.
package main

// main is the entry point for webharvest.
func main() {
	Execute()
}
