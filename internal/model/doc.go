// Package model defines the core data structures used throughout webharvest.
//
// This package contains the following main types:
//   - Article: A structured news article extracted from an HTML page
//   - PageContent: Raw page content produced by the scraper
//   - SearchResult and its per-vertical variants (web, news, videos, images)
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (extract, search, report, archive) need to
// use these types, so centralizing them prevents import cycles.
//
// All models are value objects: constructed once per operation, immutable by
// convention, and serializable to JSON for report output and archive storage.
package model
