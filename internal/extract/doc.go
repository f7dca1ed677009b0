// Package extract composes the fetcher and the HTML document layer into
// the two page-level operations: article extraction and page scraping.
//
// # Architecture
//
//   - Extractor: URL -> structured Article, using ordered selector cascades
//     for title, author, date, source, and body content
//   - Scraper: URL -> raw PageContent, optionally scoped to one explicit
//     CSS selector, with meta tags and link enumeration
//
// Both operations return an envelope (ArticleResult, PageResult) carrying
// a success flag and a human-readable message instead of a bare error.
// Callers render the message to users; nothing in this package panics or
// returns an unclassified fault.
//
// # Failure policy
//
// Article extraction is strict: when the cascades cannot produce both a
// non-empty title and a non-empty body, the whole operation fails with
// FailureInsufficientContent. Partial articles are never surfaced as
// success, because downstream consumers treat an Article as complete.
//
// Page scraping is lenient: an empty page is a valid successful result,
// and only a fetch failure produces a failed envelope.
package extract
