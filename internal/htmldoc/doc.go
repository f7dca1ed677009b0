// Package htmldoc provides HTML document parsing, CSS-selector querying,
// and relative URL resolution for the extraction pipeline.
//
// # Architecture
//
// The package wraps goquery (a jQuery-like CSS selector engine over
// golang.org/x/net/html) in a Document type that also carries the page's
// base URL, so every discovered link and image can be resolved to absolute
// form at the point of extraction.
//
// Design decision: We use goquery rather than raw golang.org/x/net/html
// traversal because:
//  1. Extraction rules are expressed as CSS selectors (h1, .article-body,
//     meta[property="og:title"]) and hand-rolling selector matching is
//     error-prone
//  2. goquery correctly handles malformed HTML common on news sites
//  3. Text extraction still drops to x/net/html nodes where we need to
//     skip script/style subtrees
//
// # Cascade resolution
//
// Semantic fields (title, author, date, body) rarely live in one canonical
// place across news sites. The Cascade type models an ordered list of
// candidate selectors; the first candidate yielding a non-empty trimmed
// value wins and all later candidates are skipped. This gives graceful
// degradation across heterogeneous markup without per-site configuration.
package htmldoc
