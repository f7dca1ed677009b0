// Package archive provides SQLite-based storage for extracted articles.
//
// The archive is a CLI-layer convenience: extraction itself is stateless
// and never reads from the archive. When saving is enabled, successful
// extractions are stored for later browsing and deduplicated by URL.
//
// Design decision: We use modernc.org/sqlite (a pure-Go SQLite port)
// rather than mattn/go-sqlite3 to keep the build cgo-free, which matters
// for cross-compiled release binaries.
package archive
