// Package report renders extraction, scraping, and search outcomes in
// multiple output formats.
//
// Three writers are provided:
//   - SimpleWriter: human-readable text for terminal display
//   - JSONWriter: machine-readable JSON for tool integration
//   - MarkdownWriter: Markdown documents suitable for sharing
//
// All writers implement the Writer interface so callers can select a
// format at runtime without changing the rendering call sites.
package report
