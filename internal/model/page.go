package model

// PageContent represents the content scraped from a single web page.
//
// Unlike Article, a PageContent with empty Content is valid: an empty page
// is a successful scrape, and only fetch failures produce errors.
type PageContent struct {
	// Title is the text of the page's <title> element, if any.
	Title string `json:"title,omitempty"`

	// Content is the extracted page text. When a selector was supplied it is
	// the newline-joined text of every matching node; otherwise it is the
	// <body> text with script, style, meta, link, and noscript content
	// removed and whitespace collapsed.
	Content string `json:"content"`

	// Links are the page's anchors with resolvable hrefs, in document order.
	// Only populated when link extraction was requested.
	Links []Link `json:"links,omitempty"`

	// Metadata maps meta tag names (or properties) to their content values.
	// When the same key appears on multiple meta elements, the last
	// occurrence in document order wins.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Link is a hyperlink discovered on a page.
type Link struct {
	// Text is the anchor's trimmed text content.
	Text string `json:"text"`

	// Href is the absolute link target, resolved against the page URL.
	Href string `json:"href"`
}
