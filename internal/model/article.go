package model

// Article represents a news article extracted from an HTML page.
//
// Invariant: an Article is only ever constructed with a non-empty Title and
// a non-empty Content. Extraction that cannot satisfy both reports failure
// instead of surfacing a partial article.
type Article struct {
	// Title is the article headline.
	Title string `json:"title"`

	// Content is the article body text with whitespace runs collapsed.
	Content string `json:"content"`

	// Author is the author name, if the page declares one.
	Author string `json:"author,omitempty"`

	// PublishedDate is the publication date exactly as the page declares it.
	// The upstream-native format is preserved; we never reparse it because
	// pages use wildly inconsistent date formats and the original string is
	// the only lossless representation.
	PublishedDate string `json:"publishedDate,omitempty"`

	// Source is the publishing site name (og:site_name) or, failing that,
	// the hostname of the article URL.
	Source string `json:"source,omitempty"`

	// Images are the images found inside the article body, in document order.
	// Only populated when image extraction was requested.
	Images []ArticleImage `json:"images,omitempty"`
}

// ArticleImage is a single image referenced by an article body.
type ArticleImage struct {
	// URL is the absolute image URL, resolved against the article URL.
	URL string `json:"url"`

	// Alt is the image's alt text, if present.
	Alt string `json:"alt,omitempty"`
}
