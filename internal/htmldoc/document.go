package htmldoc

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/nao1215/webharvest/internal/model"
)

// Document is a queryable tree over a single HTML body.
// It is owned exclusively by the operation that parsed it and is never
// shared across requests, so it needs no synchronization.
type Document struct {
	// doc is the underlying goquery document.
	doc *goquery.Document

	// base is the URL of the fetched page, used to resolve relative links.
	base *url.URL
}

// Parse parses an HTML body into a Document. The baseURL is the URL the
// body was fetched from; it anchors relative link and image resolution.
func Parse(baseURL string, body []byte) (*Document, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	return &Document{doc: doc, base: base}, nil
}

// Find returns the selection matching the CSS selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// BaseURL returns the document's base URL.
func (d *Document) BaseURL() *url.URL {
	return d.base
}

// Hostname returns the hostname of the document's base URL.
func (d *Document) Hostname() string {
	return d.base.Hostname()
}

// Title returns the trimmed text of the <title> element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// MetaTags returns a map of meta tag names to content values.
// The key is the element's name attribute, or its property attribute when
// name is absent (OpenGraph uses property). Only elements carrying both a
// key and a content value are retained. Duplicate keys resolve to the last
// occurrence in document order.
func (d *Document) MetaTags() map[string]string {
	meta := make(map[string]string)
	d.doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name, ok := s.Attr("name")
		if !ok || name == "" {
			name, _ = s.Attr("property")
		}
		content, _ := s.Attr("content")
		if name != "" && content != "" {
			meta[name] = content
		}
	})
	return meta
}

// Links returns every anchor with a resolvable href, resolved to absolute
// form, in document order. Anchors without an href and hrefs that fail
// resolution are skipped: link extraction is best-effort and never aborts
// the enclosing operation.
func (d *Document) Links() []model.Link {
	var links []model.Link
	d.doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		resolved, ok := d.Resolve(href)
		if !ok {
			return
		}
		links = append(links, model.Link{
			Text: strings.TrimSpace(s.Text()),
			Href: resolved,
		})
	})
	return links
}

// Resolve converts an href into an absolute URL against the document base.
// It reports false for empty, non-navigational (javascript:, mailto:, tel:,
// data:, bare fragment), or malformed hrefs. Callers drop such items rather
// than propagating an error.
func (d *Document) Resolve(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || href == "#" {
		return "", false
	}
	if strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:") {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	return d.base.ResolveReference(u).String(), true
}

// BodyText returns the text of the <body> element with script, style, meta,
// link, and noscript content removed and whitespace runs collapsed.
func (d *Document) BodyText() string {
	body := d.doc.Find("body")
	if body.Length() == 0 {
		return ""
	}
	return nodesText(body, map[string]bool{
		"script":   true,
		"style":    true,
		"meta":     true,
		"link":     true,
		"noscript": true,
	})
}

// Text returns the text of a selection with script and style descendants
// excluded, so embedded JavaScript and CSS never leak into extracted
// content. Whitespace runs are collapsed to a single space.
func Text(sel *goquery.Selection) string {
	return nodesText(sel, map[string]bool{
		"script": true,
		"style":  true,
	})
}

// nodesText walks the selection's nodes collecting text, skipping the
// subtrees of skipped element names.
func nodesText(sel *goquery.Selection, skip map[string]bool) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		collectText(n, skip, &sb)
	}
	return CollapseWhitespace(sb.String())
}

// collectText appends the text content of n and its descendants to sb.
func collectText(n *html.Node, skip map[string]bool, sb *strings.Builder) {
	if n.Type == html.ElementNode && skip[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		// Keep a separator between adjacent text nodes so words from
		// sibling elements do not run together.
		sb.WriteString(" ")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, skip, sb)
	}
}

// CollapseWhitespace trims the string and collapses every run of
// whitespace (including newlines and tabs) to a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
