package htmldoc

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Candidate is a single extraction rule: a CSS selector, and optionally
// the attribute to read from matching elements. When Attr is empty the
// element's text content is used instead.
type Candidate struct {
	// Selector is the CSS selector to query.
	Selector string

	// Attr is the attribute to read from matched elements.
	// Empty means use the element text.
	Attr string
}

// Cascade is an ordered list of candidates for one semantic field.
// Candidates are evaluated in declaration order and the first one that
// yields a non-empty value short-circuits the rest.
//
// Design decision: We model the cascade as data evaluated by one generic
// resolver rather than repeated conditional chains because the same
// fallback shape recurs for every field (title, author, date, body) and
// the candidate lists are the behavior: keeping them as plain ordered
// literals makes the extraction rules reviewable at a glance.
type Cascade []Candidate

// Resolve returns the value of the first candidate that matches at least
// one node with a non-empty trimmed text (or non-empty attribute, for
// attribute candidates). It returns an empty string when no candidate
// yields a value.
func (c Cascade) Resolve(d *Document) string {
	for _, cand := range c {
		if v := cand.resolve(d); v != "" {
			return v
		}
	}
	return ""
}

// resolve evaluates a single candidate, scanning matched nodes in document
// order and returning the first non-empty value.
func (cand Candidate) resolve(d *Document) string {
	var value string
	d.Find(cand.Selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var v string
		if cand.Attr != "" {
			attr, _ := s.Attr(cand.Attr)
			v = strings.TrimSpace(attr)
		} else {
			v = Text(s)
		}
		if v != "" {
			value = v
			return false
		}
		return true
	})
	return value
}

// FirstMatch returns the first node among the ordered structural selectors
// whose text content (script/style excluded) is non-empty, along with the
// selector that produced it. It reports false when no selector matches.
//
// This backs body-content extraction, where the caller needs the winning
// node itself (for scoped image search) rather than just its text.
func FirstMatch(d *Document, selectors []string) (*goquery.Selection, string, bool) {
	for _, selector := range selectors {
		var match *goquery.Selection
		d.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if Text(s) != "" {
				match = s
				return false
			}
			return true
		})
		if match != nil {
			return match, selector, true
		}
	}
	return nil, "", false
}
