package htmldoc

import (
	"testing"
)

// mustParse parses HTML or fails the test.
func mustParse(t *testing.T, body string) *Document {
	t.Helper()

	doc, err := Parse("https://example.com/page", []byte(body))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	return doc
}

// TestCascadeResolve tests ordered candidate evaluation.
func TestCascadeResolve(t *testing.T) {
	t.Parallel()

	cascade := Cascade{
		{Selector: "h1"},
		{Selector: `meta[property="og:title"]`, Attr: "content"},
		{Selector: "title"},
	}

	t.Run("first candidate wins when present", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head>
			<title>Doc Title</title>
			<meta property="og:title" content="OG Title">
		</head><body><h1>Headline</h1></body></html>`)

		if got := cascade.Resolve(doc); got != "Headline" {
			t.Errorf("expected 'Headline', got %q", got)
		}
	})

	t.Run("empty earlier candidates are skipped", func(t *testing.T) {
		t.Parallel()

		// The h1 exists but is empty, so the meta candidate must win.
		doc := mustParse(t, `<html><head>
			<title>Doc Title</title>
			<meta property="og:title" content="OG Title">
		</head><body><h1>   </h1></body></html>`)

		if got := cascade.Resolve(doc); got != "OG Title" {
			t.Errorf("expected 'OG Title', got %q", got)
		}
	})

	t.Run("falls through to last candidate", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head><title>Doc Title</title></head><body></body></html>`)

		if got := cascade.Resolve(doc); got != "Doc Title" {
			t.Errorf("expected 'Doc Title', got %q", got)
		}
	})

	t.Run("no candidate matches", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body><p>nothing here</p></body></html>`)

		if got := cascade.Resolve(doc); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("attribute candidate with empty attribute is skipped", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head>
			<meta property="og:title" content="">
			<title>Doc Title</title>
		</head><body></body></html>`)

		if got := cascade.Resolve(doc); got != "Doc Title" {
			t.Errorf("expected 'Doc Title', got %q", got)
		}
	})

	t.Run("scans nodes within one candidate for a non-empty value", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body>
			<h1></h1>
			<h1>Second Headline</h1>
		</body></html>`)

		if got := cascade.Resolve(doc); got != "Second Headline" {
			t.Errorf("expected 'Second Headline', got %q", got)
		}
	})
}

// TestFirstMatch tests structural selector fallback.
func TestFirstMatch(t *testing.T) {
	t.Parallel()

	selectors := []string{"article", ".entry-content", ".post-content"}

	t.Run("returns first selector with non-empty text", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body>
			<article><script>tracking();</script></article>
			<div class="entry-content">Body text.</div>
		</body></html>`)

		// The article exists but holds only script content, which is
		// excluded from text, so the class selector must win.
		sel, matched, ok := FirstMatch(doc, selectors)
		if !ok {
			t.Fatal("expected a match")
		}
		if matched != ".entry-content" {
			t.Errorf("expected '.entry-content' to match, got %q", matched)
		}
		if got := Text(sel); got != "Body text." {
			t.Errorf("expected 'Body text.', got %q", got)
		}
	})

	t.Run("no selector matches", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body><p>free text</p></body></html>`)

		if _, _, ok := FirstMatch(doc, selectors); ok {
			t.Error("expected no match")
		}
	})
}

// TestText tests selection text extraction.
func TestText(t *testing.T) {
	t.Parallel()

	t.Run("excludes script and style descendants", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body><article>
			<p>First paragraph.</p>
			<script>var a = 1;</script>
			<style>p { color: red }</style>
			<p>Second paragraph.</p>
		</article></body></html>`)

		got := Text(doc.Find("article"))
		if got != "First paragraph. Second paragraph." {
			t.Errorf("expected script-free text, got %q", got)
		}
	})
}
