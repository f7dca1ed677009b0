package htmldoc

import (
	"testing"
)

// TestParse tests document parsing and basic accessors.
func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("extracts title", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse("https://example.com/page", []byte(
			`<html><head><title>  Test Page  </title></head><body></body></html>`))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		if doc.Title() != "Test Page" {
			t.Errorf("expected title 'Test Page', got %q", doc.Title())
		}
	})

	t.Run("rejects malformed base URL", func(t *testing.T) {
		t.Parallel()

		if _, err := Parse("http://[::1", []byte("<html></html>")); err == nil {
			t.Error("expected error for malformed base URL")
		}
	})

	t.Run("hostname comes from base URL", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse("https://news.example.com/a/b", []byte("<html></html>"))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		if doc.Hostname() != "news.example.com" {
			t.Errorf("expected hostname 'news.example.com', got %q", doc.Hostname())
		}
	})
}

// TestMetaTags tests meta tag collection semantics.
func TestMetaTags(t *testing.T) {
	t.Parallel()

	t.Run("collects name and property keys", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse("https://example.com", []byte(`<html><head>
			<meta name="author" content="Taro Yamada">
			<meta property="og:title" content="OG Title">
		</head><body></body></html>`))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		meta := doc.MetaTags()
		if meta["author"] != "Taro Yamada" {
			t.Errorf("expected author 'Taro Yamada', got %q", meta["author"])
		}
		if meta["og:title"] != "OG Title" {
			t.Errorf("expected og:title 'OG Title', got %q", meta["og:title"])
		}
	})

	t.Run("skips tags missing key or content", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse("https://example.com", []byte(`<html><head>
			<meta charset="utf-8">
			<meta name="empty" content="">
			<meta content="orphan value">
		</head><body></body></html>`))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		if got := len(doc.MetaTags()); got != 0 {
			t.Errorf("expected no meta tags, got %d: %v", got, doc.MetaTags())
		}
	})

	t.Run("duplicate keys resolve to last occurrence", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse("https://example.com", []byte(`<html><head>
			<meta name="description" content="first">
			<meta name="description" content="second">
		</head><body></body></html>`))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		if got := doc.MetaTags()["description"]; got != "second" {
			t.Errorf("expected last occurrence 'second', got %q", got)
		}
	})
}

// TestResolve tests URL resolution against the document base.
func TestResolve(t *testing.T) {
	t.Parallel()

	doc, err := Parse("https://a.example/dir/page.html", []byte("<html></html>"))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	tests := []struct {
		name string
		href string
		want string
		ok   bool
	}{
		{name: "relative with parent traversal", href: "../x.png", want: "https://a.example/x.png", ok: true},
		{name: "relative sibling", href: "other.html", want: "https://a.example/dir/other.html", ok: true},
		{name: "root relative", href: "/top.html", want: "https://a.example/top.html", ok: true},
		{name: "absolute passes through", href: "https://b.example/y.png", want: "https://b.example/y.png", ok: true},
		{name: "protocol relative", href: "//c.example/z.png", want: "https://c.example/z.png", ok: true},
		{name: "empty", href: "", ok: false},
		{name: "bare fragment", href: "#", ok: false},
		{name: "javascript scheme", href: "javascript:void(0)", ok: false},
		{name: "mailto scheme", href: "mailto:a@example.com", ok: false},
		{name: "tel scheme", href: "tel:+81-3-0000-0000", ok: false},
		{name: "data scheme", href: "data:image/png;base64,xyz", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := doc.Resolve(tt.href)
			if ok != tt.ok {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.href, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}

// TestLinks tests anchor collection.
func TestLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves hrefs and keeps document order", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse("https://example.com/dir/", []byte(`<html><body>
			<a href="/first">First</a>
			<a href="second.html">Second</a>
			<a name="anchor-without-href">No Href</a>
			<a href="javascript:alert(1)">Script</a>
		</body></html>`))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		links := doc.Links()
		if len(links) != 2 {
			t.Fatalf("expected 2 links, got %d: %v", len(links), links)
		}
		if links[0].Href != "https://example.com/first" || links[0].Text != "First" {
			t.Errorf("unexpected first link: %+v", links[0])
		}
		if links[1].Href != "https://example.com/dir/second.html" || links[1].Text != "Second" {
			t.Errorf("unexpected second link: %+v", links[1])
		}
	})
}

// TestBodyText tests visible text extraction.
func TestBodyText(t *testing.T) {
	t.Parallel()

	t.Run("excludes script and style content", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse("https://example.com", []byte(`<html><body>
			<p>Visible text.</p>
			<script>var hidden = "nope";</script>
			<style>.hidden { display: none; }</style>
			<noscript>Enable JS</noscript>
			<p>More text.</p>
		</body></html>`))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		got := doc.BodyText()
		if got != "Visible text. More text." {
			t.Errorf("expected clean body text, got %q", got)
		}
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		doc, err := Parse("https://example.com", []byte(
			"<html><body><p>a\n\n\t  b</p>   <p>c</p></body></html>"))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		if got := doc.BodyText(); got != "a b c" {
			t.Errorf("expected 'a b c', got %q", got)
		}
	})
}

// TestCollapseWhitespace tests the whitespace normalizer.
func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "only whitespace", in: " \n\t ", want: ""},
		{name: "internal runs", in: "a  b\n\nc\td", want: "a b c d"},
		{name: "leading and trailing", in: "  hello  ", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CollapseWhitespace(tt.in); got != tt.want {
				t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
