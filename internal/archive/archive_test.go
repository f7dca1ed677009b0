package archive

import (
	"context"
	"testing"

	"github.com/nao1215/webharvest/internal/model"
)

// testArticle returns a fully populated article for roundtrip tests.
func testArticle() *model.Article {
	return &model.Article{
		Title:         "Test Article",
		Content:       "Body text of the test article.",
		Author:        "Taro Yamada",
		PublishedDate: "2026-08-30T10:00:00Z",
		Source:        "Example News",
		Images: []model.ArticleImage{
			{URL: "https://example.com/a.png", Alt: "figure"},
		},
	}
}

// TestOpen tests database creation semantics.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database with default options", func(t *testing.T) {
		t.Parallel()

		db, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer db.Close()

		count, err := db.Count(context.Background())
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 0 {
			t.Errorf("expected empty archive, got %d articles", count)
		}
	})

	t.Run("refuses to open missing database without create", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.CreateIfNotExists = false

		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})
}

// TestSaveArticle tests storage and retrieval roundtrips.
func TestSaveArticle(t *testing.T) {
	t.Parallel()

	t.Run("roundtrip preserves all fields", func(t *testing.T) {
		t.Parallel()

		db, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open: %v", err)
		}
		defer db.Close()

		ctx := context.Background()
		article := testArticle()

		if _, err := db.SaveArticle(ctx, "https://example.com/article", article); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		record, err := db.GetByURL(ctx, "https://example.com/article")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if record == nil {
			t.Fatal("expected a record")
		}

		got := record.Article
		if got.Title != article.Title || got.Content != article.Content ||
			got.Author != article.Author || got.PublishedDate != article.PublishedDate ||
			got.Source != article.Source {
			t.Errorf("roundtrip mismatch: %+v", got)
		}
		if len(got.Images) != 1 || got.Images[0].URL != article.Images[0].URL {
			t.Errorf("images not preserved: %+v", got.Images)
		}
		if record.ExtractedAt.IsZero() {
			t.Error("expected a non-zero extraction timestamp")
		}
	})

	t.Run("same URL upserts instead of duplicating", func(t *testing.T) {
		t.Parallel()

		db, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open: %v", err)
		}
		defer db.Close()

		ctx := context.Background()

		first := testArticle()
		if _, err := db.SaveArticle(ctx, "https://example.com/a", first); err != nil {
			t.Fatalf("first save failed: %v", err)
		}

		updated := testArticle()
		updated.Title = "Updated Title"
		if _, err := db.SaveArticle(ctx, "https://example.com/a", updated); err != nil {
			t.Fatalf("second save failed: %v", err)
		}

		count, err := db.Count(ctx)
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 article after upsert, got %d", count)
		}

		record, err := db.GetByURL(ctx, "https://example.com/a")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if record.Article.Title != "Updated Title" {
			t.Errorf("expected updated title, got %q", record.Article.Title)
		}
	})

	t.Run("unknown URL returns nil without error", func(t *testing.T) {
		t.Parallel()

		db, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open: %v", err)
		}
		defer db.Close()

		record, err := db.GetByURL(context.Background(), "https://example.com/absent")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record != nil {
			t.Errorf("expected nil record, got %+v", record)
		}
	})
}

// TestList tests listing stored articles.
func TestList(t *testing.T) {
	t.Parallel()

	t.Run("respects the limit", func(t *testing.T) {
		t.Parallel()

		db, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open: %v", err)
		}
		defer db.Close()

		ctx := context.Background()
		urls := []string{
			"https://example.com/1",
			"https://example.com/2",
			"https://example.com/3",
		}
		for _, u := range urls {
			if _, err := db.SaveArticle(ctx, u, testArticle()); err != nil {
				t.Fatalf("save failed: %v", err)
			}
		}

		records, err := db.List(ctx, 2)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("expected 2 records, got %d", len(records))
		}

		all, err := db.List(ctx, 0)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("expected 3 records without limit, got %d", len(all))
		}
	})
}
