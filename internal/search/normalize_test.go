package search

import (
	"testing"

	"github.com/nao1215/webharvest/internal/model"
)

// TestNormalizeWeb tests web vertical normalization.
func TestNormalizeWeb(t *testing.T) {
	t.Parallel()

	t.Run("maps nested results and related queries", func(t *testing.T) {
		t.Parallel()

		payload := []byte(`{
			"query": {"related": ["alternative query"]},
			"web": {"results": [
				{"title": "A", "url": "https://a.example", "description": "desc"},
				{"title": "B", "url": "https://b.example", "snippet": "snip"},
				{"title": "", "url": "https://missing-title.example"},
				{"title": "No URL", "url": ""}
			]}
		}`)

		response := Normalize(model.SearchTypeWeb, payload)

		if len(response.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(response.Results))
		}

		first, ok := response.Results[0].(model.WebResult)
		if !ok {
			t.Fatalf("expected WebResult, got %T", response.Results[0])
		}
		if first.Description != "desc" {
			t.Errorf("expected description field, got %q", first.Description)
		}

		second := response.Results[1].(model.WebResult)
		if second.Description != "snip" {
			t.Errorf("expected snippet fallback, got %q", second.Description)
		}

		if len(response.RelatedQueries) != 1 || response.RelatedQueries[0] != "alternative query" {
			t.Errorf("unexpected related queries: %v", response.RelatedQueries)
		}
	})

	t.Run("undecodable payload yields empty response", func(t *testing.T) {
		t.Parallel()

		response := Normalize(model.SearchTypeWeb, []byte(`not json at all`))
		if len(response.Results) != 0 {
			t.Errorf("expected no results, got %d", len(response.Results))
		}
		if response.SearchType != model.SearchTypeWeb {
			t.Errorf("vertical must be preserved, got %q", response.SearchType)
		}
	})
}

// TestNormalizeNews tests news vertical normalization.
func TestNormalizeNews(t *testing.T) {
	t.Parallel()

	t.Run("maps both publication date spellings", func(t *testing.T) {
		t.Parallel()

		payload := []byte(`{"results": [
			{"title": "Snake case", "url": "https://n.example/1", "published_time": "2026-08-30", "source": "Wire"},
			{"title": "Camel case", "url": "https://n.example/2", "publishTime": "2026-08-29"},
			{"title": "Both", "url": "https://n.example/3", "published_time": "primary", "publishTime": "secondary"}
		]}`)

		response := Normalize(model.SearchTypeNews, payload)
		if len(response.Results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(response.Results))
		}

		first := response.Results[0].(model.NewsResult)
		if first.PublishDate != "2026-08-30" {
			t.Errorf("expected published_time mapped, got %q", first.PublishDate)
		}
		if first.Source != "Wire" {
			t.Errorf("expected source mapped, got %q", first.Source)
		}

		second := response.Results[1].(model.NewsResult)
		if second.PublishDate != "2026-08-29" {
			t.Errorf("expected publishTime mapped, got %q", second.PublishDate)
		}

		third := response.Results[2].(model.NewsResult)
		if third.PublishDate != "primary" {
			t.Errorf("expected published_time to win over publishTime, got %q", third.PublishDate)
		}
	})
}

// TestNormalizeVideos tests video vertical normalization.
func TestNormalizeVideos(t *testing.T) {
	t.Parallel()

	t.Run("thumbnail accepts object and string shapes", func(t *testing.T) {
		t.Parallel()

		payload := []byte(`{"results": [
			{"title": "Object thumb", "url": "https://v.example/1",
			 "thumbnail": {"url": "https://img.example/1.jpg"}, "duration": "03:15", "provider": "VideoSite"},
			{"title": "String thumb", "url": "https://v.example/2", "thumbnail": "https://img.example/2.jpg"},
			{"title": "Weird thumb", "url": "https://v.example/3", "thumbnail": 42}
		]}`)

		response := Normalize(model.SearchTypeVideos, payload)
		if len(response.Results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(response.Results))
		}

		first := response.Results[0].(model.VideoResult)
		if first.ThumbnailURL != "https://img.example/1.jpg" {
			t.Errorf("expected object thumbnail URL, got %q", first.ThumbnailURL)
		}
		if first.Duration != "03:15" || first.Provider != "VideoSite" {
			t.Errorf("unexpected duration/provider: %q %q", first.Duration, first.Provider)
		}

		second := response.Results[1].(model.VideoResult)
		if second.ThumbnailURL != "https://img.example/2.jpg" {
			t.Errorf("expected string thumbnail URL, got %q", second.ThumbnailURL)
		}

		third := response.Results[2].(model.VideoResult)
		if third.ThumbnailURL != "" {
			t.Errorf("expected unrecognized thumbnail to decode empty, got %q", third.ThumbnailURL)
		}
	})
}

// TestNormalizeImages tests image vertical normalization.
func TestNormalizeImages(t *testing.T) {
	t.Parallel()

	t.Run("thumbnail fallback chain", func(t *testing.T) {
		t.Parallel()

		payload := []byte(`{"results": [
			{"title": "Thumb field", "url": "https://i.example/1", "thumbnail": "https://t.example/1.jpg"},
			{"title": "Image field", "url": "https://i.example/2", "image": "https://t.example/2.jpg"},
			{"title": "Src field", "url": "https://i.example/3", "src": "https://t.example/3.jpg"},
			{"title": "Own URL", "url": "https://i.example/4"}
		]}`)

		response := Normalize(model.SearchTypeImages, payload)
		if len(response.Results) != 4 {
			t.Fatalf("expected 4 results, got %d", len(response.Results))
		}

		wants := []string{
			"https://t.example/1.jpg",
			"https://t.example/2.jpg",
			"https://t.example/3.jpg",
			"https://i.example/4",
		}
		for i, want := range wants {
			result := response.Results[i].(model.ImageResult)
			if result.ThumbnailURL != want {
				t.Errorf("result %d: expected thumbnail %q, got %q", i, want, result.ThumbnailURL)
			}
		}
	})

	t.Run("alt text substitutes for a missing title", func(t *testing.T) {
		t.Parallel()

		payload := []byte(`{"results": [
			{"alt": "A red bridge", "url": "https://i.example/1"},
			{"url": "https://i.example/no-title-or-alt"}
		]}`)

		response := Normalize(model.SearchTypeImages, payload)
		if len(response.Results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(response.Results))
		}

		result := response.Results[0].(model.ImageResult)
		if result.Base().Title != "A red bridge" {
			t.Errorf("expected alt as title, got %q", result.Base().Title)
		}
	})

	t.Run("dimensions accept numbers and numeric strings", func(t *testing.T) {
		t.Parallel()

		payload := []byte(`{"results": [
			{"title": "Numeric", "url": "https://i.example/1", "width": 800, "height": 600},
			{"title": "String", "url": "https://i.example/2", "width": "1024", "height": "768"},
			{"title": "Garbage", "url": "https://i.example/3", "width": "wide", "height": null}
		]}`)

		response := Normalize(model.SearchTypeImages, payload)
		if len(response.Results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(response.Results))
		}

		first := response.Results[0].(model.ImageResult)
		if first.Width != 800 || first.Height != 600 {
			t.Errorf("unexpected numeric dimensions: %dx%d", first.Width, first.Height)
		}

		second := response.Results[1].(model.ImageResult)
		if second.Width != 1024 || second.Height != 768 {
			t.Errorf("unexpected string dimensions: %dx%d", second.Width, second.Height)
		}

		third := response.Results[2].(model.ImageResult)
		if third.Width != 0 || third.Height != 0 {
			t.Errorf("expected undecodable dimensions to be zero, got %dx%d", third.Width, third.Height)
		}
	})
}
