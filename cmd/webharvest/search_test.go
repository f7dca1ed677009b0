package main

import (
	"testing"

	"github.com/nao1215/webharvest/internal/model"
)

// TestBuildSearchRequest tests flag parsing into a search request.
func TestBuildSearchRequest(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewSearchCmd()
		req, err := buildSearchRequest(cmd, "golang")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if req.Query != "golang" {
			t.Errorf("expected query 'golang', got %q", req.Query)
		}
		if req.Type != model.SearchTypeWeb {
			t.Errorf("expected web vertical, got %q", req.Type)
		}
		if req.SafeSearch != model.SafeSearchModerate {
			t.Errorf("expected moderate safesearch, got %q", req.SafeSearch)
		}
		if req.TimeRange != model.TimeRangeAll {
			t.Errorf("expected all time range, got %q", req.TimeRange)
		}
		if req.Language != "ja" {
			t.Errorf("expected default language ja, got %q", req.Language)
		}
	})

	t.Run("explicit flags", func(t *testing.T) {
		t.Parallel()

		cmd := NewSearchCmd()
		for flag, value := range map[string]string{
			"type":       "news",
			"count":      "5",
			"lang":       "en",
			"country":    "US",
			"safesearch": "strict",
			"time-range": "week",
		} {
			if err := cmd.Flags().Set(flag, value); err != nil {
				t.Fatalf("failed to set %s: %v", flag, err)
			}
		}

		req, err := buildSearchRequest(cmd, "q")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if req.Type != model.SearchTypeNews {
			t.Errorf("expected news vertical, got %q", req.Type)
		}
		if req.NumResults != 5 {
			t.Errorf("expected count 5, got %d", req.NumResults)
		}
		if req.Language != "en" || req.Country != "US" {
			t.Errorf("unexpected locale: %q %q", req.Language, req.Country)
		}
		if req.SafeSearch != model.SafeSearchStrict {
			t.Errorf("expected strict safesearch, got %q", req.SafeSearch)
		}
		if req.TimeRange != model.TimeRangeWeek {
			t.Errorf("expected week time range, got %q", req.TimeRange)
		}
	})

	t.Run("invalid vertical is rejected", func(t *testing.T) {
		t.Parallel()

		cmd := NewSearchCmd()
		if err := cmd.Flags().Set("type", "podcasts"); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}

		if _, err := buildSearchRequest(cmd, "q"); err == nil {
			t.Error("expected error for unknown vertical")
		}
	})

	t.Run("invalid time range is rejected", func(t *testing.T) {
		t.Parallel()

		cmd := NewSearchCmd()
		if err := cmd.Flags().Set("time-range", "decade"); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}

		if _, err := buildSearchRequest(cmd, "q"); err == nil {
			t.Error("expected error for unknown time range")
		}
	})
}
