package model

import (
	"testing"
)

// TestParseSearchType tests vertical name parsing.
func TestParseSearchType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    SearchType
		wantErr bool
	}{
		{in: "web", want: SearchTypeWeb},
		{in: "news", want: SearchTypeNews},
		{in: "videos", want: SearchTypeVideos},
		{in: "images", want: SearchTypeImages},
		{in: "image", wantErr: true},
		{in: "WEB", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSearchType(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSearchType(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSearchType(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSearchType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestParseSafeSearch tests safe search level parsing.
func TestParseSafeSearch(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"off", "moderate", "strict"} {
		if _, err := ParseSafeSearch(valid); err != nil {
			t.Errorf("ParseSafeSearch(%q) unexpected error: %v", valid, err)
		}
	}

	if _, err := ParseSafeSearch("medium"); err == nil {
		t.Error("ParseSafeSearch(\"medium\") expected error")
	}
}

// TestParseTimeRange tests time range parsing.
func TestParseTimeRange(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"day", "week", "month", "year", "all"} {
		if _, err := ParseTimeRange(valid); err != nil {
			t.Errorf("ParseTimeRange(%q) unexpected error: %v", valid, err)
		}
	}

	if _, err := ParseTimeRange("hour"); err == nil {
		t.Error("ParseTimeRange(\"hour\") expected error")
	}
}

// TestFreshness tests the upstream freshness token mapping.
func TestFreshness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   TimeRange
		want string
	}{
		{TimeRangeDay, "pd"},
		{TimeRangeWeek, "pw"},
		{TimeRangeMonth, "pm"},
		{TimeRangeYear, "py"},
		{TimeRangeAll, ""},
		{TimeRange(""), ""},
	}

	for _, tt := range tests {
		if got := tt.in.Freshness(); got != tt.want {
			t.Errorf("TimeRange(%q).Freshness() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestResultBase tests that every variant exposes its shared fields.
func TestResultBase(t *testing.T) {
	t.Parallel()

	variants := []SearchResult{
		WebResult{ResultBase: ResultBase{Title: "t", URL: "u"}},
		NewsResult{ResultBase: ResultBase{Title: "t", URL: "u"}},
		VideoResult{ResultBase: ResultBase{Title: "t", URL: "u"}},
		ImageResult{ResultBase: ResultBase{Title: "t", URL: "u"}},
	}

	for _, v := range variants {
		base := v.Base()
		if base.Title != "t" || base.URL != "u" {
			t.Errorf("%T: unexpected base %+v", v, base)
		}
	}
}
