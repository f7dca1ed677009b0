package model

import "fmt"

// SearchType identifies a search vertical. Each vertical has its own
// upstream endpoint and response shape.
type SearchType string

// Supported search verticals.
const (
	// SearchTypeWeb is general web page search.
	SearchTypeWeb SearchType = "web"

	// SearchTypeNews is news article search.
	SearchTypeNews SearchType = "news"

	// SearchTypeVideos is video search.
	SearchTypeVideos SearchType = "videos"

	// SearchTypeImages is image search.
	SearchTypeImages SearchType = "images"
)

// ParseSearchType converts a string into a SearchType.
// It returns an error for unknown verticals so that CLI input is validated
// before any network call is made.
func ParseSearchType(s string) (SearchType, error) {
	switch SearchType(s) {
	case SearchTypeWeb, SearchTypeNews, SearchTypeVideos, SearchTypeImages:
		return SearchType(s), nil
	default:
		return "", fmt.Errorf("unknown search type %q: must be one of web, news, videos, images", s)
	}
}

// SafeSearch controls the upstream adult-content filter level.
type SafeSearch string

// Safe search levels accepted by the upstream API.
const (
	SafeSearchOff      SafeSearch = "off"
	SafeSearchModerate SafeSearch = "moderate"
	SafeSearchStrict   SafeSearch = "strict"
)

// ParseSafeSearch converts a string into a SafeSearch level.
func ParseSafeSearch(s string) (SafeSearch, error) {
	switch SafeSearch(s) {
	case SafeSearchOff, SafeSearchModerate, SafeSearchStrict:
		return SafeSearch(s), nil
	default:
		return "", fmt.Errorf("unknown safe search level %q: must be one of off, moderate, strict", s)
	}
}

// TimeRange restricts search results to a recent time span.
type TimeRange string

// Supported time ranges. TimeRangeAll means no restriction.
const (
	TimeRangeDay   TimeRange = "day"
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
	TimeRangeYear  TimeRange = "year"
	TimeRangeAll   TimeRange = "all"
)

// ParseTimeRange converts a string into a TimeRange.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case TimeRangeDay, TimeRangeWeek, TimeRangeMonth, TimeRangeYear, TimeRangeAll:
		return TimeRange(s), nil
	default:
		return "", fmt.Errorf("unknown time range %q: must be one of day, week, month, year, all", s)
	}
}

// Freshness maps the time range to the upstream freshness token.
// TimeRangeAll returns an empty string: the parameter is omitted entirely
// rather than sent as a sentinel value, which is what the upstream expects.
func (t TimeRange) Freshness() string {
	switch t {
	case TimeRangeDay:
		return "pd"
	case TimeRangeWeek:
		return "pw"
	case TimeRangeMonth:
		return "pm"
	case TimeRangeYear:
		return "py"
	default:
		return ""
	}
}

// SearchResult is implemented by every per-vertical result variant.
// A single search response only ever contains one variant, so the interface
// exists to keep the response slice homogeneous while preserving the
// vertical-specific optional fields of each variant.
type SearchResult interface {
	// Base returns the fields shared by every vertical.
	Base() ResultBase
}

// ResultBase holds the fields present in every search vertical.
type ResultBase struct {
	// Title is the result title.
	Title string `json:"title"`

	// URL is the result's target URL.
	URL string `json:"url"`
}

// Base implements SearchResult.
func (b ResultBase) Base() ResultBase { return b }

// WebResult is a general web search result.
type WebResult struct {
	ResultBase

	// Description is the result snippet.
	Description string `json:"description"`
}

// NewsResult is a news search result.
type NewsResult struct {
	ResultBase

	// Description is the article summary.
	Description string `json:"description"`

	// PublishDate is the publication date as reported upstream.
	PublishDate string `json:"publishDate,omitempty"`

	// Source is the publishing outlet name.
	Source string `json:"source,omitempty"`
}

// VideoResult is a video search result.
type VideoResult struct {
	ResultBase

	// Description is the video summary.
	Description string `json:"description"`

	// ThumbnailURL is the video thumbnail, if upstream provides one.
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`

	// Duration is the video length as reported upstream (e.g. "04:13").
	Duration string `json:"duration,omitempty"`

	// Provider is the hosting platform name.
	Provider string `json:"provider,omitempty"`
}

// ImageResult is an image search result.
type ImageResult struct {
	ResultBase

	// ThumbnailURL is the image thumbnail. Always set: when upstream
	// provides no thumbnail field the image's own URL is used.
	ThumbnailURL string `json:"thumbnailUrl"`

	// Width is the image width in pixels, if known.
	Width int `json:"width,omitempty"`

	// Height is the image height in pixels, if known.
	Height int `json:"height,omitempty"`
}

// SearchResponse is a normalized search response for one query.
// It is constructed once per query and never cached or mutated.
type SearchResponse struct {
	// SearchType is the vertical that produced the results.
	SearchType SearchType `json:"searchType"`

	// Results holds the normalized results in upstream order.
	// All elements are the same variant for a given response.
	Results []SearchResult `json:"results,omitempty"`

	// RelatedQueries are upstream query suggestions, carried through
	// unmodified.
	RelatedQueries []string `json:"relatedQueries,omitempty"`
}
