package search

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/nao1215/webharvest/internal/model"
)

// Normalize maps a raw upstream payload for the given vertical into a
// normalized SearchResponse. Items missing their required fields are
// skipped silently. A payload that does not decode at all yields an empty
// response: an unrecognized schema is indistinguishable from zero results
// by design.
func Normalize(vertical model.SearchType, payload []byte) *model.SearchResponse {
	response := &model.SearchResponse{SearchType: vertical}

	switch vertical {
	case model.SearchTypeWeb:
		normalizeWeb(payload, response)
	case model.SearchTypeNews:
		normalizeNews(payload, response)
	case model.SearchTypeVideos:
		normalizeVideos(payload, response)
	case model.SearchTypeImages:
		normalizeImages(payload, response)
	}

	return response
}

// queryInfo carries the upstream query block shared by all verticals.
type queryInfo struct {
	Related []string `json:"related"`
}

// thumbnail decodes the upstream thumbnail field, which arrives either as
// a nested object with a url key or as a bare string. Unrecognized shapes
// decode to an empty URL rather than an error.
type thumbnail struct {
	URL string
}

// UnmarshalJSON implements tolerant thumbnail decoding.
func (t *thumbnail) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.URL = s
		return nil
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		t.URL = obj.URL
	}
	return nil
}

// flexString decodes a string field that some schema variants emit as a
// non-string value; anything that is not a string decodes to empty.
type flexString string

// UnmarshalJSON implements tolerant string decoding.
func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
	}
	return nil
}

// flexInt decodes an integer field that upstream emits either as a number
// or as a numeric string. Undecodable values become zero.
type flexInt int

// UnmarshalJSON implements tolerant integer decoding.
func (f *flexInt) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexInt(int(n))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*f = flexInt(n)
		}
	}
	return nil
}

// webPayload is the web vertical's response shape: results nested under a
// "web" envelope, unlike the other verticals.
type webPayload struct {
	Query queryInfo `json:"query"`
	Web   struct {
		Results []webItem `json:"results"`
	} `json:"web"`
}

type webItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Snippet     string `json:"snippet"`
}

func normalizeWeb(payload []byte, response *model.SearchResponse) {
	var p webPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return
	}
	response.RelatedQueries = p.Query.Related

	for _, item := range p.Web.Results {
		if item.Title == "" || item.URL == "" {
			continue
		}
		snippet := item.Description
		if snippet == "" {
			snippet = item.Snippet
		}
		response.Results = append(response.Results, model.WebResult{
			ResultBase:  model.ResultBase{Title: item.Title, URL: item.URL},
			Description: snippet,
		})
	}
}

// newsPayload covers the news vertical: a flat results list. The
// publication date arrives under published_time or publishTime depending
// on the schema variant; both are mapped.
type newsPayload struct {
	Query   queryInfo  `json:"query"`
	Results []newsItem `json:"results"`
}

type newsItem struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Description   string `json:"description"`
	PublishedTime string `json:"published_time"`
	PublishTime   string `json:"publishTime"`
	Source        string `json:"source"`
}

func normalizeNews(payload []byte, response *model.SearchResponse) {
	var p newsPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return
	}
	response.RelatedQueries = p.Query.Related

	for _, item := range p.Results {
		if item.Title == "" || item.URL == "" {
			continue
		}
		publishDate := item.PublishedTime
		if publishDate == "" {
			publishDate = item.PublishTime
		}
		response.Results = append(response.Results, model.NewsResult{
			ResultBase:  model.ResultBase{Title: item.Title, URL: item.URL},
			Description: item.Description,
			PublishDate: publishDate,
			Source:      item.Source,
		})
	}
}

type videoPayload struct {
	Query   queryInfo   `json:"query"`
	Results []videoItem `json:"results"`
}

type videoItem struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Thumbnail   thumbnail `json:"thumbnail"`
	Duration    string    `json:"duration"`
	Provider    string    `json:"provider"`
}

func normalizeVideos(payload []byte, response *model.SearchResponse) {
	var p videoPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return
	}
	response.RelatedQueries = p.Query.Related

	for _, item := range p.Results {
		if item.Title == "" || item.URL == "" {
			continue
		}
		response.Results = append(response.Results, model.VideoResult{
			ResultBase:   model.ResultBase{Title: item.Title, URL: item.URL},
			Description:  item.Description,
			ThumbnailURL: item.Thumbnail.URL,
			Duration:     item.Duration,
			Provider:     item.Provider,
		})
	}
}

type imagePayload struct {
	Query   queryInfo   `json:"query"`
	Results []imageItem `json:"results"`
}

type imageItem struct {
	Title     string     `json:"title"`
	Alt       string     `json:"alt"`
	URL       string     `json:"url"`
	Thumbnail thumbnail  `json:"thumbnail"`
	Image     flexString `json:"image"`
	Src       flexString `json:"src"`
	Width     flexInt    `json:"width"`
	Height    flexInt    `json:"height"`
}

func normalizeImages(payload []byte, response *model.SearchResponse) {
	var p imagePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return
	}
	response.RelatedQueries = p.Query.Related

	for _, item := range p.Results {
		if (item.Title == "" && item.Alt == "") || item.URL == "" {
			continue
		}

		title := item.Title
		if title == "" {
			title = item.Alt
		}

		// Thumbnail priority: nested/string thumbnail field, then the
		// alternate image and src keys, then the image's own URL. The
		// field is required in the normalized shape, so the fallback
		// chain always terminates with a value.
		thumb := item.Thumbnail.URL
		if thumb == "" {
			thumb = string(item.Image)
		}
		if thumb == "" {
			thumb = string(item.Src)
		}
		if thumb == "" {
			thumb = item.URL
		}

		response.Results = append(response.Results, model.ImageResult{
			ResultBase:   model.ResultBase{Title: title, URL: item.URL},
			ThumbnailURL: thumb,
			Width:        int(item.Width),
			Height:       int(item.Height),
		})
	}
}
