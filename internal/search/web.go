// Package search binds the Custom Search JSON API (web and image search)
// and the YouTube Data API search for videos, channels and playlists.
package search

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
	"strconv"
)

const (
	googleAPIs = "https://www.googleapis.com"

	// MaxResultIndex bounds start + num for custom search paging.
	MaxResultIndex = 100

	// results per page when num is omitted
	defaultNumber = 10
)

var customSearchEndpoint = request.Endpoint{BaseURL: googleAPIs, Path: "/customsearch/v1"}

type SafeLevel string

const (
	SafeActive SafeLevel = "active"
	SafeOff    SafeLevel = "off"
)

// Options are the query options shared by web and image search.
type Options struct {
	Number       int // 1-10, defaults to 10 upstream
	StartIndex   int // 1-based
	Safe         SafeLevel
	Language     string // lr, e.g. "lang_nl"
	Country      string // gl
	Interface    domain.Language
	DateRestrict string // e.g. "d7", "m1"
	SiteSearch   string
	FileType     string
	ExactTerms   string
	ExcludeTerms string
	Sort         string
}

// pageSize is the number of results the API returns, Number or its default.
func (o Options) pageSize() int {
	if o.Number == 0 {
		return defaultNumber
	}
	return o.Number
}

// WebSearchRequest queries a programmable search engine.
type WebSearchRequest struct {
	Key            string
	SearchEngineID string
	Query          string
	Options        Options
}

func customSearchFields(key, cx, query string, o Options) []request.Field {
	return []request.Field{
		request.KeyField(key),
		{
			Name:  "cx",
			Rules: []request.Rule{request.Required(cx, apperr.KindMissingField, "SearchEngineId is required")},
			Value: cx,
		},
		{
			Name:  "q",
			Rules: []request.Rule{request.Required(query, apperr.KindMissingField, "Query is required")},
			Value: query,
		},
		{
			Name:  "num",
			Rules: []request.Rule{request.Check(o.Number == 0 || (o.Number >= 1 && o.Number <= 10), apperr.KindOutOfRange, "Number must be between 1 and 10")},
			Value: request.FormatPositive(o.Number),
		},
		{
			Name: "start",
			Rules: []request.Rule{
				request.Check(o.StartIndex >= 0, apperr.KindOutOfRange, "StartIndex must be greater than or equal to 1"),
				request.AtMost(o.StartIndex+o.pageSize(), MaxResultIndex, apperr.KindOutOfRange, "StartIndex + Number must be less than or equal to 100"),
			},
			Value: request.FormatPositive(o.StartIndex),
		},
		{Name: "safe", Value: string(o.Safe)},
		{Name: "lr", Value: o.Language},
		{Name: "gl", Value: o.Country},
		{Name: "hl", Value: string(o.Interface)},
		{Name: "dateRestrict", Value: o.DateRestrict},
		{Name: "siteSearch", Value: o.SiteSearch},
		{Name: "fileType", Value: o.FileType},
		{Name: "exactTerms", Value: o.ExactTerms},
		{Name: "excludeTerms", Value: o.ExcludeTerms},
		{Name: "sort", Value: o.Sort},
	}
}

func (r *WebSearchRequest) fields() []request.Field {
	return customSearchFields(r.Key, r.SearchEngineID, r.Query, r.Options)
}

func (r *WebSearchRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *WebSearchRequest) URI() (*url.URL, error) {
	return request.BuildURI(customSearchEndpoint, r.fields()...)
}

// Response is the Custom Search result page, shared by web and image search.
type Response struct {
	domain.APIError
	Kind              string            `json:"kind"`
	Queries           map[string][]Page `json:"queries"`
	SearchInformation SearchInformation `json:"searchInformation"`
	Items             []Item            `json:"items"`
}

type Page struct {
	Title        string `json:"title"`
	TotalResults string `json:"totalResults"`
	SearchTerms  string `json:"searchTerms"`
	Count        int    `json:"count"`
	StartIndex   int    `json:"startIndex"`
}

// NextStart returns the start index of the next page, if any.
func (r *Response) NextStart() (int, bool) {
	next := r.Queries["nextPage"]
	if len(next) == 0 {
		return 0, false
	}
	return next[0].StartIndex, true
}

type SearchInformation struct {
	SearchTime            float64 `json:"searchTime"`
	FormattedSearchTime   string  `json:"formattedSearchTime"`
	TotalResults          string  `json:"totalResults"`
	FormattedTotalResults string  `json:"formattedTotalResults"`
}

// Total parses TotalResults, which the API sends as a string.
func (s SearchInformation) Total() int64 {
	n, _ := strconv.ParseInt(s.TotalResults, 10, 64)
	return n
}

type Item struct {
	Kind        string     `json:"kind"`
	Title       string     `json:"title"`
	HTMLTitle   string     `json:"htmlTitle"`
	Link        string     `json:"link"`
	DisplayLink string     `json:"displayLink"`
	Snippet     string     `json:"snippet"`
	Mime        string     `json:"mime,omitempty"`
	FileFormat  string     `json:"fileFormat,omitempty"`
	Image       *ImageInfo `json:"image,omitempty"`
}

type ImageInfo struct {
	ContextLink     string `json:"contextLink"`
	Height          int    `json:"height"`
	Width           int    `json:"width"`
	ByteSize        int    `json:"byteSize"`
	ThumbnailLink   string `json:"thumbnailLink"`
	ThumbnailHeight int    `json:"thumbnailHeight"`
	ThumbnailWidth  int    `json:"thumbnailWidth"`
}
