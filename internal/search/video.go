package search

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
	"time"
)

// MaxVideoResults is the largest page size of the YouTube search.
const MaxVideoResults = 50

var youTubeSearchEndpoint = request.Endpoint{BaseURL: googleAPIs, Path: "/youtube/v3/search"}

// VideoOptions are shared by the channel, playlist and video searches.
type VideoOptions struct {
	MaxResults        *int // 0-50, 5 upstream when unset
	PageToken         string
	Order             string // date, rating, relevance, title, videoCount, viewCount
	RegionCode        string
	RelevanceLanguage domain.Language
	SafeSearch        string // moderate, none, strict
	ChannelID         string
	PublishedAfter    time.Time
	PublishedBefore   time.Time
}

func youTubeFields(key, query, kind string, o VideoOptions) []request.Field {
	return []request.Field{
		request.KeyField(key),
		{Name: "part", Value: "snippet"},
		{
			Name:  "q",
			Rules: []request.Rule{request.Required(query, apperr.KindMissingField, "Query is required")},
			Value: query,
		},
		{Name: "type", Value: kind},
		{
			Name: "maxResults",
			Rules: []request.Rule{
				request.Check(o.MaxResults == nil || (*o.MaxResults >= 0 && *o.MaxResults <= MaxVideoResults), apperr.KindOutOfRange, "MaxResults must be between 0 and 50"),
			},
			Value: request.FormatIntPtr(o.MaxResults),
		},
		{Name: "pageToken", Value: o.PageToken},
		{Name: "order", Value: o.Order},
		{Name: "regionCode", Value: o.RegionCode},
		{Name: "relevanceLanguage", Value: string(o.RelevanceLanguage)},
		{Name: "safeSearch", Value: o.SafeSearch},
		{Name: "channelId", Value: o.ChannelID},
		{Name: "publishedAfter", Value: formatRFC3339(o.PublishedAfter)},
		{Name: "publishedBefore", Value: formatRFC3339(o.PublishedBefore)},
	}
}

func formatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// VideosRequest searches YouTube videos.
type VideosRequest struct {
	Key             string
	Query           string
	Options         VideoOptions
	VideoDuration   string // any, long, medium, short
	VideoDefinition string // any, high, standard
	VideoCaption    string // any, closedCaption, none
}

func (r *VideosRequest) fields() []request.Field {
	return append(youTubeFields(r.Key, r.Query, "video", r.Options),
		request.Field{Name: "videoDuration", Value: r.VideoDuration},
		request.Field{Name: "videoDefinition", Value: r.VideoDefinition},
		request.Field{Name: "videoCaption", Value: r.VideoCaption},
	)
}

func (r *VideosRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *VideosRequest) URI() (*url.URL, error) {
	return request.BuildURI(youTubeSearchEndpoint, r.fields()...)
}

// ChannelsRequest searches YouTube channels.
type ChannelsRequest struct {
	Key         string
	Query       string
	Options     VideoOptions
	ChannelType string // any, show
}

func (r *ChannelsRequest) fields() []request.Field {
	return append(youTubeFields(r.Key, r.Query, "channel", r.Options),
		request.Field{Name: "channelType", Value: r.ChannelType},
	)
}

func (r *ChannelsRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *ChannelsRequest) URI() (*url.URL, error) {
	return request.BuildURI(youTubeSearchEndpoint, r.fields()...)
}

// PlaylistsRequest searches YouTube playlists.
type PlaylistsRequest struct {
	Key     string
	Query   string
	Options VideoOptions
}

func (r *PlaylistsRequest) fields() []request.Field {
	return youTubeFields(r.Key, r.Query, "playlist", r.Options)
}

func (r *PlaylistsRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *PlaylistsRequest) URI() (*url.URL, error) {
	return request.BuildURI(youTubeSearchEndpoint, r.fields()...)
}

// VideoResponse is the YouTube search result page for any of the three kinds.
type VideoResponse struct {
	domain.APIError
	Kind          string      `json:"kind"`
	ETag          string      `json:"etag"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
	PrevPageToken string      `json:"prevPageToken,omitempty"`
	RegionCode    string      `json:"regionCode,omitempty"`
	PageInfo      PageInfo    `json:"pageInfo"`
	Items         []VideoItem `json:"items"`
}

type PageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

type VideoItem struct {
	Kind    string       `json:"kind"`
	ETag    string       `json:"etag"`
	ID      VideoID      `json:"id"`
	Snippet VideoSnippet `json:"snippet"`
}

// VideoID identifies the result; only the field matching Kind is set.
type VideoID struct {
	Kind       string `json:"kind"`
	VideoID    string `json:"videoId,omitempty"`
	ChannelID  string `json:"channelId,omitempty"`
	PlaylistID string `json:"playlistId,omitempty"`
}

type VideoSnippet struct {
	PublishedAt          time.Time            `json:"publishedAt"`
	ChannelID            string               `json:"channelId"`
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	ChannelTitle         string               `json:"channelTitle"`
	LiveBroadcastContent string               `json:"liveBroadcastContent"`
	Thumbnails           map[string]Thumbnail `json:"thumbnails"`
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
