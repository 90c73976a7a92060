package search

import (
	"encoding/json"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"testing"
	"time"
)

type validating interface {
	QueryParams() (*request.Params, error)
}

func intPtr(n int) *int { return &n }

func TestValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      validating
		wantKind apperr.Kind
		wantMsg  string
	}{
		{"web key", &WebSearchRequest{SearchEngineID: "cx", Query: "q"}, apperr.KindMissingKey, "Key is required"},
		{"web engine id", &WebSearchRequest{Key: "k", Query: "q"}, apperr.KindMissingField, "SearchEngineId is required"},
		{"web query", &WebSearchRequest{Key: "k", SearchEngineID: "cx"}, apperr.KindMissingField, "Query is required"},
		{
			"web number",
			&WebSearchRequest{Key: "k", SearchEngineID: "cx", Query: "q", Options: Options{Number: 11}},
			apperr.KindOutOfRange, "Number must be between 1 and 10",
		},
		{
			"web paging past 100",
			&WebSearchRequest{Key: "k", SearchEngineID: "cx", Query: "q", Options: Options{Number: 10, StartIndex: 91}},
			apperr.KindOutOfRange, "StartIndex + Number must be less than or equal to 100",
		},
		{
			"web paging past 100 with default number",
			&WebSearchRequest{Key: "k", SearchEngineID: "cx", Query: "q", Options: Options{StartIndex: 95}},
			apperr.KindOutOfRange, "StartIndex + Number must be less than or equal to 100",
		},
		{"image query", &ImageSearchRequest{Key: "k", SearchEngineID: "cx"}, apperr.KindMissingField, "Query is required"},

		{"videos key", &VideosRequest{Query: "q"}, apperr.KindMissingKey, "Key is required"},
		{"videos query", &VideosRequest{Key: "k"}, apperr.KindMissingField, "Query is required"},
		{
			"videos max results",
			&VideosRequest{Key: "k", Query: "q", Options: VideoOptions{MaxResults: intPtr(51)}},
			apperr.KindOutOfRange, "MaxResults must be between 0 and 50",
		},
		{"channels query", &ChannelsRequest{Key: "k"}, apperr.KindMissingField, "Query is required"},
		{"playlists query", &PlaylistsRequest{Key: "k"}, apperr.KindMissingField, "Query is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.QueryParams()
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
			if !apperr.Is(err, tt.wantKind) {
				t.Errorf("kind = %v, want %v", apperr.GetKind(err), tt.wantKind)
			}
		})
	}
}

func TestWebSearchURI(t *testing.T) {
	req := &WebSearchRequest{
		Key:            "abc",
		SearchEngineID: "017576662512468239146:omuauf_lfve",
		Query:          "go modules",
		Options:        Options{Number: 10, StartIndex: 90, Safe: SafeActive},
	}

	u, err := req.URI()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://www.googleapis.com/customsearch/v1?key=abc" +
		"&cx=017576662512468239146%3Aomuauf_lfve&q=go%20modules&num=10&start=90&safe=active"
	if u.String() != want {
		t.Fatalf("uri =\n%s\nwant\n%s", u.String(), want)
	}
}

func TestWebSearchLastDefaultPage(t *testing.T) {
	req := &WebSearchRequest{Key: "k", SearchEngineID: "cx", Query: "q", Options: Options{StartIndex: 90}}

	params, err := req.QueryParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := params.Get("num"); ok {
		t.Error("num should be omitted when unset")
	}
	if v, _ := params.Get("start"); v != "90" {
		t.Errorf("start = %q", v)
	}
}

func TestImageSearchAddsSearchType(t *testing.T) {
	req := &ImageSearchRequest{Key: "k", SearchEngineID: "cx", Query: "tulips", Image: ImageOptions{Size: "large"}}

	params, err := req.QueryParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := params.Get("searchType"); v != "image" {
		t.Errorf("searchType = %q", v)
	}
	if v, _ := params.Get("imgSize"); v != "large" {
		t.Errorf("imgSize = %q", v)
	}
}

func TestYouTubeSearchTypes(t *testing.T) {
	tests := []struct {
		name string
		req  validating
		want string
	}{
		{"videos", &VideosRequest{Key: "k", Query: "q"}, "video"},
		{"channels", &ChannelsRequest{Key: "k", Query: "q"}, "channel"},
		{"playlists", &PlaylistsRequest{Key: "k", Query: "q"}, "playlist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := tt.req.QueryParams()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v, _ := params.Get("type"); v != tt.want {
				t.Errorf("type = %q, want %q", v, tt.want)
			}
			if v, _ := params.Get("part"); v != "snippet" {
				t.Errorf("part = %q", v)
			}
		})
	}
}

func TestVideoOptionsParams(t *testing.T) {
	req := &VideosRequest{
		Key:   "k",
		Query: "q",
		Options: VideoOptions{
			MaxResults:     intPtr(0),
			PublishedAfter: time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600)),
		},
	}

	params, err := req.QueryParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := params.Get("maxResults"); !ok || v != "0" {
		t.Errorf("maxResults = %q, %v; an explicit zero must be sent", v, ok)
	}
	if v, _ := params.Get("publishedAfter"); v != "2024-01-02T02:04:05Z" {
		t.Errorf("publishedAfter = %q", v)
	}
}

func TestResponsePaging(t *testing.T) {
	body := `{
		"kind": "customsearch#search",
		"queries": {"nextPage": [{"startIndex": 11, "count": 10}]},
		"searchInformation": {"totalResults": "12345"},
		"items": [{"title": "Go", "link": "https://go.dev"}]
	}`

	var resp Response
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if next, ok := resp.NextStart(); !ok || next != 11 {
		t.Errorf("next = %d, %v", next, ok)
	}
	if resp.SearchInformation.Total() != 12345 {
		t.Errorf("total = %d", resp.SearchInformation.Total())
	}
	if resp.Err() != nil {
		t.Errorf("unexpected error: %v", resp.Err())
	}
}

func TestResponseErrorEnvelope(t *testing.T) {
	body := `{"error": {"code": 403, "message": "Daily Limit Exceeded", "status": "PERMISSION_DENIED"}}`

	var resp VideoResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	err := resp.Err()
	if !apperr.Is(err, apperr.KindAPIStatus) {
		t.Fatalf("err = %v", err)
	}
	if err.Error() != "PERMISSION_DENIED: Daily Limit Exceeded" {
		t.Fatalf("message = %q", err.Error())
	}
}
