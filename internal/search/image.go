package search

import (
	"googleapi-client/internal/request"
	"net/url"
)

// ImageOptions narrow an image search.
type ImageOptions struct {
	Size          string // icon, small, medium, large, xlarge, xxlarge, huge
	Type          string // clipart, face, lineart, stock, photo, animated
	ColorType     string // color, gray, mono, trans
	DominantColor string
}

// ImageSearchRequest is a web search restricted to images.
type ImageSearchRequest struct {
	Key            string
	SearchEngineID string
	Query          string
	Options        Options
	Image          ImageOptions
}

func (r *ImageSearchRequest) fields() []request.Field {
	return append(customSearchFields(r.Key, r.SearchEngineID, r.Query, r.Options),
		request.Field{Name: "searchType", Value: "image"},
		request.Field{Name: "imgSize", Value: r.Image.Size},
		request.Field{Name: "imgType", Value: r.Image.Type},
		request.Field{Name: "imgColorType", Value: r.Image.ColorType},
		request.Field{Name: "imgDominantColor", Value: r.Image.DominantColor},
	)
}

func (r *ImageSearchRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *ImageSearchRequest) URI() (*url.URL, error) {
	return request.BuildURI(customSearchEndpoint, r.fields()...)
}
