package places

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

// MaxPhotoSize is the largest photo edge in pixels.
const MaxPhotoSize = 1600

var photosEndpoint = endpoint("/photo")

// PhotosRequest downloads a place photo scaled to fit the given bounds.
type PhotosRequest struct {
	Key            string
	PhotoReference string
	MaxHeight      int
	MaxWidth       int
}

func (r *PhotosRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "photo_reference",
			Rules: []request.Rule{request.Required(r.PhotoReference, apperr.KindMissingField, "PhotoReference is required")},
			Value: r.PhotoReference,
		},
		{
			Name: "maxheight",
			Rules: []request.Rule{
				request.Check(r.MaxHeight != 0 || r.MaxWidth != 0, apperr.KindMissingField, "MaxHeight or MaxWidth is required"),
				request.Check(r.MaxHeight == 0 || (r.MaxHeight >= 1 && r.MaxHeight <= MaxPhotoSize), apperr.KindOutOfRange, "MaxHeight must be between 1 and 1600"),
			},
			Value: request.FormatPositive(r.MaxHeight),
		},
		{
			Name: "maxwidth",
			Rules: []request.Rule{
				request.Check(r.MaxWidth == 0 || (r.MaxWidth >= 1 && r.MaxWidth <= MaxPhotoSize), apperr.KindOutOfRange, "MaxWidth must be between 1 and 1600"),
			},
			Value: request.FormatPositive(r.MaxWidth),
		},
	}
}

func (r *PhotosRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *PhotosRequest) URI() (*url.URL, error) {
	return request.BuildURI(photosEndpoint, r.fields()...)
}

type PhotosResponse struct {
	domain.Image
}
