package geocode

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

// PlaceRequest resolves a place id to an address.
type PlaceRequest struct {
	Key      string
	PlaceID  string
	Language domain.Language
}

func (r *PlaceRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "place_id",
			Rules: []request.Rule{request.Required(r.PlaceID, apperr.KindMissingField, "PlaceId is required")},
			Value: r.PlaceID,
		},
		{Name: "language", Value: string(r.Language)},
	}
}

func (r *PlaceRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *PlaceRequest) URI() (*url.URL, error) {
	return request.BuildURI(endpoint, r.fields()...)
}
