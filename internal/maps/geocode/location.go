package geocode

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

// LocationRequest reverse geocodes a coordinate.
type LocationRequest struct {
	Key           string
	Location      *domain.Coordinate
	ResultTypes   []string
	LocationTypes []LocationType
	Language      domain.Language
}

func (r *LocationRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name: "latlng",
			Rules: []request.Rule{
				request.Check(r.Location != nil, apperr.KindMissingField, "Location is required"),
			},
			Value: request.FormatCoordinate(r.Location),
		},
		{Name: "result_type", Value: request.Join(r.ResultTypes, "|")},
		{Name: "location_type", Value: request.Join(r.LocationTypes, "|")},
		{Name: "language", Value: string(r.Language)},
	}
}

func (r *LocationRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *LocationRequest) URI() (*url.URL, error) {
	return request.BuildURI(endpoint, r.fields()...)
}
