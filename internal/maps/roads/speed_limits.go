package roads

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

var speedLimitsEndpoint = request.Endpoint{BaseURL: baseURL, Path: "/v1/speedLimits"}

// SpeedLimitsRequest looks up posted speed limits either along a path or
// for explicit place ids. Both may be given.
type SpeedLimitsRequest struct {
	Key      string
	Path     []domain.Coordinate
	PlaceIDs []string
	Units    domain.SpeedUnits
}

func (r *SpeedLimitsRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name: "path",
			Rules: []request.Rule{
				request.Check(len(r.Path) > 0 || len(r.PlaceIDs) > 0, apperr.KindMissingPoints, "Path or PlaceId's is required"),
				request.Less(len(r.Path), MaxPoints, apperr.KindTooManyPoints, msgTooManyPoints),
			},
			Value: domain.JoinCoordinates(r.Path),
		},
		{
			Name: "placeId",
			Rules: []request.Rule{
				request.Less(len(r.PlaceIDs), MaxPoints, apperr.KindTooManyValues, "PlaceId's must contain less than 100 ids"),
			},
			Values: r.PlaceIDs,
		},
		{Name: "units", Value: string(r.Units)},
	}
}

func (r *SpeedLimitsRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *SpeedLimitsRequest) URI() (*url.URL, error) {
	return request.BuildURI(speedLimitsEndpoint, r.fields()...)
}

type SpeedLimitsResponse struct {
	domain.APIError
	SpeedLimits   []SpeedLimit   `json:"speedLimits"`
	SnappedPoints []SnappedPoint `json:"snappedPoints"`
}

type SpeedLimit struct {
	PlaceID    string            `json:"placeId"`
	SpeedLimit float64           `json:"speedLimit"`
	Units      domain.SpeedUnits `json:"units"`
}
