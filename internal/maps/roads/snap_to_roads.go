package roads

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

var snapToRoadsEndpoint = request.Endpoint{BaseURL: baseURL, Path: "/v1/snapToRoads"}

// SnapToRoadsRequest snaps a GPS trace to the roads it most likely followed.
type SnapToRoadsRequest struct {
	Key  string
	Path []domain.Coordinate
	// Interpolate adds points so the result follows the road geometry.
	Interpolate bool
}

func (r *SnapToRoadsRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name: "path",
			Rules: []request.Rule{
				request.Check(len(r.Path) > 0, apperr.KindMissingPoints, "Path is required"),
				request.Less(len(r.Path), MaxPoints, apperr.KindTooManyPoints, msgTooManyPoints),
			},
			Value: domain.JoinCoordinates(r.Path),
		},
		{Name: "interpolate", Value: request.FormatBool(r.Interpolate)},
	}
}

func (r *SnapToRoadsRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *SnapToRoadsRequest) URI() (*url.URL, error) {
	return request.BuildURI(snapToRoadsEndpoint, r.fields()...)
}

type SnapToRoadsResponse struct {
	domain.APIError
	SnappedPoints  []SnappedPoint `json:"snappedPoints"`
	WarningMessage string         `json:"warningMessage,omitempty"`
}
