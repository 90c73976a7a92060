// Package roads binds the Google Roads API: nearest roads, snap to roads and
// speed limits.
package roads

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

const (
	baseURL = "https://roads.googleapis.com"

	// MaxPoints is the exclusive upper bound on points per call.
	MaxPoints = 100

	msgTooManyPoints = "Path must contain less than 100 locations"
)

var nearestRoadsEndpoint = request.Endpoint{BaseURL: baseURL, Path: "/v1/nearestRoads"}

// NearestRoadsRequest finds the road segment closest to each point.
// Points need not form a continuous path.
type NearestRoadsRequest struct {
	Key    string
	Points []domain.Coordinate
}

func (r *NearestRoadsRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name: "points",
			Rules: []request.Rule{
				request.Check(len(r.Points) > 0, apperr.KindMissingPoints, "Points is required"),
				request.Less(len(r.Points), MaxPoints, apperr.KindTooManyPoints, msgTooManyPoints),
			},
			Value: domain.JoinCoordinates(r.Points),
		},
	}
}

func (r *NearestRoadsRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *NearestRoadsRequest) URI() (*url.URL, error) {
	return request.BuildURI(nearestRoadsEndpoint, r.fields()...)
}

// NearestRoadsResponse lists one snapped point per input point that lies
// near a road. Points far from any road are absent.
type NearestRoadsResponse struct {
	domain.APIError
	SnappedPoints []SnappedPoint `json:"snappedPoints"`
}

type SnappedPoint struct {
	Location      domain.RoadsCoordinate `json:"location"`
	OriginalIndex *int                   `json:"originalIndex,omitempty"`
	PlaceID       string                 `json:"placeId"`
}
