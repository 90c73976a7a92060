package maps

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

var elevationEndpoint = endpoint("/maps/api/elevation/json")

// ElevationRequest samples elevation either at discrete locations or at
// Samples evenly spaced points along Path. Exactly one of the two is used.
type ElevationRequest struct {
	Key       string
	Locations []domain.Coordinate
	Path      []domain.Coordinate
	Samples   int
}

func (r *ElevationRequest) fields() []request.Field {
	hasLocations, hasPath := len(r.Locations) > 0, len(r.Path) > 0

	return []request.Field{
		request.KeyField(r.Key),
		{
			Rules: []request.Rule{
				request.Check(hasLocations || hasPath, apperr.KindMissingPoints, "Locations or Path is required"),
				request.Check(!(hasLocations && hasPath), apperr.KindInvalidField, "Locations and Path cannot both be specified"),
			},
		},
		{Name: "locations", Value: domain.JoinCoordinates(r.Locations)},
		{Name: "path", Value: domain.JoinCoordinates(r.Path)},
		{
			Name: "samples",
			Rules: []request.Rule{
				request.Check(!hasPath || r.Samples > 0, apperr.KindOutOfRange, "Samples must be greater than 0 when Path is specified"),
			},
			Value: pathOnly(hasPath, request.FormatPositive(r.Samples)),
		},
	}
}

func pathOnly(hasPath bool, v string) string {
	if !hasPath {
		return ""
	}
	return v
}

func (r *ElevationRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *ElevationRequest) URI() (*url.URL, error) {
	return request.BuildURI(elevationEndpoint, r.fields()...)
}

type ElevationResponse struct {
	domain.MapsStatus
	Results []ElevationResult `json:"results"`
}

type ElevationResult struct {
	Elevation  float64           `json:"elevation"` // meters
	Location   domain.Coordinate `json:"location"`
	Resolution float64           `json:"resolution"`
}
