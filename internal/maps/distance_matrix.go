package maps

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
	"time"
)

const (
	// MaxMatrixLocations bounds origins and destinations separately.
	MaxMatrixLocations = 25
	// MaxMatrixElements bounds origins x destinations.
	MaxMatrixElements = 100
)

var distanceMatrixEndpoint = endpoint("/maps/api/distancematrix/json")

// DistanceMatrixRequest computes travel distance and time for every
// origin/destination pair.
type DistanceMatrixRequest struct {
	Key           string
	Origins       []domain.Location
	Destinations  []domain.Location
	TravelMode    domain.TravelMode
	Avoid         []domain.Avoid
	Units         domain.Units
	Region        string
	Language      domain.Language
	DepartureTime time.Time
	ArrivalTime   time.Time
	TrafficModel  domain.TrafficModel
	TransitModes  []TransitMode
}

func (r *DistanceMatrixRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name: "origins",
			Rules: []request.Rule{
				request.Check(len(r.Origins) > 0, apperr.KindMissingPoints, "Origins is required"),
				request.AtMost(len(r.Origins), MaxMatrixLocations, apperr.KindTooManyPoints, "Origins must not contain more than 25 locations"),
			},
			Value: domain.JoinLocations(r.Origins),
		},
		{
			Name: "destinations",
			Rules: []request.Rule{
				request.Check(len(r.Destinations) > 0, apperr.KindMissingPoints, "Destinations is required"),
				request.AtMost(len(r.Destinations), MaxMatrixLocations, apperr.KindTooManyPoints, "Destinations must not contain more than 25 locations"),
				request.AtMost(len(r.Origins)*len(r.Destinations), MaxMatrixElements, apperr.KindTooManyValues, "Origins and Destinations must not exceed 100 elements"),
			},
			Value: domain.JoinLocations(r.Destinations),
		},
		{
			Name: "departure_time",
			Rules: []request.Rule{
				request.Check(r.DepartureTime.IsZero() || r.ArrivalTime.IsZero(), apperr.KindInvalidField, "DepartureTime and ArrivalTime cannot both be specified"),
			},
			Value: request.FormatUnix(r.DepartureTime),
		},
		{Name: "arrival_time", Value: request.FormatUnix(r.ArrivalTime)},
		{Name: "mode", Value: string(r.TravelMode)},
		{Name: "avoid", Value: joinAvoid(r.Avoid)},
		{Name: "units", Value: string(r.Units)},
		{Name: "region", Value: r.Region},
		{Name: "language", Value: string(r.Language)},
		{Name: "traffic_model", Value: string(r.TrafficModel)},
		{Name: "transit_mode", Value: request.Join(r.TransitModes, "|")},
	}
}

func (r *DistanceMatrixRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *DistanceMatrixRequest) URI() (*url.URL, error) {
	return request.BuildURI(distanceMatrixEndpoint, r.fields()...)
}

type DistanceMatrixResponse struct {
	domain.MapsStatus
	OriginAddresses      []string    `json:"origin_addresses"`
	DestinationAddresses []string    `json:"destination_addresses"`
	Rows                 []MatrixRow `json:"rows"`
}

// MatrixRow holds one element per destination for a single origin.
type MatrixRow struct {
	Elements []MatrixElement `json:"elements"`
}

type MatrixElement struct {
	Status            domain.Status `json:"status"`
	Distance          Distance      `json:"distance"`
	Duration          Duration      `json:"duration"`
	DurationInTraffic *Duration     `json:"duration_in_traffic,omitempty"`
	Fare              *Fare         `json:"fare,omitempty"`
}

// Element returns the cell for origin i and destination j.
func (r *DistanceMatrixResponse) Element(i, j int) (MatrixElement, bool) {
	if i < 0 || i >= len(r.Rows) || j < 0 || j >= len(r.Rows[i].Elements) {
		return MatrixElement{}, false
	}
	return r.Rows[i].Elements[j], true
}
