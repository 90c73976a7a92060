package maps

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
	"time"
)

// MaxWaypoints is the largest number of intermediate waypoints per request.
const MaxWaypoints = 25

var directionsEndpoint = endpoint("/maps/api/directions/json")

// Waypoint is an intermediate stop. Via waypoints shape the route without
// creating a stop.
type Waypoint struct {
	Location domain.Location
	Via      bool
}

func (w Waypoint) String() string {
	if w.Via {
		return "via:" + w.Location.String()
	}
	return w.Location.String()
}

type TransitMode string

const (
	TransitModeBus    TransitMode = "bus"
	TransitModeSubway TransitMode = "subway"
	TransitModeTrain  TransitMode = "train"
	TransitModeTram   TransitMode = "tram"
	TransitModeRail   TransitMode = "rail"
)

type TransitRoutingPreference string

const (
	TransitPreferLessWalking    TransitRoutingPreference = "less_walking"
	TransitPreferFewerTransfers TransitRoutingPreference = "fewer_transfers"
)

// DirectionsRequest computes a route between two locations.
type DirectionsRequest struct {
	Key               string
	Origin            domain.Location
	Destination       domain.Location
	Waypoints         []Waypoint
	OptimizeWaypoints bool
	Alternatives      bool
	TravelMode        domain.TravelMode
	Avoid             []domain.Avoid
	Units             domain.Units
	Region            string
	Language          domain.Language
	DepartureTime     time.Time
	ArrivalTime       time.Time
	TrafficModel      domain.TrafficModel
	TransitModes      []TransitMode
	TransitPreference TransitRoutingPreference
}

func (r *DirectionsRequest) waypoints() string {
	if len(r.Waypoints) == 0 {
		return ""
	}

	parts := make([]string, 0, len(r.Waypoints)+1)
	if r.OptimizeWaypoints {
		parts = append(parts, "optimize:true")
	}
	for _, w := range r.Waypoints {
		parts = append(parts, w.String())
	}
	return joinNonEmpty("|", parts...)
}

func (r *DirectionsRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "origin",
			Rules: []request.Rule{request.Check(!r.Origin.IsZero(), apperr.KindMissingField, "Origin is required")},
			Value: r.Origin.String(),
		},
		{
			Name:  "destination",
			Rules: []request.Rule{request.Check(!r.Destination.IsZero(), apperr.KindMissingField, "Destination is required")},
			Value: r.Destination.String(),
		},
		{
			Name: "waypoints",
			Rules: []request.Rule{
				request.AtMost(len(r.Waypoints), MaxWaypoints, apperr.KindTooManyValues, "Waypoints must not contain more than 25 locations"),
			},
			Value: r.waypoints(),
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
		{Name: "alternatives", Value: request.FormatBoolIf(r.Alternatives)},
		{Name: "avoid", Value: joinAvoid(r.Avoid)},
		{Name: "units", Value: string(r.Units)},
		{Name: "region", Value: r.Region},
		{Name: "language", Value: string(r.Language)},
		{Name: "traffic_model", Value: string(r.TrafficModel)},
		{Name: "transit_mode", Value: request.Join(r.TransitModes, "|")},
		{Name: "transit_routing_preference", Value: string(r.TransitPreference)},
	}
}

func (r *DirectionsRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *DirectionsRequest) URI() (*url.URL, error) {
	return request.BuildURI(directionsEndpoint, r.fields()...)
}

type DirectionsResponse struct {
	domain.MapsStatus
	GeocodedWaypoints []GeocodedWaypoint `json:"geocoded_waypoints"`
	Routes            []Route            `json:"routes"`
	AvailableModes    []string           `json:"available_travel_modes,omitempty"`
}

type GeocodedWaypoint struct {
	GeocoderStatus string   `json:"geocoder_status"`
	PlaceID        string   `json:"place_id"`
	PartialMatch   bool     `json:"partial_match,omitempty"`
	Types          []string `json:"types"`
}

type Route struct {
	Summary          string          `json:"summary"`
	Legs             []Leg           `json:"legs"`
	WaypointOrder    []int           `json:"waypoint_order"`
	OverviewPolyline Polyline        `json:"overview_polyline"`
	Bounds           domain.ViewPort `json:"bounds"`
	Copyrights       string          `json:"copyrights"`
	Warnings         []string        `json:"warnings"`
	Fare             *Fare           `json:"fare,omitempty"`
}

type Leg struct {
	Steps             []Step            `json:"steps"`
	Distance          Distance          `json:"distance"`
	Duration          Duration          `json:"duration"`
	DurationInTraffic *Duration         `json:"duration_in_traffic,omitempty"`
	StartAddress      string            `json:"start_address"`
	EndAddress        string            `json:"end_address"`
	StartLocation     domain.Coordinate `json:"start_location"`
	EndLocation       domain.Coordinate `json:"end_location"`
}

type Step struct {
	HTMLInstructions string            `json:"html_instructions"`
	Distance         Distance          `json:"distance"`
	Duration         Duration          `json:"duration"`
	StartLocation    domain.Coordinate `json:"start_location"`
	EndLocation      domain.Coordinate `json:"end_location"`
	Polyline         Polyline          `json:"polyline"`
	TravelMode       string            `json:"travel_mode"`
	Maneuver         string            `json:"maneuver,omitempty"`
}

// Polyline is an encoded polyline string.
type Polyline struct {
	Points string `json:"points"`
}
