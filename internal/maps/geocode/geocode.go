// Package geocode binds the Geocoding API (address, reverse and place id
// lookups) and the Plus Codes API.
package geocode

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/request"
	"strings"
)

var endpoint = request.Endpoint{BaseURL: "https://maps.googleapis.com", Path: "/maps/api/geocode/json"}

// Component restricts results to a component, e.g. {"country", "NL"}.
type Component struct {
	Type  string
	Value string
}

func joinComponents(cs []Component) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		if c.Type == "" || c.Value == "" {
			continue
		}
		parts = append(parts, c.Type+":"+c.Value)
	}
	return strings.Join(parts, "|")
}

// Response is shared by the address, location and place id lookups.
type Response struct {
	domain.MapsStatus
	Results []Result `json:"results"`
}

type Result struct {
	AddressComponents  []AddressComponent `json:"address_components"`
	FormattedAddress   string             `json:"formatted_address"`
	Geometry           Geometry           `json:"geometry"`
	PartialMatch       bool               `json:"partial_match,omitempty"`
	PlaceID            string             `json:"place_id"`
	PlusCode           *PlusCode          `json:"plus_code,omitempty"`
	PostcodeLocalities []string           `json:"postcode_localities,omitempty"`
	Types              []string           `json:"types"`
}

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type Geometry struct {
	Location     domain.Coordinate `json:"location"`
	LocationType LocationType      `json:"location_type"`
	Viewport     domain.ViewPort   `json:"viewport"`
	Bounds       *domain.ViewPort  `json:"bounds,omitempty"`
}

type PlusCode struct {
	GlobalCode   string `json:"global_code"`
	CompoundCode string `json:"compound_code,omitempty"`
}

type LocationType string

const (
	LocationTypeRooftop           LocationType = "ROOFTOP"
	LocationTypeRangeInterpolated LocationType = "RANGE_INTERPOLATED"
	LocationTypeGeometricCenter   LocationType = "GEOMETRIC_CENTER"
	LocationTypeApproximate       LocationType = "APPROXIMATE"
)

func viewport(v *domain.ViewPort) string {
	if v == nil {
		return ""
	}
	return v.String()
}
