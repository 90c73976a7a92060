package domain

import "strings"

// Location is one of: a free-form address, a coordinate, or a place id.
// Exactly one form should be set; the first non-empty one wins when serializing.
type Location struct {
	Address    string
	Coordinate *Coordinate
	PlaceID    string
}

func AddressLocation(address string) Location { return Location{Address: address} }

func CoordinateLocation(lat, lng float64) Location {
	c := NewCoordinate(lat, lng)
	return Location{Coordinate: &c}
}

func PlaceLocation(placeID string) Location { return Location{PlaceID: placeID} }

func (l Location) IsZero() bool {
	return strings.TrimSpace(l.Address) == "" && l.Coordinate == nil && strings.TrimSpace(l.PlaceID) == ""
}

func (l Location) String() string {
	switch {
	case l.PlaceID != "":
		return "place_id:" + l.PlaceID
	case l.Coordinate != nil:
		return l.Coordinate.String()
	default:
		return l.Address
	}
}

// JoinLocations serializes locations pipe-delimited.
func JoinLocations(locations []Location) string {
	parts := make([]string, 0, len(locations))
	for _, l := range locations {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, "|")
}

// Pixel dimensions for image endpoints (static maps, street view).
type MapSize struct {
	Width  int
	Height int
}

func (s MapSize) IsZero() bool { return s.Width <= 0 || s.Height <= 0 }

func (s MapSize) String() string {
	if s.IsZero() {
		return ""
	}
	return formatInt(s.Width) + "x" + formatInt(s.Height)
}
