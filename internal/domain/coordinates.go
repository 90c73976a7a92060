package domain

import (
	"strconv"
	"strings"
)

// Immutable geographic coordinate (latitude, longitude).
// Ranges are not checked; the remote APIs reject out-of-range values themselves.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Lat: lat, Lng: lng}
}

// String formats the coordinate as "lat,lng" using the shortest
// representation that round-trips.
func (c Coordinate) String() string {
	return FormatFloat(c.Lat) + "," + FormatFloat(c.Lng)
}

// JoinCoordinates serializes a path as "lat,lng|lat,lng|...".
func JoinCoordinates(points []Coordinate) string {
	if len(points) == 0 {
		return ""
	}

	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, "|")
}

// Bounding box given by its south-west and north-east corners.
type ViewPort struct {
	SouthWest Coordinate `json:"southwest"`
	NorthEast Coordinate `json:"northeast"`
}

func (v ViewPort) String() string {
	return v.SouthWest.String() + "|" + v.NorthEast.String()
}

// Coordinate as returned by the Roads API, which spells the fields out.
type RoadsCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c RoadsCoordinate) Coordinate() Coordinate {
	return Coordinate{Lat: c.Latitude, Lng: c.Longitude}
}

// FormatFloat renders f in the shortest form that round-trips, without an
// exponent.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
