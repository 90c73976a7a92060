// Package maps binds the Maps web services that have no package of their
// own: directions, distance matrix, elevation, time zone, geolocation,
// static maps and street view.
package maps

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/request"
	"strings"
)

const baseURL = "https://maps.googleapis.com"

// Duration and Distance are the {value, text} pairs used throughout the
// directions and distance matrix responses.
type Duration struct {
	Value int64  `json:"value"` // seconds
	Text  string `json:"text"`
}

type Distance struct {
	Value int64  `json:"value"` // meters
	Text  string `json:"text"`
}

// Fare is the transit fare of a route, when known.
type Fare struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
	Text     string  `json:"text"`
}

func endpoint(path string) request.Endpoint {
	return request.Endpoint{BaseURL: baseURL, Path: path}
}

func joinAvoid(avoid []domain.Avoid) string { return request.Join(avoid, "|") }

func locationIsZero(l *domain.Location) bool { return l == nil || l.IsZero() }

func locationString(l *domain.Location) string {
	if locationIsZero(l) {
		return ""
	}
	return l.String()
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
