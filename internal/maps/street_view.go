package maps

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

var streetViewEndpoint = endpoint("/maps/api/streetview")

type StreetViewSource string

const (
	StreetViewSourceDefault StreetViewSource = "default"
	StreetViewSourceOutdoor StreetViewSource = "outdoor"
)

// StreetViewRequest renders a street view panorama image.
type StreetViewRequest struct {
	Key      string
	Location *domain.Location
	PanoID   string
	Size     domain.MapSize
	Heading  *float64 // 0-360, compass degrees
	Pitch    *float64 // -90-90
	FOV      *float64 // 10-120, defaults to 90 upstream
	Radius   *int     // meters
	Source   StreetViewSource
}

func (r *StreetViewRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "location",
			Rules: []request.Rule{request.Check(!locationIsZero(r.Location) || r.PanoID != "", apperr.KindMissingField, "Location or PanoId is required")},
			Value: locationString(r.Location),
		},
		{Name: "pano", Value: r.PanoID},
		{
			Name:  "size",
			Rules: []request.Rule{request.Check(!r.Size.IsZero(), apperr.KindMissingField, "Size is required")},
			Value: r.Size.String(),
		},
		{
			Name:  "heading",
			Rules: []request.Rule{inRange(r.Heading, 0, 360, "Heading must be between 0 and 360")},
			Value: request.FormatFloatPtr(r.Heading),
		},
		{
			Name:  "pitch",
			Rules: []request.Rule{inRange(r.Pitch, -90, 90, "Pitch must be between -90 and 90")},
			Value: request.FormatFloatPtr(r.Pitch),
		},
		{
			Name:  "fov",
			Rules: []request.Rule{inRange(r.FOV, 10, 120, "Fov must be between 10 and 120")},
			Value: request.FormatFloatPtr(r.FOV),
		},
		{
			Name:  "radius",
			Rules: []request.Rule{request.Check(r.Radius == nil || *r.Radius >= 0, apperr.KindOutOfRange, "Radius must be greater than or equal to 0")},
			Value: request.FormatIntPtr(r.Radius),
		},
		{Name: "source", Value: string(r.Source)},
		{Name: "return_error_code", Value: "true"},
	}
}

// inRange passes when v is unset.
func inRange(v *float64, lo, hi float64, msg string) request.Rule {
	if v == nil {
		return request.Rule{}
	}
	return request.Between(*v, lo, hi, apperr.KindOutOfRange, msg)
}

func (r *StreetViewRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *StreetViewRequest) URI() (*url.URL, error) {
	return request.BuildURI(streetViewEndpoint, r.fields()...)
}

type StreetViewResponse struct {
	domain.Image
}
