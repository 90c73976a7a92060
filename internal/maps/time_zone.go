package maps

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
	"time"
)

var timeZoneEndpoint = endpoint("/maps/api/timezone/json")

// TimeZoneRequest looks up the time zone of a location at a given instant,
// which decides whether daylight saving applies.
type TimeZoneRequest struct {
	Key       string
	Location  *domain.Coordinate
	TimeStamp time.Time
	Language  domain.Language
}

func (r *TimeZoneRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "location",
			Rules: []request.Rule{request.Check(r.Location != nil, apperr.KindMissingField, "Location is required")},
			Value: request.FormatCoordinate(r.Location),
		},
		{
			Name:  "timestamp",
			Rules: []request.Rule{request.Check(!r.TimeStamp.IsZero(), apperr.KindMissingField, "TimeStamp is required")},
			Value: request.FormatUnix(r.TimeStamp),
		},
		{Name: "language", Value: string(r.Language)},
	}
}

func (r *TimeZoneRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *TimeZoneRequest) URI() (*url.URL, error) {
	return request.BuildURI(timeZoneEndpoint, r.fields()...)
}

type TimeZoneResponse struct {
	domain.MapsStatus
	DSTOffset    int64  `json:"dstOffset"` // seconds
	RawOffset    int64  `json:"rawOffset"` // seconds
	TimeZoneID   string `json:"timeZoneId"`
	TimeZoneName string `json:"timeZoneName"`
}

// Offset is the total UTC offset at the requested instant.
func (r *TimeZoneResponse) Offset() time.Duration {
	return time.Duration(r.DSTOffset+r.RawOffset) * time.Second
}
