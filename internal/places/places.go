// Package places binds the Places API: details, photos, autocomplete and
// the three search flavours.
package places

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/request"
)

const (
	baseURL = "https://maps.googleapis.com"

	// MaxRadius is the largest search radius in meters.
	MaxRadius = 50000
)

func endpoint(path string) request.Endpoint {
	return request.Endpoint{BaseURL: baseURL, Path: "/maps/api/place" + path}
}

type PriceLevel int

const (
	PriceFree PriceLevel = iota
	PriceInexpensive
	PriceModerate
	PriceExpensive
	PriceVeryExpensive
)

// Place is the place record shared by details and search responses. Search
// results carry a subset of the fields.
type Place struct {
	PlaceID                  string         `json:"place_id"`
	Name                     string         `json:"name"`
	BusinessStatus           string         `json:"business_status,omitempty"`
	FormattedAddress         string         `json:"formatted_address,omitempty"`
	Vicinity                 string         `json:"vicinity,omitempty"`
	FormattedPhoneNumber     string         `json:"formatted_phone_number,omitempty"`
	InternationalPhoneNumber string         `json:"international_phone_number,omitempty"`
	Website                  string         `json:"website,omitempty"`
	URL                      string         `json:"url,omitempty"`
	Geometry                 Geometry       `json:"geometry"`
	Icon                     string         `json:"icon,omitempty"`
	Types                    []string       `json:"types"`
	Rating                   float64        `json:"rating,omitempty"`
	UserRatingsTotal         int            `json:"user_ratings_total,omitempty"`
	PriceLevel               *PriceLevel    `json:"price_level,omitempty"`
	OpeningHours             *OpeningHours  `json:"opening_hours,omitempty"`
	Photos                   []Photo        `json:"photos,omitempty"`
	Reviews                  []Review       `json:"reviews,omitempty"`
	UTCOffset                *int           `json:"utc_offset,omitempty"` // minutes
	PlusCode                 *PlusCode      `json:"plus_code,omitempty"`
	AddressComponents        []AddressField `json:"address_components,omitempty"`
}

type Geometry struct {
	Location domain.Coordinate `json:"location"`
	Viewport *domain.ViewPort  `json:"viewport,omitempty"`
}

type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type Photo struct {
	PhotoReference   string   `json:"photo_reference"`
	Height           int      `json:"height"`
	Width            int      `json:"width"`
	HTMLAttributions []string `json:"html_attributions"`
}

type Review struct {
	AuthorName string `json:"author_name"`
	Language   string `json:"language,omitempty"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Time       int64  `json:"time"`
}

type PlusCode struct {
	GlobalCode   string `json:"global_code"`
	CompoundCode string `json:"compound_code,omitempty"`
}

type AddressField struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// SearchResponse is returned by nearby and text search. NextPageToken
// becomes valid a short moment after the response is received.
type SearchResponse struct {
	domain.MapsStatus
	HTMLAttributions []string `json:"html_attributions"`
	Results          []Place  `json:"results"`
	NextPageToken    string   `json:"next_page_token,omitempty"`
}
