package places

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

// MaxCountries is the largest number of country filters per autocomplete call.
const MaxCountries = 5

var (
	autocompleteEndpoint      = endpoint("/autocomplete/json")
	queryAutocompleteEndpoint = endpoint("/queryautocomplete/json")
)

// AutocompleteRequest predicts places for a partially typed input.
type AutocompleteRequest struct {
	Key          string
	Input        string
	Offset       int
	Location     *domain.Coordinate
	Origin       *domain.Coordinate
	Radius       int
	StrictBounds bool
	Types        []string
	Countries    []string
	Language     domain.Language
	Region       string
	SessionToken string
}

func (r *AutocompleteRequest) components() string {
	parts := make([]string, 0, len(r.Countries))
	for _, c := range r.Countries {
		if c != "" {
			parts = append(parts, "country:"+c)
		}
	}
	return request.Join(parts, "|")
}

func (r *AutocompleteRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "input",
			Rules: []request.Rule{request.Required(r.Input, apperr.KindMissingField, "Input is required")},
			Value: r.Input,
		},
		{Name: "offset", Value: request.FormatPositive(r.Offset)},
		{Name: "location", Value: request.FormatCoordinate(r.Location)},
		{Name: "origin", Value: request.FormatCoordinate(r.Origin)},
		{
			Name:  "radius",
			Rules: []request.Rule{radiusRule(r.Radius)},
			Value: request.FormatPositive(r.Radius),
		},
		{Name: "strictbounds", Value: request.FormatBoolIf(r.StrictBounds)},
		{Name: "types", Value: request.Join(r.Types, "|")},
		{
			Name: "components",
			Rules: []request.Rule{
				request.AtMost(len(r.Countries), MaxCountries, apperr.KindTooManyValues, "Components must not contain more than 5 countries"),
			},
			Value: r.components(),
		},
		{Name: "language", Value: string(r.Language)},
		{Name: "region", Value: r.Region},
		{Name: "sessiontoken", Value: r.SessionToken},
	}
}

func (r *AutocompleteRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *AutocompleteRequest) URI() (*url.URL, error) {
	return request.BuildURI(autocompleteEndpoint, r.fields()...)
}

// QueryAutocompleteRequest predicts search queries rather than places.
type QueryAutocompleteRequest struct {
	Key      string
	Input    string
	Offset   int
	Location *domain.Coordinate
	Radius   int
	Language domain.Language
}

func (r *QueryAutocompleteRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "input",
			Rules: []request.Rule{request.Required(r.Input, apperr.KindMissingField, "Input is required")},
			Value: r.Input,
		},
		{Name: "offset", Value: request.FormatPositive(r.Offset)},
		{Name: "location", Value: request.FormatCoordinate(r.Location)},
		{
			Name:  "radius",
			Rules: []request.Rule{radiusRule(r.Radius)},
			Value: request.FormatPositive(r.Radius),
		},
		{Name: "language", Value: string(r.Language)},
	}
}

func (r *QueryAutocompleteRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *QueryAutocompleteRequest) URI() (*url.URL, error) {
	return request.BuildURI(queryAutocompleteEndpoint, r.fields()...)
}

func radiusRule(radius int) request.Rule {
	return request.AtMost(radius, MaxRadius, apperr.KindOutOfRange, "Radius must not be greater than 50000")
}

type AutocompleteResponse struct {
	domain.MapsStatus
	Predictions []Prediction `json:"predictions"`
}

type Prediction struct {
	Description          string               `json:"description"`
	PlaceID              string               `json:"place_id,omitempty"`
	DistanceMeters       *int                 `json:"distance_meters,omitempty"`
	Types                []string             `json:"types"`
	MatchedSubstrings    []MatchedSubstring   `json:"matched_substrings"`
	Terms                []Term               `json:"terms"`
	StructuredFormatting StructuredFormatting `json:"structured_formatting"`
}

type MatchedSubstring struct {
	Length int `json:"length"`
	Offset int `json:"offset"`
}

type Term struct {
	Offset int    `json:"offset"`
	Value  string `json:"value"`
}

type StructuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text,omitempty"`
}
