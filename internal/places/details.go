package places

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

var detailsEndpoint = endpoint("/details/json")

// DetailsRequest fetches the full record of one place.
type DetailsRequest struct {
	Key                   string
	PlaceID               string
	Fields                []string
	Language              domain.Language
	Region                string
	SessionToken          string
	ReviewsSort           string // "most_relevant" or "newest"
	ReviewsNoTranslations bool
}

func (r *DetailsRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "place_id",
			Rules: []request.Rule{request.Required(r.PlaceID, apperr.KindMissingField, "PlaceId is required")},
			Value: r.PlaceID,
		},
		{Name: "fields", Value: request.Join(r.Fields, ",")},
		{Name: "language", Value: string(r.Language)},
		{Name: "region", Value: r.Region},
		{Name: "sessiontoken", Value: r.SessionToken},
		{Name: "reviews_sort", Value: r.ReviewsSort},
		{Name: "reviews_no_translations", Value: request.FormatBoolIf(r.ReviewsNoTranslations)},
	}
}

func (r *DetailsRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *DetailsRequest) URI() (*url.URL, error) {
	return request.BuildURI(detailsEndpoint, r.fields()...)
}

type DetailsResponse struct {
	domain.MapsStatus
	HTMLAttributions []string `json:"html_attributions"`
	Result           Place    `json:"result"`
}
