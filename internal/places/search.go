package places

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
	"strconv"
)

var (
	nearbyEndpoint = endpoint("/nearbysearch/json")
	textEndpoint   = endpoint("/textsearch/json")
)

type RankBy string

const (
	RankByProminence RankBy = "prominence"
	RankByDistance   RankBy = "distance"
)

func formatPrice(p *PriceLevel) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(int(*p))
}

func priceRule(p *PriceLevel, msg string) request.Rule {
	return request.Check(p == nil || (*p >= PriceFree && *p <= PriceVeryExpensive), apperr.KindOutOfRange, msg)
}

// NearBySearchRequest searches around a location. Ranking by distance
// replaces the radius and needs a keyword or type to rank against.
type NearBySearchRequest struct {
	Key       string
	Location  *domain.Coordinate
	Radius    int
	RankBy    RankBy
	Keyword   string
	Type      string
	MinPrice  *PriceLevel
	MaxPrice  *PriceLevel
	OpenNow   bool
	Language  domain.Language
	PageToken string
}

func (r *NearBySearchRequest) fields() []request.Field {
	byDistance := r.RankBy == RankByDistance

	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "location",
			Rules: []request.Rule{request.Check(r.Location != nil, apperr.KindMissingField, "Location is required")},
			Value: request.FormatCoordinate(r.Location),
		},
		{
			Name: "radius",
			Rules: []request.Rule{
				request.Check(byDistance || r.Radius > 0, apperr.KindMissingField, "Radius is required, unless RankBy is Distance"),
				request.Check(!byDistance || r.Radius == 0, apperr.KindInvalidField, "Radius cannot be specified, when RankBy is Distance"),
				radiusRule(r.Radius),
			},
			Value: request.FormatPositive(r.Radius),
		},
		{
			Name: "rankby",
			Rules: []request.Rule{
				request.Check(!byDistance || r.Keyword != "" || r.Type != "", apperr.KindMissingField, "Keyword or Type is required, when RankBy is Distance"),
			},
			Value: string(r.RankBy),
		},
		{Name: "keyword", Value: r.Keyword},
		{Name: "type", Value: r.Type},
		{Name: "minprice", Rules: []request.Rule{priceRule(r.MinPrice, "MinPrice must be between 0 and 4")}, Value: formatPrice(r.MinPrice)},
		{Name: "maxprice", Rules: []request.Rule{priceRule(r.MaxPrice, "MaxPrice must be between 0 and 4")}, Value: formatPrice(r.MaxPrice)},
		{Name: "opennow", Value: request.FormatBoolIf(r.OpenNow)},
		{Name: "language", Value: string(r.Language)},
		{Name: "pagetoken", Value: r.PageToken},
	}
}

func (r *NearBySearchRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *NearBySearchRequest) URI() (*url.URL, error) {
	return request.BuildURI(nearbyEndpoint, r.fields()...)
}

// TextSearchRequest searches by free text, optionally biased to a location.
type TextSearchRequest struct {
	Key       string
	Query     string
	Location  *domain.Coordinate
	Radius    int
	Type      string
	MinPrice  *PriceLevel
	MaxPrice  *PriceLevel
	OpenNow   bool
	Region    string
	Language  domain.Language
	PageToken string
}

func (r *TextSearchRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "query",
			Rules: []request.Rule{request.Required(r.Query, apperr.KindMissingField, "Query is required")},
			Value: r.Query,
		},
		{Name: "location", Value: request.FormatCoordinate(r.Location)},
		{Name: "radius", Rules: []request.Rule{radiusRule(r.Radius)}, Value: request.FormatPositive(r.Radius)},
		{Name: "type", Value: r.Type},
		{Name: "minprice", Rules: []request.Rule{priceRule(r.MinPrice, "MinPrice must be between 0 and 4")}, Value: formatPrice(r.MinPrice)},
		{Name: "maxprice", Rules: []request.Rule{priceRule(r.MaxPrice, "MaxPrice must be between 0 and 4")}, Value: formatPrice(r.MaxPrice)},
		{Name: "opennow", Value: request.FormatBoolIf(r.OpenNow)},
		{Name: "region", Value: r.Region},
		{Name: "language", Value: string(r.Language)},
		{Name: "pagetoken", Value: r.PageToken},
	}
}

func (r *TextSearchRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *TextSearchRequest) URI() (*url.URL, error) {
	return request.BuildURI(textEndpoint, r.fields()...)
}
