package geocode

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

// AddressRequest geocodes a free-form address, component filters, or both.
type AddressRequest struct {
	Key        string
	Address    string
	Components []Component
	Bounds     *domain.ViewPort
	Region     string
	Language   domain.Language
}

func (r *AddressRequest) fields() []request.Field {
	components := joinComponents(r.Components)

	return []request.Field{
		request.KeyField(r.Key),
		{
			Name: "address",
			Rules: []request.Rule{
				request.Check(r.Address != "" || components != "", apperr.KindMissingField, "Address or Components is required"),
			},
			Value: r.Address,
		},
		{Name: "components", Value: components},
		{Name: "bounds", Value: viewport(r.Bounds)},
		{Name: "region", Value: r.Region},
		{Name: "language", Value: string(r.Language)},
	}
}

func (r *AddressRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *AddressRequest) URI() (*url.URL, error) {
	return request.BuildURI(endpoint, r.fields()...)
}
