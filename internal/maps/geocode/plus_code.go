package geocode

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

var plusCodeEndpoint = request.Endpoint{BaseURL: "https://plus.codes", Path: "/api"}

// PlusCodeRequest converts between plus codes, addresses and coordinates.
// Address may hold any of the three. The key is optional for this API.
type PlusCodeRequest struct {
	Key      string
	Address  string
	Email    string
	Language domain.Language
}

func (r *PlusCodeRequest) fields() []request.Field {
	return []request.Field{
		{
			Name:  "address",
			Rules: []request.Rule{request.Required(r.Address, apperr.KindMissingField, "Address is required")},
			Value: r.Address,
		},
		{Name: "key", Value: r.Key},
		{Name: "email", Value: r.Email},
		{Name: "language", Value: string(r.Language)},
	}
}

func (r *PlusCodeRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *PlusCodeRequest) URI() (*url.URL, error) {
	return request.BuildURI(plusCodeEndpoint, r.fields()...)
}

type PlusCodeResponse struct {
	domain.MapsStatus
	PlusCode PlusCodeResult `json:"plus_code"`
}

type PlusCodeResult struct {
	GlobalCode        string `json:"global_code"`
	CompoundCode      string `json:"compound_code,omitempty"`
	BestStreetAddress string `json:"best_street_address,omitempty"`
	Geometry          struct {
		Bounds   domain.ViewPort   `json:"bounds"`
		Location domain.Coordinate `json:"location"`
	} `json:"geometry"`
	Locality struct {
		LocalAddress string `json:"local_address,omitempty"`
	} `json:"locality"`
}
