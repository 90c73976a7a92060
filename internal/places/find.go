package places

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

var findEndpoint = endpoint("/findplacefromtext/json")

type InputType string

const (
	InputTypeTextQuery   InputType = "textquery"
	InputTypePhoneNumber InputType = "phonenumber"
)

// FindRequest looks up a place from text or a phone number.
type FindRequest struct {
	Key          string
	Input        string
	Type         InputType // textquery when empty
	Fields       []string
	LocationBias string // e.g. "circle:2000@47.6918452,-122.2226413" or "ipbias"
	Language     domain.Language
}

func (r *FindRequest) inputType() string {
	if r.Type == "" {
		return string(InputTypeTextQuery)
	}
	return string(r.Type)
}

func (r *FindRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "input",
			Rules: []request.Rule{request.Required(r.Input, apperr.KindMissingField, "Input is required")},
			Value: r.Input,
		},
		{Name: "inputtype", Value: r.inputType()},
		{Name: "fields", Value: request.Join(r.Fields, ",")},
		{Name: "locationbias", Value: r.LocationBias},
		{Name: "language", Value: string(r.Language)},
	}
}

func (r *FindRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *FindRequest) URI() (*url.URL, error) {
	return request.BuildURI(findEndpoint, r.fields()...)
}

type FindResponse struct {
	domain.MapsStatus
	Candidates []Place `json:"candidates"`
}
