package translate

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/request"
	"net/url"
)

var languagesEndpoint = endpoint("/languages")

// LanguagesRequest lists supported languages. When Target is set the
// response includes language names localized to it.
type LanguagesRequest struct {
	Key    string
	Target domain.Language
	Model  Model
}

func (r *LanguagesRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{Name: "target", Value: string(r.Target)},
		{Name: "model", Value: string(r.Model)},
	}
}

func (r *LanguagesRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *LanguagesRequest) URI() (*url.URL, error) {
	return request.BuildURI(languagesEndpoint, r.fields()...)
}

type LanguagesResponse struct {
	domain.APIError
	Data struct {
		Languages []SupportedLanguage `json:"languages"`
	} `json:"data"`
}

type SupportedLanguage struct {
	Language domain.Language `json:"language"`
	Name     string          `json:"name,omitempty"`
}
