// Package translate binds the Cloud Translation API v2: translate, detect
// and supported languages.
package translate

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

// MaxQs is the largest number of strings per translate or detect call.
const MaxQs = 128

const basePath = "/language/translate/v2"

func endpoint(path string) request.Endpoint {
	return request.Endpoint{BaseURL: "https://translation.googleapis.com", Path: basePath + path}
}

var translateEndpoint = endpoint("")

type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

type Model string

const (
	ModelBase Model = "base"
	ModelNMT  Model = "nmt"
)

func qsField(qs []string) request.Field {
	return request.Field{
		Name: "q",
		Rules: []request.Rule{
			request.Check(len(qs) > 0, apperr.KindMissingField, "Qs is required"),
			request.AtMost(len(qs), MaxQs, apperr.KindTooManyValues, "Qs must not contain more than 128 strings"),
		},
		Values: qs,
	}
}

// TranslateRequest translates each of Qs into Target. Source is detected
// when empty.
type TranslateRequest struct {
	Key    string
	Qs     []string
	Target domain.Language
	Source domain.Language
	Format Format
	Model  Model
}

func (r *TranslateRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		qsField(r.Qs),
		{
			Name:  "target",
			Rules: []request.Rule{request.Required(string(r.Target), apperr.KindMissingField, "Target is required")},
			Value: string(r.Target),
		},
		{Name: "source", Value: string(r.Source)},
		{Name: "format", Value: string(r.Format)},
		{Name: "model", Value: string(r.Model)},
	}
}

func (r *TranslateRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *TranslateRequest) URI() (*url.URL, error) {
	return request.BuildURI(translateEndpoint, r.fields()...)
}

type TranslateResponse struct {
	domain.APIError
	Data struct {
		Translations []Translation `json:"translations"`
	} `json:"data"`
}

// Translation is the result for one input string, in input order.
type Translation struct {
	TranslatedText         string          `json:"translatedText"`
	DetectedSourceLanguage domain.Language `json:"detectedSourceLanguage,omitempty"`
	Model                  Model           `json:"model,omitempty"`
}
