// Package request holds the validated-request abstraction shared by every
// endpoint binding: ordered field rules, an insertion-ordered parameter list
// and URI construction.
package request

import (
	"net/url"
	"strings"
)

// Request is implemented by every endpoint binding. Both methods are pure
// functions of the request's current field state.
type Request interface {
	// QueryParams validates the request and returns its query parameters.
	QueryParams() (*Params, error)
	// URI validates the request and returns the absolute request target.
	URI() (*url.URL, error)
}

// BodyRequest is implemented by endpoints that POST a JSON body.
type BodyRequest interface {
	Request
	Body() (any, error)
}

// Endpoint is one remote API operation identified by a fixed path.
type Endpoint struct {
	BaseURL string // scheme and host, e.g. https://roads.googleapis.com
	Path    string // e.g. /v1/nearestRoads
}

func (e Endpoint) String() string { return e.BaseURL + e.Path }

// URI composes the endpoint and an already validated parameter list.
func URI(e Endpoint, params *Params) *url.URL {
	u, err := url.Parse(strings.TrimRight(e.BaseURL, "/"))
	if err != nil || u.Host == "" {
		u = &url.URL{}
	}

	u.Path = strings.TrimRight(u.Path, "/") + e.Path
	if params != nil {
		u.RawQuery = params.Encode()
	}
	return u
}

// BuildURI runs Build and URI in one step. Validation errors are returned
// untouched and no URI is produced.
func BuildURI(e Endpoint, fields ...Field) (*url.URL, error) {
	params, err := Build(fields...)
	if err != nil {
		return nil, err
	}
	return URI(e, params), nil
}
