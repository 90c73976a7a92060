package translate

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/request"
	"net/url"
)

var detectEndpoint = endpoint("/detect")

// DetectRequest detects the language of each of Qs.
type DetectRequest struct {
	Key string
	Qs  []string
}

func (r *DetectRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		qsField(r.Qs),
	}
}

func (r *DetectRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *DetectRequest) URI() (*url.URL, error) {
	return request.BuildURI(detectEndpoint, r.fields()...)
}

type DetectResponse struct {
	domain.APIError
	Data struct {
		// One list of candidates per input string.
		Detections [][]Detection `json:"detections"`
	} `json:"data"`
}

type Detection struct {
	Language   domain.Language `json:"language"`
	IsReliable bool            `json:"isReliable"`
	Confidence float64         `json:"confidence"`
}

// Best returns the most confident detection for input i.
func (r *DetectResponse) Best(i int) (Detection, bool) {
	if i < 0 || i >= len(r.Data.Detections) || len(r.Data.Detections[i]) == 0 {
		return Detection{}, false
	}

	best := r.Data.Detections[i][0]
	for _, d := range r.Data.Detections[i][1:] {
		if d.Confidence > best.Confidence {
			best = d
		}
	}
	return best, true
}
