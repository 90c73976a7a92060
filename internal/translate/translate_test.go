package translate

import (
	"encoding/json"
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"reflect"
	"testing"
)

type validating interface {
	QueryParams() (*request.Params, error)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      validating
		wantKind apperr.Kind
		wantMsg  string
	}{
		{"translate key", &TranslateRequest{Qs: []string{"a"}, Target: "nl"}, apperr.KindMissingKey, "Key is required"},
		{"translate qs", &TranslateRequest{Key: "k", Target: "nl"}, apperr.KindMissingField, "Qs is required"},
		{"translate target", &TranslateRequest{Key: "k", Qs: []string{"a"}}, apperr.KindMissingField, "Target is required"},
		{
			"translate too many",
			&TranslateRequest{Key: "k", Qs: make([]string, 129), Target: "nl"},
			apperr.KindTooManyValues, "Qs must not contain more than 128 strings",
		},
		{"detect qs", &DetectRequest{Key: "k"}, apperr.KindMissingField, "Qs is required"},
		{"languages key", &LanguagesRequest{}, apperr.KindMissingKey, "Key is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.QueryParams()
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
			if !apperr.Is(err, tt.wantKind) {
				t.Errorf("kind = %v, want %v", apperr.GetKind(err), tt.wantKind)
			}
		})
	}
}

func TestTranslateRepeatsQ(t *testing.T) {
	req := &TranslateRequest{Key: "abc", Qs: []string{"Hello world", "My name is Jeff"}, Target: "de", Format: FormatText}

	u, err := req.URI()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://translation.googleapis.com/language/translate/v2?key=abc" +
		"&q=Hello%20world&q=My%20name%20is%20Jeff&target=de&format=text"
	if u.String() != want {
		t.Fatalf("uri =\n%s\nwant\n%s", u.String(), want)
	}
}

func TestTranslateBoundary(t *testing.T) {
	qs := make([]string, MaxQs)
	for i := range qs {
		qs[i] = "x"
	}

	params, err := (&TranslateRequest{Key: "k", Qs: qs, Target: "nl"}).QueryParams()
	if err != nil {
		t.Fatalf("128 strings should be allowed: %v", err)
	}
	if got := len(params.Values("q")); got != MaxQs {
		t.Fatalf("q count = %d", got)
	}
}

func TestDetectAndLanguagesURI(t *testing.T) {
	u, err := (&DetectRequest{Key: "k", Qs: []string{"Hallo"}}).URI()
	if err != nil || u.Path != "/language/translate/v2/detect" {
		t.Fatalf("detect uri = %v, %v", u, err)
	}

	u, err = (&LanguagesRequest{Key: "k", Target: "en"}).URI()
	if err != nil || u.String() != "https://translation.googleapis.com/language/translate/v2/languages?key=k&target=en" {
		t.Fatalf("languages uri = %v, %v", u, err)
	}
}

func TestDetectBest(t *testing.T) {
	body := `{"data":{"detections":[[{"language":"de","confidence":0.4},{"language":"nl","confidence":0.9,"isReliable":true}],[]]}}`

	var resp DetectResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	best, ok := resp.Best(0)
	want := Detection{Language: domain.Language("nl"), IsReliable: true, Confidence: 0.9}
	if !ok || !reflect.DeepEqual(best, want) {
		t.Fatalf("best = %+v, %v", best, ok)
	}
	if _, ok := resp.Best(1); ok {
		t.Fatal("empty detections should report no result")
	}
}
