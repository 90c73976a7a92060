package roads

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"net/url"
	"reflect"
	"testing"
)

func points(n int) []domain.Coordinate {
	out := make([]domain.Coordinate, n)
	for i := range out {
		out[i] = domain.NewCoordinate(float64(i), float64(i))
	}
	return out
}

func TestNearestRoadsQueryParameters(t *testing.T) {
	req := &NearestRoadsRequest{
		Key:    "abc",
		Points: []domain.Coordinate{domain.NewCoordinate(1, 1), domain.NewCoordinate(2, 2)},
	}

	params, err := req.QueryParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.Len() != 2 {
		t.Fatalf("expected 2 params, got %d", params.Len())
	}
	if v, _ := params.Get("key"); v != "abc" {
		t.Errorf("key = %q, want abc", v)
	}
	if v, _ := params.Get("points"); v != "1,1|2,2" {
		t.Errorf("points = %q, want 1,1|2,2", v)
	}
}

func TestNearestRoadsValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      *NearestRoadsRequest
		wantKind apperr.Kind
		wantMsg  string
	}{
		{
			"key is empty",
			&NearestRoadsRequest{Key: "", Points: []domain.Coordinate{domain.NewCoordinate(0, 0)}},
			apperr.KindMissingKey,
			"Key is required",
		},
		{
			"points is nil",
			&NearestRoadsRequest{Key: "abc"},
			apperr.KindMissingPoints,
			"Points is required",
		},
		{
			"points is empty",
			&NearestRoadsRequest{Key: "abc", Points: []domain.Coordinate{}},
			apperr.KindMissingPoints,
			"Points is required",
		},
		{
			"exactly 100 points",
			&NearestRoadsRequest{Key: "abc", Points: points(100)},
			apperr.KindTooManyPoints,
			"Path must contain less than 100 locations",
		},
		{
			"more than 100 points",
			&NearestRoadsRequest{Key: "abc", Points: make([]domain.Coordinate, 101)},
			apperr.KindTooManyPoints,
			"Path must contain less than 100 locations",
		},
		{
			"key checked before points",
			&NearestRoadsRequest{Points: points(150)},
			apperr.KindMissingKey,
			"Key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := tt.req.QueryParams()
			if params != nil {
				t.Fatalf("expected nil params, got %v", params.All())
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
			if got := apperr.GetKind(err); got != tt.wantKind {
				t.Errorf("kind = %v, want %v", got, tt.wantKind)
			}

			u, uriErr := tt.req.URI()
			if u != nil {
				t.Errorf("expected no URI, got %v", u)
			}
			if uriErr == nil || uriErr.Error() != tt.wantMsg {
				t.Errorf("URI error = %v, want %q", uriErr, tt.wantMsg)
			}
		})
	}
}

func TestNearestRoadsBoundary(t *testing.T) {
	req := &NearestRoadsRequest{Key: "abc", Points: points(99)}
	if _, err := req.QueryParams(); err != nil {
		t.Fatalf("99 points: unexpected error: %v", err)
	}

	req.Points = points(100)
	if _, err := req.QueryParams(); err == nil {
		t.Fatal("100 points: expected error")
	}
}

func TestNearestRoadsURI(t *testing.T) {
	req := &NearestRoadsRequest{
		Key:    "abc",
		Points: []domain.Coordinate{domain.NewCoordinate(1, 1), domain.NewCoordinate(2, 2)},
	}

	u, err := req.URI()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "/v1/nearestRoads?key=abc&points=" + url.QueryEscape("1,1|2,2")
	if got := u.RequestURI(); got != want {
		t.Fatalf("RequestURI = %q, want %q", got, want)
	}
	if u.Host != "roads.googleapis.com" || u.Scheme != "https" {
		t.Fatalf("unexpected host %q scheme %q", u.Host, u.Scheme)
	}
}

func TestNearestRoadsIdempotent(t *testing.T) {
	req := &NearestRoadsRequest{Key: "abc", Points: points(5)}

	p1, err1 := req.QueryParams()
	p2, err2 := req.QueryParams()
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(p1.All(), p2.All()) {
		t.Fatalf("params differ: %v vs %v", p1.All(), p2.All())
	}

	u1, _ := req.URI()
	u2, _ := req.URI()
	if u1.String() != u2.String() {
		t.Fatalf("URIs differ: %q vs %q", u1, u2)
	}
	if len(req.Points) != 5 {
		t.Fatalf("request was mutated: %d points", len(req.Points))
	}
}

func TestSnapToRoads(t *testing.T) {
	req := &SnapToRoadsRequest{Key: "abc"}
	if _, err := req.QueryParams(); err == nil || err.Error() != "Path is required" {
		t.Fatalf("err = %v, want Path is required", err)
	}

	req.Path = points(100)
	if _, err := req.QueryParams(); !apperr.Is(err, apperr.KindTooManyPoints) {
		t.Fatalf("err = %v, want too many points", err)
	}

	req.Path = []domain.Coordinate{domain.NewCoordinate(-35.27801, 149.12958), domain.NewCoordinate(-35.28032, 149.12907)}
	req.Interpolate = true
	u, err := req.URI()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "/v1/snapToRoads?key=abc&path=-35.27801%2C149.12958%7C-35.28032%2C149.12907&interpolate=true"
	if got := u.RequestURI(); got != want {
		t.Fatalf("RequestURI = %q, want %q", got, want)
	}
}

func TestSpeedLimits(t *testing.T) {
	req := &SpeedLimitsRequest{Key: "abc"}
	if _, err := req.QueryParams(); err == nil || err.Error() != "Path or PlaceId's is required" {
		t.Fatalf("err = %v", err)
	}

	req.PlaceIDs = make([]string, 100)
	if _, err := req.QueryParams(); err == nil || err.Error() != "PlaceId's must contain less than 100 ids" {
		t.Fatalf("err = %v", err)
	}

	req.PlaceIDs = []string{"ChIJ1", "ChIJ2"}
	req.Units = domain.SpeedUnitsMPH
	params, err := req.QueryParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := params.Encode(), "key=abc&placeId=ChIJ1&placeId=ChIJ2&units=MPH"; got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
}
