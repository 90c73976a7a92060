package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"googleapi-client/internal/domain"
	"googleapi-client/internal/maps/roads"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/ports"
	"googleapi-client/internal/request"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type recordingObserver struct {
	mu    sync.Mutex
	calls []ports.Call
}

func (o *recordingObserver) ObserveCall(_ context.Context, call ports.Call) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, call)
}

type denyQuota struct{ called int }

func (q *denyQuota) Allow(_ context.Context, endpoint string) error {
	q.called++
	return apperr.New(apperr.KindQuotaExceeded, "daily quota exhausted for "+endpoint)
}

// statusRequest is a minimal Maps-style request used to exercise status mapping.
type statusRequest struct{ key string }

func (r *statusRequest) fields() []request.Field {
	return []request.Field{request.KeyField(r.key)}
}

func (r *statusRequest) QueryParams() (*request.Params, error) { return request.Build(r.fields()...) }

func (r *statusRequest) URI() (*url.URL, error) {
	return request.BuildURI(request.Endpoint{BaseURL: "https://maps.googleapis.com", Path: "/maps/api/test/json"}, r.fields()...)
}

type statusResponse struct {
	domain.MapsStatus
	Results []string `json:"results"`
}

type bodyRequest struct{ statusRequest }

func (r *bodyRequest) Body() (any, error) { return map[string]bool{"considerIp": true}, nil }

type imageResponse struct {
	ContentType string
	Data        []byte
}

func (r *imageResponse) ReadBody(contentType string, body io.Reader) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	r.ContentType = contentType
	r.Data = b
	return nil
}

func newNearestRoadsEngine(t *testing.T, srv *httptest.Server, opts ...Option) *Engine[*roads.NearestRoadsRequest, roads.NearestRoadsResponse] {
	t.Helper()

	opts = append([]Option{WithBaseURL(srv.URL), WithBackoff(time.Millisecond)}, opts...)
	e, err := New[*roads.NearestRoadsRequest, roads.NearestRoadsResponse]("nearestRoads", srv.Client(), opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestEngineQueryNearestRoads(t *testing.T) {
	var gotURI string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"snappedPoints":[{"location":{"latitude":1.0001,"longitude":1.0002},"originalIndex":0,"placeId":"ChIJ1"}]}`)
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	e := newNearestRoadsEngine(t, srv, WithObserver(obs))

	req := &roads.NearestRoadsRequest{
		Key:    "abc",
		Points: []domain.Coordinate{domain.NewCoordinate(1, 1), domain.NewCoordinate(2, 2)},
	}

	resp, err := e.Query(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotURI != "/v1/nearestRoads?key=abc&points=1%2C1%7C2%2C2" {
		t.Fatalf("server saw %q", gotURI)
	}
	if len(resp.SnappedPoints) != 1 || resp.SnappedPoints[0].PlaceID != "ChIJ1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if idx := resp.SnappedPoints[0].OriginalIndex; idx == nil || *idx != 0 {
		t.Fatalf("originalIndex = %v", idx)
	}

	if len(obs.calls) != 1 {
		t.Fatalf("expected 1 observed call, got %d", len(obs.calls))
	}
	if c := obs.calls[0]; c.Outcome != "ok" || c.HTTPStatus != http.StatusOK || c.Endpoint != "nearestRoads" {
		t.Fatalf("unexpected call record: %+v", c)
	}
}

func TestEngineValidationFailsBeforeNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	quota := &denyQuota{}
	obs := &recordingObserver{}
	e := newNearestRoadsEngine(t, srv, WithQuota(quota), WithObserver(obs))

	_, err := e.Query(context.Background(), &roads.NearestRoadsRequest{Key: "abc"})
	if err == nil || err.Error() != "Points is required" {
		t.Fatalf("err = %v, want Points is required", err)
	}
	if !apperr.Is(err, apperr.KindMissingPoints) {
		t.Fatalf("kind = %v", apperr.GetKind(err))
	}

	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("server was called %d times", hits)
	}
	if quota.called != 0 {
		t.Fatal("quota consulted for an invalid request")
	}
	if len(obs.calls) != 0 {
		t.Fatal("observer notified for an invalid request")
	}
}

func TestEngineQuotaDeniesBeforeNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	e := newNearestRoadsEngine(t, srv, WithQuota(&denyQuota{}))

	_, err := e.Query(context.Background(), &roads.NearestRoadsRequest{Key: "abc", Points: []domain.Coordinate{{}}})
	if !apperr.Is(err, apperr.KindQuotaExceeded) {
		t.Fatalf("err = %v, want quota exceeded", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("server was called")
	}
}

func TestEngineRetriesTransientFailures(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"snappedPoints":[]}`)
	}))
	defer srv.Close()

	e := newNearestRoadsEngine(t, srv)

	if _, err := e.Query(context.Background(), &roads.NearestRoadsRequest{Key: "abc", Points: []domain.Coordinate{{}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Fatalf("hits = %d, want 3", got)
	}
}

func TestEngineDoesNotRetryClientErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"Invalid points","status":"INVALID_ARGUMENT"}}`)
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	e := newNearestRoadsEngine(t, srv, WithObserver(obs))

	_, err := e.Query(context.Background(), &roads.NearestRoadsRequest{Key: "abc", Points: []domain.Coordinate{{}}})
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("err = %v, want upstream", err)
	}
	if err.Error() != "nearestRoads: Invalid points" {
		t.Fatalf("message = %q", err.Error())
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("hits = %d, want 1", got)
	}
	if len(obs.calls) != 1 || obs.calls[0].HTTPStatus != http.StatusBadRequest || obs.calls[0].Outcome != "upstream" {
		t.Fatalf("unexpected call records: %+v", obs.calls)
	}
}

func TestEngineMapsAPIStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`)
	}))
	defer srv.Close()

	e, err := New[*statusRequest, statusResponse]("test", srv.Client(), WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	resp, err := e.Query(context.Background(), &statusRequest{key: "abc"})
	if !apperr.Is(err, apperr.KindAPIStatus) {
		t.Fatalf("err = %v, want api status", err)
	}
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Status != "REQUEST_DENIED" {
		t.Fatalf("status = %+v", ae)
	}
	if resp == nil || resp.Status != domain.StatusRequestDenied {
		t.Fatalf("expected decoded response alongside error, got %+v", resp)
	}
}

func TestEngineZeroResultsIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
	}))
	defer srv.Close()

	e, _ := New[*statusRequest, statusResponse]("test", srv.Client(), WithBaseURL(srv.URL))

	resp, err := e.Query(context.Background(), &statusRequest{key: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != domain.StatusZeroResults {
		t.Fatalf("status = %q", resp.Status)
	}
}

func TestEnginePostsBody(t *testing.T) {
	var method string
	var body map[string]bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		_ = json.NewDecoder(r.Body).Decode(&body)
		fmt.Fprint(w, `{"status":"OK","results":[]}`)
	}))
	defer srv.Close()

	e, _ := New[*bodyRequest, statusResponse]("post", srv.Client(), WithBaseURL(srv.URL))

	if _, err := e.Query(context.Background(), &bodyRequest{statusRequest{key: "abc"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != http.MethodPost {
		t.Fatalf("method = %s, want POST", method)
	}
	if !body["considerIp"] {
		t.Fatalf("body = %v", body)
	}
}

func TestEngineReadsRawBodies(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer srv.Close()

	e, _ := New[*statusRequest, imageResponse]("image", srv.Client(), WithBaseURL(srv.URL))

	resp, err := e.Query(context.Background(), &statusRequest{key: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ContentType != "image/png" || !bytes.Equal(resp.Data, png) {
		t.Fatalf("unexpected image: %+v", resp)
	}
}

func TestEngineRespectsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	e := newNearestRoadsEngine(t, srv, WithBackoff(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := e.Query(ctx, &roads.NearestRoadsRequest{Key: "abc", Points: []domain.Coordinate{{}}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New[*statusRequest, statusResponse]("", http.DefaultClient); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := New[*statusRequest, statusResponse]("x", nil); err == nil {
		t.Error("expected error for nil client")
	}
	if _, err := New[*statusRequest, statusResponse]("x", http.DefaultClient, WithBaseURL("/relative")); err == nil {
		t.Error("expected error for relative base url")
	}
	if _, err := New[*statusRequest, statusResponse]("x", http.DefaultClient, WithMaxAttempts(0)); err == nil {
		t.Error("expected error for zero attempts")
	}
}
