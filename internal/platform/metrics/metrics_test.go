package metrics

import (
	"context"
	"googleapi-client/internal/ports"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserverCountsCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewObserver(reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	o.ObserveCall(ctx, ports.Call{Endpoint: "nearestRoads", Outcome: "ok", HTTPStatus: 200, Duration: 120 * time.Millisecond})
	o.ObserveCall(ctx, ports.Call{Endpoint: "nearestRoads", Outcome: "ok", HTTPStatus: 200, Duration: 80 * time.Millisecond})
	o.ObserveCall(ctx, ports.Call{Endpoint: "nearestRoads", Outcome: "transport", Duration: time.Second})

	if got := testutil.ToFloat64(o.calls.WithLabelValues("nearestRoads", "ok", "200")); got != 2 {
		t.Errorf("ok calls = %v, want 2", got)
	}
	if got := testutil.ToFloat64(o.calls.WithLabelValues("nearestRoads", "transport", "none")); got != 1 {
		t.Errorf("transport calls = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(o.duration); got != 1 {
		t.Errorf("histogram series = %d, want 1", got)
	}
}

func TestNewObserverReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := NewObserver(reg)
	if err != nil {
		t.Fatalf("first observer: %v", err)
	}
	second, err := NewObserver(reg)
	if err != nil {
		t.Fatalf("second observer: %v", err)
	}

	ctx := context.Background()
	first.ObserveCall(ctx, ports.Call{Endpoint: "roads.nearestRoads", Outcome: "ok", HTTPStatus: 200})
	second.ObserveCall(ctx, ports.Call{Endpoint: "roads.nearestRoads", Outcome: "ok", HTTPStatus: 200})

	if got := testutil.ToFloat64(first.calls.WithLabelValues("roads.nearestRoads", "ok", "200")); got != 2 {
		t.Fatalf("shared counter = %v, want 2", got)
	}
}

func TestNewObserverRejectsConflictingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "googleapi_client_calls_total",
		Help: "unrelated counter without labels",
	}))

	if _, err := NewObserver(reg); err == nil {
		t.Fatal("expected error for a conflicting collector")
	}
}

func TestNewObserverRejectsNilRegisterer(t *testing.T) {
	if _, err := NewObserver(nil); err == nil {
		t.Fatal("expected error")
	}
}
