// Package metrics exports outbound API call metrics to Prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"googleapi-client/internal/ports"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "googleapi"

// Observer records every executed call. It implements ports.CallObserver.
type Observer struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewObserver registers the client metrics on reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics.
// Registering twice on the same reg reuses the collectors already there, so
// every Observer built on one registry feeds the same series.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	if reg == nil {
		return nil, errors.New("metrics: registerer is nil")
	}

	calls, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "calls_total",
		Help:      "Total outbound API calls by endpoint, outcome and HTTP status",
	}, []string{"endpoint", "outcome", "status"}))
	if err != nil {
		return nil, err
	}

	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "call_duration_seconds",
		Help:      "Outbound API call latency in seconds, retries included",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"endpoint"}))
	if err != nil {
		return nil, err
	}

	return &Observer{calls: calls, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	var zero C
	return zero, fmt.Errorf("metrics: register collector: %w", err)
}

func (o *Observer) ObserveCall(_ context.Context, call ports.Call) {
	status := "none"
	if call.HTTPStatus > 0 {
		status = strconv.Itoa(call.HTTPStatus)
	}

	o.calls.WithLabelValues(call.Endpoint, call.Outcome, status).Inc()
	o.duration.WithLabelValues(call.Endpoint).Observe(call.Duration.Seconds())
}
