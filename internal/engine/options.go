package engine

import (
	"errors"
	"fmt"
	"googleapi-client/internal/platform/logger"
	"googleapi-client/internal/ports"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Option configures an Engine. Options are shared across engines, so the
// registry can apply one set to every endpoint.
type Option func(*settings) error

// WithBaseURL sends every call to base instead of the endpoint's own host.
func WithBaseURL(base string) Option {
	return func(s *settings) error {
		u, err := url.Parse(base)
		if err != nil {
			return fmt.Errorf("parse base url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url %q must be absolute", base)
		}
		s.baseURL = u
		return nil
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(s *settings) error {
		if log != nil {
			s.log = log
		}
		return nil
	}
}

// WithRateLimit caps outbound calls per second. Engines built from the same
// limiter share its budget.
func WithRateLimit(l *rate.Limiter) Option {
	return func(s *settings) error {
		s.limiter = l
		return nil
	}
}

// WithMaxAttempts sets how many times a transient failure is attempted.
func WithMaxAttempts(n int) Option {
	return func(s *settings) error {
		if n < 1 {
			return errors.New("max attempts must be at least 1")
		}
		s.maxAttempts = n
		return nil
	}
}

func WithBackoff(d time.Duration) Option {
	return func(s *settings) error {
		if d <= 0 {
			return errors.New("backoff must be positive")
		}
		s.backoff = d
		return nil
	}
}

func WithObserver(o ports.CallObserver) Option {
	return func(s *settings) error {
		if o != nil {
			s.observers = append(s.observers, o)
		}
		return nil
	}
}

func WithQuota(q ports.QuotaGuard) Option {
	return func(s *settings) error {
		s.quota = q
		return nil
	}
}
