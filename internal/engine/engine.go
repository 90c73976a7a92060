// Package engine executes validated requests against the remote APIs and
// decodes their responses.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/platform/logger"
	"googleapi-client/internal/platform/obs"
	"googleapi-client/internal/ports"
	"googleapi-client/internal/request"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	defaultMaxAttempts = 4
	defaultBackoff     = 200 * time.Millisecond
)

// StatusChecker is implemented by responses that carry an API-level status
// (the "status" field of Maps responses or the "error" envelope of newer APIs).
type StatusChecker interface {
	Err() error
}

// BodyReader is implemented by responses that are not JSON, such as the
// images returned by static maps, street view and place photos.
type BodyReader interface {
	ReadBody(contentType string, r io.Reader) error
}

// Engine issues one kind of request and decodes one kind of response.
//
// An Engine is safe for concurrent use; requests passed to Query must not be
// mutated while the call is in flight.
type Engine[Req request.Request, Resp any] struct {
	settings
	name string
}

// New creates an engine for the endpoint called name (used in logs, metrics
// and quota keys).
func New[Req request.Request, Resp any](name string, client *http.Client, opts ...Option) (*Engine[Req, Resp], error) {
	if name == "" {
		return nil, errors.New("engine name is empty")
	}
	if client == nil {
		return nil, errors.New("engine http client is nil")
	}

	s := settings{
		client:      client,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
		log:         logger.Nop(),
	}
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, fmt.Errorf("engine %s: %w", name, err)
		}
	}

	return &Engine[Req, Resp]{settings: s, name: name}, nil
}

func (e *Engine[Req, Resp]) Name() string { return e.name }

// Query validates req, issues the call and decodes the response.
// Validation errors are returned as produced by the request, before any
// quota, rate limit or network activity.
func (e *Engine[Req, Resp]) Query(ctx context.Context, req Req) (_ *Resp, err error) {
	defer obs.Time(ctx, e.log, "engine."+e.name)(&err)

	target, err := req.URI()
	if err != nil {
		return nil, err
	}
	target = e.rebase(target)

	method := http.MethodGet
	var payload []byte
	if br, ok := any(req).(request.BodyRequest); ok {
		body, err := br.Body()
		if err != nil {
			return nil, err
		}
		if payload, err = marshalBody(body); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, err.Error(), err).WithOp(e.name)
		}
		method = http.MethodPost
	}

	if e.quota != nil {
		if err := e.quota.Allow(ctx, e.name); err != nil {
			return nil, err
		}
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: rate limiter: %w", e.name, err)
		}
	}

	call := ports.Call{
		ID:        uuid.New(),
		RequestID: obs.RequestID(ctx),
		Endpoint:  e.name,
		At:        time.Now(),
	}
	defer func() {
		call.Duration = time.Since(call.At)
		call.Outcome = outcome(err)
		if err != nil {
			call.Err = err.Error()
			e.log.WithContext(ctx).APIError(e.name, call.Outcome, err)
		} else {
			e.log.WithContext(ctx).APICall(e.name, call.Outcome, call.HTTPStatus, call.Duration.Milliseconds())
		}
		for _, o := range e.observers {
			o.ObserveCall(ctx, call)
		}
	}()

	resp, err := e.doWithRetry(ctx, func() (*http.Request, error) {
		return e.newRequest(ctx, method, target.String(), payload)
	})
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) {
			call.HTTPStatus = he.Code
		}
		return nil, e.mapError(err)
	}
	defer resp.Body.Close()
	call.HTTPStatus = resp.StatusCode

	out := new(Resp)
	if br, ok := any(out).(BodyReader); ok {
		if err := br.ReadBody(resp.Header.Get("Content-Type"), resp.Body); err != nil {
			return nil, apperr.Wrap(apperr.KindInvalidResponse, "read response body", err).WithOp(e.name)
		}
		return out, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidResponse, "decode response", err).WithOp(e.name)
	}

	if sc, ok := any(out).(StatusChecker); ok {
		if err := sc.Err(); err != nil {
			var ae *apperr.Error
			if errors.As(err, &ae) {
				return out, ae.WithOp(e.name)
			}
			return out, err
		}
	}

	return out, nil
}

// rebase swaps scheme and host for the configured base URL, keeping path and
// query. Used to point engines at test servers or proxies.
func (e *Engine[Req, Resp]) rebase(u *url.URL) *url.URL {
	if e.baseURL == nil {
		return u
	}

	out := *u
	out.Scheme = e.baseURL.Scheme
	out.Host = e.baseURL.Host
	out.Path = strings.TrimRight(e.baseURL.Path, "/") + u.Path
	return &out
}

func (e *Engine[Req, Resp]) mapError(err error) error {
	var he *httpStatusError
	if !errors.As(err, &he) {
		return fmt.Errorf("%s: execute request: %w", e.name, err)
	}

	// Newer APIs explain 4xx answers in an error envelope.
	var envelope domain.APIError
	if jsonErr := json.Unmarshal([]byte(he.Body), &envelope); jsonErr == nil && envelope.Error != nil {
		msg := envelope.Error.Message
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		return apperr.Wrap(apperr.KindUpstream, msg, err).
			WithOp(e.name).
			WithStatus(strconv.Itoa(he.Code))
	}

	return apperr.Wrap(apperr.KindUpstream, fmt.Sprintf("upstream status %d", he.Code), err).
		WithOp(e.name).
		WithStatus(strconv.Itoa(he.Code))
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if k := apperr.GetKind(err); k != apperr.KindUnknown {
		return k.String()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "canceled"
	}
	return "transport"
}

type settings struct {
	client      *http.Client
	baseURL     *url.URL
	limiter     *rate.Limiter
	maxAttempts int
	backoff     time.Duration
	observers   []ports.CallObserver
	quota       ports.QuotaGuard
	log         *logger.Logger
}
