// Package httpclient builds the *http.Client shared by every endpoint.
package httpclient

import (
	"errors"
	"net"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second

	// connection lifetime of the pooled transport
	idleConnTimeout = 5 * time.Minute

	acceptHeader = "application/json"
)

// ConfigureDefault applies the shared defaults to client: a 30 second timeout
// when it has none, and an Accept: application/json header on every request
// that does not set its own.
func ConfigureDefault(client *http.Client) error {
	if client == nil {
		return errors.New("httpClient is required")
	}

	if client.Timeout == 0 {
		client.Timeout = DefaultTimeout
	}

	if _, ok := client.Transport.(*acceptTransport); !ok {
		client.Transport = &acceptTransport{base: client.Transport}
	}
	return nil
}

// NewDefault returns a client with its own pooled transport.
func NewDefault() *http.Client {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       idleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}

	c := &http.Client{Transport: tr}
	_ = ConfigureDefault(c)
	return c
}

// NewNoHandler returns a client on http.DefaultTransport, for hosts that
// manage connection pooling themselves.
func NewNoHandler() *http.Client {
	c := &http.Client{}
	_ = ConfigureDefault(c)
	return c
}

// New picks NewNoHandler or NewDefault and overrides the timeout when
// timeout is positive.
func New(noHandler bool, timeout time.Duration) *http.Client {
	var c *http.Client
	if noHandler {
		c = NewNoHandler()
	} else {
		c = NewDefault()
	}
	if timeout > 0 {
		c.Timeout = timeout
	}
	return c
}

type acceptTransport struct {
	base http.RoundTripper
}

func (t *acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	if req.Header.Get("Accept") != "" {
		return base.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("Accept", acceptHeader)
	return base.RoundTrip(clone)
}
