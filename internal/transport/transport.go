// Package transport is the HTTP collaborator of the session: it knows
// the live/demo gateway base URLs and moves bytes, nothing else. Retry,
// backoff and caching are deliberately absent.
package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	liveBaseURL = "https://api.ig.com/gateway/deal"
	demoBaseURL = "https://demo-api.ig.com/gateway/deal"

	defaultTimeout = 30 * time.Second
)

// Response is one upstream reply. Header is kept because the login
// endpoint issues its tokens as response headers.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Doer is the transport capability consumed by the session.
type Doer interface {
	Get(ctx context.Context, demo bool, url string, headers http.Header) (*Response, error)
	Post(ctx context.Context, demo bool, url string, headers http.Header, body []byte) (*Response, error)
}

// Client is the net/http backed Doer.
type Client struct {
	http *http.Client
}

// NewClient returns a Client with the given request timeout; zero means
// the default of 30s.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

func (c *Client) Get(ctx context.Context, demo bool, url string, headers http.Header) (*Response, error) {
	return c.do(ctx, http.MethodGet, demo, url, headers, nil)
}

func (c *Client) Post(ctx context.Context, demo bool, url string, headers http.Header, body []byte) (*Response, error) {
	return c.do(ctx, http.MethodPost, demo, url, headers, body)
}

func (c *Client) do(ctx context.Context, method string, demo bool, url string, headers http.Header, body []byte) (*Response, error) {
	base := liveBaseURL
	if demo {
		base = demoBaseURL
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, base+url, rd)
	if err != nil {
		return nil, errors.Wrap(err, "build http request")
	}
	for name, values := range headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, url)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read response body of %s %s", method, url)
	}

	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: b}, nil
}
