// Package canvas is a typed client for the Canvas LMS REST API.
//
// The client is immutable after New returns and safe for concurrent use. It
// never retries: every call either returns its result or exactly one error
// from the errdefs taxonomy, or the context's own error on cancellation.
package canvas

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Noah-Moller/CanvasKit/internal/errdefs"
	"github.com/Noah-Moller/CanvasKit/pkg/logging"
	"golang.org/x/oauth2"
)

const (
	apiPrefix = "/api/v1"

	maxRedirects = 10

	// Canvas caps per_page at 100. Link cursors are not followed, so list
	// calls return at most this many records.
	pageSize = 100

	defaultTimeout         = 30 * time.Second
	defaultTodoConcurrency = 4
)

type Client struct {
	baseURL         *url.URL
	http            *http.Client
	logger          *logging.Logger
	timeout         time.Duration
	todoConcurrency int
}

type options struct {
	httpClient      *http.Client
	logger          *logging.Logger
	timeout         time.Duration
	todoConcurrency int
}

type Option func(*options)

// WithHTTPClient sets the client whose transport, redirect policy and cookie
// jar are used underneath the bearer authentication layer.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithTimeout bounds every request, body read included. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTodoConcurrency limits how many course assignment fetches GetTodos
// runs at once.
func WithTodoConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.todoConcurrency = n
		}
	}
}

// New builds a client for https://<domain>/api/v1. The domain must be a bare
// host, optionally with a port, e.g. "school.instructure.com".
func New(domain, token string, opts ...Option) (*Client, error) {
	o := options{
		httpClient:      &http.Client{},
		logger:          logging.Nop(),
		timeout:         defaultTimeout,
		todoConcurrency: defaultTodoConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}

	baseURL, err := baseURLFor(domain)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: api token is empty", errdefs.ErrInvalidConfig)
	}
	if o.timeout < 0 {
		return nil, fmt.Errorf("%w: negative timeout %s", errdefs.ErrInvalidConfig, o.timeout)
	}

	base := o.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   base,
		},
		CheckRedirect: sameHostRedirects(baseURL, o.httpClient.CheckRedirect),
		Jar:           o.httpClient.Jar,
	}

	return &Client{
		baseURL:         baseURL,
		http:            httpClient,
		logger:          o.logger,
		timeout:         o.timeout,
		todoConcurrency: o.todoConcurrency,
	}, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func baseURLFor(domain string) (*url.URL, error) {
	if domain == "" {
		return nil, fmt.Errorf("%w: domain is empty", errdefs.ErrInvalidConfig)
	}
	if strings.ContainsAny(domain, "/\\?#@ \t\r\n") {
		return nil, fmt.Errorf("%w: domain %q must be a bare host", errdefs.ErrInvalidConfig, domain)
	}

	u, err := url.Parse("https://" + domain + apiPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: domain %q: %v", errdefs.ErrInvalidConfig, domain, err)
	}
	if u.Hostname() == "" || u.Host != domain {
		return nil, fmt.Errorf("%w: domain %q is not a network host", errdefs.ErrInvalidConfig, domain)
	}
	return u, nil
}

// sameHostRedirects only follows redirects that stay on the Canvas host over
// https. The bearer token is added by the transport on every hop, so any
// other redirect is returned to the caller as the 3xx response itself.
func sameHostRedirects(base *url.URL, next func(*http.Request, []*http.Request) error) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if req.URL.Scheme != "https" || req.URL.Host != base.Host {
			return http.ErrUseLastResponse
		}
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		if next != nil {
			return next(req, via)
		}
		return nil
	}
}
