package http

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/publicsuffix"
)

const (
	DefaultTimeout   = time.Second * 30
	DefaultUserAgent = "ingestz"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SessionClient is an HTTPClient that keeps cookies between requests so a
// login session carries over to every later call
type SessionClient struct {
	client    *http.Client
	userAgent string
}

type options struct {
	timeout   time.Duration
	transport http.RoundTripper
	userAgent string
}

// ClientOption is a function that can be used to configure a SessionClient
type ClientOption func(*options)

// WithTimeout sets the per request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithTransport sets the round tripper used for requests
func WithTransport(transport http.RoundTripper) ClientOption {
	return func(o *options) {
		o.transport = transport
	}
}

// WithUserAgent sets the User-Agent sent when a request has none
func WithUserAgent(userAgent string) ClientOption {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// NewSessionClient creates a SessionClient with an empty cookie jar
func NewSessionClient(opts ...ClientOption) (*SessionClient, error) {
	o := options{
		timeout:   DefaultTimeout,
		transport: http.DefaultTransport,
		userAgent: DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(&o)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &SessionClient{
		client: &http.Client{
			Jar:       jar,
			Timeout:   o.timeout,
			Transport: o.transport,
		},
		userAgent: o.userAgent,
	}, nil
}

// Do executes the request with the session's cookies
func (c *SessionClient) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" && c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return c.client.Do(req)
}

// Jar returns the cookie jar holding the session
func (c *SessionClient) Jar() http.CookieJar {
	return c.client.Jar
}
