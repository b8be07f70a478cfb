// Package client implements the HTTP transport for the ModHub API: the
// endpoint route table, a request builder for form-encoded POST bodies, and
// decoding of the platform's JSON success and error payloads.
package client

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/modhubco/modhub/pkg/credentials"
)

// DefaultHost is the production API host.
const DefaultHost = "https://api.modhub.io/v1"

const defaultTimeout = 30 * time.Second

// Client issues requests against one API host using one set of credentials.
// It holds no other state and is safe for concurrent use, but callers must
// not share credentials across an authentication exchange; exchanges return
// a new Client via WithCredentials.
type Client struct {
	host  string
	creds credentials.Credentials
	http  *http.Client
	log   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHost overrides the API host.
func WithHost(host string) Option {
	return func(c *Client) {
		c.host = strings.TrimRight(host, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client. Timeouts, retries,
// and TLS configuration all belong to the HTTP client, not to this package.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger. Requests are logged at debug level; bodies and
// credential material are never logged.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for the given credentials.
func New(creds credentials.Credentials, opts ...Option) *Client {
	c := &Client{
		host:  DefaultHost,
		creds: creds,
		http:  &http.Client{Timeout: defaultTimeout},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Credentials returns the credentials the client was built with.
func (c *Client) Credentials() credentials.Credentials {
	return c.creds
}

// WithCredentials returns a copy of the client carrying replacement
// credentials. The original client keeps its old credentials; callers that
// completed an authentication exchange should discard it.
func (c *Client) WithCredentials(creds credentials.Credentials) *Client {
	return &Client{
		host:  c.host,
		creds: creds,
		http:  c.http,
		log:   c.log,
	}
}

// Host returns the API host the client targets.
func (c *Client) Host() string {
	return c.host
}
