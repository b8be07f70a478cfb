package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Request is a single pending API call. Requests are built by Client.Request
// and sent exactly once.
type Request struct {
	client *Client
	route  Route
	body   string
}

// Request starts building a request for the given route.
func (c *Client) Request(route Route) *Request {
	return &Request{client: c, route: route}
}

// Body sets the form-encoded request body.
func (r *Request) Body(data string) *Request {
	r.body = data
	return r
}

// Send issues the request and decodes the JSON success payload into out.
// Pass nil to discard the payload. Non-2xx responses are decoded into an
// *APIError; transport and decoding failures are returned wrapped and are
// never retried here.
func (r *Request) Send(ctx context.Context, out any) error {
	c := r.client
	spec := routes[r.route]

	u, err := url.Parse(c.host + spec.path)
	if err != nil {
		return fmt.Errorf("building request url: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.creds.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, spec.method, u.String(), strings.NewReader(r.body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if c.creds.Token != nil {
		req.Header.Set("Authorization", "Bearer "+c.creds.Token.Value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.log.Debug("api request",
		zap.String("method", spec.method),
		zap.String("path", spec.path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}
