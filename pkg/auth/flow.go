// Package auth implements the ModHub authentication flows: the email
// security-code flow, external-provider token exchange (GOG Galaxy, itch.io,
// Oculus, Steam), and account linking.
//
// A Flow is one-shot: each flow performs a single operation and is then
// spent. Flows that produce credentials do not touch the credentials the
// client was built with; they return a brand-new Credentials value carrying
// the same API key and the freshly issued token. Attach it with
// client.WithCredentials and discard the pre-exchange client.
package auth

import (
	"context"
	"errors"

	"github.com/modhubco/modhub/pkg/client"
	"github.com/modhubco/modhub/pkg/credentials"
	"github.com/modhubco/modhub/pkg/query"
)

// ErrSpent indicates a Flow was reused after performing its operation.
var ErrSpent = errors.New("auth: flow already spent")

// Flow performs one authentication operation against the API.
// A Flow has a single owner and must not be shared across goroutines.
type Flow struct {
	client *client.Client
	spent  bool
}

// NewFlow creates a flow bound to the given client.
func NewFlow(c *client.Client) *Flow {
	return &Flow{client: c}
}

func (f *Flow) take() error {
	if f.spent {
		return ErrSpent
	}
	f.spent = true
	return nil
}

// accessToken is the success payload of every token-issuing endpoint.
type accessToken struct {
	Value     string `json:"access_token"`
	ExpiredAt uint64 `json:"date_expires"`
}

func (f *Flow) exchange(ctx context.Context, route client.Route, body string) (credentials.Credentials, error) {
	var t accessToken
	if err := f.client.Request(route).Body(body).Send(ctx, &t); err != nil {
		return credentials.Credentials{}, err
	}
	return credentials.Credentials{
		APIKey: f.client.Credentials().APIKey,
		Token: &credentials.Token{
			Value:     t.Value,
			ExpiredAt: t.ExpiredAt,
		},
	}, nil
}

// RequestCode asks the platform to email a security code to the user.
// Requires only an API key; the client's credentials are unchanged.
func (f *Flow) RequestCode(ctx context.Context, email string) error {
	if err := f.take(); err != nil {
		return err
	}
	body := query.NewFields().Set("email", email).Encode()
	var msg client.Message
	return f.client.Request(client.AuthEmailRequest).Body(body).Send(ctx, &msg)
}

// SecurityCode exchanges an emailed security code for an access token and
// returns new credentials carrying it. Requires only an API key.
func (f *Flow) SecurityCode(ctx context.Context, code string) (credentials.Credentials, error) {
	if err := f.take(); err != nil {
		return credentials.Credentials{}, err
	}
	body := query.NewFields().Set("security_code", code).Encode()
	return f.exchange(ctx, client.AuthEmailExchange, body)
}

// External exchanges third-party identity material for an access token and
// returns new credentials carrying it. The options value selects the
// provider endpoint and the encoded body.
func (f *Flow) External(ctx context.Context, opts ExternalOptions) (credentials.Credentials, error) {
	if err := f.take(); err != nil {
		return credentials.Credentials{}, err
	}
	return f.exchange(ctx, opts.route(), opts.Query())
}

// Link associates an external account id with the authenticated user's email
// on the platform. The client must already hold an access token.
func (f *Flow) Link(ctx context.Context, opts LinkOptions) error {
	if err := f.take(); err != nil {
		return err
	}
	if !f.client.Credentials().HasToken() {
		return credentials.ErrTokenRequired
	}
	var msg client.Message
	return f.client.Request(client.LinkAccount).Body(opts.Query()).Send(ctx, &msg)
}
