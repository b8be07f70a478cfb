package auth

import (
	"github.com/modhubco/modhub/pkg/client"
	"github.com/modhubco/modhub/pkg/query"
)

// ExternalOptions is the closed set of provider option types accepted by
// Flow.External. It is implemented only by GalaxyOptions, ItchioOptions,
// OculusOptions, and SteamOptions; each carries its fixed endpoint, so
// provider dispatch cannot fall through to an unknown route.
type ExternalOptions interface {
	// Query returns the form-encoded request body, keys in lexicographic
	// order.
	Query() string

	route() client.Route
}

var (
	_ ExternalOptions = (*GalaxyOptions)(nil)
	_ ExternalOptions = (*ItchioOptions)(nil)
	_ ExternalOptions = (*OculusOptions)(nil)
	_ ExternalOptions = (*SteamOptions)(nil)
)

// GalaxyOptions authenticates with an encrypted GOG Galaxy app ticket.
type GalaxyOptions struct {
	fields query.Fields
}

// NewGalaxyOptions creates options from the encrypted app ticket.
func NewGalaxyOptions(ticket string) *GalaxyOptions {
	return &GalaxyOptions{fields: query.NewFields().Set("appdata", ticket)}
}

// Email sets the email address to create or link a user account with.
func (o *GalaxyOptions) Email(email string) *GalaxyOptions {
	o.fields = o.fields.Set("email", email)
	return o
}

// ExpiredAt sets the Unix timestamp of the date the returned token should
// expire. The platform caps it at the default, which is a common year.
func (o *GalaxyOptions) ExpiredAt(timestamp uint64) *GalaxyOptions {
	o.fields = o.fields.SetUint("date_expires", timestamp)
	return o
}

func (o *GalaxyOptions) Query() string { return o.fields.Encode() }

func (*GalaxyOptions) route() client.Route { return client.AuthGalaxy }

// ItchioOptions authenticates with an itch.io JWT token.
type ItchioOptions struct {
	fields query.Fields
}

// NewItchioOptions creates options from the JWT token.
func NewItchioOptions(token string) *ItchioOptions {
	return &ItchioOptions{fields: query.NewFields().Set("itchio_token", token)}
}

// Email sets the email address to create or link a user account with.
func (o *ItchioOptions) Email(email string) *ItchioOptions {
	o.fields = o.fields.Set("email", email)
	return o
}

// ExpiredAt sets the Unix timestamp of the date the returned token should
// expire. The platform caps it at the default, which is a week.
func (o *ItchioOptions) ExpiredAt(timestamp uint64) *ItchioOptions {
	o.fields = o.fields.SetUint("date_expires", timestamp)
	return o
}

func (o *ItchioOptions) Query() string { return o.fields.Encode() }

func (*ItchioOptions) route() client.Route { return client.AuthItchio }

// OculusOptions authenticates an Oculus user.
type OculusOptions struct {
	fields query.Fields
}

// NewOculusOptions creates options from the nonce, user id, and auth token
// returned by the Oculus SDK.
func NewOculusOptions(nonce string, userID uint64, authToken string) *OculusOptions {
	fields := query.NewFields().
		Set("nonce", nonce).
		SetUint("user_id", userID).
		Set("auth_token", authToken)
	return &OculusOptions{fields: fields}
}

// Email sets the email address to create or link a user account with.
func (o *OculusOptions) Email(email string) *OculusOptions {
	o.fields = o.fields.Set("email", email)
	return o
}

// ExpiredAt sets the Unix timestamp of the date the returned token should
// expire. The platform caps it at the default, which is a common year.
func (o *OculusOptions) ExpiredAt(timestamp uint64) *OculusOptions {
	o.fields = o.fields.SetUint("date_expires", timestamp)
	return o
}

func (o *OculusOptions) Query() string { return o.fields.Encode() }

func (*OculusOptions) route() client.Route { return client.AuthOculus }

// SteamOptions authenticates with an encrypted Steam app ticket.
type SteamOptions struct {
	fields query.Fields
}

// NewSteamOptions creates options from the encrypted app ticket.
func NewSteamOptions(ticket string) *SteamOptions {
	return &SteamOptions{fields: query.NewFields().Set("appdata", ticket)}
}

// Email sets the email address to create or link a user account with.
func (o *SteamOptions) Email(email string) *SteamOptions {
	o.fields = o.fields.Set("email", email)
	return o
}

// ExpiredAt sets the Unix timestamp of the date the returned token should
// expire. The platform caps it at the default, which is a common year.
func (o *SteamOptions) ExpiredAt(timestamp uint64) *SteamOptions {
	o.fields = o.fields.SetUint("date_expires", timestamp)
	return o
}

func (o *SteamOptions) Query() string { return o.fields.Encode() }

func (*SteamOptions) route() client.Route { return client.AuthSteam }
