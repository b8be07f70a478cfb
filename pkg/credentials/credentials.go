// Package credentials holds the authentication material used to talk to the
// ModHub API: an API key plus an optional OAuth2 access token.
package credentials

// Credentials identifies a caller to the platform. The API key never changes
// for the lifetime of a value; authentication flows return a brand-new
// Credentials instead of mutating the one they started from, and the
// pre-exchange value must not be used again.
type Credentials struct {
	APIKey string
	Token  *Token
}

// New creates credentials from an API key alone.
func New(apiKey string) Credentials {
	return Credentials{APIKey: apiKey}
}

// WithToken creates credentials from an API key and an access token, e.g.
// one loaded from the environment. The token carries no expiry.
func WithToken(apiKey, token string) Credentials {
	return Credentials{
		APIKey: apiKey,
		Token:  &Token{Value: token},
	}
}

// HasToken reports whether an access token is attached.
func (c Credentials) HasToken() bool {
	return c.Token != nil
}

// Equal reports whether both the API key and the token match.
func (c Credentials) Equal(other Credentials) bool {
	if c.APIKey != other.APIKey {
		return false
	}
	if (c.Token == nil) != (other.Token == nil) {
		return false
	}
	return c.Token == nil || *c.Token == *other.Token
}

// String renders only whether a token is present. Key and token values never
// appear in logs or debug output.
func (c Credentials) String() string {
	if c.Token != nil {
		return "Credentials(apikey+token)"
	}
	return "Credentials(apikey)"
}
