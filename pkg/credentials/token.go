package credentials

import "errors"

// Token is an access token with an optional Unix timestamp of the date the
// token expires. ExpiredAt is opaque data reported by the platform; it is
// never compared against the current time here, and 0 means the platform did
// not report an expiry.
type Token struct {
	Value     string
	ExpiredAt uint64
}

// ErrUnauthorized indicates the API key, access token, or security code was
// rejected by the platform as incorrect, revoked, or expired.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTokenRequired indicates an operation that needs an access token was
// attempted with key-only credentials.
var ErrTokenRequired = errors.New("access token is required")
