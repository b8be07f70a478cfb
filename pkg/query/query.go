// Package query provides deterministic form encoding for API request bodies.
package query

import (
	"net/url"
	"strconv"
)

// Fields is a key-unique set of string form fields. Setting a key that is
// already present replaces its value.
type Fields struct {
	values url.Values
}

// NewFields creates an empty field set.
func NewFields() Fields {
	return Fields{values: url.Values{}}
}

// Set stores a field, replacing any previous value for the key.
func (f Fields) Set(key, value string) Fields {
	f.values.Set(key, value)
	return f
}

// SetUint stores a numeric field rendered as a decimal string.
func (f Fields) SetUint(key string, value uint64) Fields {
	f.values.Set(key, strconv.FormatUint(value, 10))
	return f
}

// Encode returns the fields as an application/x-www-form-urlencoded string.
// Keys are emitted in ascending lexicographic order regardless of the order
// they were set, so encoded bodies are deterministic.
func (f Fields) Encode() string {
	return f.values.Encode()
}
