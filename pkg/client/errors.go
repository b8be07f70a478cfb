package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/modhubco/modhub/pkg/credentials"
)

// APIError is the error envelope the platform returns for failed requests:
//
//	{"error": {"code": 401, "error_ref": 11001, "message": "..."}}
type APIError struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
	Ref     int    `json:"error_ref"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error APIError `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d (ref %d): %s", e.Status, e.Ref, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Unwrap maps rejected credentials onto the domain sentinel so callers can
// use errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return credentials.ErrUnauthorized
	}
	return nil
}

func decodeError(status int, payload []byte) error {
	apiErr := &APIError{Status: status}

	var envelope errorEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Ref = envelope.Error.Ref
		apiErr.Message = envelope.Error.Message
	} else if msg := strings.TrimSpace(string(payload)); msg != "" {
		apiErr.Message = msg
	}

	return apiErr
}
