package publisher

import (
	"errors"
	"time"
)

const (
	// SchemaAuthV1 is the schema identifier for auth audit events.
	SchemaAuthV1 = "modhub.auth.v1"

	// OutcomeOK marks a request the platform accepted.
	OutcomeOK = "ok"
	// OutcomeError marks a request the platform rejected.
	OutcomeError = "error"
)

// ErrEmptyRequestID indicates an empty request id was provided where a value
// is required.
var ErrEmptyRequestID = errors.New("cannot create event with empty request id")

// ErrEmptyRoute indicates an empty route was provided where a value is
// required.
var ErrEmptyRoute = errors.New("cannot create event with empty route")

// Event is the audit payload for a single handled auth request. It carries
// routing metadata only; credential material never enters an event.
type Event struct {
	Schema     string    `json:"schema"`
	RequestID  string    `json:"request_id"`
	Route      string    `json:"route"`
	Status     int       `json:"status"`
	Outcome    string    `json:"outcome"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent creates an Event for one handled request.
func NewEvent(requestID, route string, status int) (*Event, error) {
	if requestID == "" {
		return nil, ErrEmptyRequestID
	}
	if route == "" {
		return nil, ErrEmptyRoute
	}

	outcome := OutcomeOK
	if status >= 400 {
		outcome = OutcomeError
	}

	return &Event{
		Schema:     SchemaAuthV1,
		RequestID:  requestID,
		Route:      route,
		Status:     status,
		Outcome:    outcome,
		OccurredAt: time.Now(),
	}, nil
}
