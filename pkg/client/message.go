package client

// Message is the acknowledgment payload returned by endpoints that do not
// produce a resource, e.g. the email code request.
type Message struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
