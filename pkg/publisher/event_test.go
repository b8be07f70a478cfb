package publisher

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewEvent", func() {
	It("returns an error when the request id is empty", func() {
		event, err := NewEvent("", "/oauth/emailrequest", 200)
		Expect(err).To(MatchError(ErrEmptyRequestID))
		Expect(event).To(BeNil())
	})

	It("returns an error when the route is empty", func() {
		event, err := NewEvent("req-1", "", 200)
		Expect(err).To(MatchError(ErrEmptyRoute))
		Expect(event).To(BeNil())
	})

	It("sets schema, timestamp, and the ok outcome for 2xx", func() {
		before := time.Now()
		event, err := NewEvent("req-1", "/oauth/emailrequest", 200)
		after := time.Now()

		Expect(err).NotTo(HaveOccurred())
		Expect(event.Schema).To(Equal(SchemaAuthV1))
		Expect(event.RequestID).To(Equal("req-1"))
		Expect(event.Route).To(Equal("/oauth/emailrequest"))
		Expect(event.Status).To(Equal(200))
		Expect(event.Outcome).To(Equal(OutcomeOK))
		Expect(event.OccurredAt).To(BeTemporally(">=", before))
		Expect(event.OccurredAt).To(BeTemporally("<=", after.Add(50*time.Millisecond)))
	})

	It("marks 4xx and 5xx as errors", func() {
		for _, status := range []int{401, 422, 502} {
			event, err := NewEvent("req-1", "/external/link", status)
			Expect(err).NotTo(HaveOccurred())
			Expect(event.Outcome).To(Equal(OutcomeError))
		}
	})
})
