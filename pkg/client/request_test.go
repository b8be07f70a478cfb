package client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/modhubco/modhub/pkg/client"
	"github.com/modhubco/modhub/pkg/credentials"
)

var _ = Describe("Request", func() {
	It("attaches the api key, form content type, and body", func() {
		var got *http.Request
		var gotBody string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			got, gotBody = r.Clone(context.Background()), string(body)
			_, _ = w.Write([]byte(`{"code":200,"message":"OK"}`))
		}))
		defer srv.Close()

		c := client.New(credentials.New("key-1"), client.WithHost(srv.URL))

		var msg client.Message
		err := c.Request(client.AuthEmailRequest).Body("email=a%40b.com").Send(context.Background(), &msg)
		Expect(err).NotTo(HaveOccurred())

		Expect(got.Method).To(Equal(http.MethodPost))
		Expect(got.URL.Path).To(Equal("/oauth/emailrequest"))
		Expect(got.URL.Query().Get("api_key")).To(Equal("key-1"))
		Expect(got.Header.Get("Content-Type")).To(Equal("application/x-www-form-urlencoded"))
		Expect(got.Header.Get("Accept")).To(Equal("application/json"))
		Expect(got.Header.Get("Authorization")).To(BeEmpty())
		Expect(gotBody).To(Equal("email=a%40b.com"))

		Expect(msg.Code).To(Equal(200))
		Expect(msg.Message).To(Equal("OK"))
	})

	It("attaches a bearer header when a token is held", func() {
		var bearer string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bearer = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := client.New(credentials.WithToken("key-1", "tok-1"), client.WithHost(srv.URL))
		Expect(c.Request(client.LinkAccount).Send(context.Background(), nil)).To(Succeed())
		Expect(bearer).To(Equal("Bearer tok-1"))
	})

	It("decodes the error envelope on failure", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":{"code":422,"error_ref":13004,"message":"The email field is required."}}`))
		}))
		defer srv.Close()

		c := client.New(credentials.New("key-1"), client.WithHost(srv.URL))
		err := c.Request(client.AuthEmailRequest).Send(context.Background(), nil)

		var apiErr *client.APIError
		Expect(errors.As(err, &apiErr)).To(BeTrue())
		Expect(apiErr.Status).To(Equal(http.StatusUnprocessableEntity))
		Expect(apiErr.Ref).To(Equal(13004))
		Expect(apiErr.Message).To(Equal("The email field is required."))
		Expect(errors.Is(err, credentials.ErrUnauthorized)).To(BeFalse())
	})

	It("maps 401 responses onto ErrUnauthorized", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":401,"error_ref":11001,"message":"The supplied API key is invalid."}}`))
		}))
		defer srv.Close()

		c := client.New(credentials.New("bad-key"), client.WithHost(srv.URL))
		err := c.Request(client.AuthEmailRequest).Send(context.Background(), nil)
		Expect(errors.Is(err, credentials.ErrUnauthorized)).To(BeTrue())
	})

	It("keeps a non-JSON error body as the message", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream unavailable"))
		}))
		defer srv.Close()

		c := client.New(credentials.New("key-1"), client.WithHost(srv.URL))
		err := c.Request(client.AuthEmailRequest).Send(context.Background(), nil)
		Expect(err).To(MatchError(ContainSubstring("upstream unavailable")))
	})

	It("returns a parse error for malformed success payloads", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		c := client.New(credentials.New("key-1"), client.WithHost(srv.URL))
		var msg client.Message
		err := c.Request(client.AuthEmailRequest).Send(context.Background(), &msg)
		Expect(err).To(MatchError(ContainSubstring("parsing response")))
	})
})

var _ = Describe("WithCredentials", func() {
	It("returns a new client and leaves the original untouched", func() {
		original := client.New(credentials.New("key-1"), client.WithHost("http://localhost:1"))
		replaced := original.WithCredentials(credentials.WithToken("key-1", "tok-1"))

		Expect(original.Credentials().HasToken()).To(BeFalse())
		Expect(replaced.Credentials().HasToken()).To(BeTrue())
		Expect(replaced.Host()).To(Equal(original.Host()))
	})
})

var _ = Describe("Route", func() {
	It("marks only account linking as token-gated", func() {
		Expect(client.LinkAccount.NeedsToken()).To(BeTrue())
		for _, route := range []client.Route{
			client.AuthEmailRequest,
			client.AuthEmailExchange,
			client.AuthGalaxy,
			client.AuthItchio,
			client.AuthOculus,
			client.AuthSteam,
		} {
			Expect(route.NeedsToken()).To(BeFalse())
		}
	})
})
