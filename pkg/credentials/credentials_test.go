package credentials_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/modhubco/modhub/pkg/credentials"
)

var _ = Describe("New", func() {
	It("carries the API key and no token", func() {
		creds := credentials.New("k")
		Expect(creds.APIKey).To(Equal("k"))
		Expect(creds.Token).To(BeNil())
		Expect(creds.HasToken()).To(BeFalse())
	})
})

var _ = Describe("WithToken", func() {
	It("carries the token value without an expiry", func() {
		creds := credentials.WithToken("k", "t")
		Expect(creds.APIKey).To(Equal("k"))
		Expect(creds.Token).NotTo(BeNil())
		Expect(creds.Token.Value).To(Equal("t"))
		Expect(creds.Token.ExpiredAt).To(BeZero())
		Expect(creds.HasToken()).To(BeTrue())
	})
})

var _ = Describe("Equal", func() {
	It("compares API keys", func() {
		Expect(credentials.New("a").Equal(credentials.New("a"))).To(BeTrue())
		Expect(credentials.New("a").Equal(credentials.New("b"))).To(BeFalse())
	})

	It("compares token presence", func() {
		Expect(credentials.New("a").Equal(credentials.WithToken("a", "t"))).To(BeFalse())
		Expect(credentials.WithToken("a", "t").Equal(credentials.New("a"))).To(BeFalse())
	})

	It("compares token values and expiry", func() {
		Expect(credentials.WithToken("a", "t").Equal(credentials.WithToken("a", "t"))).To(BeTrue())
		Expect(credentials.WithToken("a", "t").Equal(credentials.WithToken("a", "u"))).To(BeFalse())

		expiring := credentials.Credentials{
			APIKey: "a",
			Token:  &credentials.Token{Value: "t", ExpiredAt: 1},
		}
		Expect(credentials.WithToken("a", "t").Equal(expiring)).To(BeFalse())
	})
})

var _ = Describe("String", func() {
	It("reveals only token presence", func() {
		Expect(credentials.New("super-secret-key").String()).To(Equal("Credentials(apikey)"))
		Expect(credentials.WithToken("super-secret-key", "super-secret-token").String()).
			To(Equal("Credentials(apikey+token)"))
	})

	It("never leaks values through fmt verbs", func() {
		creds := credentials.WithToken("super-secret-key", "super-secret-token")
		for _, rendered := range []string{
			fmt.Sprintf("%s", creds),
			fmt.Sprintf("%v", creds),
			fmt.Sprintf("%+v", creds),
		} {
			Expect(rendered).NotTo(ContainSubstring("super-secret-key"))
			Expect(rendered).NotTo(ContainSubstring("super-secret-token"))
		}
	})
})
