package auth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/modhubco/modhub/pkg/auth"
)

var _ = Describe("GalaxyOptions", func() {
	It("encodes only the mandatory field when nothing else is set", func() {
		Expect(auth.NewGalaxyOptions("ticket").Query()).To(Equal("appdata=ticket"))
	})

	It("encodes the ticket and email without a date_expires key", func() {
		opts := auth.NewGalaxyOptions("T1").Email("a@b.com")
		Expect(opts.Query()).To(Equal("appdata=T1&email=a%40b.com"))
	})

	It("emits keys in lexicographic order regardless of setter order", func() {
		expected := "appdata=T1&date_expires=1700000000&email=a%40b.com"

		emailFirst := auth.NewGalaxyOptions("T1").Email("a@b.com").ExpiredAt(1700000000)
		Expect(emailFirst.Query()).To(Equal(expected))

		expiryFirst := auth.NewGalaxyOptions("T1").ExpiredAt(1700000000).Email("a@b.com")
		Expect(expiryFirst.Query()).To(Equal(expected))
	})

	It("keeps the last value for a repeated setter", func() {
		opts := auth.NewGalaxyOptions("T1").Email("old@b.com").Email("new@b.com")
		Expect(opts.Query()).To(Equal("appdata=T1&email=new%40b.com"))
	})
})

var _ = Describe("SteamOptions", func() {
	It("encodes only the mandatory field when nothing else is set", func() {
		Expect(auth.NewSteamOptions("ticket").Query()).To(Equal("appdata=ticket"))
	})

	It("emits appdata, date_expires, email in order", func() {
		opts := auth.NewSteamOptions("T1").ExpiredAt(1).Email("a@b.com")
		Expect(opts.Query()).To(Equal("appdata=T1&date_expires=1&email=a%40b.com"))
	})
})

var _ = Describe("ItchioOptions", func() {
	It("encodes only the mandatory field when nothing else is set", func() {
		Expect(auth.NewItchioOptions("jwt").Query()).To(Equal("itchio_token=jwt"))
	})

	It("emits date_expires, email, itchio_token in order", func() {
		opts := auth.NewItchioOptions("jwt").Email("a@b.com").ExpiredAt(2)
		Expect(opts.Query()).To(Equal("date_expires=2&email=a%40b.com&itchio_token=jwt"))
	})
})

var _ = Describe("OculusOptions", func() {
	It("encodes exactly the mandatory fields when nothing else is set", func() {
		opts := auth.NewOculusOptions("n", 42, "tok")
		Expect(opts.Query()).To(Equal("auth_token=tok&nonce=n&user_id=42"))
	})

	It("emits auth_token, date_expires, email, nonce, user_id in order", func() {
		opts := auth.NewOculusOptions("n", 42, "tok").ExpiredAt(3).Email("a@b.com")
		Expect(opts.Query()).To(Equal("auth_token=tok&date_expires=3&email=a%40b.com&nonce=n&user_id=42"))
	})
})
