package payload_test

import (
	"net/http/httptest"
	"net/url"
	"strings"

	"avatarhub/internal/core"
	"avatarhub/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Payload", func() {
	Describe("Decoder", func() {
		It("should decode JSON and ignore unknown members", func() {
			req := httptest.NewRequest("POST", "/register", strings.NewReader(`{"name":"A","email":"a@x.com","password":"p","age":3}`))

			var register payload.RegisterRequest
			err := payload.Decoder{}.DecodeJSONPayload(req, &register)
			Expect(err).NotTo(HaveOccurred())
			Expect(register.ToMessage()).To(Equal(core.RegisterMessage{Name: "A", Email: "a@x.com", Password: "p"}))
		})

		It("should reject malformed JSON", func() {
			req := httptest.NewRequest("POST", "/register", strings.NewReader(`{"name":`))

			var register payload.RegisterRequest
			err := payload.Decoder{}.DecodeJSONPayload(req, &register)
			Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		})
	})

	DescribeTable("RegisterRequest.Validate",
		func(req payload.RegisterRequest, valid bool) {
			if valid {
				Expect(req.Validate()).To(Succeed())
			} else {
				Expect(req.Validate()).NotTo(Succeed())
			}
		},
		Entry("complete", payload.RegisterRequest{Name: "A", Email: "a@x.com", Password: "p"}, true),
		Entry("no name", payload.RegisterRequest{Email: "a@x.com", Password: "p"}, false),
		Entry("no email", payload.RegisterRequest{Name: "A", Password: "p"}, false),
		Entry("no password", payload.RegisterRequest{Name: "A", Email: "a@x.com"}, false),
	)

	Describe("LoginRequest", func() {
		It("should read credentials from the query", func() {
			values, err := url.ParseQuery("email=a%40x.com&password=p%26q")
			Expect(err).NotTo(HaveOccurred())

			req := payload.NewLoginRequest(values)
			Expect(req.Validate()).To(Succeed())
			Expect(req.ToMessage()).To(Equal(core.LoginMessage{Email: "a@x.com", Password: "p&q"}))
		})

		It("should require both parameters", func() {
			req := payload.NewLoginRequest(url.Values{"password": {"p"}})
			Expect(req.Validate()).NotTo(Succeed())
		})
	})

	DescribeTable("AvatarRequest.Validate",
		func(raw string, valid bool) {
			err := payload.AvatarRequest{AvatarURL: raw}.Validate()
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("http url", "http://example.com/a.png", true),
		Entry("https url", "https://cdn.example.com/avatars/cat.png?size=64", true),
		Entry("missing", "", false),
		Entry("not a url", "not a url", false),
	)
})
