package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"avatarhub/internal/core"
	"avatarhub/internal/http/handler"
	"avatarhub/internal/http/handler/fake"
	"avatarhub/internal/http/payload"
	"avatarhub/internal/storage"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type part struct {
	field    string
	filename string
	content  string
}

func multipartRequest(target string, parts ...part) *http.Request {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, p.field, p.filename))
		h.Set("Content-Type", "image/png")
		pw, err := mw.CreatePart(h)
		Expect(err).NotTo(HaveOccurred())
		_, err = pw.Write([]byte(p.content))
		Expect(err).NotTo(HaveOccurred())
	}
	Expect(mw.Close()).To(Succeed())

	req := httptest.NewRequest("POST", target, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
	return body
}

var _ = Describe("AvatarHandler", func() {
	var (
		ah            *handler.AvatarHandler
		fakeAccounts  *fake.AccountService
		fakeMedia     *fake.MediaService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		opts          handler.Options
		mux           *http.ServeMux
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeAccounts = new(fake.AccountService)
		fakeMedia = new(fake.MediaService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload
		opts = handler.Options{
			MaxUploadFiles: 3,
			MaxUploadBytes: 1 << 20,
		}

		w = httptest.NewRecorder()
		mux = http.NewServeMux()
	})

	JustBeforeEach(func() {
		ah = handler.NewAvatarHandler(fakeLogger, fakeValidator, fakeAccounts, fakeMedia, opts)
		ah.Routes(mux)
		mux.ServeHTTP(w, req)
	})

	Describe("HandleRoot", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/", nil)
		})

		It("should say the server is running", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody(w)).To(HaveKeyWithValue("message", "Hello, server is running!"))
		})
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/register", strings.NewReader(`{"name":"Alice","email":"alice@example.com","password":"pw"}`))
			req.Header.Set("Content-Type", "application/json")
		})

		When("registration succeeds", func() {
			It("should return 201", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(decodeBody(w)).To(HaveKeyWithValue("message", "User registered successfully"))
				Expect(fakeAccounts.RegisterCallCount()).To(Equal(1))
				_, msg := fakeAccounts.RegisterArgsForCall(0)
				Expect(msg).To(Equal(core.RegisterMessage{Name: "Alice", Email: "alice@example.com", Password: "pw"}))
			})
		})

		When("a field is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/register", strings.NewReader(`{"name":"Alice","email":"alice@example.com"}`))
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody(w)).To(HaveKeyWithValue("message", "Missing fields"))
				Expect(fakeAccounts.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeAccounts.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the email is taken", func() {
			BeforeEach(func() {
				fakeAccounts.RegisterReturns(core.ErrEmailTaken)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(decodeBody(w)).To(HaveKeyWithValue("message", "User already exists"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeAccounts.RegisterReturns(fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/login?email=alice%40example.com&password=pw", nil)
		})

		When("the credentials match", func() {
			It("should return 200 with success", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				body := decodeBody(w)
				Expect(body).To(HaveKeyWithValue("success", true))
				Expect(body).To(HaveKeyWithValue("message", "Login successful"))
				_, msg := fakeAccounts.LoginArgsForCall(0)
				Expect(msg).To(Equal(core.LoginMessage{Email: "alice@example.com", Password: "pw"}))
			})
		})

		When("the credentials do not match", func() {
			BeforeEach(func() {
				fakeAccounts.LoginReturns(core.ErrInvalidCredentials)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				body := decodeBody(w)
				Expect(body).To(HaveKeyWithValue("success", false))
				Expect(body).To(HaveKeyWithValue("message", "Invalid credentials"))
			})
		})

		When("the password is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/login?email=alice%40example.com", nil)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody(w)).To(HaveKeyWithValue("message", "Email and password required"))
				Expect(fakeAccounts.LoginCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleSaveAvatar", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/save-avatar", strings.NewReader(`{"avatar_url":"https://cdn.example.com/cat.png"}`))
			fakeMedia.FetchAvatarReturns(filepath.Join("uploads", "cat.png"), nil)
		})

		When("the avatar is downloaded", func() {
			It("should return the stored path", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				body := decodeBody(w)
				Expect(body).To(HaveKeyWithValue("message", "Avatar saved"))
				Expect(body).To(HaveKeyWithValue("file", filepath.Join("uploads", "cat.png")))
				_, u := fakeMedia.FetchAvatarArgsForCall(0)
				Expect(u).To(Equal("https://cdn.example.com/cat.png"))
			})
		})

		When("the url is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/save-avatar", strings.NewReader(`{}`))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody(w)).To(HaveKeyWithValue("message", "Avatar URL missing"))
				Expect(fakeMedia.FetchAvatarCallCount()).To(Equal(0))
			})
		})

		When("the download fails", func() {
			BeforeEach(func() {
				fakeMedia.FetchAvatarReturns("", fmt.Errorf("%w: 404", core.ErrFetchFailed))
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(decodeBody(w)).To(HaveKeyWithValue("message", "Failed to download avatar"))
			})
		})
	})

	Describe("HandleGenerateAvatar", func() {
		var received core.Upload
		var content string

		BeforeEach(func() {
			req = multipartRequest("/gernator", part{field: "avatar", filename: "face.png", content: "\x89PNG"})
			fakeMedia.IngestSingleStub = func(_ context.Context, u core.Upload) (string, error) {
				received = u
				data, err := io.ReadAll(u.Content)
				content = string(data)
				return filepath.Join("uploads", "face.png"), err
			}
		})

		When("a file is uploaded", func() {
			It("should return 201 with the stored path", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				body := decodeBody(w)
				Expect(body).To(HaveKeyWithValue("message", "Avatar uploaded successfully"))
				Expect(body).To(HaveKeyWithValue("filename", filepath.Join("uploads", "face.png")))
				Expect(received.OriginalName).To(Equal("face.png"))
				Expect(received.ContentType).To(Equal("image/png"))
				Expect(content).To(Equal("\x89PNG"))
			})
		})

		When("the avatar part is missing", func() {
			BeforeEach(func() {
				req = multipartRequest("/gernator", part{field: "other", filename: "face.png", content: "x"})
			})

			It("should return 400 no file part", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody(w)).To(HaveKeyWithValue("message", "No file part"))
				Expect(fakeMedia.IngestSingleCallCount()).To(Equal(0))
			})
		})

		When("the filename is empty", func() {
			BeforeEach(func() {
				req = multipartRequest("/gernator", part{field: "avatar", filename: "", content: ""})
			})

			It("should return 400 no selected file", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody(w)).To(HaveKeyWithValue("message", "No selected file"))
			})
		})

		When("the body is not multipart", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/gernator", strings.NewReader(`{}`))
				req.Header.Set("Content-Type", "application/json")
			})

			It("should return 400 no file part", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody(w)).To(HaveKeyWithValue("message", "No file part"))
			})
		})

		When("the upload is too large", func() {
			BeforeEach(func() {
				opts.MaxUploadBytes = 512
				req = multipartRequest("/gernator", part{field: "avatar", filename: "big.png", content: strings.Repeat("a", 4096)})
			})

			It("should return 413", func() {
				Expect(w.Code).To(Equal(http.StatusRequestEntityTooLarge))
				Expect(fakeMedia.IngestSingleCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleUserUploads", func() {
		BeforeEach(func() {
			req = multipartRequest("/useruploads",
				part{field: "files", filename: "a.png", content: "a"},
				part{field: "files", filename: "b.png", content: "bb"},
			)
			fakeMedia.IngestMultipleReturns(core.IngestReport{
				Uploaded: 2,
				Files: []core.StoredFile{
					{Filename: "1-a.png", Path: "useruploads/1-a.png", URL: "http://example.com/useruploads/1-a.png"},
					{Filename: "1-b.png", Path: "useruploads/1-b.png", URL: "http://example.com/useruploads/1-b.png"},
				},
			}, nil)
		})

		When("files are uploaded", func() {
			It("should return the report", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var resp handler.UploadsResponse
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.Status).To(Equal("success"))
				Expect(resp.Uploaded).To(Equal(2))
				Expect(resp.Files).To(HaveLen(2))

				_, baseURL, uploads := fakeMedia.IngestMultipleArgsForCall(0)
				Expect(baseURL).To(Equal("http://example.com"))
				Expect(uploads).To(HaveLen(2))
				Expect(uploads[0].OriginalName).To(Equal("a.png"))
				Expect(uploads[1].Size).To(Equal(int64(2)))
			})
		})

		When("a public base url is configured", func() {
			BeforeEach(func() {
				opts.PublicBaseURL = "https://avatars.example.org/"
			})

			It("should build urls from it", func() {
				_, baseURL, _ := fakeMedia.IngestMultipleArgsForCall(0)
				Expect(baseURL).To(Equal("https://avatars.example.org"))
			})
		})

		When("the request came through a TLS proxy", func() {
			BeforeEach(func() {
				req.Header.Set("X-Forwarded-Proto", "https")
			})

			It("should use https urls", func() {
				_, baseURL, _ := fakeMedia.IngestMultipleArgsForCall(0)
				Expect(baseURL).To(Equal("https://example.com"))
			})
		})

		When("the files part is missing", func() {
			BeforeEach(func() {
				req = multipartRequest("/useruploads", part{field: "avatar", filename: "a.png", content: "a"})
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody(w)).To(HaveKeyWithValue("error", "No files part"))
			})
		})

		When("no file is selected", func() {
			BeforeEach(func() {
				req = multipartRequest("/useruploads", part{field: "files", filename: "", content: ""})
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody(w)).To(HaveKeyWithValue("error", "No files uploaded"))
			})
		})

		When("too many files are sent", func() {
			BeforeEach(func() {
				opts.MaxUploadFiles = 1
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeMedia.IngestMultipleCallCount()).To(Equal(0))
			})
		})

		When("a name cannot be stored", func() {
			BeforeEach(func() {
				fakeMedia.IngestMultipleReturns(core.IngestReport{}, core.ErrInvalidInput)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("storing fails", func() {
			BeforeEach(func() {
				fakeMedia.IngestMultipleReturns(core.IngestReport{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleListImages", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/images", nil)
			fakeMedia.ListByCategoryReturns(core.Catalog{
				"A": {{Filename: "x.png", URL: "http://example.com/uploads/A/x.png"}},
				"B": {},
			}, nil)
		})

		It("should return every category", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"A":[{"filename":"x.png","url":"http://example.com/uploads/A/x.png"}],"B":[]}`))
			_, baseURL := fakeMedia.ListByCategoryArgsForCall(0)
			Expect(baseURL).To(Equal("http://example.com"))
		})

		When("the directory cannot be read", func() {
			BeforeEach(func() {
				fakeMedia.ListByCategoryReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(decodeBody(w)).To(HaveKeyWithValue("error", "Error reading images"))
			})
		})
	})

	Describe("file serving", func() {
		BeforeEach(func() {
			path := filepath.Join(GinkgoT().TempDir(), "tom.png")
			Expect(os.WriteFile(path, []byte("tom"), 0o644)).To(Succeed())
			fakeMedia.OpenFileStub = func(context.Context, storage.Area, string) (*os.File, error) {
				return os.Open(path)
			}
			req = httptest.NewRequest("GET", "/uploads/cats/tom.png", nil)
		})

		It("should stream the stored bytes", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("tom"))
			Expect(w.Header().Get("Content-Type")).To(Equal("image/png"))

			_, area, name := fakeMedia.OpenFileArgsForCall(0)
			Expect(area).To(Equal(storage.Uploads))
			Expect(name).To(Equal("cats/tom.png"))
		})

		When("a user upload is requested", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/useruploads/1-a.png", nil)
			})

			It("should read from the user uploads area", func() {
				_, area, name := fakeMedia.OpenFileArgsForCall(0)
				Expect(area).To(Equal(storage.UserUploads))
				Expect(name).To(Equal("1-a.png"))
			})
		})

		When("the file does not exist", func() {
			BeforeEach(func() {
				fakeMedia.OpenFileStub = nil
				fakeMedia.OpenFileReturns(nil, core.ErrFileNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(decodeBody(w)).To(HaveKeyWithValue("message", "File not found"))
			})
		})
	})
})
