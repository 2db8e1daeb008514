package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"avatarhub/internal/http/handler/middleware"

	"go.uber.org/zap"
)

var (
	Root            = "GET /{$}"
	Register        = "POST /register"
	Login           = "GET /login"
	SaveAvatar      = "POST /save-avatar"
	GenerateAvatar  = "POST /gernator"
	UserUploads     = "POST /useruploads"
	ServeUserUpload = "GET /useruploads/{filename...}"
	ListImages      = "GET /images"
	ServeUpload     = "GET /uploads/{filename...}"
)

// multipartMemory is how much of a multipart body is kept in memory before
// file parts spill to temporary files.
const multipartMemory = 8 << 20

type Options struct {
	PublicBaseURL  string
	MaxUploadFiles int
	MaxUploadBytes int64
}

type AvatarHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
	media            MediaService
	opts             Options
}

func NewAvatarHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, accounts AccountService, media MediaService, opts Options) *AvatarHandler {
	return &AvatarHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accounts,
		media:            media,
		opts:             opts,
	}
}

// Routes registers every endpoint on mux.
func (h *AvatarHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc(Root, h.HandleRoot)
	mux.HandleFunc(Register, h.HandleRegister)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(SaveAvatar, h.HandleSaveAvatar)
	mux.HandleFunc(GenerateAvatar, h.HandleGenerateAvatar)
	mux.HandleFunc(UserUploads, h.HandleUserUploads)
	mux.HandleFunc(ServeUserUpload, h.HandleServeUserUpload)
	mux.HandleFunc(ListImages, h.HandleListImages)
	mux.HandleFunc(ServeUpload, h.HandleServeUpload)
}

func (h *AvatarHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Message: "Hello, server is running!"}, http.StatusOK, requestID(r))
}

// baseURL is the public address of the service, used to build file URLs.
func (h *AvatarHandler) baseURL(r *http.Request) string {
	if h.opts.PublicBaseURL != "" {
		return strings.TrimRight(h.opts.PublicBaseURL, "/")
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}

	return scheme + "://" + r.Host
}

func requestID(r *http.Request) string {
	return middleware.RequestIDFrom(r.Context())
}

func (h *AvatarHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
