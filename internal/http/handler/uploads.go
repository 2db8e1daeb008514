package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"avatarhub/internal/core"
	"avatarhub/internal/http/payload"
)

func (h *AvatarHandler) HandleSaveAvatar(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AvatarRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Avatar URL missing",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SaveAvatar,
			"request_id", requestId)
		return
	}

	path, err := h.media.FetchAvatar(r.Context(), req.AvatarURL)
	if err != nil {
		resp := Response{}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			httpCode = http.StatusBadRequest
			resp.Message = "Avatar URL missing"
			resp.Error = err.Error()
		case errors.Is(err, core.ErrFetchFailed):
			resp.Message = "Failed to download avatar"
		default:
			resp.Message = "Failed to save avatar"
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to save avatar",
			"error", err,
			"url", req.AvatarURL,
			"handler", SaveAvatar,
			"request_id", requestId)
		return
	}

	h.respond(w, AvatarSavedResponse{
		Message: "Avatar saved",
		File:    path,
	}, http.StatusOK,
		requestId)
}

func (h *AvatarHandler) HandleGenerateAvatar(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.parseMultipart(w, r, GenerateAvatar, "message") {
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["avatar"]
	if len(headers) == 0 {
		msg := "No file part"
		if _, ok := r.MultipartForm.Value["avatar"]; ok {
			msg = "No selected file"
		}
		h.respond(w, Response{Message: msg}, http.StatusBadRequest, requestId)
		h.logs.Errorw("no avatar in request",
			"reason", msg,
			"handler", GenerateAvatar,
			"request_id", requestId)
		return
	}

	upload, closeFn, err := openUpload(headers[0])
	if err != nil {
		h.respond(w, Response{
			Message: "Could not read uploaded file",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to open uploaded file",
			"error", err,
			"handler", GenerateAvatar,
			"request_id", requestId)
		return
	}
	defer closeFn()

	path, err := h.media.IngestSingle(r.Context(), upload)
	if err != nil {
		resp := Response{
			Message: "Could not store uploaded file",
			Error:   "unexpected error occurred",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidInput) {
			httpCode = http.StatusBadRequest
			resp = Response{Message: "No selected file", Error: err.Error()}
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to ingest avatar",
			"error", err,
			"handler", GenerateAvatar,
			"request_id", requestId)
		return
	}

	h.respond(w, AvatarUploadedResponse{
		Message:  "Avatar uploaded successfully",
		Filename: path,
	}, http.StatusCreated,
		requestId)
}

func (h *AvatarHandler) HandleUserUploads(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.parseMultipart(w, r, UserUploads, "error") {
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		msg := "No files part"
		if _, ok := r.MultipartForm.Value["files"]; ok {
			msg = "No files uploaded"
		}
		h.respond(w, Response{Error: msg}, http.StatusBadRequest, requestId)
		h.logs.Errorw("no files in request",
			"reason", msg,
			"handler", UserUploads,
			"request_id", requestId)
		return
	}

	if h.opts.MaxUploadFiles > 0 && len(headers) > h.opts.MaxUploadFiles {
		h.respond(w, Response{
			Error: fmt.Sprintf("Too many files, at most %d allowed", h.opts.MaxUploadFiles),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("too many files in request",
			"count", len(headers),
			"handler", UserUploads,
			"request_id", requestId)
		return
	}

	uploads := make([]core.Upload, 0, len(headers))
	for _, fh := range headers {
		upload, closeFn, err := openUpload(fh)
		if err != nil {
			h.respond(w, Response{Error: "Could not read uploaded files"}, http.StatusInternalServerError, requestId)
			h.logs.Errorw("failed to open uploaded file",
				"error", err,
				"handler", UserUploads,
				"request_id", requestId)
			return
		}
		defer closeFn()
		uploads = append(uploads, upload)
	}

	report, err := h.media.IngestMultiple(r.Context(), h.baseURL(r), uploads)
	if err != nil {
		resp := Response{Error: "Could not store uploaded files"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidInput) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to ingest files",
			"error", err,
			"handler", UserUploads,
			"request_id", requestId)
		return
	}

	h.logs.Infow("files uploaded",
		"count", report.Uploaded,
		"handler", UserUploads,
		"request_id", requestId)

	h.respond(w, UploadsResponse{
		Status:   "success",
		Uploaded: report.Uploaded,
		Files:    report.Files,
	}, http.StatusOK,
		requestId)
}

// parseMultipart caps the request body and parses it as a multipart form.
// On failure it writes the response, using errKey ("message" or "error") as
// the JSON member for the human readable text, and returns false.
func (h *AvatarHandler) parseMultipart(w http.ResponseWriter, r *http.Request, route, errKey string) bool {
	if h.opts.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	}

	err := r.ParseMultipartForm(multipartMemory)
	if err == nil {
		return true
	}

	requestId := requestID(r)
	code := http.StatusBadRequest
	text := "No file part"
	if errKey == "error" {
		text = "No files part"
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		code = http.StatusRequestEntityTooLarge
		text = fmt.Sprintf("Upload exceeds %d bytes", maxErr.Limit)
	}

	resp := Response{Error: text}
	if errKey == "message" {
		resp = Response{Message: text, Error: err.Error()}
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw("failed to parse multipart form",
		"error", err,
		"handler", route,
		"request_id", requestId)
	return false
}

func openUpload(fh *multipart.FileHeader) (core.Upload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return core.Upload{}, nil, fmt.Errorf("open %q: %w", fh.Filename, err)
	}

	return core.Upload{
		OriginalName: fh.Filename,
		ContentType:  fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		Content:      f,
	}, func() { _ = f.Close() }, nil
}
