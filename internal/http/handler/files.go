package handler

import (
	"errors"
	"net/http"

	"avatarhub/internal/core"
	"avatarhub/internal/storage"
)

func (h *AvatarHandler) HandleListImages(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	catalog, err := h.media.ListByCategory(r.Context(), h.baseURL(r))
	if err != nil {
		h.respond(w, Response{
			Message: "Could not list images",
			Error:   "Error reading images",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list images",
			"error", err,
			"handler", ListImages,
			"request_id", requestId)
		return
	}

	h.respond(w, catalog, http.StatusOK, requestId)
}

func (h *AvatarHandler) HandleServeUpload(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, storage.Uploads, ServeUpload)
}

func (h *AvatarHandler) HandleServeUserUpload(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, storage.UserUploads, ServeUserUpload)
}

func (h *AvatarHandler) serveFile(w http.ResponseWriter, r *http.Request, area storage.Area, route string) {
	requestId := requestID(r)
	name := r.PathValue("filename")

	file, err := h.media.OpenFile(r.Context(), area, name)
	if err != nil {
		if errors.Is(err, core.ErrFileNotFound) {
			h.respond(w, Response{Message: "File not found"}, http.StatusNotFound, requestId)
			return
		}

		h.respond(w, Response{
			Message: "Could not read file",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to open file",
			"error", err,
			"file", name,
			"handler", route,
			"request_id", requestId)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		h.respond(w, Response{Message: "Could not read file"}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to stat file",
			"error", err,
			"file", name,
			"handler", route,
			"request_id", requestId)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
