package handler

import (
	"errors"
	"net/http"

	"avatarhub/internal/core"
	"avatarhub/internal/http/payload"
)

func (h *AvatarHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Missing fields",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	err = h.accounts.Register(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			httpCode = http.StatusBadRequest
			resp.Message = "Missing fields"
		case errors.Is(err, core.ErrEmailTaken):
			httpCode = http.StatusConflict
			resp.Message = "User already exists"
		default:
			resp.Message = "Registration failed"
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.logs.Infow("user registered",
		"handler", Register,
		"request_id", requestId)
	h.respond(w, Response{Message: "User registered successfully"}, http.StatusCreated, requestId)
}

func (h *AvatarHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.NewLoginRequest(r.URL.Query())
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Email and password required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate login parameters",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	err := h.accounts.Login(r.Context(), req.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			h.respond(w, LoginResponse{
				Success: false,
				Message: "Invalid credentials",
			}, http.StatusUnauthorized,
				requestId)
			h.logs.Infow("login rejected",
				"handler", Login,
				"request_id", requestId)
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			h.respond(w, Response{Message: "Email and password required"}, http.StatusBadRequest, requestId)
			return
		}

		h.respond(w, LoginResponse{
			Success: false,
			Message: "Login failed",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, LoginResponse{
		Success: true,
		Message: "Login successful",
	}, http.StatusOK,
		requestId)
}
