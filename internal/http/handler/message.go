package handler

import "avatarhub/internal/core"

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AvatarSavedResponse struct {
	Message string `json:"message"`
	File    string `json:"file"`
}

type AvatarUploadedResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

type UploadsResponse struct {
	Status   string            `json:"status"`
	Uploaded int               `json:"uploaded"`
	Files    []core.StoredFile `json:"files"`
}
