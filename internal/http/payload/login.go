package payload

import (
	"net/url"

	"avatarhub/internal/core"

	"github.com/jellydator/validation"
)

// LoginRequest carries the credentials sent as query parameters.
type LoginRequest struct {
	Email    string
	Password string
}

func NewLoginRequest(values url.Values) LoginRequest {
	return LoginRequest{
		Email:    values.Get("email"),
		Password: values.Get("password"),
	}
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Email, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToMessage() core.LoginMessage {
	return core.LoginMessage{
		Email:    l.Email,
		Password: l.Password,
	}
}
