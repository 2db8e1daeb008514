package payload

import (
	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type AvatarRequest struct {
	AvatarURL string `json:"avatar_url"`
}

func (a AvatarRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.AvatarURL, validation.Required, is.URL),
	)
}
