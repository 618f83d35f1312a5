package payload

import (
	"regexp"

	"github.com/jellydator/validation"

	"starksnap/internal/core"
)

var originPattern = regexp.MustCompile(`^https?://[^\s/]+$`)

type ConnectRequest struct {
	Origin string `json:"origin"`
}

func (c ConnectRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Origin, validation.Required, validation.Match(originPattern)),
	)
}

func (c ConnectRequest) ToConnectMessage() core.ConnectMessage {
	return core.ConnectMessage{
		Origin: c.Origin,
	}
}
