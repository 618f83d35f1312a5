package payload

import (
	"encoding/json"

	"github.com/jellydator/validation"

	"starksnap/internal/wallet"
)

// RpcRequest is the body of a wallet request: the method in type and its
// params.
type RpcRequest struct {
	Type       string          `json:"type"`
	Params     json.RawMessage `json:"params,omitempty"`
	APIVersion string          `json:"api_version,omitempty"`
}

func (r RpcRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required),
	)
}

func (r RpcRequest) ToRpcMessage() wallet.RpcMessage {
	return wallet.RpcMessage{
		Type:       r.Type,
		Params:     r.Params,
		APIVersion: r.APIVersion,
	}
}
