package handler

import (
	"context"
	"net/http"

	"starksnap/internal/core"
	"starksnap/internal/wallet"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	Request(ctx context.Context, msg wallet.RpcMessage) (any, error)
	Methods() []string
}

//counterfeiter:generate -o fake -fake-name SessionService . SessionService
type SessionService interface {
	Connect(ctx context.Context, msg core.ConnectMessage) (string, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
