package snap

import (
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Provider is the wallet host the snap is installed in. It answers
// JSON-RPC style requests.
//
//counterfeiter:generate -o fake -fake-name Provider . Provider
type Provider interface {
	Request(ctx context.Context, method string, params any, result any) error
}

type rpcCaller interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
}
