package starknet

import (
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// RPCClient is the subset of the go-ethereum rpc client used to talk to a
// Starknet node.
//
//counterfeiter:generate -o fake -fake-name RPCClient . RPCClient
type RPCClient interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
}
