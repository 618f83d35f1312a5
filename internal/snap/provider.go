package snap

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

// RPCProvider forwards requests to a wallet host reachable over JSON-RPC.
type RPCProvider struct {
	client rpcCaller
}

func NewRPCProvider(client rpcCaller) *RPCProvider {
	return &RPCProvider{
		client: client,
	}
}

// DialProvider connects to the JSON-RPC endpoint of the wallet host.
func DialProvider(ctx context.Context, url string) (*RPCProvider, *rpc.Client, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial wallet host: %w", err)
	}
	return NewRPCProvider(client), client, nil
}

func (p *RPCProvider) Request(ctx context.Context, method string, params any, result any) error {
	var args []any
	if params != nil {
		args = append(args, params)
	}

	err := p.client.CallContext(ctx, result, method, args...)
	if err == nil {
		return nil
	}

	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) {
		return fmt.Errorf("request %s: %w", method, err)
	}

	providerErr := &ProviderError{
		Code:    rpcErr.ErrorCode(),
		Message: rpcErr.Error(),
	}
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		providerErr.Data = dataErr.ErrorData()
	}
	return providerErr
}
