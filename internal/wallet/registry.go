package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// RpcMessage is the single entry point of the wallet RPC surface.
type RpcMessage struct {
	Type       string          `json:"type"`
	Params     json.RawMessage `json:"params,omitempty"`
	APIVersion string          `json:"api_version,omitempty"`
}

type RpcHandler interface {
	Method() string
	Execute(ctx context.Context, params json.RawMessage) (any, error)
}

// Registry dispatches RPC messages to the handler of their method.
type Registry struct {
	logs     *zap.SugaredLogger
	handlers map[string]RpcHandler
}

func NewRegistry(logger *zap.SugaredLogger, handlers ...RpcHandler) *Registry {
	return &Registry{
		logs: logger,
		handlers: lo.SliceToMap(handlers, func(h RpcHandler) (string, RpcHandler) {
			return h.Method(), h
		}),
	}
}

func (r *Registry) Request(ctx context.Context, msg RpcMessage) (any, error) {
	if msg.APIVersion != "" && !lo.Contains(SupportedWalletAPI, msg.APIVersion) {
		r.logs.Warnw("unsupported wallet api version", "method", msg.Type, "apiVersion", msg.APIVersion)
		return nil, NewWalletRpcError(CodeAPIVersionNotSupported, fmt.Errorf("api version %s", msg.APIVersion))
	}

	handler, ok := r.handlers[msg.Type]
	if !ok {
		r.logs.Warnw("unsupported wallet method", "method", msg.Type)
		return nil, fmt.Errorf("%w: %s", ErrMethodNotSupported, msg.Type)
	}

	return handler.Execute(ctx, msg.Params)
}

// Methods lists the supported method names.
func (r *Registry) Methods() []string {
	methods := lo.Keys(r.handlers)
	sort.Strings(methods)
	return methods
}
