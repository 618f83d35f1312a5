package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jellydator/validation"

	"starksnap/internal/state"
)

type handleFunc[P validation.Validatable] func(ctx context.Context, req *request, params P) (any, error)

// rpcHandler runs the lifecycle shared by every method: params are decoded
// and validated, the snap is installed if needed, then the method runs and
// its error is normalized.
type rpcHandler[P validation.Validatable] struct {
	wallet    *Wallet
	method    string
	authorize bool
	handle    handleFunc[P]
}

func newHandler[P validation.Validatable](w *Wallet, method string, handle handleFunc[P]) *rpcHandler[P] {
	return &rpcHandler[P]{
		wallet:    w,
		method:    method,
		authorize: true,
		handle:    handle,
	}
}

// newStaticHandler builds a handler that answers without the snap.
func newStaticHandler[P validation.Validatable](w *Wallet, method string, handle handleFunc[P]) *rpcHandler[P] {
	h := newHandler(w, method, handle)
	h.authorize = false
	return h
}

func (h *rpcHandler[P]) Method() string {
	return h.method
}

func (h *rpcHandler[P]) Execute(ctx context.Context, raw json.RawMessage) (any, error) {
	params, err := decodeParams[P](raw)
	if err != nil {
		h.wallet.logs.Infow("rejected rpc params", "method", h.method, "error", err)
		return nil, &ValidationError{Method: h.method, Err: err}
	}

	if h.authorize {
		installed, err := h.wallet.snap.InstallIfNot(ctx)
		if err != nil || !installed {
			h.wallet.logs.Warnw("snap not installed", "method", h.method, "error", err)
			return nil, ErrNotAuthorized
		}
	}

	result, err := h.handle(ctx, &request{wallet: h.wallet}, params)
	if err != nil {
		normalized := normalizeError(err)
		h.wallet.logs.Errorw("rpc request failed",
			"method", h.method,
			"error", normalized,
			"cause", err,
		)
		return nil, normalized
	}

	h.wallet.logs.Infow("rpc request served", "method", h.method)
	return result, nil
}

func decodeParams[P validation.Validatable](raw json.RawMessage) (P, error) {
	var params P

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if err := json.Unmarshal(trimmed, &params); err != nil {
			return params, fmt.Errorf("decoding params: %w", err)
		}
	}

	if err := params.Validate(); err != nil {
		return params, err
	}
	return params, nil
}

// request resolves the network and account of one RPC call on first use.
type request struct {
	wallet  *Wallet
	network *state.Network
	account *state.Account
}

func (r *request) Network(ctx context.Context) (*state.Network, error) {
	if r.network != nil {
		return r.network, nil
	}

	network, err := r.wallet.networks.GetCurrentNetwork(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("get current network: %w", err)
	}
	r.network = network
	return network, nil
}

// Account returns the selected account of the current network, recovering
// the default one from the snap when none is selected.
func (r *request) Account(ctx context.Context) (*state.Account, error) {
	if r.account != nil {
		return r.account, nil
	}

	network, err := r.Network(ctx)
	if err != nil {
		return nil, err
	}

	account, err := r.wallet.accounts.GetCurrentAccount(ctx, network.ChainID)
	if err != nil {
		return nil, fmt.Errorf("get current account: %w", err)
	}

	if account == nil {
		if account, err = r.wallet.snap.RecoverDefaultAccount(ctx, network.ChainID); err != nil {
			return nil, fmt.Errorf("recover default account: %w", err)
		}
		if account.ChainID == "" {
			account.ChainID = network.ChainID
		}
		if err := r.wallet.accounts.UpsertAccount(ctx, account); err != nil {
			return nil, fmt.Errorf("store default account: %w", err)
		}
		if err := r.wallet.accounts.SetCurrentAccount(ctx, account); err != nil {
			return nil, fmt.Errorf("select default account: %w", err)
		}
		r.wallet.logs.Infow("default account recovered", "address", account.Address, "chainId", network.ChainID)
	}

	r.account = account
	return account, nil
}
