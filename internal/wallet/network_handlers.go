package wallet

import (
	"context"
	"fmt"

	"starksnap/internal/filter"
	"starksnap/internal/snap"
	"starksnap/internal/state"
)

// switchStarknetChain answers true without asking the snap when the chain
// is already selected.
func (w *Wallet) switchStarknetChain(ctx context.Context, req *request, params switchChainParams) (any, error) {
	current, err := req.Network(ctx)
	if err != nil {
		return nil, err
	}
	if filter.BigIntEqual(current.ChainID, params.ChainID) {
		return true, nil
	}

	if !state.IsSupportedChain(params.ChainID) {
		return nil, NewWalletRpcError(CodeUnlistedNetwork, fmt.Errorf("chain %s", params.ChainID))
	}

	switched, err := w.snap.SwitchNetwork(ctx, params.ChainID)
	if err != nil {
		return nil, err
	}
	if !switched {
		return false, nil
	}

	target, err := w.networks.GetNetwork(ctx, params.ChainID, nil)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, NewWalletRpcError(CodeUnlistedNetwork, fmt.Errorf("chain %s", params.ChainID))
	}
	if err := w.networks.SetCurrentNetwork(ctx, target); err != nil {
		return nil, err
	}

	w.logs.Infow("network switched", "from", current.ChainID, "to", target.ChainID)
	return true, nil
}

func (w *Wallet) addStarknetChain(ctx context.Context, _ *request, params addChainParams) (any, error) {
	existing, err := w.networks.GetNetwork(ctx, params.ChainID, nil)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return true, nil
	}

	added, err := w.snap.AddNetwork(ctx, snap.AddNetworkRequest{
		ChainName:    params.ChainName,
		ChainID:      params.ChainID,
		RPCURLs:      params.RPCURLs,
		ExplorerURLs: params.BlockExplorerURLs,
	})
	if err != nil {
		return nil, err
	}
	if !added {
		return false, nil
	}

	network := &state.Network{
		Name:    params.ChainName,
		ChainID: params.ChainID,
		NodeURL: params.RPCURLs[0],
	}
	if len(params.BlockExplorerURLs) > 0 {
		network.VoyagerURL = params.BlockExplorerURLs[0]
	}
	if err := w.networks.UpsertNetwork(ctx, network); err != nil {
		return nil, err
	}
	return true, nil
}

func (w *Wallet) requestChainID(ctx context.Context, req *request, _ noParams) (any, error) {
	network, err := req.Network(ctx)
	if err != nil {
		return nil, err
	}
	return network.ChainID, nil
}

// watchAsset rejects incomplete token metadata with NOT_ERC20.
func (w *Wallet) watchAsset(ctx context.Context, req *request, params watchAssetParams) (any, error) {
	network, err := req.Network(ctx)
	if err != nil {
		return nil, err
	}

	token := &state.Erc20Token{
		Address:  params.Options.Address,
		Name:     params.Options.Name,
		Symbol:   params.Options.Symbol,
		Decimals: params.Options.Decimals,
		ChainID:  network.ChainID,
	}
	if err := token.Validate(); err != nil {
		return nil, NewWalletRpcError(CodeNotERC20, fmt.Errorf("%w: %w", state.ErrInvalidTokenMetadata, err))
	}

	watched, err := w.snap.WatchAsset(ctx, snap.WatchAssetRequest{
		Address:  token.Address,
		Name:     token.Name,
		Symbol:   token.Symbol,
		Decimals: token.Decimals,
		ChainID:  token.ChainID,
	})
	if err != nil {
		return nil, err
	}
	if !watched {
		return false, nil
	}

	if err := w.tokens.UpsertToken(ctx, token); err != nil {
		return nil, err
	}
	return true, nil
}
