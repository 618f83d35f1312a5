package snap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"starksnap/internal/state"
)

const (
	methodRequestSnaps = "wallet_requestSnaps"
	methodGetSnaps     = "wallet_getSnaps"
	methodInvokeSnap   = "wallet_invokeSnap"

	anyVersion = "*"
)

// MetaMaskSnap talks to the Starknet snap through the wallet host provider.
type MetaMaskSnap struct {
	logs     *zap.SugaredLogger
	provider Provider
	snapID   string
	version  string
}

func NewMetaMaskSnap(logger *zap.SugaredLogger, provider Provider, snapID, version string) *MetaMaskSnap {
	if version == "" {
		version = anyVersion
	}
	return &MetaMaskSnap{
		logs:     logger,
		provider: provider,
		snapID:   snapID,
		version:  version,
	}
}

// InstallIfNot asks the host to install or upgrade the snap and reports
// whether it ended up enabled.
func (s *MetaMaskSnap) InstallIfNot(ctx context.Context) (bool, error) {
	params := map[string]any{
		s.snapID: map[string]string{"version": s.version},
	}

	var resp map[string]snapInfo
	if err := s.provider.Request(ctx, methodRequestSnaps, params, &resp); err != nil {
		return false, fmt.Errorf("request snap install: %w", err)
	}

	info, ok := resp[s.snapID]
	if !ok || !info.Enabled || info.Blocked {
		s.logs.Warnw("snap not enabled after install request", "snapId", s.snapID)
		return false, nil
	}
	return true, nil
}

// IsInstalled reports whether the expected version of the snap is enabled.
func (s *MetaMaskSnap) IsInstalled(ctx context.Context) (bool, error) {
	var resp map[string]snapInfo
	if err := s.provider.Request(ctx, methodGetSnaps, nil, &resp); err != nil {
		return false, fmt.Errorf("get installed snaps: %w", err)
	}

	info, ok := resp[s.snapID]
	if !ok || !info.Enabled || info.Blocked {
		return false, nil
	}
	return s.version == anyVersion || info.Version == s.version, nil
}

func (s *MetaMaskSnap) GetCurrentNetwork(ctx context.Context) (*state.Network, error) {
	var network state.Network
	if err := s.invoke(ctx, "starkNet_getCurrentNetwork", map[string]any{}, &network); err != nil {
		return nil, err
	}
	return &network, nil
}

func (s *MetaMaskSnap) SwitchNetwork(ctx context.Context, chainID string) (bool, error) {
	params := map[string]any{
		"chainId":         chainID,
		"enableAuthorize": true,
	}

	var switched bool
	if err := s.invoke(ctx, "starkNet_switchNetwork", params, &switched); err != nil {
		return false, err
	}
	return switched, nil
}

func (s *MetaMaskSnap) AddNetwork(ctx context.Context, req AddNetworkRequest) (bool, error) {
	var added bool
	if err := s.invoke(ctx, "starkNet_addNetwork", req, &added); err != nil {
		return false, err
	}
	return added, nil
}

func (s *MetaMaskSnap) WatchAsset(ctx context.Context, req WatchAssetRequest) (bool, error) {
	var token state.Erc20Token
	if err := s.invoke(ctx, "starkNet_addErc20Token", req, &token); err != nil {
		return false, err
	}
	return true, nil
}

// RecoverDefaultAccount returns the account at index 0 of chainID.
func (s *MetaMaskSnap) RecoverDefaultAccount(ctx context.Context, chainID string) (*state.Account, error) {
	params := map[string]any{
		"startScanIndex": 0,
		"maxScanned":     1,
		"maxMissed":      1,
		"chainId":        chainID,
	}

	var accounts []*state.Account
	if err := s.invoke(ctx, "starkNet_recoverAccounts", params, &accounts); err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("chain %s: %w", chainID, ErrNoAccount)
	}
	return accounts[0], nil
}

func (s *MetaMaskSnap) Execute(ctx context.Context, req ExecuteRequest) (*ExecuteResult, error) {
	var result ExecuteResult
	if err := s.invoke(ctx, "starkNet_executeTxn", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *MetaMaskSnap) Declare(ctx context.Context, req DeclareRequest) (*DeclareResult, error) {
	params := map[string]any{
		"address": req.Address,
		"chainId": req.ChainID,
		"contractPayload": map[string]any{
			"compiledClassHash": req.CompiledClassHash,
			"classHash":         req.ClassHash,
			"contract":          req.ContractClass,
		},
	}

	var result DeclareResult
	if err := s.invoke(ctx, "starkNet_declareContract", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SignMessage returns the signature components of a typed data message.
func (s *MetaMaskSnap) SignMessage(ctx context.Context, req SignMessageRequest) ([]string, error) {
	var signature []string
	if err := s.invoke(ctx, "starkNet_signMessage", req, &signature); err != nil {
		return nil, err
	}
	return signature, nil
}

func (s *MetaMaskSnap) GetDeploymentData(ctx context.Context, chainID, address string) (*DeploymentData, error) {
	params := map[string]any{
		"chainId": chainID,
		"address": address,
	}

	var data DeploymentData
	if err := s.invoke(ctx, "starkNet_getDeploymentData", params, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *MetaMaskSnap) invoke(ctx context.Context, method string, params any, result any) error {
	req := invokeRequest{
		SnapID: s.snapID,
		Request: snapRequest{
			Method: method,
			Params: params,
		},
	}

	if err := s.provider.Request(ctx, methodInvokeSnap, req, result); err != nil {
		s.logs.Errorw("snap request failed", "method", method, "error", err)
		return fmt.Errorf("invoke %s: %w", method, err)
	}
	return nil
}
