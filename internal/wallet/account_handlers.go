package wallet

import (
	"context"
	"fmt"
)

func (w *Wallet) getPermissions(_ context.Context, _ *request, _ noParams) (any, error) {
	return []string{permissionAccounts}, nil
}

func (w *Wallet) requestAccounts(ctx context.Context, req *request, _ noParams) (any, error) {
	account, err := req.Account(ctx)
	if err != nil {
		return nil, err
	}
	return []string{account.Address}, nil
}

type deploymentDataResult struct {
	Address   string   `json:"address"`
	ClassHash string   `json:"class_hash"`
	Salt      string   `json:"salt"`
	Calldata  []string `json:"calldata"`
	Version   int      `json:"version"`
}

func (w *Wallet) deploymentData(ctx context.Context, req *request, _ noParams) (any, error) {
	account, err := req.Account(ctx)
	if err != nil {
		return nil, err
	}

	if account.DeployTxnHash != "" || (account.DeployRequired != nil && !*account.DeployRequired) {
		return nil, NewWalletRpcError(CodeAccountAlreadyDeployed, fmt.Errorf("account %s", account.Address))
	}

	data, err := w.snap.GetDeploymentData(ctx, account.ChainID, account.Address)
	if err != nil {
		return nil, err
	}

	return deploymentDataResult{
		Address:   data.Address,
		ClassHash: data.ClassHash,
		Salt:      data.Salt,
		Calldata:  data.Calldata,
		Version:   data.Version,
	}, nil
}

func (w *Wallet) supportedSpecs(_ context.Context, _ *request, _ noParams) (any, error) {
	return SupportedSpecs, nil
}

func (w *Wallet) supportedWalletAPI(_ context.Context, _ *request, _ noParams) (any, error) {
	return SupportedWalletAPI, nil
}
