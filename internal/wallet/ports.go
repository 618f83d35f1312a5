package wallet

import (
	"context"

	"starksnap/internal/core"
	"starksnap/internal/snap"
	"starksnap/internal/starknet"
	"starksnap/internal/state"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Snap . Snap
type Snap interface {
	InstallIfNot(ctx context.Context) (bool, error)
	IsInstalled(ctx context.Context) (bool, error)
	GetCurrentNetwork(ctx context.Context) (*state.Network, error)
	SwitchNetwork(ctx context.Context, chainID string) (bool, error)
	AddNetwork(ctx context.Context, req snap.AddNetworkRequest) (bool, error)
	WatchAsset(ctx context.Context, req snap.WatchAssetRequest) (bool, error)
	RecoverDefaultAccount(ctx context.Context, chainID string) (*state.Account, error)
	Execute(ctx context.Context, req snap.ExecuteRequest) (*snap.ExecuteResult, error)
	Declare(ctx context.Context, req snap.DeclareRequest) (*snap.DeclareResult, error)
	SignMessage(ctx context.Context, req snap.SignMessageRequest) ([]string, error)
	GetDeploymentData(ctx context.Context, chainID, address string) (*snap.DeploymentData, error)
}

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	GetTransactions(ctx context.Context, query core.TransactionQuery) ([]*state.Transaction, error)
	GetTransactionStatus(ctx context.Context, hash, chainID string) (*starknet.TransactionStatus, error)
}
