//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"starksnap/internal/config"
	"starksnap/internal/core"
	"starksnap/internal/db"
	"starksnap/internal/http/handler"
	"starksnap/internal/http/handler/middleware"
	"starksnap/internal/http/payload"
	"starksnap/internal/snap"
	"starksnap/internal/state"
	"starksnap/internal/wallet"
	"starksnap/pkg/jwt"
)

var stateSet = wire.NewSet(
	ProvideStateStore,
	wire.Bind(new(state.Store), new(*db.StateStore)),
	state.NewStoreLock,
	ProvideNetworkStateManager,
	state.NewAccountStateManager,
	state.NewTokenStateManager,
	state.NewTransactionStateManager,
	state.NewTransactionRequestStateManager,
)

var coreSet = wire.NewSet(
	ProvideChains,
	ProvideJWTService,
	wire.Bind(new(core.JWTIssuer), new(*jwt.JWTService)),
	core.NewSessionService,
	wire.Bind(new(core.TransactionRepository), new(*state.TransactionStateManager)),
	core.NewTransactionService,
	ProvideStatusPoller,
)

var walletSet = wire.NewSet(
	ProvideSnap,
	wire.Bind(new(wallet.Snap), new(*snap.MetaMaskSnap)),
	wire.Bind(new(wallet.TransactionService), new(*core.TransactionService)),
	wallet.NewWallet,
	wallet.NewWalletRegistry,
)

var httpSet = wire.NewSet(
	wire.Value(payload.Decoder{}),
	wire.Bind(new(handler.RequestValidator), new(payload.Decoder)),
	wire.Bind(new(handler.WalletService), new(*wallet.Registry)),
	wire.Bind(new(handler.SessionService), new(*core.SessionService)),
	wire.Bind(new(middleware.SessionValidator), new(*core.SessionService)),
	handler.NewWalletHandler,
	ProvideRouter,
	ProvideServer,
)

// InitApp builds the service from its configuration.
func InitApp(ctx context.Context, cfg config.App) (*App, func(), error) {
	wire.Build(
		ProvideLogger,
		stateSet,
		coreSet,
		walletSet,
		httpSet,
		NewApp,
	)
	return nil, nil, nil
}
