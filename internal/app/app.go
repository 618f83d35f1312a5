package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"starksnap/internal/config"
	"starksnap/internal/core"
	"starksnap/internal/db"
	"starksnap/internal/http/handler"
	"starksnap/internal/http/handler/middleware"
	"starksnap/internal/http/server"
	"starksnap/internal/snap"
	"starksnap/internal/starknet"
	"starksnap/internal/starkscan"
	"starksnap/internal/state"
	"starksnap/pkg/jwt"
	"starksnap/pkg/log"
)

const serviceName = "starksnap"

// App holds the long running parts of the service.
type App struct {
	Logger *zap.SugaredLogger
	Server *server.HTTPServer
	Poller *core.StatusPoller
}

func NewApp(logger *zap.SugaredLogger, srv *server.HTTPServer, poller *core.StatusPoller) *App {
	return &App{
		Logger: logger,
		Server: srv,
		Poller: poller,
	}
}

func ProvideLogger(cfg config.App) *zap.SugaredLogger {
	return log.NewZapLogger(serviceName, log.ParseLevel(cfg.LogLevel))
}

// ProvideStateStore connects to postgres and makes sure the state table
// exists.
func ProvideStateStore(ctx context.Context, logger *zap.SugaredLogger, cfg config.App) (*db.StateStore, func(), error) {
	conn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	cleanup := func() {
		if err := conn.Close(); err != nil {
			logger.Errorw("failed to close database connection", "error", err)
		}
	}

	store := db.NewStateStore(conn, cfg.WalletID)
	if err := store.Migrate(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("migrate state table: %w", err)
	}
	return store, cleanup, nil
}

// ProvideNetworkStateManager stores the default networks missing from the
// persisted document.
func ProvideNetworkStateManager(ctx context.Context, store state.Store, lock *state.StoreLock, cfg config.App) (*state.NetworkStateManager, error) {
	networks := state.NewNetworkStateManager(
		store,
		lock,
		state.DefaultNetworks(cfg.MainnetNodeURL, cfg.SepoliaNodeURL),
		cfg.DefaultChainID,
	)
	if err := networks.SeedDefaults(ctx); err != nil {
		return nil, fmt.Errorf("seed default networks: %w", err)
	}
	return networks, nil
}

// ProvideChains builds the indexer and node clients of mainnet and sepolia.
func ProvideChains(ctx context.Context, logger *zap.SugaredLogger, cfg config.App) (*core.Chains, error) {
	nodes := map[string]string{
		state.MainnetChainID: cfg.MainnetNodeURL,
		state.SepoliaChainID: cfg.SepoliaNodeURL,
	}

	chains := core.NewChains()
	for chainID, nodeURL := range nodes {
		node, err := starknet.Dial(ctx, nodeURL)
		if err != nil {
			return nil, fmt.Errorf("chain %s: %w", chainID, err)
		}

		data := starkscan.NewClient(logger, nil, starkscan.Config{
			BaseURL:  starkscan.BaseURL(chainID),
			APIKey:   cfg.StarkScanAPIKey,
			ChainID:  chainID,
			PageSize: cfg.TxnPageSize,
		})

		chains.Register(core.Chain{
			ChainID: chainID,
			Data:    data,
			Status:  node,
		})
	}
	return chains, nil
}

func ProvideSnap(ctx context.Context, logger *zap.SugaredLogger, cfg config.App) (*snap.MetaMaskSnap, func(), error) {
	provider, client, err := snap.DialProvider(ctx, cfg.SnapRPCURL)
	if err != nil {
		return nil, nil, err
	}
	return snap.NewMetaMaskSnap(logger, provider, cfg.SnapID, cfg.SnapVersion), client.Close, nil
}

func ProvideJWTService(cfg config.App) *jwt.JWTService {
	return jwt.NewJWTService([]byte(cfg.JWTSecret))
}

func ProvideStatusPoller(logger *zap.SugaredLogger, txns *core.TransactionService, chains *core.Chains, cfg config.App) *core.StatusPoller {
	return core.NewStatusPoller(logger, txns, chains, cfg.StatusPollInterval)
}

// ProvideRouter registers the wallet routes. Only connect is reachable
// without a session.
func ProvideRouter(logger *zap.SugaredLogger, walletHdlr *handler.WalletHandler, sessions middleware.SessionValidator) http.Handler {
	auth := middleware.NewAuthMiddleware(logger, sessions)

	mux := http.NewServeMux()
	mux.HandleFunc(handler.Connect, walletHdlr.HandleConnect)
	mux.Handle(handler.WalletRequest, auth.Authenticate(http.HandlerFunc(walletHdlr.HandleRequest)))
	mux.Handle(handler.WalletMethods, auth.Authenticate(http.HandlerFunc(walletHdlr.HandleMethods)))

	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	return middleware.NewRequestIDMiddleware().RequestID(hdlr)
}

func ProvideServer(logger *zap.SugaredLogger, router http.Handler, cfg config.App) *server.HTTPServer {
	return server.NewHTTP(logger, router, cfg.Port)
}
