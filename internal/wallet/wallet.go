package wallet

import (
	"time"

	"go.uber.org/zap"

	"starksnap/internal/state"
)

var (
	SupportedSpecs     = []string{"0.4", "0.5"}
	SupportedWalletAPI = []string{"0.7"}
)

const (
	permissionAccounts = "accounts"
	defaultLastNDays   = 10
	tokenTypeERC20     = "ERC20"
	requestTypeInvoke  = "invoke"
)

// Wallet is one connection of a dapp to the snap. It owns the collaborators
// shared by every RPC handler.
type Wallet struct {
	logs     *zap.SugaredLogger
	snap     Snap
	networks *state.NetworkStateManager
	accounts *state.AccountStateManager
	tokens   *state.TokenStateManager
	txns     *state.TransactionStateManager
	requests *state.TransactionRequestStateManager
	history  TransactionService
	now      func() time.Time
}

func NewWallet(
	logger *zap.SugaredLogger,
	snap Snap,
	networks *state.NetworkStateManager,
	accounts *state.AccountStateManager,
	tokens *state.TokenStateManager,
	txns *state.TransactionStateManager,
	requests *state.TransactionRequestStateManager,
	history TransactionService,
) *Wallet {
	return &Wallet{
		logs:     logger,
		snap:     snap,
		networks: networks,
		accounts: accounts,
		tokens:   tokens,
		txns:     txns,
		requests: requests,
		history:  history,
		now:      time.Now,
	}
}

// Handlers returns one handler per supported method.
func (w *Wallet) Handlers() []RpcHandler {
	return []RpcHandler{
		newHandler(w, "wallet_getPermissions", w.getPermissions),
		newHandler(w, "wallet_requestAccounts", w.requestAccounts),
		newHandler(w, "wallet_switchStarknetChain", w.switchStarknetChain),
		newHandler(w, "wallet_addStarknetChain", w.addStarknetChain),
		newHandler(w, "wallet_requestChainId", w.requestChainID),
		newHandler(w, "wallet_watchAsset", w.watchAsset),
		newHandler(w, "wallet_addInvokeTransaction", w.addInvokeTransaction),
		newHandler(w, "wallet_addDeclareTransaction", w.addDeclareTransaction),
		newHandler(w, "wallet_deploymentData", w.deploymentData),
		newStaticHandler(w, "wallet_supportedSpecs", w.supportedSpecs),
		newStaticHandler(w, "wallet_supportedWalletApi", w.supportedWalletAPI),
		newHandler(w, "starknet_signTypedData", w.signTypedData),
		newHandler(w, "starkNet_getTransactions", w.getTransactions),
		newHandler(w, "starkNet_getTransactionStatus", w.getTransactionStatus),
	}
}

// NewWalletRegistry wires every handler of w into a registry.
func NewWalletRegistry(logger *zap.SugaredLogger, w *Wallet) *Registry {
	return NewRegistry(logger, w.Handlers()...)
}
