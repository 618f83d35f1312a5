package wallet_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"starksnap/internal/core"
	"starksnap/internal/snap"
	"starksnap/internal/starknet"
	"starksnap/internal/state"
	"starksnap/internal/wallet"
	"starksnap/internal/wallet/fake"
)

const (
	address  = "0x05a98ec74a40383cf99896bfea2ec5e6aad16c7eed50025a5f569d585ebb13a2"
	ethToken = "0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7"
	txnHash  = "0x07d8f7a4b6f1f3f0c2b9f2e1d3c4b5a69788796a5b4c3d2e1f0a9b8c7d6e5f4"
)

func asJSON(v any) string {
	data, err := json.Marshal(v)
	Expect(err).NotTo(HaveOccurred())
	return string(data)
}

func walletError(err error) *wallet.WalletRpcError {
	var rpcErr *wallet.WalletRpcError
	Expect(errors.As(err, &rpcErr)).To(BeTrue(), "expected a wallet rpc error, got %v", err)
	return rpcErr
}

var _ = Describe("Wallet", func() {
	var (
		fakeSnap    *fake.Snap
		fakeHistory *fake.TransactionService
		networks    *state.NetworkStateManager
		accounts    *state.AccountStateManager
		tokens      *state.TokenStateManager
		txns        *state.TransactionStateManager
		requests    *state.TransactionRequestStateManager
		registry    *wallet.Registry
		ctx         context.Context
	)

	call := func(method, params string) (any, error) {
		return registry.Request(ctx, wallet.RpcMessage{
			Type:   method,
			Params: json.RawMessage(params),
		})
	}

	BeforeEach(func() {
		ctx = context.Background()
		store := state.NewMemoryStore()
		lock := state.NewStoreLock()
		networks = state.NewNetworkStateManager(store, lock,
			state.DefaultNetworks("https://mainnet.node", "https://sepolia.node"),
			state.SepoliaChainID,
		)
		accounts = state.NewAccountStateManager(store, lock)
		tokens = state.NewTokenStateManager(store, lock)
		txns = state.NewTransactionStateManager(store, lock)
		requests = state.NewTransactionRequestStateManager(store, lock)

		fakeSnap = new(fake.Snap)
		fakeSnap.InstallIfNotReturns(true, nil)
		fakeSnap.RecoverDefaultAccountReturns(&state.Account{
			Address:      address,
			ChainID:      state.SepoliaChainID,
			AddressIndex: 0,
		}, nil)
		fakeHistory = new(fake.TransactionService)

		logger := zap.NewNop().Sugar()
		w := wallet.NewWallet(logger, fakeSnap, networks, accounts, tokens, txns, requests, fakeHistory)
		registry = wallet.NewWalletRegistry(logger, w)
	})

	Describe("Registry", func() {
		It("lists every method", func() {
			Expect(registry.Methods()).To(HaveLen(14))
			Expect(registry.Methods()).To(ContainElements(
				"wallet_requestAccounts",
				"wallet_switchStarknetChain",
				"starknet_signTypedData",
				"starkNet_getTransactions",
			))
		})

		It("rejects unknown methods", func() {
			_, err := call("wallet_unknown", "")
			Expect(err).To(MatchError(wallet.ErrMethodNotSupported))
			Expect(fakeSnap.InstallIfNotCallCount()).To(Equal(0))
		})

		It("rejects unsupported api versions", func() {
			_, err := registry.Request(ctx, wallet.RpcMessage{Type: "wallet_requestChainId", APIVersion: "0.5"})
			Expect(walletError(err).Code).To(Equal(wallet.CodeAPIVersionNotSupported))
		})

		It("accepts the supported api version", func() {
			result, err := registry.Request(ctx, wallet.RpcMessage{Type: "wallet_requestChainId", APIVersion: "0.7"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(state.SepoliaChainID))
		})
	})

	Describe("authorization", func() {
		When("the snap cannot be installed", func() {
			BeforeEach(func() {
				fakeSnap.InstallIfNotReturns(false, nil)
			})

			It("fails before touching anything", func() {
				_, err := call("wallet_requestAccounts", "")
				Expect(err).To(MatchError(wallet.ErrNotAuthorized))
				Expect(fakeSnap.RecoverDefaultAccountCallCount()).To(Equal(0))

				st, err := accounts.Get(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(st.AccContracts).To(BeEmpty())
			})
		})

		When("the install check fails", func() {
			BeforeEach(func() {
				fakeSnap.InstallIfNotReturns(false, errors.New("host unavailable"))
			})

			It("reports the wallet as not authorized", func() {
				_, err := call("wallet_requestChainId", "")
				Expect(err).To(MatchError(wallet.ErrNotAuthorized))
			})
		})

		It("answers static methods without the snap", func() {
			specs, err := call("wallet_supportedSpecs", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(specs).To(Equal(wallet.SupportedSpecs))

			apis, err := call("wallet_supportedWalletApi", "[]")
			Expect(err).NotTo(HaveOccurred())
			Expect(apis).To(Equal(wallet.SupportedWalletAPI))

			Expect(fakeSnap.InstallIfNotCallCount()).To(Equal(0))
		})
	})

	Describe("validation", func() {
		It("rejects invalid params before any side effect", func() {
			_, err := call("wallet_switchStarknetChain", `{}`)

			var validationErr *wallet.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Method).To(Equal("wallet_switchStarknetChain"))
			Expect(fakeSnap.InstallIfNotCallCount()).To(Equal(0))
		})

		It("rejects malformed json", func() {
			_, err := call("wallet_addInvokeTransaction", `{"calls":`)

			var validationErr *wallet.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
		})
	})

	Describe("wallet_getPermissions", func() {
		It("grants the accounts permission", func() {
			result, err := call("wallet_getPermissions", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal([]string{"accounts"}))
		})
	})

	Describe("wallet_requestAccounts", func() {
		It("recovers and selects the default account once", func() {
			result, err := call("wallet_requestAccounts", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal([]string{address}))

			result, err = call("wallet_requestAccounts", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal([]string{address}))
			Expect(fakeSnap.RecoverDefaultAccountCallCount()).To(Equal(1))

			_, chainID := fakeSnap.RecoverDefaultAccountArgsForCall(0)
			Expect(chainID).To(Equal(state.SepoliaChainID))

			current, err := accounts.GetCurrentAccount(ctx, state.SepoliaChainID)
			Expect(err).NotTo(HaveOccurred())
			Expect(current.Address).To(Equal(address))
		})

		It("normalizes recovery failures", func() {
			fakeSnap.RecoverDefaultAccountReturns(nil, errors.New("boom"))

			_, err := call("wallet_requestAccounts", "")
			rpcErr := walletError(err)
			Expect(rpcErr.Code).To(Equal(wallet.CodeUnknownError))
			Expect(rpcErr.Error()).To(Equal("An error occurred (UNKNOWN_ERROR)"))
			Expect(rpcErr.Cause).To(MatchError(ContainSubstring("boom")))
		})
	})

	Describe("wallet_switchStarknetChain", func() {
		It("is a no-op for the current chain", func() {
			result, err := call("wallet_switchStarknetChain", `{"chainId":"0x00534e5f5345504f4c4941"}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeTrue())
			Expect(fakeSnap.SwitchNetworkCallCount()).To(Equal(0))
		})

		It("switches and remembers the new chain", func() {
			fakeSnap.SwitchNetworkReturns(true, nil)

			result, err := call("wallet_switchStarknetChain", `{"chainId":"0x534e5f4d41494e"}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeTrue())

			_, chainID := fakeSnap.SwitchNetworkArgsForCall(0)
			Expect(chainID).To(Equal(state.MainnetChainID))

			chainID2, err := call("wallet_requestChainId", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(chainID2).To(Equal(state.MainnetChainID))
		})

		It("rejects unlisted chains", func() {
			_, err := call("wallet_switchStarknetChain", `{"chainId":"0x1"}`)
			Expect(walletError(err).Code).To(Equal(wallet.CodeUnlistedNetwork))
			Expect(fakeSnap.SwitchNetworkCallCount()).To(Equal(0))
		})

		It("maps a user rejection", func() {
			fakeSnap.SwitchNetworkReturns(false, &snap.ProviderError{Code: snap.CodeUserRejected, Message: "rejected"})

			_, err := call("wallet_switchStarknetChain", `{"chainId":"0x534e5f4d41494e"}`)
			Expect(walletError(err).Code).To(Equal(wallet.CodeUserRefusedOp))
		})
	})

	Describe("wallet_addStarknetChain", func() {
		It("accepts known chains without the snap", func() {
			result, err := call("wallet_addStarknetChain", `{
				"chainName": "Mainnet",
				"chainId": "0x534e5f4d41494e",
				"rpcUrls": ["https://mainnet.node"]
			}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeTrue())
			Expect(fakeSnap.AddNetworkCallCount()).To(Equal(0))
		})

		It("stores chains the snap added", func() {
			fakeSnap.AddNetworkReturns(true, nil)

			result, err := call("wallet_addStarknetChain", `{
				"chainName": "Devnet",
				"chainId": "0x4b4154414e41",
				"rpcUrls": ["http://localhost:5050"],
				"blockExplorerUrls": ["http://localhost:4000"]
			}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeTrue())

			network, err := networks.GetNetwork(ctx, "0x4b4154414e41", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(network.NodeURL).To(Equal("http://localhost:5050"))
			Expect(network.VoyagerURL).To(Equal("http://localhost:4000"))
		})

		It("validates the rpc urls", func() {
			_, err := call("wallet_addStarknetChain", `{"chainName":"x","chainId":"0x1","rpcUrls":["not a url"]}`)

			var validationErr *wallet.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
		})
	})

	Describe("wallet_watchAsset", func() {
		It("rejects incomplete token metadata", func() {
			_, err := call("wallet_watchAsset", `{"type":"ERC20","options":{"address":"0x0123","decimals":18}}`)

			rpcErr := walletError(err)
			Expect(rpcErr.Code).To(Equal(wallet.CodeNotERC20))
			Expect(rpcErr.Cause).To(MatchError(state.ErrInvalidTokenMetadata))
			Expect(fakeSnap.WatchAssetCallCount()).To(Equal(0))
		})

		It("stores watched tokens", func() {
			fakeSnap.WatchAssetReturns(true, nil)

			result, err := call("wallet_watchAsset", `{
				"type": "ERC20",
				"options": {"address": "0x0123", "name": "Test", "symbol": "TST", "decimals": 6}
			}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeTrue())

			token, err := tokens.GetToken(ctx, "0x0123", state.SepoliaChainID, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(token.Symbol).To(Equal("TST"))
			Expect(token.Decimals).To(Equal(6))
		})

		It("only watches ERC20 assets", func() {
			_, err := call("wallet_watchAsset", `{"type":"ERC721","options":{"address":"0x0123"}}`)

			var validationErr *wallet.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
		})
	})

	Describe("wallet_addInvokeTransaction", func() {
		const params = `{"calls":[
			{"contract_address":"` + ethToken + `","entry_point":"transfer","calldata":["0x1","0x2","0x0"]}
		]}`

		It("executes and records a pending transaction", func() {
			fakeSnap.ExecuteReturns(&snap.ExecuteResult{TransactionHash: txnHash}, nil)

			result, err := call("wallet_addInvokeTransaction", params)
			Expect(err).NotTo(HaveOccurred())
			Expect(asJSON(result)).To(MatchJSON(`{"transaction_hash":"` + txnHash + `"}`))

			_, req := fakeSnap.ExecuteArgsForCall(0)
			Expect(req.Address).To(Equal(address))
			Expect(req.ChainID).To(Equal(state.SepoliaChainID))
			Expect(req.Calls).To(HaveLen(1))

			recorded, err := txns.FindTransactions(ctx, state.SenderAddressFilter(address))
			Expect(err).NotTo(HaveOccurred())
			Expect(recorded).To(HaveLen(1))
			Expect(recorded[0].TxnHash).To(Equal("0x007d8f7a4b6f1f3f0c2b9f2e1d3c4b5a69788796a5b4c3d2e1f0a9b8c7d6e5f4"))
			Expect(recorded[0].FinalityStatus).To(Equal(state.FinalityStatusReceived))
			Expect(recorded[0].DataVersion).To(Equal(state.DataVersionV2))
			Expect(state.HasAccountCall(recorded[0], ethToken)).To(BeTrue())
		})

		It("keeps a transaction request only while the snap executes", func() {
			fakeSnap.ExecuteCalls(func(ctx context.Context, req snap.ExecuteRequest) (*snap.ExecuteResult, error) {
				st, err := requests.Get(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(st.TransactionRequests).To(HaveLen(1))
				Expect(st.TransactionRequests[0].Signer).To(Equal(address))
				Expect(st.TransactionRequests[0].Calls).To(HaveLen(1))
				return &snap.ExecuteResult{TransactionHash: txnHash}, nil
			})

			_, err := call("wallet_addInvokeTransaction", params)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeSnap.ExecuteCallCount()).To(Equal(1))

			st, err := requests.Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.TransactionRequests).To(BeEmpty())
		})

		It("closes the transaction request when the user refuses", func() {
			fakeSnap.ExecuteReturns(nil, &snap.ProviderError{Code: snap.CodeUserRejected, Message: "rejected"})

			_, err := call("wallet_addInvokeTransaction", params)
			Expect(walletError(err).Code).To(Equal(wallet.CodeUserRefusedOp))

			st, err := requests.Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.TransactionRequests).To(BeEmpty())
		})

		It("hides unknown upstream errors behind a generic message", func() {
			upstream := errors.New("execution reverted: 0xdeadbeef")
			fakeSnap.ExecuteReturns(nil, upstream)

			_, err := call("wallet_addInvokeTransaction", params)
			rpcErr := walletError(err)
			Expect(rpcErr.Code).To(Equal(wallet.CodeUnknownError))
			Expect(rpcErr.Error()).NotTo(ContainSubstring("0xdeadbeef"))
			Expect(errors.Is(err, upstream)).To(BeTrue())
		})

		It("keeps known snap codes", func() {
			fakeSnap.ExecuteReturns(nil, &snap.ProviderError{Code: 114, Message: "invalid payload"})

			_, err := call("wallet_addInvokeTransaction", params)
			Expect(walletError(err).Code).To(Equal(wallet.CodeInvalidRequestPayload))
		})

		It("requires a contract address on every call", func() {
			_, err := call("wallet_addInvokeTransaction", `{"calls":[{"entry_point":"transfer"}]}`)

			var validationErr *wallet.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(fakeSnap.ExecuteCallCount()).To(Equal(0))
		})
	})

	Describe("wallet_addDeclareTransaction", func() {
		It("returns the declared class", func() {
			fakeSnap.DeclareReturns(&snap.DeclareResult{TransactionHash: txnHash, ClassHash: "0x0456"}, nil)

			result, err := call("wallet_addDeclareTransaction", `{
				"compiled_class_hash": "0x0123",
				"contract_class": {"sierra_program": [], "abi": "[]"}
			}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(asJSON(result)).To(MatchJSON(`{"transaction_hash":"` + txnHash + `","class_hash":"0x0456"}`))

			_, req := fakeSnap.DeclareArgsForCall(0)
			Expect(req.CompiledClassHash).To(Equal("0x0123"))
			Expect(string(req.ContractClass)).To(MatchJSON(`{"sierra_program": [], "abi": "[]"}`))
		})
	})

	Describe("wallet_deploymentData", func() {
		It("returns the deployment data of an undeployed account", func() {
			fakeSnap.GetDeploymentDataReturns(&snap.DeploymentData{
				Address:   address,
				ClassHash: state.AccountClassHash,
				Salt:      "0x05",
				Calldata:  []string{"0x05", "0x0"},
				Version:   1,
			}, nil)

			result, err := call("wallet_deploymentData", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(asJSON(result)).To(MatchJSON(`{
				"address": "` + address + `",
				"class_hash": "` + state.AccountClassHash + `",
				"salt": "0x05",
				"calldata": ["0x05", "0x0"],
				"version": 1
			}`))
		})

		It("refuses deployed accounts", func() {
			fakeSnap.RecoverDefaultAccountReturns(&state.Account{
				Address:       address,
				ChainID:       state.SepoliaChainID,
				DeployTxnHash: txnHash,
			}, nil)

			_, err := call("wallet_deploymentData", "")
			Expect(walletError(err).Code).To(Equal(wallet.CodeAccountAlreadyDeployed))
			Expect(fakeSnap.GetDeploymentDataCallCount()).To(Equal(0))
		})
	})

	Describe("starknet_signTypedData", func() {
		const typedData = `{
			"types": {"StarkNetDomain": [{"name": "name", "type": "felt"}]},
			"primaryType": "StarkNetDomain",
			"domain": {"name": "dapp"},
			"message": {"name": "dapp"}
		}`

		It("forwards the typed data untouched", func() {
			fakeSnap.SignMessageReturns([]string{"0x1", "0x2"}, nil)

			result, err := call("starknet_signTypedData", typedData)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal([]string{"0x1", "0x2"}))

			_, req := fakeSnap.SignMessageArgsForCall(0)
			Expect(string(req.TypedData)).To(MatchJSON(typedData))
			Expect(req.EnableAuthorize).To(BeTrue())
			Expect(req.Address).To(Equal(address))
		})

		It("requires a primary type", func() {
			_, err := call("starknet_signTypedData", `{"types":{},"domain":{},"message":{}}`)

			var validationErr *wallet.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
		})
	})

	Describe("starkNet_getTransactions", func() {
		It("fills the query from the current account and network", func() {
			fakeHistory.GetTransactionsReturns([]*state.Transaction{{TxnHash: txnHash}}, nil)

			result, err := call("starkNet_getTransactions", `{"contractAddress":"`+ethToken+`"}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))

			_, query := fakeHistory.GetTransactionsArgsForCall(0)
			Expect(query).To(Equal(core.TransactionQuery{
				Signer:          address,
				ContractAddress: ethToken,
				ChainID:         state.SepoliaChainID,
				LastNDays:       10,
			}))
		})

		It("fails the whole query when the history fails", func() {
			fakeHistory.GetTransactionsReturns(nil, errors.New("indexer down"))

			_, err := call("starkNet_getTransactions", `{"contractAddress":"`+ethToken+`","senderAddress":"`+address+`"}`)
			Expect(walletError(err).Code).To(Equal(wallet.CodeUnknownError))
			Expect(fakeSnap.RecoverDefaultAccountCallCount()).To(Equal(0))
		})
	})

	Describe("starkNet_getTransactionStatus", func() {
		It("returns the node status", func() {
			fakeHistory.GetTransactionStatusReturns(&starknet.TransactionStatus{
				TxnHash:         txnHash,
				FinalityStatus:  state.FinalityStatusAcceptedOnL2,
				ExecutionStatus: state.ExecutionStatusSucceeded,
			}, nil)

			result, err := call("starkNet_getTransactionStatus", `{"transactionHash":"`+txnHash+`"}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(asJSON(result)).To(MatchJSON(`{"finalityStatus":"ACCEPTED_ON_L2","executionStatus":"SUCCEEDED"}`))

			_, hash, chainID := fakeHistory.GetTransactionStatusArgsForCall(0)
			Expect(hash).To(Equal(txnHash))
			Expect(chainID).To(Equal(state.SepoliaChainID))
		})
	})

	It("stamps recorded transactions with the submit time", func() {
		fakeSnap.ExecuteReturns(&snap.ExecuteResult{TransactionHash: txnHash}, nil)
		before := time.Now().Unix()

		_, err := call("wallet_addInvokeTransaction", `{"calls":[{"contract_address":"0x1","entry_point":"approve"}]}`)
		Expect(err).NotTo(HaveOccurred())

		recorded, err := txns.FindTransactions(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(recorded[0].Timestamp).To(BeNumerically(">=", before))
	})
})
