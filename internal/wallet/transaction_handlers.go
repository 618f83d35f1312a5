package wallet

import (
	"context"
	"fmt"

	"starksnap/internal/core"
	"starksnap/internal/snap"
	"starksnap/internal/state"
)

type invokeResult struct {
	TransactionHash string `json:"transaction_hash"`
}

// addInvokeTransaction executes the calls through the snap and records the
// transaction as RECEIVED until the indexer reports it. A transaction
// request is kept while the user confirms the fee in the snap.
func (w *Wallet) addInvokeTransaction(ctx context.Context, req *request, params invokeParams) (any, error) {
	account, err := req.Account(ctx)
	if err != nil {
		return nil, err
	}

	if pending := w.openRequest(ctx, account, params.Calls); pending != nil {
		defer w.closeRequest(ctx, pending.ID)
	}

	result, err := w.snap.Execute(ctx, snap.ExecuteRequest{
		Address: account.Address,
		Calls:   params.Calls,
		ChainID: account.ChainID,
	})
	if err != nil {
		return nil, err
	}

	txn := &state.Transaction{
		TxnHash:         result.TransactionHash,
		TxnType:         state.TransactionTypeInvoke,
		ChainID:         account.ChainID,
		SenderAddress:   account.Address,
		ContractAddress: params.Calls[0].ContractAddress,
		Timestamp:       w.now().Unix(),
		FinalityStatus:  state.FinalityStatusReceived,
		AccountCalls:    accountCalls(params.Calls),
		DataVersion:     state.LatestDataVersion,
	}
	if err := w.txns.AddTransaction(ctx, txn); err != nil {
		w.logs.Warnw("recording submitted transaction",
			"txnHash", result.TransactionHash,
			"chainId", account.ChainID,
			"error", err,
		)
	}

	return invokeResult{TransactionHash: result.TransactionHash}, nil
}

func (w *Wallet) openRequest(ctx context.Context, account *state.Account, calls []state.Call) *state.TransactionRequest {
	pending, err := w.requests.CreateTransactionRequest(ctx, &state.TransactionRequest{
		Type:          requestTypeInvoke,
		Signer:        account.Address,
		ChainID:       account.ChainID,
		Calls:         calls,
		IncludeDeploy: account.DeployTxnHash == "" && account.DeployRequired != nil && *account.DeployRequired,
	})
	if err != nil {
		w.logs.Warnw("opening transaction request", "signer", account.Address, "error", err)
		return nil
	}
	return pending
}

func (w *Wallet) closeRequest(ctx context.Context, id string) {
	if err := w.requests.RemoveTransactionRequest(ctx, id); err != nil {
		w.logs.Warnw("closing transaction request", "requestId", id, "error", err)
	}
}

func accountCalls(calls []state.Call) map[string][]state.AccountCall {
	grouped := make(map[string][]state.AccountCall, len(calls))
	for _, call := range calls {
		grouped[call.ContractAddress] = append(grouped[call.ContractAddress], state.AccountCall{
			ContractFuncName: call.EntryPoint,
			ContractCallData: call.Calldata,
		})
	}
	return grouped
}

type declareResult struct {
	TransactionHash string `json:"transaction_hash"`
	ClassHash       string `json:"class_hash"`
}

func (w *Wallet) addDeclareTransaction(ctx context.Context, req *request, params declareParams) (any, error) {
	account, err := req.Account(ctx)
	if err != nil {
		return nil, err
	}

	result, err := w.snap.Declare(ctx, snap.DeclareRequest{
		Address:           account.Address,
		CompiledClassHash: params.CompiledClassHash,
		ClassHash:         params.ClassHash,
		ContractClass:     params.ContractClass,
		ChainID:           account.ChainID,
	})
	if err != nil {
		return nil, err
	}

	return declareResult{
		TransactionHash: result.TransactionHash,
		ClassHash:       result.ClassHash,
	}, nil
}

func (w *Wallet) getTransactions(ctx context.Context, req *request, params getTransactionsParams) (any, error) {
	query := core.TransactionQuery{
		Signer:          params.SenderAddress,
		ContractAddress: params.ContractAddress,
		ChainID:         params.ChainID,
		LastNDays:       params.TxnsInLastNumOfDays,
	}
	if query.LastNDays == 0 {
		query.LastNDays = defaultLastNDays
	}

	if query.ChainID == "" {
		network, err := req.Network(ctx)
		if err != nil {
			return nil, err
		}
		query.ChainID = network.ChainID
	}
	if query.Signer == "" {
		account, err := req.Account(ctx)
		if err != nil {
			return nil, err
		}
		query.Signer = account.Address
	}

	txns, err := w.history.GetTransactions(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}
	return txns, nil
}

type transactionStatusResult struct {
	FinalityStatus  state.FinalityStatus  `json:"finalityStatus"`
	ExecutionStatus state.ExecutionStatus `json:"executionStatus"`
	FailureReason   string                `json:"failureReason,omitempty"`
}

func (w *Wallet) getTransactionStatus(ctx context.Context, req *request, params transactionStatusParams) (any, error) {
	chainID := params.ChainID
	if chainID == "" {
		network, err := req.Network(ctx)
		if err != nil {
			return nil, err
		}
		chainID = network.ChainID
	}

	status, err := w.history.GetTransactionStatus(ctx, params.TransactionHash, chainID)
	if err != nil {
		return nil, err
	}

	return transactionStatusResult{
		FinalityStatus:  status.FinalityStatus,
		ExecutionStatus: status.ExecutionStatus,
		FailureReason:   status.FailureReason,
	}, nil
}
