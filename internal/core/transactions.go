package core

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"starksnap/internal/starknet"
	"starksnap/internal/state"
)

// TransactionService merges indexed history with the transactions the
// wallet recorded locally.
type TransactionService struct {
	logs   *zap.SugaredLogger
	repo   TransactionRepository
	chains *Chains
	now    func() time.Time
}

func NewTransactionService(logger *zap.SugaredLogger, repo TransactionRepository, chains *Chains) *TransactionService {
	return &TransactionService{
		logs:   logger,
		repo:   repo,
		chains: chains,
		now:    time.Now,
	}
}

// WithClock replaces the wall clock used to compute the query window.
func (s *TransactionService) WithClock(now func() time.Time) *TransactionService {
	s.now = now
	return s
}

// GetTransactions returns the pending local transactions that the indexer
// does not know yet followed by the indexed ones. Local records of the
// signer the indexer already returned are removed from the state, whatever
// their status.
func (s *TransactionService) GetTransactions(ctx context.Context, query TransactionQuery) ([]*state.Transaction, error) {
	cutoff := s.now().Add(-time.Duration(query.LastNDays) * 24 * time.Hour).Unix()

	chain, err := s.chains.Get(query.ChainID)
	if err != nil {
		return nil, err
	}

	relevant := func(txn *state.Transaction, _ int) bool {
		return state.HasAccountCall(txn, query.ContractAddress) ||
			txn.TxnType == state.TransactionTypeDeployAccount ||
			txn.TxnType == state.TransactionTypeDeploy ||
			txn.FailureReason != ""
	}

	fetched, err := chain.Data.GetTransactionsSince(ctx, query.Signer, cutoff)
	if err != nil {
		return nil, err
	}
	indexedHashes := lo.SliceToMap(fetched, func(txn *state.Transaction) (string, struct{}) {
		return state.MustNormalizeHash(txn.TxnHash), struct{}{}
	})
	indexed := lo.Filter(fetched, relevant)

	local, err := s.repo.FindTransactions(ctx,
		state.SenderAddressFilter(query.Signer),
		state.ChainIDFilter(query.ChainID),
		state.DataVersionFilter(state.LatestDataVersion),
	)
	if err != nil {
		return nil, fmt.Errorf("find local transactions: %w", err)
	}

	unindexed, superseded := lo.FilterReject(local, func(txn *state.Transaction, _ int) bool {
		_, ok := indexedHashes[state.MustNormalizeHash(txn.TxnHash)]
		return !ok
	})
	received := state.NewTxnStatusFilter([]state.FinalityStatus{state.FinalityStatusReceived}, nil)
	pending := lo.Filter(unindexed, func(txn *state.Transaction, i int) bool {
		return received.Apply(txn) && relevant(txn, i)
	})

	if len(superseded) > 0 {
		hashes := lo.Map(superseded, func(txn *state.Transaction, _ int) string {
			return txn.TxnHash
		})
		if err := s.repo.RemoveTransactions(ctx,
			state.TxnHashFilter(hashes...),
			state.ChainIDFilter(query.ChainID),
		); err != nil {
			return nil, fmt.Errorf("remove superseded transactions: %w", err)
		}
		s.logs.Infow("superseded local transactions removed",
			"chainId", query.ChainID,
			"count", len(hashes),
		)
	}

	result := make([]*state.Transaction, 0, len(pending)+len(indexed))
	result = append(result, pending...)
	result = append(result, indexed...)

	s.logs.Infow("transactions reconciled",
		"signer", query.Signer,
		"chainId", query.ChainID,
		"pending", len(pending),
		"indexed", len(indexed),
	)
	return result, nil
}

// RefreshTransactionStatus polls the node for every pending local
// transaction of chainID and stores the terminal statuses. It returns the
// number of updated transactions.
func (s *TransactionService) RefreshTransactionStatus(ctx context.Context, chainID string) (int, error) {
	chain, err := s.chains.Get(chainID)
	if err != nil {
		return 0, err
	}

	pending, err := s.repo.FindTransactions(ctx,
		state.ChainIDFilter(chainID),
		state.NewTxnStatusFilter([]state.FinalityStatus{state.FinalityStatusReceived}, nil),
	)
	if err != nil {
		return 0, fmt.Errorf("find pending transactions: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	hashes := lo.Map(pending, func(txn *state.Transaction, _ int) string {
		return txn.TxnHash
	})

	statuses, err := chain.Status.FetchStatuses(ctx, hashes)
	if err != nil {
		s.logs.Warnw("fetching transaction statuses from node", "error", err, "chainId", chainID)
	}

	updated := 0
	for _, status := range statuses {
		if !status.Final() {
			continue
		}
		if err := s.store(ctx, chainID, status); err != nil {
			return updated, err
		}
		updated++
	}

	s.logs.Infow("transaction statuses refreshed",
		"chainId", chainID,
		"pending", len(pending),
		"updated", updated,
	)
	return updated, nil
}

// GetTransactionStatus reads the status of hash from the node and stores it
// on the local record once it is terminal.
func (s *TransactionService) GetTransactionStatus(ctx context.Context, hash, chainID string) (*starknet.TransactionStatus, error) {
	chain, err := s.chains.Get(chainID)
	if err != nil {
		return nil, err
	}

	status, err := chain.Status.GetTransactionStatus(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("get transaction status: %w", err)
	}

	local, err := s.repo.FindTransactions(ctx, state.TxnHashFilter(hash), state.ChainIDFilter(chainID))
	if err != nil {
		return nil, fmt.Errorf("find local transaction: %w", err)
	}
	if len(local) > 0 && status.Final() && local[0].FinalityStatus != status.FinalityStatus {
		if err := s.store(ctx, chainID, status); err != nil {
			return nil, err
		}
	}

	return status, nil
}

func (s *TransactionService) store(ctx context.Context, chainID string, status *starknet.TransactionStatus) error {
	err := s.repo.UpdateTransaction(ctx, &state.Transaction{
		TxnHash:         status.TxnHash,
		ChainID:         chainID,
		FinalityStatus:  status.FinalityStatus,
		ExecutionStatus: status.ExecutionStatus,
		FailureReason:   status.FailureReason,
	})
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	return nil
}
