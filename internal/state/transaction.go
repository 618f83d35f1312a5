package state

import (
	"context"
	"fmt"

	"starksnap/internal/filter"
)

type TransactionStateManager struct {
	*StateManager[*Transaction]
}

func NewTransactionStateManager(store Store, lock *StoreLock) *TransactionStateManager {
	return &TransactionStateManager{
		StateManager: NewStateManager(store, lock, func(st *SnapState) *[]*Transaction { return &st.Transactions }),
	}
}

func (m *TransactionStateManager) GetTransaction(ctx context.Context, hash, chainID string, st *SnapState) (*Transaction, error) {
	return m.Find(ctx, st, TxnHashFilter(hash), ChainIDFilter(chainID))
}

// FindTransactions lists the transactions matching every filter, newest first.
func (m *TransactionStateManager) FindTransactions(ctx context.Context, filters ...filter.Filter[*Transaction]) ([]*Transaction, error) {
	return m.List(ctx, nil, func(a, b *Transaction) bool {
		return a.Timestamp > b.Timestamp
	}, filters...)
}

func (m *TransactionStateManager) AddTransaction(ctx context.Context, txn *Transaction) error {
	if err := normalizeTransaction(txn); err != nil {
		return newStateManagerError(err)
	}

	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetTransaction(ctx, txn.TxnHash, txn.ChainID, st)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("transaction %s: %w", txn.TxnHash, ErrAlreadyExists)
		}
		st.Transactions = append(st.Transactions, txn)
		return nil
	})
}

// UpdateTransaction copies the status fields of txn onto the stored record.
func (m *TransactionStateManager) UpdateTransaction(ctx context.Context, txn *Transaction) error {
	if err := normalizeTransaction(txn); err != nil {
		return newStateManagerError(err)
	}

	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetTransaction(ctx, txn.TxnHash, txn.ChainID, st)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("transaction %s: %w", txn.TxnHash, ErrNotFound)
		}
		mergeTransaction(existing, txn)
		return nil
	})
}

func (m *TransactionStateManager) UpsertTransactions(ctx context.Context, txns []*Transaction) error {
	for _, txn := range txns {
		if err := normalizeTransaction(txn); err != nil {
			return newStateManagerError(err)
		}
	}

	return m.Update(ctx, func(st *SnapState) error {
		for _, txn := range txns {
			existing, err := m.GetTransaction(ctx, txn.TxnHash, txn.ChainID, st)
			if err != nil {
				return err
			}
			if existing == nil {
				st.Transactions = append(st.Transactions, txn)
				continue
			}
			mergeTransaction(existing, txn)
		}
		return nil
	})
}

// RemoveTransactions deletes every transaction matching all filters. Without
// filters nothing is removed.
func (m *TransactionStateManager) RemoveTransactions(ctx context.Context, filters ...filter.Filter[*Transaction]) error {
	if len(filters) == 0 {
		return nil
	}

	return m.Update(ctx, func(st *SnapState) error {
		kept := st.Transactions[:0]
		for _, txn := range st.Transactions {
			if !filter.All(txn, filters...) {
				kept = append(kept, txn)
			}
		}
		st.Transactions = kept
		return nil
	})
}

func normalizeTransaction(txn *Transaction) error {
	hash, err := NormalizeHash(txn.TxnHash)
	if err != nil {
		return err
	}
	txn.TxnHash = hash
	if txn.DataVersion == "" {
		txn.DataVersion = LatestDataVersion
	}
	return nil
}

func mergeTransaction(existing, incoming *Transaction) {
	existing.FinalityStatus = incoming.FinalityStatus
	existing.ExecutionStatus = incoming.ExecutionStatus
	existing.FailureReason = incoming.FailureReason
	if incoming.ActualFee != "" {
		existing.ActualFee = incoming.ActualFee
	}
	if incoming.Timestamp != 0 {
		existing.Timestamp = incoming.Timestamp
	}
}
