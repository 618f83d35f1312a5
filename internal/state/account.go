package state

import (
	"context"
	"fmt"

	"starksnap/internal/filter"
)

type AccountStateManager struct {
	*StateManager[*Account]
}

func NewAccountStateManager(store Store, lock *StoreLock) *AccountStateManager {
	return &AccountStateManager{
		StateManager: NewStateManager(store, lock, func(st *SnapState) *[]*Account { return &st.AccContracts }),
	}
}

// GetAccount returns the account with the given address on chainID, or nil.
func (m *AccountStateManager) GetAccount(ctx context.Context, address, chainID string, st *SnapState) (*Account, error) {
	return m.Find(ctx, st, AddressFilter(address), AccountChainIDFilter(chainID))
}

// FindAccounts lists the accounts of chainID ordered by address index.
func (m *AccountStateManager) FindAccounts(ctx context.Context, chainID string) ([]*Account, error) {
	return m.List(ctx, nil, func(a, b *Account) bool {
		return a.AddressIndex < b.AddressIndex
	}, AccountChainIDFilter(chainID))
}

func (m *AccountStateManager) AddAccount(ctx context.Context, account *Account) error {
	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetAccount(ctx, account.Address, account.ChainID, st)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("account %s: %w", account.Address, ErrAlreadyExists)
		}
		st.AccContracts = append(st.AccContracts, account)
		return nil
	})
}

func (m *AccountStateManager) UpdateAccount(ctx context.Context, account *Account) error {
	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetAccount(ctx, account.Address, account.ChainID, st)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("account %s: %w", account.Address, ErrNotFound)
		}
		mergeAccount(existing, account)
		return nil
	})
}

// UpsertAccount merges into an existing account or appends a new one.
func (m *AccountStateManager) UpsertAccount(ctx context.Context, account *Account) error {
	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetAccount(ctx, account.Address, account.ChainID, st)
		if err != nil {
			return err
		}
		if existing == nil {
			st.AccContracts = append(st.AccContracts, account)
			return nil
		}
		mergeAccount(existing, account)
		return nil
	})
}

// RemoveAccount deletes the account and queues its address index for reuse.
func (m *AccountStateManager) RemoveAccount(ctx context.Context, address, chainID string) error {
	return m.Update(ctx, func(st *SnapState) error {
		idx := -1
		for i, acc := range st.AccContracts {
			if filter.BigIntEqual(acc.Address, address) && filter.BigIntEqual(acc.ChainID, chainID) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("account %s: %w", address, ErrNotFound)
		}

		removed := st.AccContracts[idx]
		st.AccContracts = append(st.AccContracts[:idx], st.AccContracts[idx+1:]...)

		key := filter.CanonicalHex(chainID)
		st.RemovedAccounts[key] = append(st.RemovedAccounts[key], removed.AddressIndex)

		if current, ok := st.CurrentAccount[key]; ok && current != nil && filter.BigIntEqual(current.Address, address) {
			delete(st.CurrentAccount, key)
		}
		return nil
	})
}

// GetNextIndex returns the oldest recycled index of chainID, removing it
// from the free list, or the number of accounts on that chain when the free
// list is empty.
func (m *AccountStateManager) GetNextIndex(ctx context.Context, chainID string) (int, error) {
	var next int
	err := m.Update(ctx, func(st *SnapState) error {
		key := filter.CanonicalHex(chainID)
		if free := st.RemovedAccounts[key]; len(free) > 0 {
			next = free[0]
			st.RemovedAccounts[key] = free[1:]
			return nil
		}

		accounts, err := m.List(ctx, st, nil, AccountChainIDFilter(chainID))
		if err != nil {
			return err
		}
		next = len(accounts)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// SetCurrentAccount marks a stored account as the selected one of its chain.
func (m *AccountStateManager) SetCurrentAccount(ctx context.Context, account *Account) error {
	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetAccount(ctx, account.Address, account.ChainID, st)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("account %s: %w", account.Address, ErrNotFound)
		}
		st.CurrentAccount[filter.CanonicalHex(account.ChainID)] = existing
		return nil
	})
}

// GetCurrentAccount returns the selected account of chainID, or nil.
func (m *AccountStateManager) GetCurrentAccount(ctx context.Context, chainID string) (*Account, error) {
	st, err := m.Get(ctx)
	if err != nil {
		return nil, err
	}

	current := st.CurrentAccount[filter.CanonicalHex(chainID)]
	if current == nil {
		return nil, nil
	}

	stored, err := m.GetAccount(ctx, current.Address, chainID, st)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return current, nil
	}
	return stored, nil
}

func mergeAccount(existing, incoming *Account) {
	if incoming.DeployTxnHash != "" {
		existing.DeployTxnHash = incoming.DeployTxnHash
	}
	if incoming.UpgradeRequired != nil {
		existing.UpgradeRequired = incoming.UpgradeRequired
	}
	if incoming.DeployRequired != nil {
		existing.DeployRequired = incoming.DeployRequired
	}
}
