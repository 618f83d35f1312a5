package state

import (
	"context"
	"fmt"

	"github.com/jellydator/validation"

	"starksnap/internal/filter"
)

var (
	ethTokens = map[string]Erc20Token{
		filter.CanonicalHex(MainnetChainID): {
			Address:  "0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7",
			Name:     "Ether",
			Symbol:   "ETH",
			Decimals: 18,
			ChainID:  MainnetChainID,
		},
		filter.CanonicalHex(SepoliaChainID): {
			Address:  "0x049d36570d4e46f48e99674bd3fcc84644ddd6b96f7c741b1562b82f9e004dc7",
			Name:     "Ether",
			Symbol:   "ETH",
			Decimals: 18,
			ChainID:  SepoliaChainID,
		},
	}

	strkTokens = map[string]Erc20Token{
		filter.CanonicalHex(MainnetChainID): {
			Address:  "0x04718f5a0fc34cc1af16a1cdee98ffb20c31f5cd61d6ab07201858f4287c938d",
			Name:     "Starknet Token",
			Symbol:   "STRK",
			Decimals: 18,
			ChainID:  MainnetChainID,
		},
		filter.CanonicalHex(SepoliaChainID): {
			Address:  "0x04718f5a0fc34cc1af16a1cdee98ffb20c31f5cd61d6ab07201858f4287c938d",
			Name:     "Starknet Token",
			Symbol:   "STRK",
			Decimals: 18,
			ChainID:  SepoliaChainID,
		},
	}
)

func (t Erc20Token) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Address, validation.Required),
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Symbol, validation.Required),
		validation.Field(&t.Decimals, validation.Min(0)),
	)
}

type TokenStateManager struct {
	*StateManager[*Erc20Token]
}

func NewTokenStateManager(store Store, lock *StoreLock) *TokenStateManager {
	return &TokenStateManager{
		StateManager: NewStateManager(store, lock, func(st *SnapState) *[]*Erc20Token { return &st.Erc20Tokens }),
	}
}

func (m *TokenStateManager) GetToken(ctx context.Context, address, chainID string, st *SnapState) (*Erc20Token, error) {
	return m.Find(ctx, st, TokenAddressFilter(address), TokenChainIDFilter(chainID))
}

func (m *TokenStateManager) ListTokens(ctx context.Context, chainID string) ([]*Erc20Token, error) {
	return m.List(ctx, nil, nil, TokenChainIDFilter(chainID))
}

// GetEthToken returns the ether token of chainID, or nil for unknown chains.
func (m *TokenStateManager) GetEthToken(ctx context.Context, chainID string) (*Erc20Token, error) {
	return m.presetToken(ctx, ethTokens, chainID)
}

// GetStrkToken returns the STRK token of chainID, or nil for unknown chains.
func (m *TokenStateManager) GetStrkToken(ctx context.Context, chainID string) (*Erc20Token, error) {
	return m.presetToken(ctx, strkTokens, chainID)
}

func (m *TokenStateManager) AddToken(ctx context.Context, token *Erc20Token) error {
	if err := validateToken(token); err != nil {
		return newStateManagerError(err)
	}

	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetToken(ctx, token.Address, token.ChainID, st)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("token %s: %w", token.Address, ErrAlreadyExists)
		}
		st.Erc20Tokens = append(st.Erc20Tokens, token)
		return nil
	})
}

func (m *TokenStateManager) UpdateToken(ctx context.Context, token *Erc20Token) error {
	if err := validateToken(token); err != nil {
		return newStateManagerError(err)
	}

	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetToken(ctx, token.Address, token.ChainID, st)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("token %s: %w", token.Address, ErrNotFound)
		}
		mergeToken(existing, token)
		return nil
	})
}

func (m *TokenStateManager) UpsertToken(ctx context.Context, token *Erc20Token) error {
	if err := validateToken(token); err != nil {
		return newStateManagerError(err)
	}

	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.GetToken(ctx, token.Address, token.ChainID, st)
		if err != nil {
			return err
		}
		if existing == nil {
			st.Erc20Tokens = append(st.Erc20Tokens, token)
			return nil
		}
		mergeToken(existing, token)
		return nil
	})
}

func (m *TokenStateManager) RemoveToken(ctx context.Context, address, chainID string) error {
	return m.Update(ctx, func(st *SnapState) error {
		for i, t := range st.Erc20Tokens {
			if filter.BigIntEqual(t.Address, address) && filter.BigIntEqual(t.ChainID, chainID) {
				st.Erc20Tokens = append(st.Erc20Tokens[:i], st.Erc20Tokens[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("token %s: %w", address, ErrNotFound)
	})
}

func (m *TokenStateManager) presetToken(ctx context.Context, table map[string]Erc20Token, chainID string) (*Erc20Token, error) {
	preset, ok := table[filter.CanonicalHex(chainID)]
	if !ok {
		return nil, nil
	}

	stored, err := m.GetToken(ctx, preset.Address, chainID, nil)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return stored, nil
	}
	return &preset, nil
}

func validateToken(token *Erc20Token) error {
	if err := token.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTokenMetadata, err)
	}
	return nil
}

func mergeToken(existing, incoming *Erc20Token) {
	existing.Name = incoming.Name
	existing.Symbol = incoming.Symbol
	existing.Decimals = incoming.Decimals
}
