package state

import (
	"context"
	"fmt"

	"starksnap/internal/filter"
)

const AccountClassHash = "0x029927c8af6bccf3f6fda035981e765a7bdbf18a2dc0d630494f8758aa908e2b"

// IsSupportedChain reports whether chainID may be the current network.
func IsSupportedChain(chainID string) bool {
	return filter.BigIntEqual(chainID, MainnetChainID) || filter.BigIntEqual(chainID, SepoliaChainID)
}

// DefaultNetworks returns the mainnet and sepolia descriptors.
func DefaultNetworks(mainnetNodeURL, sepoliaNodeURL string) []*Network {
	return []*Network{
		{
			Name:             "Mainnet",
			ChainID:          MainnetChainID,
			BaseURL:          "https://alpha-mainnet.starknet.io",
			NodeURL:          mainnetNodeURL,
			VoyagerURL:       "https://voyager.online",
			AccountClassHash: AccountClassHash,
		},
		{
			Name:             "Sepolia Testnet",
			ChainID:          SepoliaChainID,
			BaseURL:          "https://alpha-sepolia.starknet.io",
			NodeURL:          sepoliaNodeURL,
			VoyagerURL:       "https://sepolia.voyager.online",
			AccountClassHash: AccountClassHash,
		},
	}
}

type NetworkStateManager struct {
	*StateManager[*Network]
	defaults       []*Network
	defaultChainID string
}

func NewNetworkStateManager(store Store, lock *StoreLock, defaults []*Network, defaultChainID string) *NetworkStateManager {
	return &NetworkStateManager{
		StateManager:   NewStateManager(store, lock, func(st *SnapState) *[]*Network { return &st.Networks }),
		defaults:       defaults,
		defaultChainID: defaultChainID,
	}
}

// GetNetwork looks chainID up in the document, then in the defaults.
func (m *NetworkStateManager) GetNetwork(ctx context.Context, chainID string, st *SnapState) (*Network, error) {
	network, err := m.Find(ctx, st, NetworkChainIDFilter(chainID))
	if err != nil {
		return nil, err
	}
	if network != nil {
		return network, nil
	}
	return m.defaultNetwork(chainID), nil
}

func (m *NetworkStateManager) ListNetworks(ctx context.Context) ([]*Network, error) {
	networks, err := m.List(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	for _, d := range m.defaults {
		if !containsChain(networks, d.ChainID) {
			networks = append(networks, d)
		}
	}
	return networks, nil
}

func (m *NetworkStateManager) AddNetwork(ctx context.Context, network *Network) error {
	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.Find(ctx, st, NetworkChainIDFilter(network.ChainID))
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("network %s: %w", network.ChainID, ErrAlreadyExists)
		}
		st.Networks = append(st.Networks, network)
		return nil
	})
}

func (m *NetworkStateManager) UpdateNetwork(ctx context.Context, network *Network) error {
	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.Find(ctx, st, NetworkChainIDFilter(network.ChainID))
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("network %s: %w", network.ChainID, ErrNotFound)
		}
		*existing = *network
		return nil
	})
}

func (m *NetworkStateManager) UpsertNetwork(ctx context.Context, network *Network) error {
	return m.Update(ctx, func(st *SnapState) error {
		existing, err := m.Find(ctx, st, NetworkChainIDFilter(network.ChainID))
		if err != nil {
			return err
		}
		if existing == nil {
			st.Networks = append(st.Networks, network)
			return nil
		}
		*existing = *network
		return nil
	})
}

// SeedDefaults stores the default networks that are not yet in the document.
func (m *NetworkStateManager) SeedDefaults(ctx context.Context) error {
	return m.Update(ctx, func(st *SnapState) error {
		for _, d := range m.defaults {
			if !containsChain(st.Networks, d.ChainID) {
				n := *d
				st.Networks = append(st.Networks, &n)
			}
		}
		return nil
	})
}

// GetCurrentNetwork returns the selected network, falling back to the
// default one when nothing or an unsupported chain is selected.
func (m *NetworkStateManager) GetCurrentNetwork(ctx context.Context, st *SnapState) (*Network, error) {
	if st == nil {
		var err error
		if st, err = m.Get(ctx); err != nil {
			return nil, err
		}
	}

	if st.CurrentNetwork != nil && IsSupportedChain(st.CurrentNetwork.ChainID) {
		return st.CurrentNetwork, nil
	}

	network, err := m.GetNetwork(ctx, m.defaultChainID, st)
	if err != nil {
		return nil, err
	}
	if network == nil {
		return nil, fmt.Errorf("default network %s: %w", m.defaultChainID, ErrNotFound)
	}
	return network, nil
}

func (m *NetworkStateManager) SetCurrentNetwork(ctx context.Context, network *Network) error {
	return m.Update(ctx, func(st *SnapState) error {
		n := *network
		st.CurrentNetwork = &n
		return nil
	})
}

func (m *NetworkStateManager) defaultNetwork(chainID string) *Network {
	for _, d := range m.defaults {
		if filter.BigIntEqual(d.ChainID, chainID) {
			n := *d
			return &n
		}
	}
	return nil
}

func containsChain(networks []*Network, chainID string) bool {
	for _, n := range networks {
		if filter.BigIntEqual(n.ChainID, chainID) {
			return true
		}
	}
	return false
}
