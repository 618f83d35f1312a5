package core

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"starksnap/internal/filter"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

// Chain groups the remote services of one network.
type Chain struct {
	ChainID string
	Data    DataClient
	Status  StatusClient
}

// Chains resolves the services of a network by chain id.
type Chains struct {
	chains map[string]Chain
	mu     sync.RWMutex
}

func NewChains(chains ...Chain) *Chains {
	c := &Chains{
		chains: make(map[string]Chain, len(chains)),
	}
	for _, chain := range chains {
		c.Register(chain)
	}
	return c
}

// Register adds or replaces the services of chain.ChainID.
func (c *Chains) Register(chain Chain) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chains[filter.CanonicalHex(chain.ChainID)] = chain
}

func (c *Chains) Get(chainID string) (Chain, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	chain, ok := c.chains[filter.CanonicalHex(chainID)]
	if !ok {
		return Chain{}, fmt.Errorf("%w: %s", ErrUnsupportedChain, chainID)
	}
	return chain, nil
}

// IDs lists the registered chain ids.
func (c *Chains) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := lo.Map(lo.Values(c.chains), func(chain Chain, _ int) string {
		return chain.ChainID
	})
	sort.Strings(ids)
	return ids
}
